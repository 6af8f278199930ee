package repository

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines persistence operations for vehicle listings.
type Repository interface {
	Create(ctx context.Context, v Vehicle) (Vehicle, error)
	Update(ctx context.Context, id uuid.UUID, v Vehicle) (Vehicle, error)
	Delete(ctx context.Context, id uuid.UUID) error
	GetByID(ctx context.Context, id uuid.UUID) (Vehicle, error)
	GetByStockNumber(ctx context.Context, stockNumber string) (Vehicle, error)
	List(ctx context.Context, params ListParams) ([]Vehicle, int, error)
	ListFeatured(ctx context.Context, limit int) ([]Vehicle, error)
	Upsert(ctx context.Context, v Vehicle) (UpsertResult, error)
}
