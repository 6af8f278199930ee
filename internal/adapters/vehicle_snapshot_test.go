package adapters

import (
	"context"
	"testing"

	vehrepo "autohaus_backend/internal/vehicles/repository"
	vehservice "autohaus_backend/internal/vehicles/service"
	"autohaus_backend/platform/logger"

	"github.com/google/uuid"
)

type fakeVehicleRepo struct {
	vehrepo.Repository

	vehicle vehrepo.Vehicle
}

func (f *fakeVehicleRepo) GetByID(context.Context, uuid.UUID) (vehrepo.Vehicle, error) {
	return f.vehicle, nil
}

func TestSnapshot_CapturesListedPriceNotSpecialPrice(t *testing.T) {
	makeName := "Toyota"
	model := "Corolla"
	year := 2021
	price := 42000.0
	special := 38990.0
	repo := &fakeVehicleRepo{vehicle: vehrepo.Vehicle{
		ID:           uuid.New(),
		Make:         &makeName,
		Model:        &model,
		Year:         &year,
		Price:        &price,
		SpecialPrice: &special,
	}}
	adapter := NewVehicleSnapshotAdapter(vehservice.New(repo, logger.New("development")))

	snapshot, err := adapter.Snapshot(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if snapshot.Price == nil || *snapshot.Price != 42000 {
		t.Fatalf("expected listed price 42000, got %v", snapshot.Price)
	}
	if snapshot.Make == nil || *snapshot.Make != "Toyota" {
		t.Fatalf("expected make Toyota, got %v", snapshot.Make)
	}
	if snapshot.Year == nil || *snapshot.Year != 2021 {
		t.Fatalf("expected year 2021, got %v", snapshot.Year)
	}
}
