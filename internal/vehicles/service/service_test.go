package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"autohaus_backend/internal/vehicles/repository"
	"autohaus_backend/internal/vehicles/transport"
	"autohaus_backend/platform/apperr"
	"autohaus_backend/platform/logger"

	"github.com/google/uuid"
)

type fakeRepo struct {
	repository.Repository

	lastParams repository.ListParams
	items      []repository.Vehicle
	total      int
	listErr    error
}

func (f *fakeRepo) List(_ context.Context, params repository.ListParams) ([]repository.Vehicle, int, error) {
	if f.listErr != nil {
		return nil, 0, f.listErr
	}
	f.lastParams = params
	return f.items, f.total, nil
}

func TestList_AppliesPagingDefaults(t *testing.T) {
	repo := &fakeRepo{total: 30}
	svc := New(repo, logger.New("development"))

	result, err := svc.List(context.Background(), transport.ListVehiclesRequest{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if repo.lastParams.Page != 1 {
		t.Fatalf("expected default page 1, got %d", repo.lastParams.Page)
	}
	if repo.lastParams.PageSize != 12 {
		t.Fatalf("expected default page size 12, got %d", repo.lastParams.PageSize)
	}
	if result.TotalPages != 3 {
		t.Fatalf("expected 3 total pages for 30 items, got %d", result.TotalPages)
	}
}

func TestList_TotalPagesRoundsUp(t *testing.T) {
	repo := &fakeRepo{total: 25}
	svc := New(repo, logger.New("development"))

	result, err := svc.List(context.Background(), transport.ListVehiclesRequest{PageSize: 10})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.TotalPages != 3 {
		t.Fatalf("expected 3 total pages for 25 items at page size 10, got %d", result.TotalPages)
	}
}

func TestList_StorageFailureIsInternal(t *testing.T) {
	repo := &fakeRepo{listErr: errors.New(`ERROR: relation "vehicles" does not exist (SQLSTATE 42P01)`)}
	svc := New(repo, logger.New("development"))

	_, err := svc.List(context.Background(), transport.ListVehiclesRequest{})
	if err == nil {
		t.Fatal("expected error when storage fails")
	}
	if apperr.GetKind(err) != apperr.KindInternal {
		t.Fatalf("expected internal kind, got %v", apperr.GetKind(err))
	}
	if strings.Contains(err.Error(), "SQLSTATE") {
		t.Fatalf("driver detail leaked to caller: %v", err)
	}
}

func TestList_ResponseImagesNeverNil(t *testing.T) {
	repo := &fakeRepo{
		items: []repository.Vehicle{{ID: uuid.New(), CreatedAt: time.Now(), UpdatedAt: time.Now()}},
		total: 1,
	}
	svc := New(repo, logger.New("development"))

	result, err := svc.List(context.Background(), transport.ListVehiclesRequest{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Items[0].Images == nil {
		t.Fatal("expected images to serialize as an empty array, not null")
	}
}
