package importer

import (
	"context"
	"errors"
	"strings"
	"testing"

	"autohaus_backend/internal/vehicles/repository"
	"autohaus_backend/platform/logger"

	"github.com/google/uuid"
)

// fakeStore keeps vehicles in memory keyed by stock number, mirroring the
// repository's upsert contract.
type fakeStore struct {
	vehicles  map[string]repository.Vehicle
	ids       map[string]uuid.UUID
	failStock string
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		vehicles: make(map[string]repository.Vehicle),
		ids:      make(map[string]uuid.UUID),
	}
}

func (f *fakeStore) Upsert(_ context.Context, v repository.Vehicle) (repository.UpsertResult, error) {
	if v.StockNumber == nil {
		id := uuid.New()
		f.vehicles[id.String()] = v
		return repository.UpsertResult{ID: id, Inserted: true}, nil
	}

	stock := *v.StockNumber
	if f.failStock != "" && stock == f.failStock {
		return repository.UpsertResult{}, errors.New("persistence unavailable")
	}

	if id, ok := f.ids[stock]; ok {
		f.vehicles[stock] = v
		return repository.UpsertResult{ID: id, Inserted: false}, nil
	}

	id := uuid.New()
	f.ids[stock] = id
	f.vehicles[stock] = v
	return repository.UpsertResult{ID: id, Inserted: true}, nil
}

func testPipeline(store *fakeStore) *Pipeline {
	return New(store, logger.New("development"))
}

func TestRunReader_RepeatedImportUpdatesInPlace(t *testing.T) {
	csvData := "StockNumber,Make,Model\nA100,Toyota,Corolla\nA101,Mazda,CX-5\n"
	store := newFakeStore()
	pipeline := testPipeline(store)

	first, err := pipeline.RunReader(context.Background(), strings.NewReader(csvData))
	if err != nil {
		t.Fatalf("first run: unexpected error: %v", err)
	}
	if first.Inserted != 2 || first.Updated != 0 || first.Failed != 0 {
		t.Fatalf("first run: expected 2 inserted, got %+v", first)
	}

	second, err := pipeline.RunReader(context.Background(), strings.NewReader(csvData))
	if err != nil {
		t.Fatalf("second run: unexpected error: %v", err)
	}
	if second.Inserted != 0 || second.Updated != 2 || second.Failed != 0 {
		t.Fatalf("second run: expected 2 updated, got %+v", second)
	}
	if len(store.ids) != 2 {
		t.Fatalf("expected 2 stored vehicles, got %d", len(store.ids))
	}
}

func TestRunReader_UpdateIsFullReplace(t *testing.T) {
	store := newFakeStore()
	pipeline := testPipeline(store)

	withBadge := "StockNumber,Make,Badge\nA100,Toyota,GXL\n"
	if _, err := pipeline.RunReader(context.Background(), strings.NewReader(withBadge)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v := store.vehicles["A100"]; v.Badge == nil || *v.Badge != "GXL" {
		t.Fatalf("expected badge GXL after first import, got %v", v.Badge)
	}

	withoutBadge := "StockNumber,Make,Badge\nA100,Toyota,\n"
	if _, err := pipeline.RunReader(context.Background(), strings.NewReader(withoutBadge)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v := store.vehicles["A100"]; v.Badge != nil {
		t.Fatalf("expected badge cleared by full replace, got %q", *v.Badge)
	}
}

func TestRunReader_RowFailureDoesNotAbortRun(t *testing.T) {
	csvData := "StockNumber,Make,BuildDate\n" +
		"A100,Toyota,2020-01-15\n" +
		"A101,Mazda,not a date\n" +
		"A102,Ford,2021-03-02\n"
	store := newFakeStore()

	summary, err := testPipeline(store).RunReader(context.Background(), strings.NewReader(csvData))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if summary.Total != 3 || summary.Inserted != 2 || summary.Failed != 1 {
		t.Fatalf("expected 3 rows / 2 inserted / 1 failed, got %+v", summary)
	}
	if len(summary.Failures) != 1 || summary.Failures[0].RowNumber != 2 {
		t.Fatalf("expected failure on row 2, got %+v", summary.Failures)
	}
}

func TestRunReader_PersistenceFailureIsCollected(t *testing.T) {
	csvData := "StockNumber,Make\nA100,Toyota\nA101,Mazda\n"
	store := newFakeStore()
	store.failStock = "A101"

	summary, err := testPipeline(store).RunReader(context.Background(), strings.NewReader(csvData))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if summary.Inserted != 1 || summary.Failed != 1 {
		t.Fatalf("expected 1 inserted / 1 failed, got %+v", summary)
	}
	if summary.Failures[0].StockNumber != "A101" {
		t.Fatalf("expected failure for A101, got %+v", summary.Failures[0])
	}
}

func TestRunReader_EmptyFileIsFatal(t *testing.T) {
	_, err := testPipeline(newFakeStore()).RunReader(context.Background(), strings.NewReader(""))
	if err == nil {
		t.Fatal("expected error for file without header row")
	}
}

func TestRunReader_HeaderOnlyIsEmptyRun(t *testing.T) {
	summary, err := testPipeline(newFakeStore()).RunReader(context.Background(), strings.NewReader("StockNumber,Make\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if summary.Total != 0 {
		t.Fatalf("expected empty summary, got %+v", summary)
	}
}

func TestRun_MissingFileIsFatal(t *testing.T) {
	_, err := testPipeline(newFakeStore()).Run(context.Background(), "/nonexistent/feed.csv")
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}
