package importer

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"autohaus_backend/internal/vehicles/repository"
	"autohaus_backend/platform/logger"
)

// Outcome classifies the result of one import row.
type Outcome string

const (
	OutcomeInserted Outcome = "inserted"
	OutcomeUpdated  Outcome = "updated"
	OutcomeFailed   Outcome = "failed"
)

// RowResult is the per-row outcome collected by the pipeline.
type RowResult struct {
	RowNumber   int
	Outcome     Outcome
	StockNumber string
	Err         error
}

// Summary is the operator-facing result of a whole import run.
type Summary struct {
	Total    int
	Inserted int
	Updated  int
	Failed   int
	Failures []RowResult
}

// Upserter persists one mapped vehicle, keyed by stock number.
type Upserter interface {
	Upsert(ctx context.Context, v repository.Vehicle) (repository.UpsertResult, error)
}

// Pipeline drives a bulk inventory import end-to-end from a feed file.
// Rows are processed strictly in file order; later rows sharing a stock
// number overwrite earlier ones.
type Pipeline struct {
	store Upserter
	log   *logger.Logger
}

// New creates an import pipeline writing to the given store.
func New(store Upserter, log *logger.Logger) *Pipeline {
	return &Pipeline{store: store, log: log}
}

// Run imports the file at path. A non-nil error means the run never
// started (missing file, unreadable, no header); row-level failures are
// reported in the summary instead.
func (p *Pipeline) Run(ctx context.Context, path string) (Summary, error) {
	file, err := os.Open(path)
	if err != nil {
		return Summary{}, fmt.Errorf("open import file: %w", err)
	}
	defer file.Close()

	return p.RunReader(ctx, file)
}

// RunReader imports CSV data from r. The first record must be a header
// naming the feed columns; unrecognized columns are carried through and
// simply ignored by the mapper.
func (p *Pipeline) RunReader(ctx context.Context, r io.Reader) (Summary, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return Summary{}, fmt.Errorf("import file has no header row")
		}
		return Summary{}, fmt.Errorf("read header: %w", err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	var summary Summary
	rowNumber := 0
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		rowNumber++
		summary.Total++

		if err != nil {
			p.record(&summary, RowResult{RowNumber: rowNumber, Outcome: OutcomeFailed, Err: err})
			continue
		}

		row := make(Row, len(header))
		for i, column := range header {
			if i < len(record) {
				row[column] = record[i]
			}
		}

		p.record(&summary, p.processRow(ctx, rowNumber, row))
	}

	return summary, nil
}

func (p *Pipeline) processRow(ctx context.Context, rowNumber int, row Row) RowResult {
	result := RowResult{RowNumber: rowNumber, StockNumber: row["StockNumber"]}

	vehicle, err := MapRow(row)
	if err != nil {
		result.Outcome = OutcomeFailed
		result.Err = err
		return result
	}

	upserted, err := p.store.Upsert(ctx, vehicle)
	if err != nil {
		result.Outcome = OutcomeFailed
		result.Err = err
		return result
	}

	if upserted.Inserted {
		result.Outcome = OutcomeInserted
	} else {
		result.Outcome = OutcomeUpdated
	}
	return result
}

func (p *Pipeline) record(summary *Summary, result RowResult) {
	switch result.Outcome {
	case OutcomeInserted:
		summary.Inserted++
		p.log.ImportRow(result.RowNumber, string(result.Outcome), result.StockNumber)
	case OutcomeUpdated:
		summary.Updated++
		p.log.ImportRow(result.RowNumber, string(result.Outcome), result.StockNumber)
	case OutcomeFailed:
		summary.Failed++
		summary.Failures = append(summary.Failures, result)
		p.log.ImportRowFailed(result.RowNumber, result.Err)
	}
}
