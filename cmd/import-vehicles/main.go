// Command import-vehicles loads a stock feed CSV into the vehicles table.
//
// Usage: import-vehicles <path-to-csv>
//
// Rows are matched on stock number: existing listings are fully replaced,
// unknown stock numbers become new listings. A bad row is reported and
// skipped; only an unreadable file or a missing header row fails the run.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"autohaus_backend/internal/vehicles/importer"
	"autohaus_backend/internal/vehicles/repository"
	"autohaus_backend/platform/config"
	"autohaus_backend/platform/db"
	"autohaus_backend/platform/logger"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: import-vehicles <path-to-csv>")
		os.Exit(1)
	}
	path := os.Args[1]

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to load config:", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Env)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := db.NewPool(ctx, cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to connect to database:", err)
		os.Exit(1)
	}
	defer pool.Close()

	repo := repository.New(pool)
	pipeline := importer.New(repo, log)

	fmt.Println("importing", path)
	summary, err := pipeline.Run(ctx, path)
	if err != nil {
		fmt.Fprintln(os.Stderr, "import failed:", err)
		os.Exit(1)
	}

	fmt.Printf("processed %d rows: %d inserted, %d updated, %d failed\n",
		summary.Total, summary.Inserted, summary.Updated, summary.Failed)
	for _, failure := range summary.Failures {
		fmt.Fprintf(os.Stderr, "row %d: %v\n", failure.RowNumber, failure.Err)
	}
}
