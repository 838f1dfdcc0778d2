// Copyright (c) 2026 Telugucine. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command audit scans the movie catalogue once and writes a duplicate-name
// report as JSON to stdout. Logs go to stderr so the output can be piped.
//
// Usage:
//
//	DATABASE_URL=postgres://... audit > report.json
//
// Thresholds come from the same CREDIT_* variables as the API server.
package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/taibuivan/telugucine/internal/core/audit"
	"github.com/taibuivan/telugucine/internal/core/movie"
	"github.com/taibuivan/telugucine/internal/platform/config"
	pgstore "github.com/taibuivan/telugucine/internal/platform/postgres"
)

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo})).
		With(slog.String("app", "telugucine-audit"))

	cfg, err := config.LoadTool()
	must(log, err, "load configuration")

	if cfg.Debug {
		log = slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})).
			With(slog.String("app", "telugucine-audit"))
	}
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := pgstore.NewPool(ctx, cfg.DatabaseURL, log)
	must(log, err, "connect to postgres")
	defer pool.Close()

	options := audit.DefaultOptions()
	options.BatchSize = cfg.Credit.AuditBatchSize
	options.Similarity = cfg.Credit.AuditSimilarity

	report, err := audit.NewService(movie.NewPostgresRepository(pool), options, log).Run(ctx)
	if err != nil {
		pool.Close()
		must(log, err, "run audit")
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(report); err != nil {
		pool.Close()
		must(log, err, "write report")
	}
}

// must logs a structured fatal error and terminates the process if err is non-nil.
func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("audit_failure",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
