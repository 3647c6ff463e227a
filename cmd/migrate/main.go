// Command migrate brings the database schema in line with migrations/ using Atlas.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"guidely/internal/pkg/config"
	"guidely/internal/pkg/errs"

	"ariga.io/atlas-go-sdk/atlasexec"
	"github.com/joho/godotenv"
)

func main() {
	var (
		dir     = flag.String("dir", "migrations", "directory holding the schema files")
		devURL  = flag.String("dev-url", "docker://postgres/17/dev", "scratch database Atlas diffs against")
		atlas   = flag.String("atlas", "atlas", "path to the atlas binary")
		dryRun  = flag.Bool("dry-run", false, "print the plan without applying it")
		timeout = flag.Duration("timeout", 2*time.Minute, "overall deadline")
	)
	flag.Parse()

	_ = godotenv.Load()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	if err := run(ctx, logger, *dir, *devURL, *atlas, *dryRun); err != nil {
		logger.Error("migration failed", "error", err, "stack", errs.ExtractStackLines(err, 10))
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *slog.Logger, dir, devURL, atlasPath string, dryRun bool) error {
	cfg, err := config.LoadDBConfig()
	if err != nil {
		return err
	}

	absDir, err := filepath.Abs(dir)
	if err != nil {
		return errs.Wrap(err, "resolve migrations dir")
	}

	client, err := atlasexec.NewClient(absDir, atlasPath)
	if err != nil {
		return errs.Wrap(err, "init atlas client")
	}

	res, err := client.SchemaApply(ctx, &atlasexec.SchemaApplyParams{
		URL:         cfg.BuildDSN(),
		To:          "file://" + absDir,
		DevURL:      devURL,
		DryRun:      dryRun,
		AutoApprove: true,
	})
	if err != nil {
		return errs.Wrap(err, "atlas schema apply")
	}

	if dryRun {
		logger.Info("planned schema changes", "statements", res.Changes.Pending)
		return nil
	}
	logger.Info("schema applied", "statements", len(res.Changes.Applied), "database", cfg.DBName)
	return nil
}
