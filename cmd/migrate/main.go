package main

import (
	"flag"
	"fmt"
	"os"

	_ "github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/mycofresh/backend/internal/infrastructure/config"
	"github.com/mycofresh/backend/internal/infrastructure/logger"
	"github.com/mycofresh/backend/internal/infrastructure/migration"
)

func main() {
	var (
		path  = flag.String("path", "migrations", "path to migration files")
		steps = flag.Int("steps", 0, "number of migrations to apply (negative rolls back)")
		force = flag.Int("force", -1, "force set migration version (repairs dirty state)")
	)
	flag.Parse()

	command := flag.Arg(0)
	if command == "" {
		command = "up"
	}

	if err := run(command, *path, *steps, *force); err != nil {
		fmt.Fprintf(os.Stderr, "migrate error: %v\n", err)
		os.Exit(1)
	}
}

func run(command, path string, steps, force int) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	zapLogger, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = logger.Sync(zapLogger) }()

	m, err := migration.NewFromURL(cfg.Database.DSN(), path, zapLogger)
	if err != nil {
		return err
	}
	defer func() { _ = m.Close() }()

	switch command {
	case "up":
		return m.Up()
	case "down":
		return m.Down()
	case "steps":
		if steps == 0 {
			return fmt.Errorf("steps requires a non-zero -steps value")
		}
		return m.Steps(steps)
	case "version":
		version, dirty, err := m.Version()
		if err != nil {
			return err
		}
		zapLogger.Info("Current migration version",
			zap.Uint("version", version),
			zap.Bool("dirty", dirty),
		)
		return nil
	case "force":
		if force < 0 {
			return fmt.Errorf("force requires a non-negative -force value")
		}
		return m.Force(force)
	default:
		return fmt.Errorf("unknown command %q (want up, down, steps, version or force)", command)
	}
}
