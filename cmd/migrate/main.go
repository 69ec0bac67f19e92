package main

import (
	"errors"
	"flag"
	"os"

	"github.com/ferdian3456/jobboard/internal/config"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	zapLog "go.uber.org/zap"
)

func main() {
	path := flag.String("path", "db/migrations", "directory holding the migration files")
	steps := flag.Int("steps", 0, "number of migrations to roll back with down, 0 means all")
	flag.Parse()

	zap := config.NewZap(os.Getenv("LOG_LEVEL"))
	defer func() {
		_ = zap.Sync()
	}()

	koanf := config.NewKoanf(zap)

	m, err := migrate.New("file://"+*path, koanf.String("POSTGRES_URL"))
	if err != nil {
		zap.Fatal("failed to create migrate instance", zapLog.Error(err))
	}
	defer m.Close()

	command := flag.Arg(0)
	switch command {
	case "", "up":
		err = m.Up()
	case "down":
		if *steps > 0 {
			err = m.Steps(-*steps)
		} else {
			err = m.Down()
		}
	case "version":
		version, dirty, errVersion := m.Version()
		if errVersion != nil && !errors.Is(errVersion, migrate.ErrNilVersion) {
			zap.Fatal("failed to read migration version", zapLog.Error(errVersion))
		}
		zap.Info("current migration version", zapLog.Uint("version", version), zapLog.Bool("dirty", dirty))
		return
	default:
		zap.Fatal("unknown migrate command, expected up, down or version", zapLog.String("command", command))
	}

	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		zap.Fatal("migration failed", zapLog.String("command", command), zapLog.Error(err))
	}

	zap.Info("migration finished", zapLog.String("command", command))
}
