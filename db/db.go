package db

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"

	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"
	"go.uber.org/zap"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

type Command string

const (
	Up     Command = "up"
	Down   Command = "down"
	Status Command = "status"
	Reset  Command = "reset"
)

var ErrUnknownCommand = errors.New("unknown migration command")

func ParseCommand(s string) (Command, error) {
	switch c := Command(s); c {
	case Up, Down, Status, Reset:
		return c, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownCommand, s)
	}
}

// SetupPostgres brings the schema at url up to date.
func SetupPostgres(ctx context.Context, url string, logger *zap.Logger) error {
	return Migrate(ctx, url, Up, logger)
}

func Migrate(ctx context.Context, url string, command Command, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}

	conn, err := sql.Open("postgres", url)
	if err != nil {
		return fmt.Errorf("can not open migration connection: %w", err)
	}
	defer conn.Close()

	provider, err := newProvider(conn)
	if err != nil {
		return err
	}

	switch command {
	case Up:
		results, err := provider.Up(ctx)
		logResults(logger, results)
		return err
	case Down:
		result, err := provider.Down(ctx)
		if result != nil {
			logResults(logger, []*goose.MigrationResult{result})
		}
		return err
	case Reset:
		results, err := provider.DownTo(ctx, 0)
		logResults(logger, results)
		if err != nil {
			return err
		}
		results, err = provider.Up(ctx)
		logResults(logger, results)
		return err
	case Status:
		statuses, err := provider.Status(ctx)
		if err != nil {
			return err
		}
		for _, s := range statuses {
			logger.Info("migration status",
				zap.Int64("version", s.Source.Version),
				zap.String("path", s.Source.Path),
				zap.String("state", string(s.State)),
				zap.Time("applied_at", s.AppliedAt))
		}
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownCommand, command)
	}
}

func newProvider(conn *sql.DB) (*goose.Provider, error) {
	migrations, err := fs.Sub(embedMigrations, "migrations")
	if err != nil {
		return nil, err
	}

	provider, err := goose.NewProvider(goose.DialectPostgres, conn, migrations)
	if err != nil {
		return nil, fmt.Errorf("can not create migration provider: %w", err)
	}

	return provider, nil
}

func logResults(logger *zap.Logger, results []*goose.MigrationResult) {
	for _, r := range results {
		if r.Error != nil {
			logger.Error("migration failed",
				zap.Int64("version", r.Source.Version),
				zap.String("direction", r.Direction),
				zap.Error(r.Error))
			continue
		}
		logger.Info("migration applied",
			zap.Int64("version", r.Source.Version),
			zap.String("direction", r.Direction),
			zap.Duration("duration", r.Duration))
	}
}
