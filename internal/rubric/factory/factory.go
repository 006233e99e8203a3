package factory

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/speechmetrics/commscore/internal/rubric"
	"github.com/speechmetrics/commscore/internal/rubric/pg"
)

// Load builds the rubric named by cfg. The postgres source opens a pool just
// long enough to read the table; nothing holds a database connection after
// startup.
func Load(ctx context.Context, cfg *Config) (rubric.Rubric, error) {
	switch cfg.Source {
	case SourceDefault:
		slog.Info("Using built-in default rubric")
		return rubric.Default(), nil

	case SourceFile:
		slog.Info("Loading rubric from file", "path", cfg.File)
		return rubric.LoadFile(cfg.File)

	case SourcePostgres:
		src, err := pg.NewSource(ctx, *cfg.Pg)
		if err != nil {
			return rubric.Rubric{}, err
		}
		defer src.Close()

		return src.Load(ctx)

	default:
		return rubric.Rubric{}, fmt.Errorf("unsupported rubric source: %s", cfg.Source)
	}
}
