package factory

import (
	"fmt"
	"os"

	"github.com/speechmetrics/commscore/internal/rubric/pg"
)

type Source string

const (
	SourceDefault  Source = "default"
	SourceFile     Source = "file"
	SourcePostgres Source = "postgres"
)

type Config struct {
	Source Source
	File   string
	Pg     *pg.SourceConfig
}

// LoadEnv resolves the rubric source from RUBRIC_SOURCE. When that is unset,
// a set RUBRIC_FILE implies the file source and everything else falls back to
// the built-in default rubric.
func LoadEnv() (*Config, error) {
	source := Source(os.Getenv("RUBRIC_SOURCE"))
	file := os.Getenv("RUBRIC_FILE")

	if source == "" {
		if file != "" {
			source = SourceFile
		} else {
			source = SourceDefault
		}
	}

	switch source {
	case SourceDefault:
		return &Config{Source: SourceDefault}, nil

	case SourceFile:
		if file == "" {
			return nil, fmt.Errorf("RUBRIC_SOURCE=file requires RUBRIC_FILE to be set")
		}
		return &Config{Source: SourceFile, File: file}, nil

	case SourcePostgres:
		connStr := os.Getenv("RUBRIC_PG_CONN")
		if connStr == "" {
			return nil, fmt.Errorf("RUBRIC_SOURCE=postgres requires RUBRIC_PG_CONN to be set")
		}
		return &Config{
			Source: SourcePostgres,
			Pg: &pg.SourceConfig{
				ConnStr: connStr,
				Table:   os.Getenv("RUBRIC_PG_TABLE"),
			},
		}, nil

	default:
		return nil, fmt.Errorf(
			"invalid RUBRIC_SOURCE value: %s, expected one of %v",
			source,
			[]Source{SourceDefault, SourceFile, SourcePostgres},
		)
	}
}
