package pg

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/speechmetrics/commscore/internal/apperr"
	"github.com/speechmetrics/commscore/internal/rubric"
)

const DefaultTable = "rubric_criteria"

type SourceConfig struct {
	ConnStr string
	Table   string
}

// Source loads a rubric from a Postgres table with columns name, description,
// keywords (text[]), weight, min_words, max_words and position. Rows come
// back in position order so the rubric keeps its declared criterion order.
type Source struct {
	pool  *pgxpool.Pool
	table string
}

func NewSource(ctx context.Context, cfg SourceConfig) (*Source, error) {
	pool, err := pgxpool.New(ctx, cfg.ConnStr)
	if err != nil {
		return nil, apperr.NewRubricWrap("failed to create rubric connection pool", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, apperr.NewRubricWrap("failed to ping rubric database", err)
	}

	table := cfg.Table
	if table == "" {
		table = DefaultTable
	}

	return &Source{pool: pool, table: table}, nil
}

func (s *Source) Close() {
	s.pool.Close()
}

func (s *Source) Load(ctx context.Context) (rubric.Rubric, error) {
	slog.Info("Loading rubric from database", "table", s.table)

	query := fmt.Sprintf(
		`SELECT name, description, keywords, weight, min_words, max_words FROM %s ORDER BY position`,
		pgx.Identifier{s.table}.Sanitize(),
	)

	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return rubric.Rubric{}, apperr.NewRubricWrap("failed to query rubric table", err)
	}
	defer rows.Close()

	var criteria []rubric.Criterion
	for rows.Next() {
		var (
			name, description  string
			keywords           []string
			weight             float64
			minWords, maxWords *int32
		)
		if err := rows.Scan(&name, &description, &keywords, &weight, &minWords, &maxWords); err != nil {
			return rubric.Rubric{}, apperr.NewRubricWrap("failed to scan rubric row", err)
		}

		criteria = append(criteria, rowToCriterion(name, description, keywords, weight, minWords, maxWords))
	}
	if err := rows.Err(); err != nil {
		return rubric.Rubric{}, apperr.NewRubricWrap("error iterating rubric rows", err)
	}

	rb := rubric.Rubric{Criteria: criteria}
	if err := rb.Validate(); err != nil {
		return rubric.Rubric{}, err
	}

	return rb, nil
}

// rowToCriterion maps one table row onto a criterion. NULL word bounds fall
// back to the same defaults blank file cells get.
func rowToCriterion(name, description string, keywords []string, weight float64, minWords, maxWords *int32) rubric.Criterion {
	c := rubric.Criterion{
		Name:        name,
		Description: description,
		Keywords:    keywords,
		Weight:      weight,
		MinWords:    rubric.DefaultMinWords,
		MaxWords:    rubric.DefaultMaxWords,
	}
	if minWords != nil {
		c.MinWords = int(*minWords)
	}
	if maxWords != nil {
		c.MaxWords = int(*maxWords)
	}

	return c
}
