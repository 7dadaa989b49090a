package store

import (
	"context"
	"errors"
	"fmt"

	"voiceorder-server/internal/observability"

	"github.com/jackc/pgx/v5"
	_ "github.com/jackc/pgx/v5/stdlib" // Import the pgx stdlib for sqlx
	"github.com/jmoiron/sqlx"
)

var ErrNotFound = errors.New("not found")

// Containers names the document tables. Each holds one JSON document per row,
// keyed by id and a partition key.
type Containers struct {
	Menu   string
	Orders string
}

type Store struct {
	db         *sqlx.DB
	logger     *observability.Logger
	menuTable  string
	orderTable string
}

func New(connectionString string, containers Containers, logger *observability.Logger) (Store, error) {
	db, err := sqlx.Open("pgx", connectionString)
	if err != nil {
		return Store{}, fmt.Errorf("failed to open database: %w", err)
	}
	return NewWithDB(db, containers, logger), nil
}

// NewWithDB builds a Store over an existing connection pool.
func NewWithDB(db *sqlx.DB, containers Containers, logger *observability.Logger) Store {
	return Store{
		db:         db,
		logger:     logger,
		menuTable:  pgx.Identifier{containers.Menu}.Sanitize(),
		orderTable: pgx.Identifier{containers.Orders}.Sanitize(),
	}
}

// Ping checks that the database answers; the health route reports it.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *Store) Close() error {
	return s.db.Close()
}

const sqlCreateContainer = `
CREATE TABLE IF NOT EXISTS %s (
	id            TEXT PRIMARY KEY,
	partition_key TEXT NOT NULL,
	document      JSONB NOT NULL,
	created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`

// EnsureContainers creates the document tables when they do not exist yet.
func (s *Store) EnsureContainers(ctx context.Context) error {
	for _, table := range []string{s.menuTable, s.orderTable} {
		if _, err := s.db.ExecContext(ctx, fmt.Sprintf(sqlCreateContainer, table)); err != nil {
			s.logger.Error(ctx, "failed to create container", err)
			return fmt.Errorf("failed to create container %s: %w", table, err)
		}
	}
	return nil
}
