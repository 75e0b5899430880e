package repomanager

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/animalspotter/internal/dbx"
	"github.com/dmitrijs2005/animalspotter/internal/server/migrations"
	"github.com/dmitrijs2005/animalspotter/internal/server/models"
	"github.com/dmitrijs2005/animalspotter/internal/server/repositories/sightings"
	"github.com/dmitrijs2005/animalspotter/internal/server/repositories/users"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

// sqlOpen is a seam for testing sql.Open.
var sqlOpen = sql.Open

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// PostgresRepositoryManager vends PostgreSQL-backed repository implementations
// and exposes a schema migration hook.
type PostgresRepositoryManager struct {
	db *sql.DB
}

// NewPostgresRepositoryManager wraps an already opened database.
func NewPostgresRepositoryManager(db *sql.DB) *PostgresRepositoryManager {
	return &PostgresRepositoryManager{db: db}
}

// OpenPostgres opens dsn with the pgx driver and checks the connection.
func OpenPostgres(ctx context.Context, dsn string) (*PostgresRepositoryManager, error) {
	db, err := sqlOpen("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("db ping error: %w", err)
	}
	return NewPostgresRepositoryManager(db), nil
}

// RunMigrations sets up goose with the embedded migrations and runs them
// against the managed connection.
func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("pgx"); err != nil {
		return err
	}
	if err := gooseUpContext(ctx, m.db, "."); err != nil {
		return err
	}
	return nil
}

// Seed inserts items in one transaction. Names already present are kept.
func (m *PostgresRepositoryManager) Seed(ctx context.Context, items []models.Sighting) error {
	return dbx.WithTx(ctx, m.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := sightings.NewPostgresRepository(tx)
		for i := range items {
			if err := repo.Add(ctx, &items[i]); err != nil {
				return err
			}
		}
		return nil
	})
}

// Users returns a users.Repository bound to the managed connection.
func (m *PostgresRepositoryManager) Users() users.Repository {
	return users.NewPostgresRepository(m.db)
}

// Sightings returns a sightings.Repository bound to the managed connection.
func (m *PostgresRepositoryManager) Sightings() sightings.Repository {
	return sightings.NewPostgresRepository(m.db)
}

func (m *PostgresRepositoryManager) Close() error {
	return m.db.Close()
}
