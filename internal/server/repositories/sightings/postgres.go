package sightings

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/animalspotter/internal/common"
	"github.com/dmitrijs2005/animalspotter/internal/dbx"
	"github.com/dmitrijs2005/animalspotter/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) ListNames(ctx context.Context) ([]string, error) {
	query := `SELECT name FROM sightings ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	names := make([]string, 0)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return names, nil
}

func (r *PostgresRepository) GetByName(ctx context.Context, name string) (*models.Sighting, error) {
	query :=
		`SELECT id, name, observed_at, latitude, longitude, description, photo_key
		 FROM sightings
		 WHERE name = $1
		 `

	s := &models.Sighting{}
	err := r.db.QueryRowContext(ctx, query, name).Scan(
		&s.ID, &s.Name, &s.ObservedAt, &s.Latitude, &s.Longitude, &s.Description, &s.PhotoKey)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return s, nil
}

func (r *PostgresRepository) Add(ctx context.Context, s *models.Sighting) error {
	query :=
		`INSERT INTO sightings (name, observed_at, latitude, longitude, description, photo_key)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 ON CONFLICT (name) DO NOTHING
		 `

	_, err := r.db.ExecContext(ctx, query,
		s.Name, s.ObservedAt, s.Latitude, s.Longitude, s.Description, s.PhotoKey)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}
