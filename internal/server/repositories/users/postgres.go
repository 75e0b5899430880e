package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/animalspotter/internal/common"
	"github.com/dmitrijs2005/animalspotter/internal/dbx"
	"github.com/dmitrijs2005/animalspotter/internal/server/models"
	"github.com/jackc/pgx/v5/pgconn"
)

// uniqueViolation is the PostgreSQL SQLSTATE for a unique constraint hit.
const uniqueViolation = "23505"

const (
	insertUserSQL = `INSERT INTO users (username, salt, verifier) VALUES ($1, $2, $3) RETURNING id`
	selectUserSQL = `SELECT id, salt, verifier FROM users WHERE username = $1`
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create stores user and fills in the id generated by the database.
func (r *PostgresRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	row := r.db.QueryRowContext(ctx, insertUserSQL, user.UserName, user.Salt, user.Verifier)
	if err := row.Scan(&user.ID); err != nil {
		if isUniqueViolation(err) {
			return nil, common.ErrorAlreadyExists
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return user, nil
}

func (r *PostgresRepository) GetByUserName(ctx context.Context, userName string) (*models.User, error) {
	user := &models.User{UserName: userName}

	row := r.db.QueryRowContext(ctx, selectUserSQL, userName)
	switch err := row.Scan(&user.ID, &user.Salt, &user.Verifier); {
	case errors.Is(err, sql.ErrNoRows):
		return nil, common.ErrorNotFound
	case err != nil:
		return nil, fmt.Errorf("db error: %w", err)
	}

	return user, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
