package sightings

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/animalspotter/internal/common"
	"github.com/dmitrijs2005/animalspotter/internal/server/models"
	"github.com/stretchr/testify/require"
)

const (
	listQuery   = `(?s)^SELECT\s+name\s+FROM\s+sightings\s+ORDER\s+BY\s+id\s*$`
	getQuery    = `(?s)^SELECT\s+id,\s*name,\s*observed_at,\s*latitude,\s*longitude,\s*description,\s*photo_key\s+FROM\s+sightings\s+WHERE\s+name\s*=\s*\$1\s*$`
	insertQuery = `(?s)^INSERT\s+INTO\s+sightings\s*\(name,\s*observed_at,\s*latitude,\s*longitude,\s*description,\s*photo_key\)\s*VALUES\s*\(\$1,\s*\$2,\s*\$3,\s*\$4,\s*\$5,\s*\$6\)\s*ON\s+CONFLICT\s*\(name\)\s*DO\s+NOTHING\s*$`
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewPostgresRepository(db), mock
}

func TestListNames_Ordered(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(listQuery).
		WillReturnRows(sqlmock.NewRows([]string{"name"}).AddRow("fox").AddRow("owl"))

	names, err := repo.ListNames(context.Background())
	require.NoError(t, err)
	require.Equal(t, []string{"fox", "owl"}, names)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListNames_EmptyIsNotNil(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(listQuery).WillReturnRows(sqlmock.NewRows([]string{"name"}))

	names, err := repo.ListNames(context.Background())
	require.NoError(t, err)
	require.NotNil(t, names)
	require.Empty(t, names)
}

func TestListNames_Errors(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	mock.ExpectQuery(listQuery).WillReturnError(errors.New("db down"))
	_, err := repo.ListNames(context.Background())
	require.ErrorContains(t, err, "db error: db down")

	repo, mock = newRepoWithMock(t)
	mock.ExpectQuery(listQuery).WillReturnRows(
		sqlmock.NewRows([]string{"name"}).AddRow("fox").RowError(0, errors.New("row broke")))
	_, err = repo.ListNames(context.Background())
	require.ErrorContains(t, err, "row broke")
}

func TestGetByName_Found(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	seen := time.Date(2019, 3, 4, 17, 5, 0, 0, time.UTC)
	mock.ExpectQuery(getQuery).WithArgs("red fox").WillReturnRows(
		sqlmock.NewRows([]string{"id", "name", "observed_at", "latitude", "longitude", "description", "photo_key"}).
			AddRow(int64(3), "red fox", seen, 51.5, -0.12, "crossing the road", "fox.jpg"))

	got, err := repo.GetByName(context.Background(), "red fox")
	require.NoError(t, err)
	require.Equal(t, &models.Sighting{
		ID: 3, Name: "red fox", ObservedAt: seen, Latitude: 51.5, Longitude: -0.12,
		Description: "crossing the road", PhotoKey: "fox.jpg",
	}, got)
}

func TestGetByName_NotFound(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(getQuery).WithArgs("dodo").WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByName(context.Background(), "dodo")
	require.ErrorIs(t, err, common.ErrorNotFound)
}

func TestAdd(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	seen := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	mock.ExpectExec(insertQuery).
		WithArgs("owl", seen, 1.0, 2.0, "hooting", "owl.png").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Add(context.Background(), &models.Sighting{
		Name: "owl", ObservedAt: seen, Latitude: 1, Longitude: 2, Description: "hooting", PhotoKey: "owl.png",
	})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAdd_DBError(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectExec(insertQuery).WillReturnError(errors.New("disk full"))

	err := repo.Add(context.Background(), &models.Sighting{Name: "owl"})
	require.ErrorContains(t, err, "db error: disk full")
}
