package vehicletypes

import (
	"context"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)

func typeRows(names ...string) *pgxmock.Rows {
	rows := pgxmock.NewRows([]string{"id", "name", "created_at", "updated_at"})
	for i, name := range names {
		rows.AddRow(string(rune('a'+i)), name, now, now)
	}
	return rows
}

func TestListReturnsExistingTypes(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery("SELECT id, name, created_at, updated_at").
		WillReturnRows(typeRows("Luxury", "SUV", "Sedan"))

	repo := NewRepository(mock)
	types, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, types, 3)
	assert.Equal(t, "Luxury", types[0].Name)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListSeedsDefaultsWhenEmpty(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery("SELECT id, name, created_at, updated_at").
		WillReturnRows(typeRows())
	for _, name := range []string{"Sedan", "SUV", "Premium", "Luxury", "Tempo"} {
		mock.ExpectExec("INSERT INTO vehicle_types").
			WithArgs(pgxmock.AnyArg(), name).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
	}
	mock.ExpectQuery("SELECT id, name, created_at, updated_at").
		WillReturnRows(typeRows("Luxury", "Premium", "SUV", "Sedan", "Tempo"))

	repo := NewRepository(mock)
	types, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, types, 5)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateRejectsDuplicateName(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery("SELECT EXISTS").
		WithArgs("sedan", "").
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))

	repo := NewRepository(mock)
	_, err = repo.Create(context.Background(), " sedan ")
	assert.ErrorIs(t, err, ErrDuplicateName)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateInsertsTrimmedName(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery("SELECT EXISTS").
		WithArgs("Mini Bus", "").
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectQuery("INSERT INTO vehicle_types").
		WithArgs(pgxmock.AnyArg(), "Mini Bus").
		WillReturnRows(pgxmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))

	repo := NewRepository(mock)
	vt, err := repo.Create(context.Background(), "  Mini Bus  ")
	require.NoError(t, err)
	assert.Equal(t, "Mini Bus", vt.Name)
	assert.NotEmpty(t, vt.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateMissingRow(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery("SELECT EXISTS").
		WithArgs("Van", "vt-1").
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectQuery("UPDATE vehicle_types").
		WithArgs("vt-1", "Van").
		WillReturnRows(pgxmock.NewRows([]string{"created_at", "updated_at"}))

	repo := NewRepository(mock)
	_, err = repo.Update(context.Background(), "vt-1", "Van")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteReturnsRemovedRecord(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery("DELETE FROM vehicle_types").
		WithArgs("vt-1").
		WillReturnRows(pgxmock.NewRows([]string{"id", "name", "created_at", "updated_at"}).
			AddRow("vt-1", "Tempo", now, now))

	repo := NewRepository(mock)
	vt, err := repo.Delete(context.Background(), "vt-1")
	require.NoError(t, err)
	assert.Equal(t, "Tempo", vt.Name)
}

func TestDeleteMissingRow(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery("DELETE FROM vehicle_types").
		WithArgs("nope").
		WillReturnRows(pgxmock.NewRows([]string{"id", "name", "created_at", "updated_at"}))

	repo := NewRepository(mock)
	_, err = repo.Delete(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}
