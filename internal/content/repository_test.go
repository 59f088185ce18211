package content

import (
	"context"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)

func newMockRepo(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return NewRepository(mock), mock
}

func TestListPackagesPublicFiltersActive(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`SELECT .* FROM packages WHERE is_active`).
		WillReturnRows(pgxmock.NewRows([]string{
			"id", "title", "description", "image", "duration", "price", "category",
			"featured", "highlights", "inclusions", "is_active", "created_at", "updated_at",
		}).AddRow("p1", "Kodaikanal Getaway", "Two days in the hills", "", "2D/1N",
			"₹8999", "hill-station", true, []string{"Coakers Walk"}, []string{"Fuel", "Driver"},
			true, now, now))

	items, err := repo.ListPackages(context.Background(), true)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Kodaikanal Getaway", items[0].Title)
	assert.Equal(t, []string{"Fuel", "Driver"}, items[0].Inclusions)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreatePackageAssignsID(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`INSERT INTO packages`).
		WillReturnRows(pgxmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))

	p, err := repo.CreatePackage(context.Background(), &Package{Title: "Rameswaram Day Trip", IsActive: true})
	require.NoError(t, err)
	assert.NotEmpty(t, p.ID)
	assert.Equal(t, now, p.CreatedAt)
}

func TestUpdateTariffNotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`UPDATE tariffs`).
		WillReturnRows(pgxmock.NewRows([]string{"created_at", "updated_at"}))

	_, err := repo.UpdateTariff(context.Background(), &Tariff{ID: "missing", VehicleName: "Etios"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListTestimonialsPublishedOnly(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`SELECT .* FROM testimonials WHERE status = 'published'`).
		WillReturnRows(pgxmock.NewRows([]string{
			"id", "name", "location", "avatar", "content", "rating",
			"service_type", "status", "created_at", "updated_at",
		}).AddRow("t1", "Ravi", "Madurai", "", "Great service", 5,
			"Airport Taxi", TestimonialPublished, now, now))

	items, err := repo.ListTestimonials(context.Background(), true)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 5, items[0].Rating)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateTestimonialDefaultsToPending(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`INSERT INTO testimonials`).
		WillReturnRows(pgxmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))

	tm, err := repo.CreateTestimonial(context.Background(), &Testimonial{Name: "Ravi", Content: "Great", Rating: 5})
	require.NoError(t, err)
	assert.Equal(t, TestimonialPending, tm.Status)
}

func TestDeleteBannerNotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec(`DELETE FROM banners`).
		WithArgs("missing").
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	err := repo.DeleteBanner(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeletePackage(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec(`DELETE FROM packages`).
		WithArgs("p1").
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	require.NoError(t, repo.DeletePackage(context.Background(), "p1"))
}
