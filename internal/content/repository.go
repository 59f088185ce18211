package content

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type contentDB interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// Repository persists the marketing content records in Postgres.
type Repository struct {
	db contentDB
}

// NewRepository creates a content repository.
func NewRepository(db contentDB) *Repository {
	if db == nil {
		panic("content: pgx pool required")
	}
	return &Repository{db: db}
}

const packageColumns = `id, title, description, image, duration, price, category,
	featured, highlights, inclusions, is_active, created_at, updated_at`

func scanPackage(row pgx.Row) (*Package, error) {
	var p Package
	err := row.Scan(&p.ID, &p.Title, &p.Description, &p.Image, &p.Duration,
		&p.Price, &p.Category, &p.Featured, &p.Highlights, &p.Inclusions,
		&p.IsActive, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// ListPackages returns packages, restricted to active ones for the public
// site when onlyActive is set.
func (r *Repository) ListPackages(ctx context.Context, onlyActive bool) ([]Package, error) {
	query := `SELECT ` + packageColumns + ` FROM packages`
	if onlyActive {
		query += ` WHERE is_active`
	}
	query += ` ORDER BY featured DESC, created_at DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("content: list packages: %w", err)
	}
	defer rows.Close()

	var out []Package
	for rows.Next() {
		p, err := scanPackage(rows)
		if err != nil {
			return nil, fmt.Errorf("content: scan package: %w", err)
		}
		out = append(out, *p)
	}
	return out, rows.Err()
}

// CreatePackage inserts a package record.
func (r *Repository) CreatePackage(ctx context.Context, p *Package) (*Package, error) {
	p.ID = uuid.New().String()
	err := r.db.QueryRow(ctx, `
		INSERT INTO packages (id, title, description, image, duration, price,
			category, featured, highlights, inclusions, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING created_at, updated_at
	`, p.ID, p.Title, p.Description, p.Image, p.Duration, p.Price, p.Category,
		p.Featured, p.Highlights, p.Inclusions, p.IsActive,
	).Scan(&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("content: create package: %w", err)
	}
	return p, nil
}

// UpdatePackage rewrites a package record.
func (r *Repository) UpdatePackage(ctx context.Context, p *Package) (*Package, error) {
	err := r.db.QueryRow(ctx, `
		UPDATE packages
		SET title = $2, description = $3, image = $4, duration = $5, price = $6,
			category = $7, featured = $8, highlights = $9, inclusions = $10,
			is_active = $11, updated_at = now()
		WHERE id = $1
		RETURNING created_at, updated_at
	`, p.ID, p.Title, p.Description, p.Image, p.Duration, p.Price, p.Category,
		p.Featured, p.Highlights, p.Inclusions, p.IsActive,
	).Scan(&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("content: update package: %w", err)
	}
	return p, nil
}

// DeletePackage removes a package record.
func (r *Repository) DeletePackage(ctx context.Context, id string) error {
	return r.deleteRow(ctx, "packages", id)
}

const tariffColumns = `id, vehicle_type, vehicle_name, description, one_way_rate,
	round_trip_rate, driver_allowance, minimum_km_one_way, minimum_km_round_trip,
	image, featured, additional_charges, slug, is_active, created_at, updated_at`

func scanTariff(row pgx.Row) (*Tariff, error) {
	var t Tariff
	err := row.Scan(&t.ID, &t.VehicleType, &t.VehicleName, &t.Description,
		&t.OneWayRate, &t.RoundTripRate, &t.DriverAllowance, &t.MinimumKmOneWay,
		&t.MinimumKmRoundTrip, &t.Image, &t.Featured, &t.AdditionalCharges,
		&t.Slug, &t.IsActive, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// ListTariffs returns tariff cards, active only for the public site.
func (r *Repository) ListTariffs(ctx context.Context, onlyActive bool) ([]Tariff, error) {
	query := `SELECT ` + tariffColumns + ` FROM tariffs`
	if onlyActive {
		query += ` WHERE is_active`
	}
	query += ` ORDER BY featured DESC, vehicle_name`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("content: list tariffs: %w", err)
	}
	defer rows.Close()

	var out []Tariff
	for rows.Next() {
		t, err := scanTariff(rows)
		if err != nil {
			return nil, fmt.Errorf("content: scan tariff: %w", err)
		}
		out = append(out, *t)
	}
	return out, rows.Err()
}

// CreateTariff inserts a tariff card.
func (r *Repository) CreateTariff(ctx context.Context, t *Tariff) (*Tariff, error) {
	t.ID = uuid.New().String()
	err := r.db.QueryRow(ctx, `
		INSERT INTO tariffs (id, vehicle_type, vehicle_name, description,
			one_way_rate, round_trip_rate, driver_allowance, minimum_km_one_way,
			minimum_km_round_trip, image, featured, additional_charges, slug, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING created_at, updated_at
	`, t.ID, t.VehicleType, t.VehicleName, t.Description, t.OneWayRate,
		t.RoundTripRate, t.DriverAllowance, t.MinimumKmOneWay, t.MinimumKmRoundTrip,
		t.Image, t.Featured, t.AdditionalCharges, t.Slug, t.IsActive,
	).Scan(&t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("content: create tariff: %w", err)
	}
	return t, nil
}

// UpdateTariff rewrites a tariff card.
func (r *Repository) UpdateTariff(ctx context.Context, t *Tariff) (*Tariff, error) {
	err := r.db.QueryRow(ctx, `
		UPDATE tariffs
		SET vehicle_type = $2, vehicle_name = $3, description = $4,
			one_way_rate = $5, round_trip_rate = $6, driver_allowance = $7,
			minimum_km_one_way = $8, minimum_km_round_trip = $9, image = $10,
			featured = $11, additional_charges = $12, slug = $13, is_active = $14,
			updated_at = now()
		WHERE id = $1
		RETURNING created_at, updated_at
	`, t.ID, t.VehicleType, t.VehicleName, t.Description, t.OneWayRate,
		t.RoundTripRate, t.DriverAllowance, t.MinimumKmOneWay, t.MinimumKmRoundTrip,
		t.Image, t.Featured, t.AdditionalCharges, t.Slug, t.IsActive,
	).Scan(&t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("content: update tariff: %w", err)
	}
	return t, nil
}

// DeleteTariff removes a tariff card.
func (r *Repository) DeleteTariff(ctx context.Context, id string) error {
	return r.deleteRow(ctx, "tariffs", id)
}

const bannerColumns = `id, title, subtitle, image, link_url, sort_order,
	is_active, created_at, updated_at`

// ListBanners returns hero banners ordered for display.
func (r *Repository) ListBanners(ctx context.Context, onlyActive bool) ([]Banner, error) {
	query := `SELECT ` + bannerColumns + ` FROM banners`
	if onlyActive {
		query += ` WHERE is_active`
	}
	query += ` ORDER BY sort_order, created_at`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("content: list banners: %w", err)
	}
	defer rows.Close()

	var out []Banner
	for rows.Next() {
		var b Banner
		if err := rows.Scan(&b.ID, &b.Title, &b.Subtitle, &b.Image, &b.LinkURL,
			&b.SortOrder, &b.IsActive, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, fmt.Errorf("content: scan banner: %w", err)
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

// CreateBanner inserts a banner.
func (r *Repository) CreateBanner(ctx context.Context, b *Banner) (*Banner, error) {
	b.ID = uuid.New().String()
	err := r.db.QueryRow(ctx, `
		INSERT INTO banners (id, title, subtitle, image, link_url, sort_order, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at, updated_at
	`, b.ID, b.Title, b.Subtitle, b.Image, b.LinkURL, b.SortOrder, b.IsActive,
	).Scan(&b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("content: create banner: %w", err)
	}
	return b, nil
}

// UpdateBanner rewrites a banner.
func (r *Repository) UpdateBanner(ctx context.Context, b *Banner) (*Banner, error) {
	err := r.db.QueryRow(ctx, `
		UPDATE banners
		SET title = $2, subtitle = $3, image = $4, link_url = $5, sort_order = $6,
			is_active = $7, updated_at = now()
		WHERE id = $1
		RETURNING created_at, updated_at
	`, b.ID, b.Title, b.Subtitle, b.Image, b.LinkURL, b.SortOrder, b.IsActive,
	).Scan(&b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("content: update banner: %w", err)
	}
	return b, nil
}

// DeleteBanner removes a banner.
func (r *Repository) DeleteBanner(ctx context.Context, id string) error {
	return r.deleteRow(ctx, "banners", id)
}

const testimonialColumns = `id, name, location, avatar, content, rating,
	service_type, status, created_at, updated_at`

// ListTestimonials returns testimonials; publishedOnly restricts to the ones
// shown on the public site.
func (r *Repository) ListTestimonials(ctx context.Context, publishedOnly bool) ([]Testimonial, error) {
	query := `SELECT ` + testimonialColumns + ` FROM testimonials`
	if publishedOnly {
		query += ` WHERE status = 'published'`
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("content: list testimonials: %w", err)
	}
	defer rows.Close()

	var out []Testimonial
	for rows.Next() {
		var tm Testimonial
		if err := rows.Scan(&tm.ID, &tm.Name, &tm.Location, &tm.Avatar, &tm.Content,
			&tm.Rating, &tm.ServiceType, &tm.Status, &tm.CreatedAt, &tm.UpdatedAt); err != nil {
			return nil, fmt.Errorf("content: scan testimonial: %w", err)
		}
		out = append(out, tm)
	}
	return out, rows.Err()
}

// CreateTestimonial inserts a testimonial, defaulting its status to pending.
func (r *Repository) CreateTestimonial(ctx context.Context, tm *Testimonial) (*Testimonial, error) {
	tm.ID = uuid.New().String()
	if tm.Status == "" {
		tm.Status = TestimonialPending
	}
	err := r.db.QueryRow(ctx, `
		INSERT INTO testimonials (id, name, location, avatar, content, rating, service_type, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at, updated_at
	`, tm.ID, tm.Name, tm.Location, tm.Avatar, tm.Content, tm.Rating,
		tm.ServiceType, tm.Status,
	).Scan(&tm.CreatedAt, &tm.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("content: create testimonial: %w", err)
	}
	return tm, nil
}

// UpdateTestimonial rewrites a testimonial.
func (r *Repository) UpdateTestimonial(ctx context.Context, tm *Testimonial) (*Testimonial, error) {
	err := r.db.QueryRow(ctx, `
		UPDATE testimonials
		SET name = $2, location = $3, avatar = $4, content = $5, rating = $6,
			service_type = $7, status = $8, updated_at = now()
		WHERE id = $1
		RETURNING created_at, updated_at
	`, tm.ID, tm.Name, tm.Location, tm.Avatar, tm.Content, tm.Rating,
		tm.ServiceType, tm.Status,
	).Scan(&tm.CreatedAt, &tm.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("content: update testimonial: %w", err)
	}
	return tm, nil
}

// DeleteTestimonial removes a testimonial.
func (r *Repository) DeleteTestimonial(ctx context.Context, id string) error {
	return r.deleteRow(ctx, "testimonials", id)
}

func (r *Repository) deleteRow(ctx context.Context, table, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM `+table+` WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("content: delete from %s: %w", table, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
