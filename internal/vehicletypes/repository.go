package vehicletypes

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type vehicleTypesDB interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// Repository persists vehicle types in Postgres.
type Repository struct {
	db vehicleTypesDB
}

// NewRepository creates a vehicle type repository.
func NewRepository(db vehicleTypesDB) *Repository {
	if db == nil {
		panic("vehicletypes: pgx pool required")
	}
	return &Repository{db: db}
}

// List returns all vehicle types sorted by name. On an empty table it seeds
// the default categories first, so a fresh install has a usable fleet list.
func (r *Repository) List(ctx context.Context) ([]VehicleType, error) {
	types, err := r.selectAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(types) > 0 {
		return types, nil
	}

	if err := r.seedDefaults(ctx); err != nil {
		return nil, err
	}
	return r.selectAll(ctx)
}

func (r *Repository) selectAll(ctx context.Context) ([]VehicleType, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, name, created_at, updated_at
		FROM vehicle_types
		ORDER BY name
	`)
	if err != nil {
		return nil, fmt.Errorf("vehicletypes: list: %w", err)
	}
	defer rows.Close()

	var types []VehicleType
	for rows.Next() {
		var vt VehicleType
		if err := rows.Scan(&vt.ID, &vt.Name, &vt.CreatedAt, &vt.UpdatedAt); err != nil {
			return nil, fmt.Errorf("vehicletypes: scan: %w", err)
		}
		types = append(types, vt)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("vehicletypes: list: %w", err)
	}
	return types, nil
}

// seedDefaults inserts the default categories, skipping any that already
// exist so concurrent first reads do not race each other into errors.
func (r *Repository) seedDefaults(ctx context.Context) error {
	for _, name := range defaultNames {
		_, err := r.db.Exec(ctx, `
			INSERT INTO vehicle_types (id, name)
			VALUES ($1, $2)
			ON CONFLICT (name) DO NOTHING
		`, uuid.New(), name)
		if err != nil {
			return fmt.Errorf("vehicletypes: seed %s: %w", name, err)
		}
	}
	return nil
}

// Create inserts a new vehicle type. The name is trimmed and must not match
// an existing one ignoring case.
func (r *Repository) Create(ctx context.Context, name string) (*VehicleType, error) {
	name = strings.TrimSpace(name)

	taken, err := r.nameTaken(ctx, name, "")
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrDuplicateName
	}

	vt := VehicleType{ID: uuid.New().String(), Name: name}
	err = r.db.QueryRow(ctx, `
		INSERT INTO vehicle_types (id, name)
		VALUES ($1, $2)
		RETURNING created_at, updated_at
	`, vt.ID, vt.Name).Scan(&vt.CreatedAt, &vt.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateName
		}
		return nil, fmt.Errorf("vehicletypes: create: %w", err)
	}
	return &vt, nil
}

// Update renames a vehicle type.
func (r *Repository) Update(ctx context.Context, id, name string) (*VehicleType, error) {
	name = strings.TrimSpace(name)

	taken, err := r.nameTaken(ctx, name, id)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrDuplicateName
	}

	vt := VehicleType{ID: id, Name: name}
	err = r.db.QueryRow(ctx, `
		UPDATE vehicle_types
		SET name = $2, updated_at = now()
		WHERE id = $1
		RETURNING created_at, updated_at
	`, id, name).Scan(&vt.CreatedAt, &vt.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		if isUniqueViolation(err) {
			return nil, ErrDuplicateName
		}
		return nil, fmt.Errorf("vehicletypes: update: %w", err)
	}
	return &vt, nil
}

// Delete removes a vehicle type and returns the deleted record.
func (r *Repository) Delete(ctx context.Context, id string) (*VehicleType, error) {
	var vt VehicleType
	err := r.db.QueryRow(ctx, `
		DELETE FROM vehicle_types
		WHERE id = $1
		RETURNING id, name, created_at, updated_at
	`, id).Scan(&vt.ID, &vt.Name, &vt.CreatedAt, &vt.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("vehicletypes: delete: %w", err)
	}
	return &vt, nil
}

// nameTaken reports whether another row (excluding excludeID) holds the name,
// ignoring case.
func (r *Repository) nameTaken(ctx context.Context, name, excludeID string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM vehicle_types
			WHERE lower(name) = lower($1) AND ($2 = '' OR id::text <> $2)
		)
	`, name, excludeID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("vehicletypes: name check: %w", err)
	}
	return exists, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
