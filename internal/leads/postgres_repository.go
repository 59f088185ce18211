package leads

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// leadsDB is the subset of pgxpool.Pool the repository needs. Narrow so tests
// can substitute pgxmock.
type leadsDB interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// PostgresRepository stores leads in the relational database.
type PostgresRepository struct {
	db leadsDB
}

// NewPostgresRepository initializes a repo backed by pgxpool.
func NewPostgresRepository(db leadsDB) *PostgresRepository {
	if db == nil {
		panic("leads: pgx pool required")
	}
	return &PostgresRepository{db: db}
}

// Create inserts a new row.
func (r *PostgresRepository) Create(ctx context.Context, req *CreateLeadRequest) (*Lead, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	req.applyDefaults()

	id := uuid.New()
	query := `
		INSERT INTO leads (id, full_name, email, phone, service_type, pickup_location,
			drop_location, travel_date, travel_time, return_date, passengers, message,
			estimated_cost, notes, status, priority, source)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
		RETURNING submitted_at, updated_at
	`
	var submittedAt, updatedAt time.Time
	if err := r.db.QueryRow(ctx, query,
		id,
		req.FullName,
		req.Email,
		req.Phone,
		req.ServiceType,
		req.PickupLocation,
		req.DropLocation,
		req.TravelDate,
		req.TravelTime,
		req.ReturnDate,
		req.Passengers,
		req.Message,
		req.EstimatedCost,
		req.Notes,
		req.Status,
		req.Priority,
		req.Source,
	).Scan(&submittedAt, &updatedAt); err != nil {
		return nil, fmt.Errorf("leads: insert failed: %w", err)
	}

	return &Lead{
		ID:             id.String(),
		FullName:       req.FullName,
		Email:          req.Email,
		Phone:          req.Phone,
		ServiceType:    req.ServiceType,
		PickupLocation: req.PickupLocation,
		DropLocation:   req.DropLocation,
		TravelDate:     req.TravelDate,
		TravelTime:     req.TravelTime,
		ReturnDate:     req.ReturnDate,
		Passengers:     req.Passengers,
		Message:        req.Message,
		EstimatedCost:  req.EstimatedCost,
		Notes:          req.Notes,
		Status:         req.Status,
		Priority:       req.Priority,
		Source:         req.Source,
		SubmittedAt:    submittedAt,
		UpdatedAt:      updatedAt,
	}, nil
}

// GetByID fetches a single lead.
func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*Lead, error) {
	query := `
		SELECT id, full_name, email, phone, service_type, pickup_location, drop_location,
			travel_date, travel_time, return_date, passengers, message, estimated_cost,
			notes, status, priority, source, submitted_at, updated_at
		FROM leads
		WHERE id = $1
	`
	row := r.db.QueryRow(ctx, query, id)
	var lead Lead
	if err := row.Scan(
		&lead.ID,
		&lead.FullName,
		&lead.Email,
		&lead.Phone,
		&lead.ServiceType,
		&lead.PickupLocation,
		&lead.DropLocation,
		&lead.TravelDate,
		&lead.TravelTime,
		&lead.ReturnDate,
		&lead.Passengers,
		&lead.Message,
		&lead.EstimatedCost,
		&lead.Notes,
		&lead.Status,
		&lead.Priority,
		&lead.Source,
		&lead.SubmittedAt,
		&lead.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrLeadNotFound
		}
		return nil, fmt.Errorf("leads: select failed: %w", err)
	}
	return &lead, nil
}
