package leads

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Repository defines the interface for lead storage
type Repository interface {
	Create(ctx context.Context, req *CreateLeadRequest) (*Lead, error)
	GetByID(ctx context.Context, id string) (*Lead, error)
}

// InMemoryRepository is a stub implementation of Repository using in-memory storage
type InMemoryRepository struct {
	mu    sync.RWMutex
	leads map[string]*Lead
}

// NewInMemoryRepository creates a new in-memory repository
func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		leads: make(map[string]*Lead),
	}
}

// Create creates a new lead in memory
func (r *InMemoryRepository) Create(ctx context.Context, req *CreateLeadRequest) (*Lead, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	req.applyDefaults()

	now := time.Now().UTC()
	lead := &Lead{
		ID:             uuid.New().String(),
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
		SubmittedAt:    now,
		UpdatedAt:      now,
	}

	r.mu.Lock()
	r.leads[lead.ID] = lead
	r.mu.Unlock()

	return lead, nil
}

// GetByID retrieves a lead by ID
func (r *InMemoryRepository) GetByID(ctx context.Context, id string) (*Lead, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	lead, ok := r.leads[id]
	if !ok {
		return nil, ErrLeadNotFound
	}

	return lead, nil
}

// Count returns the number of stored leads. Used by tests to assert that
// rejected submissions perform no write.
func (r *InMemoryRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.leads)
}
