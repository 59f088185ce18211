package leads

import (
	"strings"
	"time"
)

// Lead statuses as stored. Mutated only through the admin API.
const (
	StatusNew        = "new"
	StatusContacted  = "contacted"
	StatusInProgress = "in-progress"
	StatusCompleted  = "completed"
	StatusCancelled  = "cancelled"
)

// Lead represents a booking or contact inquiry submitted from the website forms
type Lead struct {
	ID             string    `json:"id"`
	FullName       string    `json:"fullName"`
	Email          string    `json:"email,omitempty"`
	Phone          string    `json:"phone"`
	ServiceType    string    `json:"serviceType"`
	PickupLocation string    `json:"pickupLocation"`
	DropLocation   string    `json:"dropLocation"`
	TravelDate     string    `json:"travelDate"`
	TravelTime     string    `json:"travelTime,omitempty"`
	ReturnDate     string    `json:"returnDate,omitempty"`
	Passengers     int       `json:"passengers"`
	Message        string    `json:"message,omitempty"`
	EstimatedCost  string    `json:"estimatedCost,omitempty"`
	Notes          string    `json:"notes,omitempty"`
	Status         string    `json:"status"`
	Priority       string    `json:"priority"`
	Source         string    `json:"source"`
	SubmittedAt    time.Time `json:"submittedAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// CreateLeadRequest represents the request body for creating a lead
type CreateLeadRequest struct {
	FullName       string `json:"fullName"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	ServiceType    string `json:"serviceType"`
	PickupLocation string `json:"pickupLocation"`
	DropLocation   string `json:"dropLocation"`
	TravelDate     string `json:"travelDate"`
	TravelTime     string `json:"travelTime"`
	ReturnDate     string `json:"returnDate"`
	Passengers     int    `json:"passengers"`
	Message        string `json:"message"`
	EstimatedCost  string `json:"estimatedCost"`
	Notes          string `json:"notes"`
	Status         string `json:"status"`
	Priority       string `json:"priority"`
	Source         string `json:"source"`
}

// requiredFields lists the fields every submission must carry, in the order
// they are reported back to the caller.
var requiredFields = []struct {
	name  string
	value func(*CreateLeadRequest) string
}{
	{"fullName", func(r *CreateLeadRequest) string { return r.FullName }},
	{"phone", func(r *CreateLeadRequest) string { return r.Phone }},
	{"serviceType", func(r *CreateLeadRequest) string { return r.ServiceType }},
	{"pickupLocation", func(r *CreateLeadRequest) string { return r.PickupLocation }},
	{"dropLocation", func(r *CreateLeadRequest) string { return r.DropLocation }},
	{"travelDate", func(r *CreateLeadRequest) string { return r.TravelDate }},
}

// Validate checks the required-field set and returns a ValidationError naming
// every missing field, or nil when the request is complete.
func (r *CreateLeadRequest) Validate() error {
	var missing []string
	for _, f := range requiredFields {
		if strings.TrimSpace(f.value(r)) == "" {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return &ValidationError{Missing: missing}
	}
	return nil
}

// applyDefaults fills server-side defaults for fields the forms don't collect.
func (r *CreateLeadRequest) applyDefaults() {
	if r.Passengers <= 0 {
		r.Passengers = 1
	}
	if r.Status == "" {
		r.Status = StatusNew
	}
	if r.Priority == "" {
		r.Priority = "medium"
	}
	if r.Source == "" {
		r.Source = "website"
	}
}
