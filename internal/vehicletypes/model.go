// Package vehicletypes manages the fleet categories offered for bookings.
package vehicletypes

import (
	"errors"
	"time"
)

// Defaults seeded the first time the list is read on an empty table.
var defaultNames = []string{"Sedan", "SUV", "Premium", "Luxury", "Tempo"}

// VehicleType is a fleet category such as Sedan or Tempo. Names are unique
// ignoring case.
type VehicleType struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

var (
	// ErrNotFound means no vehicle type exists with the given id.
	ErrNotFound = errors.New("vehicletypes: not found")
	// ErrDuplicateName means another vehicle type already uses the name.
	ErrDuplicateName = errors.New("vehicletypes: name already exists")
)
