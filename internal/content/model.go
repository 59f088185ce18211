// Package content manages the site's marketing records: tour packages,
// tariff cards, home-page banners, testimonials and the contact-info
// singleton the public pages cache client-side.
package content

import (
	"errors"
	"time"
)

// ErrNotFound means the targeted content record does not exist.
var ErrNotFound = errors.New("content: not found")

// Package is a tour package card.
type Package struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Image       string    `json:"image,omitempty"`
	Duration    string    `json:"duration"`
	Price       string    `json:"price"`
	Category    string    `json:"category"`
	Featured    bool      `json:"featured"`
	Highlights  []string  `json:"highlights"`
	Inclusions  []string  `json:"inclusions"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Tariff is a per-vehicle rate card.
type Tariff struct {
	ID                 string    `json:"id"`
	VehicleType        string    `json:"vehicleType"`
	VehicleName        string    `json:"vehicleName"`
	Description        string    `json:"description"`
	OneWayRate         string    `json:"oneWayRate"`
	RoundTripRate      string    `json:"roundTripRate"`
	DriverAllowance    string    `json:"driverAllowance"`
	MinimumKmOneWay    string    `json:"minimumKmOneWay"`
	MinimumKmRoundTrip string    `json:"minimumKmRoundTrip"`
	Image              string    `json:"image,omitempty"`
	Featured           bool      `json:"featured"`
	AdditionalCharges  []string  `json:"additionalCharges"`
	Slug               string    `json:"slug"`
	IsActive           bool      `json:"isActive"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

// Banner is a home-page hero slide.
type Banner struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Subtitle  string    `json:"subtitle,omitempty"`
	Image     string    `json:"image"`
	LinkURL   string    `json:"linkUrl,omitempty"`
	SortOrder int       `json:"sortOrder"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Testimonial statuses.
const (
	TestimonialPublished = "published"
	TestimonialPending   = "pending"
)

// Testimonial is a customer review. Only published ones are served publicly.
type Testimonial struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Location    string    `json:"location,omitempty"`
	Avatar      string    `json:"avatar,omitempty"`
	Content     string    `json:"content"`
	Rating      int       `json:"rating"`
	ServiceType string    `json:"serviceType,omitempty"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
