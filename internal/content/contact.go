package content

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Default contact details served until an admin saves their own.
const (
	DefaultPrimaryPhone   = "+91 93602 90811"
	DefaultWhatsAppNumber = "919360290811"
)

// ContactInfo is the singleton record the booking forms and footer use.
type ContactInfo struct {
	PrimaryPhone    string    `json:"primaryPhone"`
	WhatsAppNumber  string    `json:"whatsappNumber"`
	Email           string    `json:"email,omitempty"`
	Address         string    `json:"address,omitempty"`
	ServicesOffered []string  `json:"servicesOffered"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// DefaultContactInfo returns the hardcoded fallback.
func DefaultContactInfo() *ContactInfo {
	return &ContactInfo{
		PrimaryPhone:   DefaultPrimaryPhone,
		WhatsAppNumber: DefaultWhatsAppNumber,
		ServicesOffered: []string{
			"One-way Trip",
			"Round Trip",
			"Airport Taxi",
			"Day Rental",
			"Hourly Package",
			"Tour Package",
		},
		UpdatedAt: time.Now().UTC(),
	}
}

const contactKey = "site:contact"

// ContactStore persists the contact-info singleton in Redis.
type ContactStore struct {
	redis *redis.Client
}

// NewContactStore creates a contact store.
func NewContactStore(redisClient *redis.Client) *ContactStore {
	return &ContactStore{redis: redisClient}
}

// Get retrieves the stored contact info, returning the default when unset.
func (s *ContactStore) Get(ctx context.Context) (*ContactInfo, error) {
	data, err := s.redis.Get(ctx, contactKey).Bytes()
	if err == redis.Nil {
		return DefaultContactInfo(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("content: get contact: %w", err)
	}

	var info ContactInfo
	if err := json.Unmarshal(data, &info); err != nil {
		return nil, fmt.Errorf("content: unmarshal contact: %w", err)
	}
	if info.PrimaryPhone == "" {
		info.PrimaryPhone = DefaultPrimaryPhone
	}
	if info.WhatsAppNumber == "" {
		info.WhatsAppNumber = DefaultWhatsAppNumber
	}
	return &info, nil
}

// Set saves the contact info.
func (s *ContactStore) Set(ctx context.Context, info *ContactInfo) error {
	info.UpdatedAt = time.Now().UTC()

	data, err := json.Marshal(info)
	if err != nil {
		return fmt.Errorf("content: marshal contact: %w", err)
	}
	if err := s.redis.Set(ctx, contactKey, data, 0).Err(); err != nil {
		return fmt.Errorf("content: set contact: %w", err)
	}
	return nil
}
