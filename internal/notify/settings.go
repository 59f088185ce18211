package notify

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
)

// RelaySettings is the mail-relay configuration record. A single row with
// id "default" controls whether booking notifications go out at all.
type RelaySettings struct {
	ID        string    `json:"id"`
	Host      string    `json:"host"`
	Port      int       `json:"port"`
	Username  string    `json:"username"`
	Password  string    `json:"-"`
	FromName  string    `json:"fromName"`
	FromEmail string    `json:"fromEmail"`
	IsActive  bool      `json:"isActive"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// SettingsStore retrieves the active relay configuration.
type SettingsStore interface {
	// GetActive returns the active relay settings, or nil when none is
	// configured. A nil result is not an error: notifications are skipped.
	GetActive(ctx context.Context) (*RelaySettings, error)
}

type settingsDB interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// PostgresSettingsStore reads relay settings from the smtp_settings table.
type PostgresSettingsStore struct {
	db settingsDB
}

// NewPostgresSettingsStore initializes the store.
func NewPostgresSettingsStore(db settingsDB) *PostgresSettingsStore {
	if db == nil {
		panic("notify: pgx pool required")
	}
	return &PostgresSettingsStore{db: db}
}

// GetActive fetches the default relay row when it is marked active.
func (s *PostgresSettingsStore) GetActive(ctx context.Context) (*RelaySettings, error) {
	query := `
		SELECT id, host, port, username, password, from_name, from_email, is_active, updated_at
		FROM smtp_settings
		WHERE id = 'default' AND is_active
	`
	var cfg RelaySettings
	if err := s.db.QueryRow(ctx, query).Scan(
		&cfg.ID,
		&cfg.Host,
		&cfg.Port,
		&cfg.Username,
		&cfg.Password,
		&cfg.FromName,
		&cfg.FromEmail,
		&cfg.IsActive,
		&cfg.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("notify: load relay settings: %w", err)
	}
	return &cfg, nil
}
