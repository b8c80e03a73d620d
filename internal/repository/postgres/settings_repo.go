package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"lodgeos/internal/domain"
	"lodgeos/internal/port"
)

type settingsRepo struct {
	db *sqlx.DB
}

// NewSettingsRepo creates a new PostgreSQL-backed SettingsRepository.
func NewSettingsRepo(db *sqlx.DB) port.SettingsRepository {
	return &settingsRepo{db: db}
}

func (r *settingsRepo) Get(ctx context.Context) (*domain.LodgeSettings, error) {
	var settings domain.LodgeSettings
	err := r.db.GetContext(ctx, &settings, "SELECT * FROM lodge_settings WHERE id = 1")
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrSettingsNotConfigured
		}
		return nil, fmt.Errorf("settingsRepo.Get: %w", err)
	}
	return &settings, nil
}

func (r *settingsRepo) Upsert(ctx context.Context, settings *domain.LodgeSettings) error {
	settings.ID = 1
	settings.UpdatedAt = time.Now().UTC()

	query := `INSERT INTO lodge_settings (id, name, address, phone, email, gstin, gst_percent, state_name, state_code, updated_at)
		VALUES (1, $1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name, address = EXCLUDED.address, phone = EXCLUDED.phone,
			email = EXCLUDED.email, gstin = EXCLUDED.gstin, gst_percent = EXCLUDED.gst_percent,
			state_name = EXCLUDED.state_name, state_code = EXCLUDED.state_code,
			updated_at = EXCLUDED.updated_at`

	_, err := r.db.ExecContext(ctx, query,
		settings.Name, settings.Address, settings.Phone, settings.Email,
		settings.GSTIN, settings.GSTPercent, settings.StateName, settings.StateCode,
		settings.UpdatedAt)
	if err != nil {
		return fmt.Errorf("settingsRepo.Upsert: %w", err)
	}
	return nil
}
