package service

import (
	"context"
	"regexp"
	"strings"

	"lodgeos/internal/domain"
	"lodgeos/internal/port"
)

// gstinPattern is the standard 15-character GSTIN layout: 2-digit state code,
// 10-character PAN, entity digit, default "Z", checksum character.
var gstinPattern = regexp.MustCompile(`^[0-9]{2}[A-Z]{5}[0-9]{4}[A-Z][0-9A-Z]Z[0-9A-Z]$`)

// UpdateSettingsInput is the DTO for the singleton lodge profile.
type UpdateSettingsInput struct {
	Name       string  `json:"name" binding:"required"`
	Address    string  `json:"address" binding:"required"`
	Phone      string  `json:"phone" binding:"required"`
	Email      string  `json:"email"`
	GSTIN      string  `json:"gstin"`
	GSTPercent float64 `json:"gst_percent"`
	StateName  string  `json:"state_name"`
	StateCode  string  `json:"state_code"`
}

// SettingsService manages the lodge profile printed on invoices.
type SettingsService interface {
	Get(ctx context.Context) (*domain.LodgeSettings, error)
	Update(ctx context.Context, input UpdateSettingsInput) (*domain.LodgeSettings, error)
}

type settingsService struct {
	settingsRepo port.SettingsRepository
}

// NewSettingsService creates a new SettingsService implementation.
func NewSettingsService(settingsRepo port.SettingsRepository) SettingsService {
	return &settingsService{settingsRepo: settingsRepo}
}

func (s *settingsService) Get(ctx context.Context) (*domain.LodgeSettings, error) {
	return s.settingsRepo.Get(ctx)
}

func (s *settingsService) Update(ctx context.Context, input UpdateSettingsInput) (*domain.LodgeSettings, error) {
	gstin := strings.ToUpper(strings.TrimSpace(input.GSTIN))
	if gstin != "" && !gstinPattern.MatchString(gstin) {
		return nil, domain.ErrInvalidGSTIN
	}
	if input.GSTPercent < 0 || input.GSTPercent > 100 {
		return nil, domain.ErrInvalidGSTPercent
	}

	settings := &domain.LodgeSettings{
		ID:         1,
		Name:       input.Name,
		Address:    input.Address,
		Phone:      input.Phone,
		Email:      input.Email,
		GSTIN:      gstin,
		GSTPercent: input.GSTPercent,
		StateName:  input.StateName,
		StateCode:  input.StateCode,
	}
	if err := s.settingsRepo.Upsert(ctx, settings); err != nil {
		return nil, err
	}
	return settings, nil
}
