package service

import (
	"context"
	"log"

	"lodgeos/internal/config"
	"lodgeos/internal/domain"
	"lodgeos/internal/port"
)

// SetCounterInput re-baselines one invoice numbering series.
type SetCounterInput struct {
	StartingNumber int64 `json:"starting_number" binding:"required,min=1"`
}

// CounterService exposes the invoice numbering counters to admins.
type CounterService interface {
	List(ctx context.Context) ([]domain.InvoiceCounter, error)
	Get(ctx context.Context, series domain.CounterSeries) (*domain.InvoiceCounter, error)
	SetStartingNumber(ctx context.Context, series domain.CounterSeries, input SetCounterInput) (*domain.InvoiceCounter, error)
}

type counterService struct {
	counterRepo port.CounterRepository
	billingCfg  config.BillingConfig
}

// NewCounterService creates a new CounterService implementation.
func NewCounterService(counterRepo port.CounterRepository, billingCfg config.BillingConfig) CounterService {
	return &counterService{counterRepo: counterRepo, billingCfg: billingCfg}
}

func (s *counterService) List(ctx context.Context) ([]domain.InvoiceCounter, error) {
	return s.counterRepo.List(ctx)
}

func (s *counterService) Get(ctx context.Context, series domain.CounterSeries) (*domain.InvoiceCounter, error) {
	return s.counterRepo.Get(ctx, series)
}

// SetStartingNumber moves the series so the next issued number is exactly
// input.StartingNumber. Moving the counter backwards risks duplicate invoice
// numbers and is rejected unless explicitly enabled in config.
func (s *counterService) SetStartingNumber(ctx context.Context, series domain.CounterSeries, input SetCounterInput) (*domain.InvoiceCounter, error) {
	current, err := s.counterRepo.Get(ctx, series)
	if err != nil {
		return nil, err
	}

	allow := s.billingCfg.AllowCounterRegression
	if allow && input.StartingNumber <= current.CurrentNumber {
		log.Printf("counterService: series %s re-baselined backwards from %d to start at %d",
			series, current.CurrentNumber, input.StartingNumber)
	}
	if err := s.counterRepo.SetStartingNumber(ctx, series, input.StartingNumber, allow); err != nil {
		return nil, err
	}
	return s.counterRepo.Get(ctx, series)
}
