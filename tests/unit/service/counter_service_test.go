package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"lodgeos/internal/config"
	"lodgeos/internal/domain"
	"lodgeos/internal/service"
	"lodgeos/mocks"
)

func TestCounterService_SetStartingNumber_Forward(t *testing.T) {
	repo := new(mocks.MockCounterRepo)
	svc := service.NewCounterService(repo, config.BillingConfig{AllowCounterRegression: false})

	repo.On("Get", mock.Anything, domain.SeriesGST).Return(&domain.InvoiceCounter{
		Series: domain.SeriesGST, Prefix: "TG", CurrentNumber: 42,
	}, nil).Once()
	repo.On("SetStartingNumber", mock.Anything, domain.SeriesGST, int64(151), false).Return(nil)
	repo.On("Get", mock.Anything, domain.SeriesGST).Return(&domain.InvoiceCounter{
		Series: domain.SeriesGST, Prefix: "TG", CurrentNumber: 150,
	}, nil).Once()

	counter, err := svc.SetStartingNumber(context.Background(), domain.SeriesGST, service.SetCounterInput{StartingNumber: 151})

	require.NoError(t, err)
	assert.Equal(t, int64(150), counter.CurrentNumber)
	repo.AssertExpectations(t)
}

func TestCounterService_SetStartingNumber_RegressionBlocked(t *testing.T) {
	repo := new(mocks.MockCounterRepo)
	svc := service.NewCounterService(repo, config.BillingConfig{AllowCounterRegression: false})

	repo.On("Get", mock.Anything, domain.SeriesNonGST).Return(&domain.InvoiceCounter{
		Series: domain.SeriesNonGST, Prefix: "TC", CurrentNumber: 200,
	}, nil)
	repo.On("SetStartingNumber", mock.Anything, domain.SeriesNonGST, int64(10), false).Return(domain.ErrCounterRegression)

	_, err := svc.SetStartingNumber(context.Background(), domain.SeriesNonGST, service.SetCounterInput{StartingNumber: 10})

	assert.ErrorIs(t, err, domain.ErrCounterRegression)
	repo.AssertExpectations(t)
}

func TestCounterService_SetStartingNumber_RegressionAllowedByConfig(t *testing.T) {
	repo := new(mocks.MockCounterRepo)
	svc := service.NewCounterService(repo, config.BillingConfig{AllowCounterRegression: true})

	repo.On("Get", mock.Anything, domain.SeriesGST).Return(&domain.InvoiceCounter{
		Series: domain.SeriesGST, Prefix: "TG", CurrentNumber: 200,
	}, nil).Once()
	repo.On("SetStartingNumber", mock.Anything, domain.SeriesGST, int64(10), true).Return(nil)
	repo.On("Get", mock.Anything, domain.SeriesGST).Return(&domain.InvoiceCounter{
		Series: domain.SeriesGST, Prefix: "TG", CurrentNumber: 9,
	}, nil).Once()

	counter, err := svc.SetStartingNumber(context.Background(), domain.SeriesGST, service.SetCounterInput{StartingNumber: 10})

	require.NoError(t, err)
	assert.Equal(t, int64(9), counter.CurrentNumber)
	repo.AssertExpectations(t)
}
