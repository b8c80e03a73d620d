package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"lodgeos/internal/port"
)

// MockEmailSender is a mock implementation of port.EmailSender.
type MockEmailSender struct {
	mock.Mock
}

func (m *MockEmailSender) SendInvoiceEmail(ctx context.Context, toEmail string, email port.InvoiceEmail) error {
	args := m.Called(ctx, toEmail, email)
	return args.Error(0)
}
