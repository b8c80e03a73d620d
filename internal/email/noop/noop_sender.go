package noop

import (
	"context"
	"log"

	"lodgeos/internal/port"
)

type noopSender struct{}

// NewNoopSender creates a no-op EmailSender that logs invoice emails to stdout.
func NewNoopSender() port.EmailSender {
	return &noopSender{}
}

func (s *noopSender) SendInvoiceEmail(_ context.Context, toEmail string, email port.InvoiceEmail) error {
	log.Printf("[NOOP EMAIL] Invoice %s for %s (%s): INR %.2f",
		email.BillNumber, email.CustomerName, toEmail, email.TotalAmount)
	return nil
}
