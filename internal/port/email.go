package port

import "context"

// InvoiceEmail carries the fields rendered into the invoice summary email.
type InvoiceEmail struct {
	CustomerName  string
	BillNumber    string
	TotalAmount   float64
	AmountInWords string
	LodgeName     string
}

// EmailSender defines the contract for sending transactional emails to guests.
type EmailSender interface {
	SendInvoiceEmail(ctx context.Context, toEmail string, email InvoiceEmail) error
}
