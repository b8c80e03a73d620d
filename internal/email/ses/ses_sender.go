package ses

import (
	"context"
	"fmt"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"

	"lodgeos/internal/port"
)

type sesSender struct {
	client      *sesv2.Client
	fromAddress string
	fromName    string
}

// NewSESSender creates a new SES-backed EmailSender.
func NewSESSender(region, fromAddress, fromName string) (port.EmailSender, error) {
	cfg, err := awsconfig.LoadDefaultConfig(context.Background(), awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("loading AWS config for SES: %w", err)
	}
	client := sesv2.NewFromConfig(cfg)
	return &sesSender{
		client:      client,
		fromAddress: fromAddress,
		fromName:    fromName,
	}, nil
}

func (s *sesSender) SendInvoiceEmail(ctx context.Context, toEmail string, email port.InvoiceEmail) error {
	subject := fmt.Sprintf("Invoice %s from %s", email.BillNumber, email.LodgeName)
	htmlBody := buildInvoiceHTML(email)
	textBody := fmt.Sprintf(
		"Dear %s,\n\nThank you for staying with us. Your invoice %s has been generated.\n\nAmount due: INR %.2f\n(%s)\n\n%s",
		email.CustomerName, email.BillNumber, email.TotalAmount, email.AmountInWords, email.LodgeName,
	)

	from := fmt.Sprintf("%s <%s>", s.fromName, s.fromAddress)

	_, err := s.client.SendEmail(ctx, &sesv2.SendEmailInput{
		FromEmailAddress: &from,
		Destination: &types.Destination{
			ToAddresses: []string{toEmail},
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{Data: &subject},
				Body: &types.Body{
					Html: &types.Content{Data: &htmlBody},
					Text: &types.Content{Data: &textBody},
				},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("SES SendEmail: %w", err)
	}
	return nil
}

func buildInvoiceHTML(email port.InvoiceEmail) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"></head>
<body style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
  <h2 style="color: #333;">Invoice %s</h2>
  <p>Dear %s,</p>
  <p>Thank you for staying with us. Your invoice has been generated.</p>
  <table style="width: 100%%; border-collapse: collapse; margin: 20px 0;">
    <tr>
      <td style="padding: 8px; border-bottom: 1px solid #eee;">Invoice Number</td>
      <td style="padding: 8px; border-bottom: 1px solid #eee; text-align: right;"><strong>%s</strong></td>
    </tr>
    <tr>
      <td style="padding: 8px; border-bottom: 1px solid #eee;">Amount Due</td>
      <td style="padding: 8px; border-bottom: 1px solid #eee; text-align: right;"><strong>INR %.2f</strong></td>
    </tr>
  </table>
  <p style="color: #666; font-style: italic;">%s</p>
  <hr style="border: none; border-top: 1px solid #eee; margin: 20px 0;">
  <p style="color: #999; font-size: 12px;">%s</p>
</body>
</html>`, email.BillNumber, email.CustomerName, email.BillNumber, email.TotalAmount, email.AmountInWords, email.LodgeName)
}
