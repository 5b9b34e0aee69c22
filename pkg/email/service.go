package email

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/bizkhata/bizkhata-backend/pkg/database"
)

// EmailService handles sending emails via Resend API
type EmailService struct {
	apiKey    string
	fromEmail string
}

// NewEmailService creates a new email service instance
func NewEmailService(apiKey, fromEmail string) *EmailService {
	return &EmailService{
		apiKey:    apiKey,
		fromEmail: fromEmail,
	}
}

// IsConfigured checks if the email service is properly configured
func (s *EmailService) IsConfigured() bool {
	return s.apiKey != "" && s.fromEmail != ""
}

type sendEmailRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

// SendEmail sends an email using Resend API
func (s *EmailService) SendEmail(to, subject, htmlBody string) error {
	if !s.IsConfigured() {
		return fmt.Errorf("email service not configured")
	}

	payload := sendEmailRequest{
		From:    s.fromEmail,
		To:      []string{to},
		Subject: subject,
		HTML:    htmlBody,
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal email payload: %v", err)
	}

	req, err := http.NewRequest("POST", "https://api.resend.com/emails", bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("failed to create request: %v", err)
	}

	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send email: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return fmt.Errorf("email API returned status %d", resp.StatusCode)
	}

	return nil
}

// SendLowStockDigest emails the owner a list of products at or below
// their minimum stock level.
func (s *EmailService) SendLowStockDigest(toEmail, businessName string, products []database.Product) error {
	var rows strings.Builder
	for _, p := range products {
		rows.WriteString(fmt.Sprintf(`
            <tr>
                <td style="padding: 8px 12px; border-bottom: 1px solid #e5e7eb;">%s</td>
                <td style="padding: 8px 12px; border-bottom: 1px solid #e5e7eb; text-align: right;">%d</td>
                <td style="padding: 8px 12px; border-bottom: 1px solid #e5e7eb; text-align: right;">%d</td>
            </tr>`, p.Name, p.StockQty, p.MinStockLevel))
	}

	htmlBody := fmt.Sprintf(`
<!DOCTYPE html>
<html>
<head><meta charset="utf-8"></head>
<body style="font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif; margin: 0; padding: 0; background-color: #f5f5f5;">
    <div style="max-width: 600px; margin: 0 auto; padding: 40px 20px;">
        <div style="background: #111827; border-radius: 16px 16px 0 0; padding: 24px; text-align: center;">
            <h1 style="color: white; margin: 0; font-size: 22px;">Low Stock Alert: %s</h1>
        </div>
        <div style="background: white; padding: 24px; border-radius: 0 0 16px 16px;">
            <p style="color: #374151; font-size: 15px;">
                The following products are at or below their minimum stock level:
            </p>
            <table style="width: 100%%; border-collapse: collapse; font-size: 14px; color: #374151;">
                <tr>
                    <th style="text-align: left; padding: 8px 12px; border-bottom: 2px solid #d1d5db;">Product</th>
                    <th style="text-align: right; padding: 8px 12px; border-bottom: 2px solid #d1d5db;">Stock</th>
                    <th style="text-align: right; padding: 8px 12px; border-bottom: 2px solid #d1d5db;">Min Level</th>
                </tr>%s
            </table>
        </div>
    </div>
</body>
</html>`, businessName, rows.String())

	subject := fmt.Sprintf("Low stock alert: %d product(s) need restocking", len(products))
	return s.SendEmail(toEmail, subject, htmlBody)
}
