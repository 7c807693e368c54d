// Package email provides the email client for sending transactional emails.
package email

import (
	"fmt"

	"github.com/PixelCraftAgency/pixelcraft-go/internal/infrastructure/email/templates"
	"github.com/resendlabs/resend-go"
)

// ContactSubmission carries the contact form payload into delivery
type ContactSubmission struct {
	Name    string
	Email   string
	Service string
	Budget  string
	Message string
}

// Service defines the interface for sending emails, allowing for mock implementations in tests.
type Service interface {
	SendContactEmail(sub ContactSubmission) error
}

// ResendClient is the concrete implementation of the email Service using the Resend API.
type ResendClient struct {
	client    *resend.Client
	fromEmail string
	fromName  string
	toEmail   string
}

// NewService creates a new email service client, returning the Service interface.
func NewService(apiKey, fromEmail, fromName, toEmail string) (Service, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("RESEND_API_KEY environment variable is required")
	}

	return &ResendClient{
		client:    resend.NewClient(apiKey),
		fromEmail: fromEmail,
		fromName:  fromName,
		toEmail:   toEmail,
	}, nil
}

// SendContactEmail composes and sends the contact enquiry email.
func (c *ResendClient) SendContactEmail(sub ContactSubmission) error {
	subject := fmt.Sprintf("New enquiry from %s", sub.Name)

	content := templates.GetContactEmailContent(templates.ContactEmailProps{
		Name:    sub.Name,
		Email:   sub.Email,
		Service: sub.Service,
		Budget:  sub.Budget,
		Message: sub.Message,
	})

	htmlContent := templates.GetEmailLayout(templates.EmailLayoutProps{
		Preheader:  subject,
		Content:    content,
		FooterText: "Sent by the PixelCraft contact form",
	})

	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("%s <%s>", c.fromName, c.fromEmail),
		To:      []string{c.toEmail},
		ReplyTo: sub.Email,
		Subject: subject,
		Html:    htmlContent,
	}

	_, err := c.client.Emails.Send(params)
	if err != nil {
		return fmt.Errorf("failed to send contact email via Resend: %w", err)
	}

	return nil
}
