package services

import (
	"fmt"
	"strings"

	"github.com/PixelCraftAgency/pixelcraft-go/internal/domain/user"
	"github.com/PixelCraftAgency/pixelcraft-go/internal/infrastructure/email"
	"github.com/PixelCraftAgency/pixelcraft-go/internal/infrastructure/observability/logging"
	"github.com/PixelCraftAgency/pixelcraft-go/internal/infrastructure/security"
)

// ContactService handles contact form submissions: the lead is stored
// first so a delivery failure never loses the enquiry, then the email
// is sent to the agency inbox.
type ContactService struct {
	leads  user.LeadRepository
	email  email.Service
	logger *logging.ChanneledLogger
}

func NewContactService(leads user.LeadRepository, emailService email.Service, logger *logging.ChanneledLogger) *ContactService {
	return &ContactService{
		leads:  leads,
		email:  emailService,
		logger: logger,
	}
}

// Submit validates, stores, and forwards a contact form submission.
func (s *ContactService) Submit(sub email.ContactSubmission) error {
	sub.Name = strings.TrimSpace(sub.Name)
	sub.Email = strings.TrimSpace(sub.Email)
	sub.Message = strings.TrimSpace(sub.Message)
	if sub.Name == "" || sub.Email == "" || sub.Message == "" {
		return fmt.Errorf("name, email, and message are required")
	}
	if !strings.Contains(sub.Email, "@") {
		return fmt.Errorf("invalid email address: %s", sub.Email)
	}

	lead := &user.Lead{
		ID:    security.GenerateULID(),
		Kind:  user.LeadContact,
		Name:  sub.Name,
		Email: sub.Email,
		Payload: map[string]any{
			"service": sub.Service,
			"budget":  sub.Budget,
			"message": sub.Message,
		},
	}
	if err := s.leads.Store(lead); err != nil {
		s.logger.Email().Error("Failed to store contact lead", "error", err)
		return fmt.Errorf("failed to store contact lead: %w", err)
	}

	if s.email == nil {
		s.logger.Email().Warn("Email service not configured, lead stored without delivery", "leadId", lead.ID)
		return nil
	}

	if err := s.email.SendContactEmail(sub); err != nil {
		s.logger.Email().Error("Contact email delivery failed", "leadId", lead.ID, "error", err)
		return fmt.Errorf("failed to deliver contact email: %w", err)
	}

	if err := s.leads.MarkDelivered(lead.ID); err != nil {
		s.logger.Email().Warn("Failed to mark lead delivered", "leadId", lead.ID, "error", err)
	}

	s.logger.Email().Info("Contact submission delivered", "leadId", lead.ID, "service", sub.Service)
	return nil
}

// Leads returns the most recent stored leads for the admin surface.
func (s *ContactService) Leads(limit int) ([]*user.Lead, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	return s.leads.FindAll(limit)
}
