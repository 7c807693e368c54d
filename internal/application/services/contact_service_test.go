package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PixelCraftAgency/pixelcraft-go/internal/domain/user"
	"github.com/PixelCraftAgency/pixelcraft-go/internal/infrastructure/email"
)

// stubEmail is a scripted email.Service.
type stubEmail struct {
	err  error
	sent []email.ContactSubmission
}

func (s *stubEmail) SendContactEmail(sub email.ContactSubmission) error {
	if s.err != nil {
		return s.err
	}
	s.sent = append(s.sent, sub)
	return nil
}

func validSubmission() email.ContactSubmission {
	return email.ContactSubmission{
		Name:    "Dana Fields",
		Email:   "dana@example.com",
		Service: "Web Design",
		Budget:  "$5k - $15k",
		Message: "We need a new marketing site before Q4.",
	}
}

func TestContactSubmitStoresAndDelivers(t *testing.T) {
	repo := newMemLeadRepo()
	mailer := &stubEmail{}
	svc := NewContactService(repo, mailer, newTestLogger(t))

	require.NoError(t, svc.Submit(validSubmission()))

	require.Len(t, repo.leads, 1)
	lead := repo.leads[0]
	assert.Equal(t, user.LeadContact, lead.Kind)
	assert.Equal(t, "Dana Fields", lead.Name)
	assert.True(t, repo.delivered[lead.ID], "delivery is recorded on the lead")
	require.Len(t, mailer.sent, 1)
	assert.Equal(t, "dana@example.com", mailer.sent[0].Email)
}

func TestContactDeliveryFailureKeepsLead(t *testing.T) {
	repo := newMemLeadRepo()
	mailer := &stubEmail{err: assert.AnError}
	svc := NewContactService(repo, mailer, newTestLogger(t))

	err := svc.Submit(validSubmission())
	require.Error(t, err, "callers are told the email did not go out")

	require.Len(t, repo.leads, 1, "the enquiry is stored even when delivery fails")
	assert.False(t, repo.delivered[repo.leads[0].ID])
}

func TestContactWithoutMailerStoresOnly(t *testing.T) {
	repo := newMemLeadRepo()
	svc := NewContactService(repo, nil, newTestLogger(t))

	require.NoError(t, svc.Submit(validSubmission()))
	assert.Len(t, repo.leads, 1)
}

func TestContactValidation(t *testing.T) {
	repo := newMemLeadRepo()
	svc := NewContactService(repo, &stubEmail{}, newTestLogger(t))

	missing := validSubmission()
	missing.Name = "  "
	assert.Error(t, svc.Submit(missing))

	badEmail := validSubmission()
	badEmail.Email = "not-an-address"
	assert.Error(t, svc.Submit(badEmail))

	assert.Empty(t, repo.leads, "invalid submissions are never stored")
}
