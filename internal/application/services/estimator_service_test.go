package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PixelCraftAgency/pixelcraft-go/internal/domain/user"
)

func newTestEstimator(t *testing.T) (*EstimatorService, *memLeadRepo) {
	t.Helper()
	repo := newMemLeadRepo()
	svc := NewEstimatorService(newTestContent(t), newTestCache(t), repo, newTestLogger(t))
	return svc, repo
}

func TestEstimatorWalkthroughStoresLead(t *testing.T) {
	svc, repo := newTestEstimator(t)

	wizard := svc.CreateWizard()
	_, err := svc.Select(wizard.ID, "project-type", "marketing-site")
	require.NoError(t, err)
	_, err = svc.Select(wizard.ID, "features", "cms")
	require.NoError(t, err)
	_, err = svc.Select(wizard.ID, "features", "multilingual")
	require.NoError(t, err)

	_, estimate, err := svc.Calculate(wizard.ID)
	require.NoError(t, err)

	// round(3000 * 1.2) + (4+6) * 150
	assert.Equal(t, 5100, estimate.Total)

	require.Len(t, repo.leads, 1)
	lead := repo.leads[0]
	assert.Equal(t, user.LeadEstimate, lead.Kind)
	assert.Equal(t, 5100, lead.Payload["total"])
}

func TestEstimatorRepeatCalculateStoresOneLead(t *testing.T) {
	svc, repo := newTestEstimator(t)

	wizard := svc.CreateWizard()
	_, err := svc.Select(wizard.ID, "project-type", "web-app")
	require.NoError(t, err)

	_, _, err = svc.Calculate(wizard.ID)
	require.NoError(t, err)
	_, _, err = svc.Calculate(wizard.ID)
	require.NoError(t, err)

	assert.Len(t, repo.leads, 1, "re-opening the result does not duplicate the lead")
}

func TestEstimatorLeadFailureDoesNotHideEstimate(t *testing.T) {
	svc, repo := newTestEstimator(t)
	repo.storeErr = assert.AnError

	wizard := svc.CreateWizard()
	_, err := svc.Select(wizard.ID, "project-type", "web-app")
	require.NoError(t, err)

	_, estimate, err := svc.Calculate(wizard.ID)
	require.NoError(t, err)
	assert.Equal(t, 8400, estimate.Total)
}

func TestEstimatorResetWithdrawsResult(t *testing.T) {
	svc, _ := newTestEstimator(t)

	wizard := svc.CreateWizard()
	_, err := svc.Select(wizard.ID, "project-type", "web-app")
	require.NoError(t, err)
	_, _, err = svc.Calculate(wizard.ID)
	require.NoError(t, err)

	reset, err := svc.Reset(wizard.ID)
	require.NoError(t, err)
	assert.False(t, reset.ResultShown())
	assert.Equal(t, 0, reset.StepIndex())
	assert.Empty(t, reset.Selections())
}

func TestEstimatorUnknownWizard(t *testing.T) {
	svc, _ := newTestEstimator(t)

	_, err := svc.Next("no-such-wizard")
	assert.Error(t, err)
	_, err = svc.Back("no-such-wizard")
	assert.Error(t, err)
	_, _, err = svc.Calculate("no-such-wizard")
	assert.Error(t, err)
}
