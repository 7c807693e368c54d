package services

import (
	"fmt"

	"github.com/PixelCraftAgency/pixelcraft-go/internal/domain/entities/estimator"
	"github.com/PixelCraftAgency/pixelcraft-go/internal/domain/user"
	"github.com/PixelCraftAgency/pixelcraft-go/internal/infrastructure/caching/manager"
	"github.com/PixelCraftAgency/pixelcraft-go/internal/infrastructure/observability/logging"
	"github.com/PixelCraftAgency/pixelcraft-go/internal/infrastructure/security"
)

// EstimatorService drives the cost estimator wizard and persists a lead
// record when the visitor reaches a calculated total.
type EstimatorService struct {
	content *ContentService
	cache   *manager.Manager
	leads   user.LeadRepository
	logger  *logging.ChanneledLogger
}

func NewEstimatorService(content *ContentService, cache *manager.Manager, leads user.LeadRepository, logger *logging.ChanneledLogger) *EstimatorService {
	return &EstimatorService{
		content: content,
		cache:   cache,
		leads:   leads,
		logger:  logger,
	}
}

// CreateWizard starts a fresh wizard against the current estimator
// definition. A content reload does not affect wizards already running.
func (s *EstimatorService) CreateWizard() *estimator.Wizard {
	def := s.content.Document().Estimator
	wizard := estimator.NewWizard(security.GenerateULID(), def)
	s.cache.SetWizard(wizard)

	s.logger.Estimator().Info("Estimator wizard created", "wizardId", wizard.ID, "steps", len(def.Steps))
	return wizard
}

func (s *EstimatorService) GetWizard(id string) (*estimator.Wizard, bool) {
	return s.cache.GetWizard(id)
}

func (s *EstimatorService) Select(wizardID, stepKey, optionID string) (*estimator.Wizard, error) {
	wizard, found := s.cache.GetWizard(wizardID)
	if !found {
		return nil, fmt.Errorf("estimator wizard not found: %s", wizardID)
	}
	if err := wizard.Select(stepKey, optionID); err != nil {
		return nil, err
	}
	return wizard, nil
}

func (s *EstimatorService) Next(wizardID string) (*estimator.Wizard, error) {
	wizard, found := s.cache.GetWizard(wizardID)
	if !found {
		return nil, fmt.Errorf("estimator wizard not found: %s", wizardID)
	}
	if err := wizard.Next(); err != nil {
		return nil, err
	}
	return wizard, nil
}

func (s *EstimatorService) Back(wizardID string) (*estimator.Wizard, error) {
	wizard, found := s.cache.GetWizard(wizardID)
	if !found {
		return nil, fmt.Errorf("estimator wizard not found: %s", wizardID)
	}
	if err := wizard.Back(); err != nil {
		return nil, err
	}
	return wizard, nil
}

// Calculate computes the estimate, opens the result view, and records
// the outcome as an estimate lead. A lead write failure is logged but
// never hides the estimate from the visitor.
func (s *EstimatorService) Calculate(wizardID string) (*estimator.Wizard, *estimator.Estimate, error) {
	wizard, found := s.cache.GetWizard(wizardID)
	if !found {
		return nil, nil, fmt.Errorf("estimator wizard not found: %s", wizardID)
	}

	alreadyShown := wizard.ResultShown()
	estimate, err := wizard.Calculate()
	if err != nil {
		return nil, nil, err
	}

	if !alreadyShown {
		lead := &user.Lead{
			ID:   security.GenerateULID(),
			Kind: user.LeadEstimate,
			Payload: map[string]any{
				"wizardId":   wizard.ID,
				"total":      estimate.Total,
				"basePrice":  estimate.BasePrice,
				"addOns":     estimate.AddOns,
				"currency":   estimate.Currency,
				"selections": wizard.Selections(),
			},
		}
		if err := s.leads.Store(lead); err != nil {
			s.logger.Estimator().Error("Failed to store estimate lead",
				"wizardId", wizard.ID, "error", err)
		}
	}

	s.logger.Estimator().Info("Estimate calculated",
		"wizardId", wizard.ID,
		"total", estimate.Total,
		"options", estimate.OptionsCount)
	return wizard, estimate, nil
}

func (s *EstimatorService) Reset(wizardID string) (*estimator.Wizard, error) {
	wizard, found := s.cache.GetWizard(wizardID)
	if !found {
		return nil, fmt.Errorf("estimator wizard not found: %s", wizardID)
	}
	wizard.Reset()
	s.logger.Estimator().Debug("Estimator wizard reset", "wizardId", wizardID)
	return wizard, nil
}
