package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/PixelCraftAgency/pixelcraft-go/internal/application/services"
	"github.com/PixelCraftAgency/pixelcraft-go/internal/domain/entities/estimator"
	"github.com/PixelCraftAgency/pixelcraft-go/internal/infrastructure/observability/logging"
)

// EstimatorSelectRequest represents the request body for option selection.
type EstimatorSelectRequest struct {
	StepKey  string `json:"stepKey" binding:"required"`
	OptionID string `json:"optionId" binding:"required"`
}

// EstimatorHandlers serves the cost estimator wizard endpoints.
type EstimatorHandlers struct {
	estimatorService *services.EstimatorService
	logger           *logging.ChanneledLogger
}

func NewEstimatorHandlers(estimatorService *services.EstimatorService, logger *logging.ChanneledLogger) *EstimatorHandlers {
	return &EstimatorHandlers{
		estimatorService: estimatorService,
		logger:           logger,
	}
}

func wizardResponse(wizard *estimator.Wizard) gin.H {
	resp := gin.H{
		"wizardId":    wizard.ID,
		"stepIndex":   wizard.StepIndex(),
		"stepCount":   len(wizard.Definition().Steps),
		"resultShown": wizard.ResultShown(),
		"selections":  wizard.Selections(),
	}
	if wizard.ResultShown() {
		resp["estimate"] = wizard.Estimate()
	}
	return resp
}

func (h *EstimatorHandlers) respondError(c *gin.Context, err error) {
	if strings.Contains(err.Error(), "not found") {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
}

// CreateWizard starts a new wizard and returns its definition alongside
// the initial state.
func (h *EstimatorHandlers) CreateWizard(c *gin.Context) {
	wizard := h.estimatorService.CreateWizard()
	resp := wizardResponse(wizard)
	resp["definition"] = wizard.Definition()
	c.JSON(http.StatusCreated, resp)
}

// GetWizard returns the current wizard state.
func (h *EstimatorHandlers) GetWizard(c *gin.Context) {
	id := c.Param("id")
	wizard, found := h.estimatorService.GetWizard(id)
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "estimator wizard not found", "wizardId": id})
		return
	}
	c.JSON(http.StatusOK, wizardResponse(wizard))
}

// PostSelect records an option choice on a step.
func (h *EstimatorHandlers) PostSelect(c *gin.Context) {
	var req EstimatorSelectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	wizard, err := h.estimatorService.Select(c.Param("id"), req.StepKey, req.OptionID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, wizardResponse(wizard))
}

// PostNext advances the wizard one step.
func (h *EstimatorHandlers) PostNext(c *gin.Context) {
	wizard, err := h.estimatorService.Next(c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, wizardResponse(wizard))
}

// PostBack moves the wizard one step back.
func (h *EstimatorHandlers) PostBack(c *gin.Context) {
	wizard, err := h.estimatorService.Back(c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, wizardResponse(wizard))
}

// PostCalculate computes the estimate and opens the result view.
func (h *EstimatorHandlers) PostCalculate(c *gin.Context) {
	wizard, estimate, err := h.estimatorService.Calculate(c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	resp := wizardResponse(wizard)
	resp["estimate"] = estimate
	c.JSON(http.StatusOK, resp)
}

// PostReset discards all selections and returns to the first step.
func (h *EstimatorHandlers) PostReset(c *gin.Context) {
	wizard, err := h.estimatorService.Reset(c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, wizardResponse(wizard))
}
