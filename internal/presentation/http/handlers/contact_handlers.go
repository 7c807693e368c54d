package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/PixelCraftAgency/pixelcraft-go/internal/application/services"
	"github.com/PixelCraftAgency/pixelcraft-go/internal/infrastructure/email"
	"github.com/PixelCraftAgency/pixelcraft-go/internal/infrastructure/observability/logging"
)

// ContactRequest represents the contact form payload.
type ContactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required"`
	Service string `json:"service"`
	Budget  string `json:"budget"`
	Message string `json:"message" binding:"required"`
}

// ContactHandlers serves the contact form endpoint.
type ContactHandlers struct {
	contactService *services.ContactService
	logger         *logging.ChanneledLogger
}

func NewContactHandlers(contactService *services.ContactService, logger *logging.ChanneledLogger) *ContactHandlers {
	return &ContactHandlers{
		contactService: contactService,
		logger:         logger,
	}
}

// PostContact stores the enquiry and forwards it to the agency inbox.
func (h *ContactHandlers) PostContact(c *gin.Context) {
	var req ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	err := h.contactService.Submit(email.ContactSubmission{
		Name:    req.Name,
		Email:   req.Email,
		Service: req.Service,
		Budget:  req.Budget,
		Message: req.Message,
	})
	if err != nil {
		if strings.Contains(err.Error(), "required") || strings.Contains(err.Error(), "invalid email") {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "sent"})
}
