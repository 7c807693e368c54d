package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/PixelCraftAgency/pixelcraft-go/internal/application/services"
	"github.com/PixelCraftAgency/pixelcraft-go/internal/domain/entities/votes"
	"github.com/PixelCraftAgency/pixelcraft-go/internal/infrastructure/observability/logging"
)

// SessionIDHeader carries the per-view widget session generated by the client.
const SessionIDHeader = "X-PixelCraft-Session-ID"

// VoteRequest represents the request body for casting a vote.
type VoteRequest struct {
	Vote string `json:"vote" binding:"required"`
}

// VoteHandlers serves the blog post vote widget.
type VoteHandlers struct {
	voteService *services.VoteService
	logger      *logging.ChanneledLogger
}

func NewVoteHandlers(voteService *services.VoteService, logger *logging.ChanneledLogger) *VoteHandlers {
	return &VoteHandlers{
		voteService: voteService,
		logger:      logger,
	}
}

func tallyResponse(tally *votes.Tally) gin.H {
	likes, dislikes, active := tally.Counts()
	return gin.H{
		"postId":     tally.PostID,
		"likes":      likes,
		"dislikes":   dislikes,
		"activeVote": string(active),
	}
}

// GetTally returns the session's current tally for a post, seeding it
// on first access.
func (h *VoteHandlers) GetTally(c *gin.Context) {
	sessionID := c.GetHeader(SessionIDHeader)
	if sessionID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "session ID header is required"})
		return
	}

	tally, err := h.voteService.GetTally(sessionID, c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, tallyResponse(tally))
}

// PostVote casts a like or dislike with toggle semantics.
func (h *VoteHandlers) PostVote(c *gin.Context) {
	sessionID := c.GetHeader(SessionIDHeader)
	if sessionID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "session ID header is required"})
		return
	}

	var req VoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	tally, err := h.voteService.Cast(sessionID, c.Param("id"), votes.VoteType(req.Vote))
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, tallyResponse(tally))
}
