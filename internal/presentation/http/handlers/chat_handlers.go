package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/PixelCraftAgency/pixelcraft-go/internal/application/services"
	"github.com/PixelCraftAgency/pixelcraft-go/internal/domain/entities/chat"
	"github.com/PixelCraftAgency/pixelcraft-go/internal/infrastructure/observability/logging"
)

// ChatMessageRequest represents the request body for sending a message.
type ChatMessageRequest struct {
	Text string `json:"text" binding:"required"`
}

// ChatHandlers serves the assistant widget over REST and WebSocket.
type ChatHandlers struct {
	chatService *services.ChatService
	logger      *logging.ChanneledLogger
	upgrader    websocket.Upgrader
}

func NewChatHandlers(chatService *services.ChatService, logger *logging.ChanneledLogger) *ChatHandlers {
	return &ChatHandlers{
		chatService: chatService,
		logger:      logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

func sessionResponse(session *chat.Session) gin.H {
	return gin.H{
		"sessionId": session.ID,
		"mode":      string(session.Mode()),
		"messages":  session.Messages(),
	}
}

// CreateSession opens a new conversation and returns the greeting.
func (h *ChatHandlers) CreateSession(c *gin.Context) {
	session := h.chatService.CreateSession()
	c.JSON(http.StatusCreated, sessionResponse(session))
}

// GetSession returns the transcript for an existing session.
func (h *ChatHandlers) GetSession(c *gin.Context) {
	id := c.Param("id")
	session, found := h.chatService.GetSession(id)
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "chat session not found", "sessionId": id})
		return
	}
	c.JSON(http.StatusOK, sessionResponse(session))
}

// PostMessage appends a user message and returns the assistant reply.
func (h *ChatHandlers) PostMessage(c *gin.Context) {
	id := c.Param("id")

	var req ChatMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	reply, err := h.chatService.SendMessage(c.Request.Context(), id, req.Text)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	session, _ := h.chatService.GetSession(id)
	c.JSON(http.StatusOK, gin.H{
		"reply": reply,
		"mode":  string(session.Mode()),
	})
}

// StreamSession upgrades to a WebSocket and answers each inbound text
// frame with one assistant reply frame.
func (h *ChatHandlers) StreamSession(c *gin.Context) {
	id := c.Param("id")
	if _, found := h.chatService.GetSession(id); !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "chat session not found", "sessionId": id})
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Chat().Error("WebSocket upgrade failed", "sessionId", id, "error", err)
		return
	}
	defer conn.Close()

	h.logger.Chat().Info("WebSocket chat stream opened", "sessionId", id)

	for {
		var req ChatMessageRequest
		if err := conn.ReadJSON(&req); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.logger.Chat().Warn("WebSocket read failed", "sessionId", id, "error", err)
			}
			return
		}

		reply, err := h.chatService.SendMessage(c.Request.Context(), id, req.Text)
		if err != nil {
			if writeErr := conn.WriteJSON(gin.H{"error": err.Error()}); writeErr != nil {
				return
			}
			continue
		}

		session, _ := h.chatService.GetSession(id)
		if err := conn.WriteJSON(gin.H{
			"reply": reply,
			"mode":  string(session.Mode()),
		}); err != nil {
			h.logger.Chat().Warn("WebSocket write failed", "sessionId", id, "error", err)
			return
		}
	}
}
