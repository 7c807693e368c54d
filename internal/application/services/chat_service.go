package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/PixelCraftAgency/pixelcraft-go/internal/domain/entities/chat"
	domainservices "github.com/PixelCraftAgency/pixelcraft-go/internal/domain/services"
	"github.com/PixelCraftAgency/pixelcraft-go/internal/infrastructure/ai"
	"github.com/PixelCraftAgency/pixelcraft-go/internal/infrastructure/caching/manager"
	"github.com/PixelCraftAgency/pixelcraft-go/internal/infrastructure/observability/logging"
	"github.com/PixelCraftAgency/pixelcraft-go/internal/infrastructure/security"
	"github.com/PixelCraftAgency/pixelcraft-go/pkg/config"
)

// ChatService runs the assistant widget's two-tier response strategy.
// Remote completions are attempted while the session is remote-eligible;
// the first remote failure flips the session to local-only for its
// lifetime and every reply from then on comes from the rule matcher.
type ChatService struct {
	content  *ContentService
	cache    *manager.Manager
	provider ai.Provider
	logger   *logging.ChanneledLogger

	model         string
	maxTokens     int
	remoteTimeout time.Duration
	localDelay    time.Duration
}

func NewChatService(content *ContentService, cache *manager.Manager, provider ai.Provider, logger *logging.ChanneledLogger) *ChatService {
	return &ChatService{
		content:       content,
		cache:         cache,
		provider:      provider,
		logger:        logger,
		model:         config.ChatModel,
		maxTokens:     config.ChatMaxTokens,
		remoteTimeout: config.ChatRemoteTimeout,
		localDelay:    config.ChatLocalDelay,
	}
}

// CreateSession starts a new conversation seeded with the assistant
// greeting. Sessions with no remote provider configured are local-only
// from the first message.
func (s *ChatService) CreateSession() *chat.Session {
	mode := chat.ModeRemoteEligible
	if s.provider == nil {
		mode = chat.ModeLocalOnly
	}

	session := chat.NewSession(security.GenerateULID(), mode)
	site := s.content.Site()
	greeting := fmt.Sprintf("Hi! I'm the %s assistant. Ask me about our services, pricing, or how to get in touch.", site.Name)
	session.Append(security.GenerateULID(), greeting, chat.SenderAssistant)
	s.cache.SetChatSession(session)

	s.logger.Chat().Info("Chat session created", "sessionId", session.ID, "mode", string(mode))
	return session
}

// GetSession returns the session or false when it expired or never existed.
func (s *ChatService) GetSession(id string) (*chat.Session, bool) {
	return s.cache.GetChatSession(id)
}

// SendMessage appends the user message to the session, produces exactly
// one assistant reply, and returns it.
func (s *ChatService) SendMessage(ctx context.Context, sessionID, text string) (*chat.Message, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("message text is required")
	}

	session, found := s.cache.GetChatSession(sessionID)
	if !found {
		return nil, fmt.Errorf("chat session not found: %s", sessionID)
	}

	session.Append(security.GenerateULID(), text, chat.SenderUser)

	replyText := s.respond(ctx, session, text)
	reply := session.Append(security.GenerateULID(), replyText, chat.SenderAssistant)

	s.logger.Chat().Debug("Chat message answered",
		"sessionId", session.ID,
		"mode", string(session.Mode()),
		"messageLength", len(text))
	return reply, nil
}

func (s *ChatService) respond(ctx context.Context, session *chat.Session, text string) string {
	if session.Mode() == chat.ModeLocalOnly || s.provider == nil {
		return s.localReply(text)
	}

	reply, err := s.remoteReply(ctx, text)
	if err != nil {
		s.logger.Chat().Warn("Remote completion failed, session is local-only from now on",
			"sessionId", session.ID,
			"provider", s.provider.Name(),
			"error", err)
		session.EngageLocalMode()
		return s.localReply(text)
	}
	return reply
}

func (s *ChatService) localReply(text string) string {
	// Simulated typing latency so local answers don't feel instant.
	if s.localDelay > 0 {
		time.Sleep(s.localDelay)
	}
	matcher := domainservices.NewRuleMatcher(s.content.Site())
	return matcher.Reply(text)
}

func (s *ChatService) remoteReply(ctx context.Context, text string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.remoteTimeout)
	defer cancel()

	resp, err := s.provider.Complete(ctx, ai.CompletionRequest{
		Model:     s.model,
		MaxTokens: s.maxTokens,
		Messages: []ai.Message{
			{Role: ai.RoleSystem, Content: s.systemPrompt()},
			{Role: ai.RoleUser, Content: text},
		},
	})
	if err != nil {
		return "", err
	}

	reply := strings.TrimSpace(resp.Content)
	if reply == "" {
		return "", fmt.Errorf("remote completion returned empty content")
	}
	return reply, nil
}

func (s *ChatService) systemPrompt() string {
	site := s.content.Site()
	doc := s.content.Document()

	var b strings.Builder
	fmt.Fprintf(&b, "You are the website assistant for %s, a digital agency. %s\n", site.Name, site.Description)
	fmt.Fprintf(&b, "Contact email: %s. Phone: %s. Address: %s.\n", site.Email, site.Phone, site.Address)
	if len(doc.Services) > 0 {
		b.WriteString("Services offered:\n")
		for _, svc := range doc.Services {
			fmt.Fprintf(&b, "- %s: %s (from $%d)\n", svc.Title, svc.Summary, svc.StartingPrice)
		}
	}
	b.WriteString("Answer briefly and helpfully. If asked something outside the agency's scope, steer the visitor toward the contact form.")
	return b.String()
}
