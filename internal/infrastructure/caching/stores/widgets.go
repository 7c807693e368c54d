// Package stores provides concrete cache store implementations
package stores

import (
	"sync"
	"time"

	"github.com/PixelCraftAgency/pixelcraft-go/internal/domain/entities/chat"
	"github.com/PixelCraftAgency/pixelcraft-go/internal/domain/entities/estimator"
	"github.com/PixelCraftAgency/pixelcraft-go/internal/domain/entities/votes"
	"github.com/PixelCraftAgency/pixelcraft-go/internal/infrastructure/observability/logging"
)

// TTLs bundles the expiry window for each widget kind
type TTLs struct {
	ChatSession time.Duration
	Wizard      time.Duration
	VoteState   time.Duration
}

// WidgetsStore holds all per-session widget state: chat sessions, estimator
// wizards, and vote tallies keyed by session + post.
type WidgetsStore struct {
	mu      sync.RWMutex
	chats   map[string]*chat.Session
	wizards map[string]*estimator.Wizard
	tallies map[string]map[string]*votes.Tally // session ID -> post ID -> tally
	ttls    TTLs
	logger  *logging.ChanneledLogger
}

// NewWidgetsStore creates a new widgets cache store
func NewWidgetsStore(ttls TTLs, logger *logging.ChanneledLogger) *WidgetsStore {
	if logger != nil {
		logger.Cache().Info("Initializing widgets cache store",
			"chatTTL", ttls.ChatSession, "wizardTTL", ttls.Wizard, "voteTTL", ttls.VoteState)
	}
	return &WidgetsStore{
		chats:   make(map[string]*chat.Session),
		wizards: make(map[string]*estimator.Wizard),
		tallies: make(map[string]map[string]*votes.Tally),
		ttls:    ttls,
		logger:  logger,
	}
}

// GetChatSession retrieves a live chat session by ID
func (ws *WidgetsStore) GetChatSession(id string) (*chat.Session, bool) {
	start := time.Now()
	ws.mu.RLock()
	session, exists := ws.chats[id]
	ws.mu.RUnlock()

	if exists && time.Since(session.LastAccessedAt()) > ws.ttls.ChatSession {
		ws.mu.Lock()
		delete(ws.chats, id)
		ws.mu.Unlock()
		exists = false
		session = nil
	}

	if ws.logger != nil {
		ws.logger.LogCacheOperation("get", "chat:"+id, exists, time.Since(start))
	}
	return session, exists
}

// SetChatSession stores a chat session
func (ws *WidgetsStore) SetChatSession(session *chat.Session) {
	ws.mu.Lock()
	ws.chats[session.ID] = session
	ws.mu.Unlock()

	if ws.logger != nil {
		ws.logger.Cache().Debug("Cache operation", "operation", "set", "type", "chat", "sessionId", session.ID)
	}
}

// GetWizard retrieves a live estimator wizard by ID
func (ws *WidgetsStore) GetWizard(id string) (*estimator.Wizard, bool) {
	start := time.Now()
	ws.mu.RLock()
	wizard, exists := ws.wizards[id]
	ws.mu.RUnlock()

	if exists && time.Since(wizard.LastAccessedAt()) > ws.ttls.Wizard {
		ws.mu.Lock()
		delete(ws.wizards, id)
		ws.mu.Unlock()
		exists = false
		wizard = nil
	}

	if ws.logger != nil {
		ws.logger.LogCacheOperation("get", "wizard:"+id, exists, time.Since(start))
	}
	return wizard, exists
}

// SetWizard stores an estimator wizard
func (ws *WidgetsStore) SetWizard(wizard *estimator.Wizard) {
	ws.mu.Lock()
	ws.wizards[wizard.ID] = wizard
	ws.mu.Unlock()

	if ws.logger != nil {
		ws.logger.Cache().Debug("Cache operation", "operation", "set", "type", "wizard", "sessionId", wizard.ID)
	}
}

// GetVoteTally retrieves the tally for one post within a view session
func (ws *WidgetsStore) GetVoteTally(sessionID, postID string) (*votes.Tally, bool) {
	start := time.Now()
	ws.mu.RLock()
	var tally *votes.Tally
	exists := false
	if byPost, ok := ws.tallies[sessionID]; ok {
		tally, exists = byPost[postID]
	}
	ws.mu.RUnlock()

	if exists && time.Since(tally.LastAccessedAt()) > ws.ttls.VoteState {
		ws.mu.Lock()
		delete(ws.tallies[sessionID], postID)
		ws.mu.Unlock()
		exists = false
		tally = nil
	}

	if ws.logger != nil {
		ws.logger.LogCacheOperation("get", "votes:"+sessionID+":"+postID, exists, time.Since(start))
	}
	return tally, exists
}

// SetVoteTally stores the tally for one post within a view session
func (ws *WidgetsStore) SetVoteTally(sessionID string, tally *votes.Tally) {
	ws.mu.Lock()
	byPost := ws.tallies[sessionID]
	if byPost == nil {
		byPost = make(map[string]*votes.Tally)
		ws.tallies[sessionID] = byPost
	}
	byPost[tally.PostID] = tally
	ws.mu.Unlock()

	if ws.logger != nil {
		ws.logger.Cache().Debug("Cache operation", "operation", "set", "type", "votes", "sessionId", sessionID, "postId", tally.PostID)
	}
}

// PurgeExpired drops every entry past its TTL and returns the removal count
func (ws *WidgetsStore) PurgeExpired() int {
	now := time.Now().UTC()
	removed := 0

	ws.mu.Lock()
	defer ws.mu.Unlock()

	for id, session := range ws.chats {
		if now.Sub(session.LastAccessedAt()) > ws.ttls.ChatSession {
			delete(ws.chats, id)
			removed++
		}
	}
	for id, wizard := range ws.wizards {
		if now.Sub(wizard.LastAccessedAt()) > ws.ttls.Wizard {
			delete(ws.wizards, id)
			removed++
		}
	}
	for sessionID, byPost := range ws.tallies {
		for postID, tally := range byPost {
			if now.Sub(tally.LastAccessedAt()) > ws.ttls.VoteState {
				delete(byPost, postID)
				removed++
			}
		}
		if len(byPost) == 0 {
			delete(ws.tallies, sessionID)
		}
	}

	return removed
}

// Counts reports live entries per widget kind for cleanup reporting
func (ws *WidgetsStore) Counts() (chats, wizards, tallies int) {
	ws.mu.RLock()
	defer ws.mu.RUnlock()

	chats = len(ws.chats)
	wizards = len(ws.wizards)
	for _, byPost := range ws.tallies {
		tallies += len(byPost)
	}
	return chats, wizards, tallies
}
