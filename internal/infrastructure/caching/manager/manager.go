// Package manager provides centralized cache operations by delegating to
// specialized stores.
package manager

import (
	"github.com/PixelCraftAgency/pixelcraft-go/internal/domain/entities/chat"
	"github.com/PixelCraftAgency/pixelcraft-go/internal/domain/entities/estimator"
	"github.com/PixelCraftAgency/pixelcraft-go/internal/domain/entities/votes"
	"github.com/PixelCraftAgency/pixelcraft-go/internal/infrastructure/caching/interfaces"
	"github.com/PixelCraftAgency/pixelcraft-go/internal/infrastructure/caching/stores"
	"github.com/PixelCraftAgency/pixelcraft-go/internal/infrastructure/observability/logging"
	"github.com/PixelCraftAgency/pixelcraft-go/pkg/config"
)

// Interface assertion to ensure Manager implements the cache contract.
var _ interfaces.WidgetCache = (*Manager)(nil)

// Manager fronts the widget state stores
type Manager struct {
	widgetsStore *stores.WidgetsStore
	logger       *logging.ChanneledLogger
}

// NewManager wires the stores with TTLs from the central config
func NewManager(logger *logging.ChanneledLogger) *Manager {
	if logger != nil {
		logger.Cache().Info("Initializing cache manager", "stores", []string{"widgets"})
	}

	ttls := stores.TTLs{
		ChatSession: config.ChatSessionTTL,
		Wizard:      config.EstimatorSessionTTL,
		VoteState:   config.VoteStateTTL,
	}

	return &Manager{
		widgetsStore: stores.NewWidgetsStore(ttls, logger),
		logger:       logger,
	}
}

func (m *Manager) GetChatSession(id string) (*chat.Session, bool) {
	return m.widgetsStore.GetChatSession(id)
}

func (m *Manager) SetChatSession(session *chat.Session) {
	m.widgetsStore.SetChatSession(session)
}

func (m *Manager) GetWizard(id string) (*estimator.Wizard, bool) {
	return m.widgetsStore.GetWizard(id)
}

func (m *Manager) SetWizard(wizard *estimator.Wizard) {
	m.widgetsStore.SetWizard(wizard)
}

func (m *Manager) GetVoteTally(sessionID, postID string) (*votes.Tally, bool) {
	return m.widgetsStore.GetVoteTally(sessionID, postID)
}

func (m *Manager) SetVoteTally(sessionID string, tally *votes.Tally) {
	m.widgetsStore.SetVoteTally(sessionID, tally)
}

// PurgeExpired sweeps every store and returns the total removed
func (m *Manager) PurgeExpired() int {
	return m.widgetsStore.PurgeExpired()
}

// Counts reports live entries per widget kind
func (m *Manager) Counts() (chats, wizards, tallies int) {
	return m.widgetsStore.Counts()
}
