// Package interfaces defines cache operation contracts for widget state.
package interfaces

import (
	"github.com/PixelCraftAgency/pixelcraft-go/internal/domain/entities/chat"
	"github.com/PixelCraftAgency/pixelcraft-go/internal/domain/entities/estimator"
	"github.com/PixelCraftAgency/pixelcraft-go/internal/domain/entities/votes"
)

// WidgetCache defines operations for per-session widget state
type WidgetCache interface {
	GetChatSession(id string) (*chat.Session, bool)
	SetChatSession(session *chat.Session)
	GetWizard(id string) (*estimator.Wizard, bool)
	SetWizard(wizard *estimator.Wizard)
	GetVoteTally(sessionID, postID string) (*votes.Tally, bool)
	SetVoteTally(sessionID string, tally *votes.Tally)
	PurgeExpired() int
}
