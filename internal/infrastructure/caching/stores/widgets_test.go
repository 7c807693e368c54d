package stores

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PixelCraftAgency/pixelcraft-go/internal/domain/entities/chat"
	"github.com/PixelCraftAgency/pixelcraft-go/internal/domain/entities/estimator"
	"github.com/PixelCraftAgency/pixelcraft-go/internal/domain/entities/votes"
)

func testTTLs(d time.Duration) TTLs {
	return TTLs{ChatSession: d, Wizard: d, VoteState: d}
}

func TestStoreRoundTrip(t *testing.T) {
	ws := NewWidgetsStore(testTTLs(time.Hour), nil)

	session := chat.NewSession("sess-1", chat.ModeLocalOnly)
	ws.SetChatSession(session)

	got, found := ws.GetChatSession("sess-1")
	require.True(t, found)
	assert.Same(t, session, got)

	_, found = ws.GetChatSession("sess-2")
	assert.False(t, found)
}

func TestExpiredEntriesAreEvictedOnRead(t *testing.T) {
	ws := NewWidgetsStore(testTTLs(time.Nanosecond), nil)

	ws.SetChatSession(chat.NewSession("sess-1", chat.ModeLocalOnly))
	time.Sleep(time.Millisecond)

	_, found := ws.GetChatSession("sess-1")
	assert.False(t, found, "stale entries are dropped lazily on access")
}

func TestVoteTalliesAreScopedToSession(t *testing.T) {
	ws := NewWidgetsStore(testTTLs(time.Hour), nil)

	ws.SetVoteTally("view-1", votes.NewTally("post-1", 5, 1))
	ws.SetVoteTally("view-2", votes.NewTally("post-1", 8, 0))

	first, found := ws.GetVoteTally("view-1", "post-1")
	require.True(t, found)
	second, found := ws.GetVoteTally("view-2", "post-1")
	require.True(t, found)
	assert.NotSame(t, first, second)

	_, found = ws.GetVoteTally("view-1", "post-2")
	assert.False(t, found)
}

func TestPurgeExpiredSweepsAllKinds(t *testing.T) {
	ws := NewWidgetsStore(testTTLs(time.Nanosecond), nil)

	ws.SetChatSession(chat.NewSession("sess-1", chat.ModeLocalOnly))
	ws.SetWizard(estimator.NewWizard("wiz-1", &estimator.Definition{}))
	ws.SetVoteTally("view-1", votes.NewTally("post-1", 5, 1))
	time.Sleep(time.Millisecond)

	assert.Equal(t, 3, ws.PurgeExpired())

	chats, wizards, tallies := ws.Counts()
	assert.Zero(t, chats)
	assert.Zero(t, wizards)
	assert.Zero(t, tallies)
}

func TestPurgeKeepsLiveEntries(t *testing.T) {
	ws := NewWidgetsStore(testTTLs(time.Hour), nil)

	ws.SetChatSession(chat.NewSession("sess-1", chat.ModeLocalOnly))
	ws.SetWizard(estimator.NewWizard("wiz-1", &estimator.Definition{}))

	assert.Zero(t, ws.PurgeExpired())
	chats, wizards, _ := ws.Counts()
	assert.Equal(t, 1, chats)
	assert.Equal(t, 1, wizards)
}

func TestConcurrentWritesAndTTLReads(t *testing.T) {
	ws := NewWidgetsStore(testTTLs(time.Hour), nil)

	session := chat.NewSession("sess-1", chat.ModeLocalOnly)
	ws.SetChatSession(session)
	wizard := estimator.NewWizard("wiz-1", &estimator.Definition{})
	ws.SetWizard(wizard)
	tally := votes.NewTally("post-1", 10, 0)
	ws.SetVoteTally("view-1", tally)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 200; i++ {
			session.Append("m", "hello", chat.SenderUser)
			wizard.Touch()
			tally.Cast(votes.VoteLike)
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 200; i++ {
			ws.GetChatSession("sess-1")
			ws.GetWizard("wiz-1")
			ws.GetVoteTally("view-1", "post-1")
			ws.PurgeExpired()
		}
	}()
	wg.Wait()

	_, found := ws.GetChatSession("sess-1")
	assert.True(t, found)
}
