package chat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionAppendPreservesOrder(t *testing.T) {
	s := NewSession("sess-1", ModeRemoteEligible)

	s.Append("m1", "hello", SenderUser)
	s.Append("m2", "hi there", SenderAssistant)
	s.Append("m3", "what do you charge?", SenderUser)

	messages := s.Messages()
	require.Len(t, messages, 3)
	assert.Equal(t, SenderUser, messages[0].Sender)
	assert.Equal(t, SenderAssistant, messages[1].Sender)
	assert.Equal(t, "what do you charge?", messages[2].Text)
}

func TestSessionModeIsMonotonic(t *testing.T) {
	s := NewSession("sess-2", ModeRemoteEligible)
	assert.Equal(t, ModeRemoteEligible, s.Mode())

	s.EngageLocalMode()
	assert.Equal(t, ModeLocalOnly, s.Mode())

	// There is no way back; repeated engagement is a no-op.
	s.EngageLocalMode()
	assert.Equal(t, ModeLocalOnly, s.Mode())
}

func TestSessionMessagesReturnsSnapshot(t *testing.T) {
	s := NewSession("sess-3", ModeLocalOnly)
	s.Append("m1", "first", SenderUser)

	snapshot := s.Messages()
	s.Append("m2", "second", SenderAssistant)

	assert.Len(t, snapshot, 1)
	assert.Len(t, s.Messages(), 2)
}
