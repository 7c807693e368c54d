package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PixelCraftAgency/pixelcraft-go/internal/domain/entities/votes"
)

func newTestVotes(t *testing.T) *VoteService {
	t.Helper()
	return NewVoteService(newTestContent(t), newTestCache(t), newTestLogger(t))
}

func TestVoteTallySeededWithinRange(t *testing.T) {
	svc := newTestVotes(t)

	tally, err := svc.GetTally("view-1", "first-post")
	require.NoError(t, err)

	likes, dislikes, active := tally.Counts()
	assert.GreaterOrEqual(t, likes, 10)
	assert.Less(t, likes, 50)
	assert.GreaterOrEqual(t, dislikes, 0)
	assert.Less(t, dislikes, 5)
	assert.Equal(t, votes.VoteNone, active)
}

func TestVoteTallyIsPerView(t *testing.T) {
	svc := newTestVotes(t)

	first, err := svc.GetTally("view-1", "first-post")
	require.NoError(t, err)
	second, err := svc.GetTally("view-2", "first-post")
	require.NoError(t, err)

	assert.NotSame(t, first, second, "each view gets its own tally")

	again, err := svc.GetTally("view-1", "first-post")
	require.NoError(t, err)
	assert.Same(t, first, again, "repeat access within a view reuses the tally")
}

func TestVoteToggleThroughService(t *testing.T) {
	svc := newTestVotes(t)

	tally, err := svc.GetTally("view-1", "first-post")
	require.NoError(t, err)
	seededLikes, _, _ := tally.Counts()

	_, err = svc.Cast("view-1", "first-post", votes.VoteLike)
	require.NoError(t, err)
	likes, _, active := tally.Counts()
	assert.Equal(t, seededLikes+1, likes)
	assert.Equal(t, votes.VoteLike, active)

	_, err = svc.Cast("view-1", "first-post", votes.VoteLike)
	require.NoError(t, err)
	likes, _, active = tally.Counts()
	assert.Equal(t, seededLikes, likes)
	assert.Equal(t, votes.VoteNone, active)
}

func TestVoteUnknownPostOrType(t *testing.T) {
	svc := newTestVotes(t)

	_, err := svc.GetTally("view-1", "no-such-post")
	assert.Error(t, err)

	_, err = svc.Cast("view-1", "first-post", votes.VoteType("meh"))
	assert.Error(t, err)
}
