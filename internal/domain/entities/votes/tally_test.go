package votes

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTallyFirstVoteIncrements(t *testing.T) {
	tally := NewTally("post-1", 20, 2)

	tally.Cast(VoteLike)
	likes, dislikes, active := tally.Counts()
	assert.Equal(t, 21, likes)
	assert.Equal(t, 2, dislikes)
	assert.Equal(t, VoteLike, active)
}

func TestTallySameVoteRetracts(t *testing.T) {
	tally := NewTally("post-1", 20, 2)

	tally.Cast(VoteLike)
	tally.Cast(VoteLike)

	likes, dislikes, active := tally.Counts()
	assert.Equal(t, 20, likes, "repeating the active vote returns to the seeded count")
	assert.Equal(t, 2, dislikes)
	assert.Equal(t, VoteNone, active)
}

func TestTallySwitchMovesOneUnitEachWay(t *testing.T) {
	tally := NewTally("post-1", 20, 2)

	tally.Cast(VoteLike)
	tally.Cast(VoteDislike)

	likes, dislikes, active := tally.Counts()
	assert.Equal(t, 20, likes)
	assert.Equal(t, 3, dislikes)
	assert.Equal(t, VoteDislike, active)
}

func TestTallyNeverGoesNegative(t *testing.T) {
	tally := NewTally("post-1", 0, 0)

	tally.Cast(VoteDislike)
	tally.Cast(VoteDislike)

	likes, dislikes, active := tally.Counts()
	assert.Equal(t, 0, likes)
	assert.Equal(t, 0, dislikes)
	assert.Equal(t, VoteNone, active)
}
