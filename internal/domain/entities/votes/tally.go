// Package votes defines the ephemeral like/dislike tally attached to a blog
// post view. Counts are seeded per view and never persisted.
package votes

import (
	"sync"
	"time"
)

// VoteType is the kind of vote a reader can hold, at most one at a time
type VoteType string

const (
	VoteLike    VoteType = "like"
	VoteDislike VoteType = "dislike"
	VoteNone    VoteType = ""
)

// Tally tracks counters and the reader's own active vote for one post view
type Tally struct {
	PostID    string
	CreatedAt time.Time

	mu           sync.Mutex
	lastAccessed time.Time
	likes        int
	dislikes     int
	active       VoteType
}

// NewTally seeds a fresh tally; seedLikes is a presentational starting count
func NewTally(postID string, seedLikes, seedDislikes int) *Tally {
	now := time.Now().UTC()
	return &Tally{
		PostID:       postID,
		CreatedAt:    now,
		lastAccessed: now,
		likes:        seedLikes,
		dislikes:     seedDislikes,
	}
}

// Counts returns the current counters and the reader's active vote
func (t *Tally) Counts() (likes, dislikes int, active VoteType) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.likes, t.dislikes, t.active
}

// Cast applies a vote. Repeating the active vote retracts it; switching
// retracts the old vote and applies the new one in the same step, so exactly
// one unit ever moves between counters.
func (t *Tally) Cast(vote VoteType) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if vote != VoteLike && vote != VoteDislike {
		return
	}

	if t.active == vote {
		t.decrement(vote)
		t.active = VoteNone
	} else {
		if t.active != VoteNone {
			t.decrement(t.active)
		}
		t.increment(vote)
		t.active = vote
	}
	t.lastAccessed = time.Now().UTC()
}

// Touch refreshes the last-access timestamp used for TTL expiry
func (t *Tally) Touch() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.lastAccessed = time.Now().UTC()
}

// LastAccessedAt reports when the tally was last voted on
func (t *Tally) LastAccessedAt() time.Time {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.lastAccessed
}

func (t *Tally) increment(vote VoteType) {
	if vote == VoteLike {
		t.likes++
	} else {
		t.dislikes++
	}
}

func (t *Tally) decrement(vote VoteType) {
	if vote == VoteLike {
		t.likes--
	} else {
		t.dislikes--
	}
}
