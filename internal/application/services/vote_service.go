package services

import (
	"fmt"
	"math/rand"

	"github.com/PixelCraftAgency/pixelcraft-go/internal/domain/entities/votes"
	"github.com/PixelCraftAgency/pixelcraft-go/internal/infrastructure/caching/manager"
	"github.com/PixelCraftAgency/pixelcraft-go/internal/infrastructure/observability/logging"
)

// VoteService manages per-view like/dislike tallies for blog posts.
// Tallies are scoped to the visitor session and seeded with display
// counts on first access, so every page view starts from a fresh state.
type VoteService struct {
	content *ContentService
	cache   *manager.Manager
	logger  *logging.ChanneledLogger
}

func NewVoteService(content *ContentService, cache *manager.Manager, logger *logging.ChanneledLogger) *VoteService {
	return &VoteService{
		content: content,
		cache:   cache,
		logger:  logger,
	}
}

// GetTally returns the session's tally for a post, creating and seeding
// it on first access. Unknown post IDs are an error.
func (s *VoteService) GetTally(sessionID, postID string) (*votes.Tally, error) {
	if s.content.BlogPostByID(postID) == nil {
		return nil, fmt.Errorf("blog post not found: %s", postID)
	}

	tally, found := s.cache.GetVoteTally(sessionID, postID)
	if found {
		return tally, nil
	}

	tally = votes.NewTally(postID, 10+rand.Intn(40), rand.Intn(5))
	s.cache.SetVoteTally(sessionID, tally)
	s.logger.Cache().Debug("Vote tally seeded", "sessionId", sessionID, "postId", postID)
	return tally, nil
}

// Cast applies a like or dislike with toggle semantics: repeating the
// active vote retracts it, switching moves exactly one unit each way.
func (s *VoteService) Cast(sessionID, postID string, vote votes.VoteType) (*votes.Tally, error) {
	if vote != votes.VoteLike && vote != votes.VoteDislike {
		return nil, fmt.Errorf("invalid vote type: %s", vote)
	}

	tally, err := s.GetTally(sessionID, postID)
	if err != nil {
		return nil, err
	}

	tally.Cast(vote)
	likes, dislikes, active := tally.Counts()
	s.logger.Cache().Debug("Vote cast",
		"sessionId", sessionID,
		"postId", postID,
		"likes", likes,
		"dislikes", dislikes,
		"active", string(active))
	return tally, nil
}
