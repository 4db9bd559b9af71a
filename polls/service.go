// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package polls

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/danielhkuo/pollboard/auth"
	"github.com/danielhkuo/pollboard/cache"
	"github.com/danielhkuo/pollboard/metrics"
	"github.com/danielhkuo/pollboard/models"
	"github.com/danielhkuo/pollboard/store"
)

// Service implements the poll, vote and admin actions. The caller is read
// from the request context with auth.UserFromContext.
type Service struct {
	polls    *store.PollStore
	votes    *store.VoteStore
	listings cache.ListingCache
	now      func() time.Time

	// bumped on every invalidation; a listing loaded across a bump is not cached
	generation atomic.Uint64
}

func NewService(stores *store.Stores, listings cache.ListingCache) *Service {
	return &Service{
		polls:    stores.Polls,
		votes:    stores.Votes,
		listings: listings,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// CreatePoll stores a poll owned by the caller
func (s *Service) CreatePoll(ctx context.Context, question string, options []string) (*models.Poll, error) {
	in, err := normalizePoll(question, options)
	if err != nil {
		return nil, err
	}

	caller := auth.UserFromContext(ctx)
	if caller == nil {
		return nil, ErrAuth
	}

	now := s.now()
	poll := &models.Poll{
		ID:        auth.NewID(),
		UserID:    caller.ID,
		Question:  in.Question,
		Options:   in.Options,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.polls.Create(ctx, poll); err != nil {
		return nil, backend("create poll", err)
	}

	s.invalidate(ctx, caller.ID)
	metrics.PollsCreated.Inc()
	slog.Info("poll created", "poll_id", poll.ID, "user_id", caller.ID, "options", len(poll.Options))

	return poll, nil
}

// GetUserPolls lists the caller's polls newest first. An anonymous caller
// gets an empty list together with ErrAuth.
func (s *Service) GetUserPolls(ctx context.Context) ([]models.Poll, error) {
	caller := auth.UserFromContext(ctx)
	if caller == nil {
		return []models.Poll{}, ErrAuth
	}

	return s.cachedListing(ctx, cache.UserPollsKey(caller.ID), func(ctx context.Context) ([]models.Poll, error) {
		return s.polls.ListByUser(ctx, caller.ID)
	})
}

func (s *Service) GetPollByID(ctx context.Context, id string) (*models.Poll, error) {
	poll, err := s.polls.Get(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, backend("get poll", err)
	}
	return poll, nil
}

// UpdatePoll replaces question and options. Only the owner or an admin may
// update; anyone else gets ErrPermission and the poll is left unchanged.
// Options that already have votes cannot be dropped from the end of the list.
func (s *Service) UpdatePoll(ctx context.Context, id, question string, options []string) (*models.Poll, error) {
	in, err := normalizePoll(question, options)
	if err != nil {
		return nil, err
	}

	caller := auth.UserFromContext(ctx)
	if caller == nil {
		return nil, ErrAuth
	}

	poll, err := s.GetPollByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !canModify(caller, poll) {
		slog.Warn("poll update denied", "poll_id", id, "user_id", caller.ID, "owner_id", poll.UserID)
		return nil, ErrPermission
	}
	if err := s.keepsVotedOptions(ctx, id, len(in.Options)); err != nil {
		return nil, err
	}

	now := s.now()
	n, err := s.polls.Update(ctx, id, poll.UserID, in.Question, in.Options, now)
	if err != nil {
		return nil, backend("update poll", err)
	}
	if n == 0 {
		// a vote for a dropped option landed after the check, or the poll was deleted
		if err := s.keepsVotedOptions(ctx, id, len(in.Options)); err != nil {
			return nil, err
		}
		return nil, ErrNotFound
	}

	poll.Question = in.Question
	poll.Options = in.Options
	poll.UpdatedAt = now

	s.invalidate(ctx, poll.UserID)
	slog.Info("poll updated", "poll_id", id, "user_id", caller.ID)

	return poll, nil
}

func (s *Service) keepsVotedOptions(ctx context.Context, pollID string, count int) error {
	highest, err := s.votes.MaxOptionIndex(ctx, pollID)
	if err != nil {
		return backend("check votes", err)
	}
	if highest >= count {
		return invalid(fmt.Sprintf("Option %d already has votes and cannot be removed.", highest+1))
	}
	return nil
}

// DeletePoll removes a poll owned by the caller (or any poll, for admins)
func (s *Service) DeletePoll(ctx context.Context, id string) error {
	caller := auth.UserFromContext(ctx)
	if caller == nil {
		return ErrAuth
	}

	poll, err := s.GetPollByID(ctx, id)
	if err != nil {
		return err
	}
	if !canModify(caller, poll) {
		slog.Warn("poll delete denied", "poll_id", id, "user_id", caller.ID, "owner_id", poll.UserID)
		return ErrPermission
	}

	return s.deletePoll(ctx, caller, poll)
}

// GetPollWithResults returns the poll, per-option tallies in option order,
// and the caller's own vote when there is one.
func (s *Service) GetPollWithResults(ctx context.Context, id string) (*models.PollResults, error) {
	poll, err := s.GetPollByID(ctx, id)
	if err != nil {
		return nil, err
	}

	counts, err := s.votes.CountByOption(ctx, id)
	if err != nil {
		return nil, backend("count votes", err)
	}

	results, total := Tally(poll.Options, counts)
	view := &models.PollResults{
		Poll:       *poll,
		Results:    results,
		TotalVotes: total,
	}

	if caller := auth.UserFromContext(ctx); caller != nil {
		view.UserVote, err = s.votes.UserVote(ctx, id, caller.ID)
		if err != nil {
			return nil, backend("get user vote", err)
		}
	}

	return view, nil
}

// SubmitVote records the caller's single vote on a poll. A second vote by
// the same caller yields ErrAlreadyVoted, also under concurrent submission.
// The option index is checked before the insert, so a caller who already
// voted and sends an out-of-range index gets a validation error instead.
func (s *Service) SubmitVote(ctx context.Context, pollID string, optionIndex int) error {
	caller := auth.UserFromContext(ctx)
	if caller == nil {
		return ErrAuth
	}

	poll, err := s.GetPollByID(ctx, pollID)
	if err != nil {
		return err
	}

	if optionIndex < 0 || optionIndex >= len(poll.Options) {
		metrics.Votes.WithLabelValues(metrics.VoteInvalidOption).Inc()
		return invalid("Invalid option selected.")
	}

	vote := &models.Vote{
		ID:          auth.NewID(),
		PollID:      pollID,
		UserID:      caller.ID,
		OptionIndex: optionIndex,
		CreatedAt:   s.now(),
	}
	err = s.votes.Insert(ctx, vote)
	if errors.Is(err, store.ErrDuplicate) {
		metrics.Votes.WithLabelValues(metrics.VoteAlreadyVoted).Inc()
		return ErrAlreadyVoted
	}
	if err != nil {
		return backend("submit vote", err)
	}

	metrics.Votes.WithLabelValues(metrics.VoteAccepted).Inc()
	slog.Info("vote submitted", "poll_id", pollID, "user_id", caller.ID, "option_index", optionIndex)

	return nil
}

// GetAllPolls lists every poll newest first. Admin only.
func (s *Service) GetAllPolls(ctx context.Context) ([]models.Poll, error) {
	if _, err := requireAdmin(ctx); err != nil {
		return []models.Poll{}, err
	}

	return s.cachedListing(ctx, cache.AllPollsKey, s.polls.ListAll)
}

// AdminDeletePoll deletes any poll regardless of owner. Admin only.
func (s *Service) AdminDeletePoll(ctx context.Context, id string) error {
	caller, err := requireAdmin(ctx)
	if err != nil {
		return err
	}

	poll, err := s.GetPollByID(ctx, id)
	if err != nil {
		return err
	}

	return s.deletePoll(ctx, caller, poll)
}

func (s *Service) deletePoll(ctx context.Context, caller *models.User, poll *models.Poll) error {
	n, err := s.polls.Delete(ctx, poll.ID)
	if err != nil {
		return backend("delete poll", err)
	}
	if n == 0 {
		return ErrNotFound
	}

	by := "owner"
	if caller.ID != poll.UserID {
		by = models.RoleAdmin
	}
	metrics.PollsDeleted.WithLabelValues(by).Inc()

	s.invalidate(ctx, poll.UserID)
	slog.Info("poll deleted", "poll_id", poll.ID, "user_id", caller.ID, "by", by)

	return nil
}

func requireAdmin(ctx context.Context) (*models.User, error) {
	caller := auth.UserFromContext(ctx)
	if caller == nil {
		return nil, ErrAuth
	}
	if !caller.IsAdmin() {
		return nil, ErrPermission
	}
	return caller, nil
}

func canModify(caller *models.User, poll *models.Poll) bool {
	return caller.ID == poll.UserID || caller.IsAdmin()
}

// cachedListing serves key from the listing cache, loading and filling it
// on a miss. Cache failures are logged and never fail the request.
// A load that overlaps an invalidation in this process is returned but not
// cached. Other processes sharing a redis cache can still write a stale
// listing back, bounded by the cache TTL.
func (s *Service) cachedListing(ctx context.Context, key string, load func(context.Context) ([]models.Poll, error)) ([]models.Poll, error) {
	gen := s.generation.Load()
	polls, ok, err := s.listings.Get(ctx, key)
	switch {
	case err != nil:
		metrics.CacheLookups.WithLabelValues(metrics.CacheError).Inc()
		slog.Warn("listing cache read failed", "key", key, "error", err)
	case ok:
		metrics.CacheLookups.WithLabelValues(metrics.CacheHit).Inc()
		return polls, nil
	default:
		metrics.CacheLookups.WithLabelValues(metrics.CacheMiss).Inc()
	}

	polls, err = load(ctx)
	if err != nil {
		return []models.Poll{}, backend("list polls", err)
	}

	if s.generation.Load() != gen {
		return polls, nil
	}
	if err := s.listings.Set(ctx, key, polls); err != nil {
		slog.Warn("listing cache write failed", "key", key, "error", err)
	}
	return polls, nil
}

func (s *Service) invalidate(ctx context.Context, ownerID string) {
	s.generation.Add(1)
	if err := s.listings.Delete(ctx, cache.UserPollsKey(ownerID), cache.AllPollsKey); err != nil {
		slog.Warn("listing cache invalidation failed", "owner_id", ownerID, "error", err)
	}
}
