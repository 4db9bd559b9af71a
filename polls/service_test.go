// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package polls

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/danielhkuo/pollboard/cache"
	"github.com/danielhkuo/pollboard/models"
	"github.com/danielhkuo/pollboard/store"
	"github.com/danielhkuo/pollboard/testutil"
)

type fixture struct {
	db    *sql.DB
	svc   *Service
	cache *cache.Memory
	alice *models.User
	bob   *models.User
	admin *models.User
}

func setup(t *testing.T) *fixture {
	t.Helper()

	db := testutil.SetupTestDB(t)
	listings := cache.NewMemory(time.Minute)
	f := &fixture{
		db:    db,
		svc:   NewService(store.New(db), listings),
		cache: listings,
		alice: testutil.CreateTestUser(t, db, "alice@example.com", models.RoleUser),
		bob:   testutil.CreateTestUser(t, db, "bob@example.com", models.RoleUser),
		admin: testutil.CreateTestUser(t, db, "admin@example.com", models.RoleAdmin),
	}
	return f
}

func as(u *models.User) context.Context {
	return testutil.WithCaller(context.Background(), u)
}

func TestCreatePoll(t *testing.T) {
	f := setup(t)

	tests := []struct {
		name     string
		ctx      context.Context
		question string
		options  []string
		wantErr  error
	}{
		{"valid", as(f.alice), "Pick one", []string{"X", "Y"}, nil},
		{"blank options dropped", as(f.alice), "Pick one", []string{"X", "", "  ", "Y"}, nil},
		{"missing question", as(f.alice), "  ", []string{"X", "Y"}, ErrValidation},
		{"one option", as(f.alice), "Pick one", []string{"X"}, ErrValidation},
		{"one non-empty option", as(f.alice), "Pick one", []string{"X", "", " "}, ErrValidation},
		{"no options", as(f.alice), "Pick one", nil, ErrValidation},
		{"unauthenticated", context.Background(), "Pick one", []string{"X", "Y"}, ErrAuth},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			poll, err := f.svc.CreatePoll(tt.ctx, tt.question, tt.options)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("CreatePoll() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("CreatePoll() error = %v", err)
			}
			if poll.UserID != f.alice.ID {
				t.Errorf("expected owner %s, got %s", f.alice.ID, poll.UserID)
			}
			if len(poll.Options) != 2 || poll.Options[0] != "X" || poll.Options[1] != "Y" {
				t.Errorf("unexpected options %v", poll.Options)
			}

			stored, err := f.svc.GetPollByID(context.Background(), poll.ID)
			if err != nil {
				t.Fatalf("GetPollByID() error = %v", err)
			}
			if stored.Question != "Pick one" {
				t.Errorf("expected question to be stored, got %q", stored.Question)
			}
		})
	}
}

func TestCreatePoll_ValidationMessage(t *testing.T) {
	f := setup(t)

	_, err := f.svc.CreatePoll(as(f.alice), "", []string{"X", "Y"})
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %T", err)
	}
	if verr.Message != "Please provide a question and at least two options." {
		t.Errorf("unexpected message %q", verr.Message)
	}
}

func TestGetUserPolls(t *testing.T) {
	f := setup(t)
	base := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	older := testutil.CreateTestPoll(t, f.db, f.alice.ID, "Older", []string{"A", "B"}, base)
	newer := testutil.CreateTestPoll(t, f.db, f.alice.ID, "Newer", []string{"A", "B"}, base.Add(time.Hour))
	testutil.CreateTestPoll(t, f.db, f.bob.ID, "Bob's", []string{"A", "B"}, base.Add(2*time.Hour))

	polls, err := f.svc.GetUserPolls(as(f.alice))
	if err != nil {
		t.Fatalf("GetUserPolls() error = %v", err)
	}
	if len(polls) != 2 {
		t.Fatalf("expected 2 polls, got %d", len(polls))
	}
	if polls[0].ID != newer || polls[1].ID != older {
		t.Errorf("expected newest first, got %s then %s", polls[0].Question, polls[1].Question)
	}

	t.Run("unauthenticated returns empty list and ErrAuth", func(t *testing.T) {
		polls, err := f.svc.GetUserPolls(context.Background())
		if !errors.Is(err, ErrAuth) {
			t.Errorf("expected ErrAuth, got %v", err)
		}
		if polls == nil || len(polls) != 0 {
			t.Errorf("expected empty non-nil list, got %v", polls)
		}
	})
}

func TestGetUserPolls_CacheInvalidatedOnCreate(t *testing.T) {
	f := setup(t)
	ctx := as(f.alice)

	polls, err := f.svc.GetUserPolls(ctx)
	if err != nil || len(polls) != 0 {
		t.Fatalf("expected empty listing, got %v, %v", polls, err)
	}
	if _, ok, _ := f.cache.Get(ctx, cache.UserPollsKey(f.alice.ID)); !ok {
		t.Fatal("expected listing to be cached after first read")
	}

	if _, err := f.svc.CreatePoll(ctx, "Lunch?", []string{"Pizza", "Sushi"}); err != nil {
		t.Fatalf("CreatePoll() error = %v", err)
	}
	if _, ok, _ := f.cache.Get(ctx, cache.UserPollsKey(f.alice.ID)); ok {
		t.Error("expected create to invalidate the owner's listing")
	}

	polls, err = f.svc.GetUserPolls(ctx)
	if err != nil {
		t.Fatalf("GetUserPolls() error = %v", err)
	}
	if len(polls) != 1 {
		t.Errorf("expected fresh listing with 1 poll, got %d", len(polls))
	}
}

func TestGetPollByID_NotFound(t *testing.T) {
	f := setup(t)

	_, err := f.svc.GetPollByID(context.Background(), "missing")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestUpdatePoll(t *testing.T) {
	f := setup(t)
	pollID := testutil.CreateTestPoll(t, f.db, f.alice.ID, "Pick one", []string{"X", "Y"}, time.Now())

	t.Run("owner updates", func(t *testing.T) {
		poll, err := f.svc.UpdatePoll(as(f.alice), pollID, "Pick again", []string{"X", "Y", "Z"})
		if err != nil {
			t.Fatalf("UpdatePoll() error = %v", err)
		}
		if poll.Question != "Pick again" || len(poll.Options) != 3 {
			t.Errorf("unexpected updated poll %+v", poll)
		}
	})

	t.Run("non-owner is denied and nothing changes", func(t *testing.T) {
		_, err := f.svc.UpdatePoll(as(f.bob), pollID, "Hijacked", []string{"A", "B"})
		if !errors.Is(err, ErrPermission) {
			t.Fatalf("expected ErrPermission, got %v", err)
		}
		stored, _ := f.svc.GetPollByID(context.Background(), pollID)
		if stored.Question != "Pick again" {
			t.Errorf("poll was mutated by non-owner: %q", stored.Question)
		}
	})

	t.Run("admin may update", func(t *testing.T) {
		if _, err := f.svc.UpdatePoll(as(f.admin), pollID, "Moderated", []string{"X", "Y"}); err != nil {
			t.Fatalf("UpdatePoll() by admin error = %v", err)
		}
		stored, _ := f.svc.GetPollByID(context.Background(), pollID)
		if stored.UserID != f.alice.ID {
			t.Errorf("admin update must not change ownership")
		}
	})

	t.Run("validation", func(t *testing.T) {
		_, err := f.svc.UpdatePoll(as(f.alice), pollID, "Q", []string{"only"})
		if !errors.Is(err, ErrValidation) {
			t.Errorf("expected ErrValidation, got %v", err)
		}
	})

	t.Run("unauthenticated", func(t *testing.T) {
		_, err := f.svc.UpdatePoll(context.Background(), pollID, "Q", []string{"A", "B"})
		if !errors.Is(err, ErrAuth) {
			t.Errorf("expected ErrAuth, got %v", err)
		}
	})

	t.Run("missing poll", func(t *testing.T) {
		_, err := f.svc.UpdatePoll(as(f.alice), "missing", "Q", []string{"A", "B"})
		if !errors.Is(err, ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})
}

func TestUpdatePoll_KeepsVotedOptions(t *testing.T) {
	f := setup(t)
	pollID := testutil.CreateTestPoll(t, f.db, f.alice.ID, "Pick one", []string{"A", "B", "C"}, time.Now())
	testutil.CastTestVote(t, f.db, pollID, f.bob.ID, 2)

	_, err := f.svc.UpdatePoll(as(f.alice), pollID, "Pick one", []string{"A", "B"})
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError when dropping a voted option, got %v", err)
	}
	if verr.Message != "Option 3 already has votes and cannot be removed." {
		t.Errorf("unexpected message %q", verr.Message)
	}

	view, err := f.svc.GetPollWithResults(as(f.bob), pollID)
	if err != nil {
		t.Fatalf("GetPollWithResults() error = %v", err)
	}
	if len(view.Poll.Options) != 3 || view.TotalVotes != 1 {
		t.Errorf("poll changed by a rejected update: options=%v total=%d", view.Poll.Options, view.TotalVotes)
	}
	if view.UserVote == nil || *view.UserVote != 2 {
		t.Errorf("expected bob's vote to stay on option 2, got %v", view.UserVote)
	}

	// relabelling and appending keep every voted index valid
	if _, err := f.svc.UpdatePoll(as(f.alice), pollID, "Pick one", []string{"X", "Y", "Z", "W"}); err != nil {
		t.Fatalf("UpdatePoll() appending an option error = %v", err)
	}
	if _, err := f.svc.UpdatePoll(as(f.admin), pollID, "Pick one", []string{"X", "Y", "Z"}); err != nil {
		t.Fatalf("UpdatePoll() dropping an unvoted option error = %v", err)
	}
}

func TestDeletePoll(t *testing.T) {
	f := setup(t)
	pollID := testutil.CreateTestPoll(t, f.db, f.alice.ID, "Pick one", []string{"X", "Y"}, time.Now())
	testutil.CastTestVote(t, f.db, pollID, f.bob.ID, 0)

	if err := f.svc.DeletePoll(context.Background(), pollID); !errors.Is(err, ErrAuth) {
		t.Errorf("expected ErrAuth, got %v", err)
	}
	if err := f.svc.DeletePoll(as(f.bob), pollID); !errors.Is(err, ErrPermission) {
		t.Errorf("expected ErrPermission for non-owner, got %v", err)
	}
	if err := f.svc.DeletePoll(as(f.alice), pollID); err != nil {
		t.Fatalf("DeletePoll() by owner error = %v", err)
	}
	if err := f.svc.DeletePoll(as(f.alice), pollID); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound on second delete, got %v", err)
	}

	if n := testutil.CountRows(t, f.db, `SELECT COUNT(*) FROM vote WHERE poll_id = $1`, pollID); n != 0 {
		t.Errorf("expected votes to be deleted with the poll, found %d", n)
	}
}

// User A creates a poll, user B votes for option 1.
func TestVotingScenario(t *testing.T) {
	f := setup(t)

	poll, err := f.svc.CreatePoll(as(f.alice), "Pick one", []string{"X", "Y"})
	if err != nil {
		t.Fatalf("CreatePoll() error = %v", err)
	}
	if err := f.svc.SubmitVote(as(f.bob), poll.ID, 1); err != nil {
		t.Fatalf("SubmitVote() error = %v", err)
	}

	bobView, err := f.svc.GetPollWithResults(as(f.bob), poll.ID)
	if err != nil {
		t.Fatalf("GetPollWithResults() error = %v", err)
	}
	want := []models.OptionResult{
		{Index: 0, Text: "X", Votes: 0, Percentage: 0},
		{Index: 1, Text: "Y", Votes: 1, Percentage: 100},
	}
	if len(bobView.Results) != len(want) {
		t.Fatalf("expected %d results, got %d", len(want), len(bobView.Results))
	}
	for i := range want {
		if bobView.Results[i] != want[i] {
			t.Errorf("result %d = %+v, want %+v", i, bobView.Results[i], want[i])
		}
	}
	if bobView.TotalVotes != 1 {
		t.Errorf("expected total 1, got %d", bobView.TotalVotes)
	}
	if bobView.UserVote == nil || *bobView.UserVote != 1 {
		t.Errorf("expected B's vote to be 1, got %v", bobView.UserVote)
	}

	aliceView, err := f.svc.GetPollWithResults(as(f.alice), poll.ID)
	if err != nil {
		t.Fatalf("GetPollWithResults() error = %v", err)
	}
	if aliceView.UserVote != nil {
		t.Errorf("expected A's vote to be nil, got %d", *aliceView.UserVote)
	}

	anonView, err := f.svc.GetPollWithResults(context.Background(), poll.ID)
	if err != nil {
		t.Fatalf("GetPollWithResults() anonymous error = %v", err)
	}
	if anonView.UserVote != nil {
		t.Error("expected no user vote for anonymous caller")
	}
}

func TestGetPollWithResults_NoVotes(t *testing.T) {
	f := setup(t)
	pollID := testutil.CreateTestPoll(t, f.db, f.alice.ID, "Q", []string{"A", "B", "C"}, time.Now())

	view, err := f.svc.GetPollWithResults(context.Background(), pollID)
	if err != nil {
		t.Fatalf("GetPollWithResults() error = %v", err)
	}
	if view.TotalVotes != 0 {
		t.Errorf("expected total 0, got %d", view.TotalVotes)
	}
	for _, r := range view.Results {
		if r.Percentage != 0 {
			t.Errorf("expected 0%% for option %d, got %d", r.Index, r.Percentage)
		}
	}

	if _, err := f.svc.GetPollWithResults(context.Background(), "missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestSubmitVote_Errors(t *testing.T) {
	f := setup(t)
	pollID := testutil.CreateTestPoll(t, f.db, f.alice.ID, "Q", []string{"A", "B"}, time.Now())

	tests := []struct {
		name    string
		ctx     context.Context
		pollID  string
		index   int
		wantErr error
	}{
		{"unauthenticated", context.Background(), pollID, 0, ErrAuth},
		{"missing poll", as(f.bob), "missing", 0, ErrNotFound},
		{"negative index", as(f.bob), pollID, -1, ErrValidation},
		{"index past end", as(f.bob), pollID, 2, ErrValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := f.svc.SubmitVote(tt.ctx, tt.pollID, tt.index)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("SubmitVote() error = %v, want %v", err, tt.wantErr)
			}
		})
	}

	if n := testutil.CountRows(t, f.db, `SELECT COUNT(*) FROM vote`); n != 0 {
		t.Errorf("failed submissions must not create rows, found %d", n)
	}

	if err := f.svc.SubmitVote(as(f.bob), pollID, 0); err != nil {
		t.Fatalf("first vote error = %v", err)
	}
	if err := f.svc.SubmitVote(as(f.bob), pollID, 1); !errors.Is(err, ErrAlreadyVoted) {
		t.Errorf("expected ErrAlreadyVoted, got %v", err)
	}
}

func TestSubmitVote_OptionCheckedBeforeDuplicate(t *testing.T) {
	f := setup(t)
	pollID := testutil.CreateTestPoll(t, f.db, f.alice.ID, "Q", []string{"A", "B"}, time.Now())

	if err := f.svc.SubmitVote(as(f.bob), pollID, 0); err != nil {
		t.Fatalf("first vote error = %v", err)
	}
	if err := f.svc.SubmitVote(as(f.bob), pollID, 5); !errors.Is(err, ErrValidation) {
		t.Errorf("expected ErrValidation for an out-of-range repeat vote, got %v", err)
	}

	view, err := f.svc.GetPollWithResults(as(f.bob), pollID)
	if err != nil {
		t.Fatalf("GetPollWithResults() error = %v", err)
	}
	if view.UserVote == nil || *view.UserVote != 0 || view.TotalVotes != 1 {
		t.Errorf("stored vote changed: user_vote=%v total=%d", view.UserVote, view.TotalVotes)
	}
}

// The duplicate decision comes from the insert itself; there is no
// existence query before it.
func TestSubmitVote_DuplicateFromInsert(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New() error = %v", err)
	}
	defer db.Close()

	svc := NewService(store.New(db), cache.NewMemory(time.Minute))
	bob := &models.User{ID: "u-bob", Email: "bob@example.com", Role: models.RoleUser}
	now := time.Now()
	pollCols := []string{"id", "user_id", "question", "options", "created_at", "updated_at"}

	for _, affected := range []int64{1, 0} {
		mock.ExpectQuery(regexp.QuoteMeta("FROM poll WHERE id = $1")).
			WithArgs("p1").
			WillReturnRows(sqlmock.NewRows(pollCols).AddRow("p1", "u-alice", "Q", `["A","B"]`, now, now))
		mock.ExpectExec(regexp.QuoteMeta("ON CONFLICT (poll_id, user_id) DO NOTHING")).
			WithArgs(sqlmock.AnyArg(), "p1", "u-bob", 1, sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, affected))
	}

	if err := svc.SubmitVote(as(bob), "p1", 1); err != nil {
		t.Fatalf("first vote error = %v", err)
	}
	if err := svc.SubmitVote(as(bob), "p1", 1); !errors.Is(err, ErrAlreadyVoted) {
		t.Errorf("expected ErrAlreadyVoted when the insert affects no rows, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

// Concurrent submissions by one user for one poll commit exactly one vote
func TestSubmitVote_ConcurrentSameUser(t *testing.T) {
	f := setup(t)
	pollID := testutil.CreateTestPoll(t, f.db, f.alice.ID, "Q", []string{"A", "B", "C"}, time.Now())

	const attempts = 10
	var accepted, rejected atomic.Int32
	var wg sync.WaitGroup

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			err := f.svc.SubmitVote(as(f.bob), pollID, idx%3)
			switch {
			case err == nil:
				accepted.Add(1)
			case errors.Is(err, ErrAlreadyVoted):
				rejected.Add(1)
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}(i)
	}
	wg.Wait()

	if accepted.Load() != 1 {
		t.Errorf("expected exactly 1 accepted vote, got %d", accepted.Load())
	}
	if rejected.Load() != attempts-1 {
		t.Errorf("expected %d rejected votes, got %d", attempts-1, rejected.Load())
	}
	n := testutil.CountRows(t, f.db, `SELECT COUNT(*) FROM vote WHERE poll_id = $1 AND user_id = $2`, pollID, f.bob.ID)
	if n != 1 {
		t.Errorf("expected 1 stored vote, got %d", n)
	}
}

func TestAdminActions(t *testing.T) {
	f := setup(t)
	base := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	alicePoll := testutil.CreateTestPoll(t, f.db, f.alice.ID, "Alice's", []string{"A", "B"}, base)
	bobPoll := testutil.CreateTestPoll(t, f.db, f.bob.ID, "Bob's", []string{"A", "B"}, base.Add(time.Minute))

	t.Run("non-admin is refused", func(t *testing.T) {
		polls, err := f.svc.GetAllPolls(as(f.alice))
		if !errors.Is(err, ErrPermission) {
			t.Errorf("GetAllPolls() error = %v, want ErrPermission", err)
		}
		if len(polls) != 0 {
			t.Errorf("expected no polls for non-admin, got %d", len(polls))
		}
		if err := f.svc.AdminDeletePoll(as(f.alice), bobPoll); !errors.Is(err, ErrPermission) {
			t.Errorf("AdminDeletePoll() error = %v, want ErrPermission", err)
		}
	})

	t.Run("anonymous is refused", func(t *testing.T) {
		if _, err := f.svc.GetAllPolls(context.Background()); !errors.Is(err, ErrAuth) {
			t.Errorf("GetAllPolls() error = %v, want ErrAuth", err)
		}
		if err := f.svc.AdminDeletePoll(context.Background(), bobPoll); !errors.Is(err, ErrAuth) {
			t.Errorf("AdminDeletePoll() error = %v, want ErrAuth", err)
		}
	})

	t.Run("admin lists all polls newest first", func(t *testing.T) {
		polls, err := f.svc.GetAllPolls(as(f.admin))
		if err != nil {
			t.Fatalf("GetAllPolls() error = %v", err)
		}
		if len(polls) != 2 || polls[0].ID != bobPoll || polls[1].ID != alicePoll {
			t.Errorf("unexpected listing %+v", polls)
		}
	})

	t.Run("admin deletes any poll", func(t *testing.T) {
		if err := f.svc.AdminDeletePoll(as(f.admin), bobPoll); err != nil {
			t.Fatalf("AdminDeletePoll() error = %v", err)
		}
		polls, err := f.svc.GetAllPolls(as(f.admin))
		if err != nil {
			t.Fatalf("GetAllPolls() error = %v", err)
		}
		if len(polls) != 1 || polls[0].ID != alicePoll {
			t.Errorf("expected only Alice's poll to remain, got %+v", polls)
		}
		if err := f.svc.AdminDeletePoll(as(f.admin), bobPoll); !errors.Is(err, ErrNotFound) {
			t.Errorf("expected ErrNotFound for deleted poll, got %v", err)
		}
	})
}

type brokenCache struct{}

func (brokenCache) Get(context.Context, string) ([]models.Poll, bool, error) {
	return nil, false, errors.New("cache down")
}

func (brokenCache) Set(context.Context, string, []models.Poll) error { return errors.New("cache down") }

func (brokenCache) Delete(context.Context, ...string) error { return errors.New("cache down") }

func TestListingsSurviveCacheFailure(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := NewService(store.New(db), brokenCache{})
	alice := testutil.CreateTestUser(t, db, "alice@example.com", models.RoleUser)
	admin := testutil.CreateTestUser(t, db, "admin@example.com", models.RoleAdmin)

	if _, err := svc.CreatePoll(as(alice), "Still works?", []string{"Yes", "No"}); err != nil {
		t.Fatalf("CreatePoll with failing cache: %v", err)
	}

	mine, err := svc.GetUserPolls(as(alice))
	if err != nil || len(mine) != 1 {
		t.Errorf("GetUserPolls = %d polls, %v; want 1, nil", len(mine), err)
	}
	all, err := svc.GetAllPolls(as(admin))
	if err != nil || len(all) != 1 {
		t.Errorf("GetAllPolls = %d polls, %v; want 1, nil", len(all), err)
	}
}

func TestCachedListing_SkipsFillAcrossInvalidation(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	key := cache.UserPollsKey(f.alice.ID)

	stale := []models.Poll{{ID: "stale"}}
	got, err := f.svc.cachedListing(ctx, key, func(ctx context.Context) ([]models.Poll, error) {
		// a create lands while this listing is being read
		f.svc.invalidate(ctx, f.alice.ID)
		return stale, nil
	})
	if err != nil {
		t.Fatalf("cachedListing() error = %v", err)
	}
	if len(got) != 1 || got[0].ID != "stale" {
		t.Errorf("expected the loaded listing to be returned, got %+v", got)
	}
	if _, ok, _ := f.cache.Get(ctx, key); ok {
		t.Error("listing loaded across an invalidation must not be cached")
	}

	if _, err := f.svc.cachedListing(ctx, key, func(context.Context) ([]models.Poll, error) {
		return []models.Poll{}, nil
	}); err != nil {
		t.Fatalf("cachedListing() error = %v", err)
	}
	if _, ok, _ := f.cache.Get(ctx, key); !ok {
		t.Error("expected an undisturbed load to fill the cache")
	}
}
