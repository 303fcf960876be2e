package leaderboard_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ecoechos/backend/internal/types"
	"github.com/ecoechos/backend/pkg/leaderboard"
	"github.com/ecoechos/backend/pkg/models"
	"github.com/ecoechos/backend/pkg/store"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var march = types.NewMonth(2025, time.March)

// rankingStore serves a fixed ranking and counts the calls.
type rankingStore struct {
	store.Store
	entries []models.RankingEntry
	err     error
	calls   int
}

func (s *rankingStore) Ranking(_ context.Context, _ types.Month, order store.Order) ([]models.RankingEntry, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}

	out := make([]models.RankingEntry, len(s.entries))
	copy(out, s.entries)
	if order == store.OrderAscending {
		for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
			out[i], out[j] = out[j], out[i]
		}
	}
	return out, nil
}

func newStore(names ...string) *rankingStore {
	s := &rankingStore{}
	for i, name := range names {
		s.entries = append(s.entries, models.RankingEntry{
			UserID:   uuid.New(),
			Username: name,
			Total:    decimal.NewFromInt(int64(1000 - i)),
			Days:     1,
		})
	}
	return s
}

func usernames(entries []models.RankingEntry) []string {
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Username)
	}
	return names
}

func TestRankingPositions(t *testing.T) {
	s := newStore("alice", "bob", "carol")
	l := leaderboard.New(s, nil)

	entries, err := l.Ranking(context.Background(), leaderboard.Query{Month: march})
	require.NoError(t, err)
	require.Len(t, entries, 3)

	for i, e := range entries {
		assert.Equal(t, i+1, e.Position)
	}
}

func TestRankingLimit(t *testing.T) {
	names := make([]string, 0, 15)
	for i := 0; i < 15; i++ {
		names = append(names, uuid.NewString())
	}
	l := leaderboard.New(newStore(names...), nil)

	entries, err := l.Ranking(context.Background(), leaderboard.Query{Month: march})
	require.NoError(t, err)
	assert.Len(t, entries, leaderboard.DefaultLimit)

	entries, err = l.Ranking(context.Background(), leaderboard.Query{Month: march, Limit: 3})
	require.NoError(t, err)
	assert.Len(t, entries, 3)

	entries, err = l.Ranking(context.Background(), leaderboard.Query{Month: march, Limit: 100})
	require.NoError(t, err)
	assert.Len(t, entries, 15)
}

func TestRankingInvalidQuery(t *testing.T) {
	l := leaderboard.New(newStore("alice"), nil)

	tests := []struct {
		query leaderboard.Query
		err   error
	}{
		{leaderboard.Query{Month: march, Limit: -1}, leaderboard.ErrInvalidLimit},
		{leaderboard.Query{Month: march, Limit: 101}, leaderboard.ErrInvalidLimit},
		{leaderboard.Query{Month: march, Order: "sideways"}, leaderboard.ErrInvalidOrder},
	}

	for _, tt := range tests {
		_, err := l.Ranking(context.Background(), tt.query)
		assert.ErrorIs(t, err, tt.err)
	}
}

func TestRankingOrder(t *testing.T) {
	l := leaderboard.New(newStore("alice", "bob", "carol"), nil)

	entries, err := l.Ranking(context.Background(), leaderboard.Query{Month: march, Order: store.OrderAscending})
	require.NoError(t, err)
	assert.Equal(t, []string{"carol", "bob", "alice"}, usernames(entries))
	assert.Equal(t, 1, entries[0].Position)
}

func TestRankingMatch(t *testing.T) {
	l := leaderboard.New(newStore("alice", "bob", "Alfred", "carol"), nil)

	entries, err := l.Ranking(context.Background(), leaderboard.Query{Month: march, Match: "al*"})
	require.NoError(t, err)
	assert.Equal(t, []string{"alice", "Alfred"}, usernames(entries))
	assert.Equal(t, 1, entries[0].Position)
	assert.Equal(t, 3, entries[1].Position, "positions refer to the full ranking")

	entries, err = l.Ranking(context.Background(), leaderboard.Query{Month: march, Match: "*o*", Limit: 1})
	require.NoError(t, err)
	assert.Equal(t, []string{"bob"}, usernames(entries))
}

func TestRankingStoreError(t *testing.T) {
	s := newStore()
	s.err = models.ErrGeneral
	l := leaderboard.New(s, leaderboard.NewMemory(time.Minute))

	_, err := l.Ranking(context.Background(), leaderboard.Query{Month: march})
	assert.ErrorIs(t, err, models.ErrGeneral)
}

func TestRankingCached(t *testing.T) {
	s := newStore("alice", "bob")
	l := leaderboard.New(s, leaderboard.NewMemory(time.Minute))

	for i := 0; i < 3; i++ {
		_, err := l.Ranking(context.Background(), leaderboard.Query{Month: march})
		require.NoError(t, err)
	}
	assert.Equal(t, 1, s.calls)

	// Each order is cached separately
	_, err := l.Ranking(context.Background(), leaderboard.Query{Month: march, Order: store.OrderAscending})
	require.NoError(t, err)
	assert.Equal(t, 2, s.calls)

	l.Invalidate(context.Background(), march)
	_, err = l.Ranking(context.Background(), leaderboard.Query{Month: march})
	require.NoError(t, err)
	assert.Equal(t, 3, s.calls)

	l.InvalidateAll(context.Background())
	_, err = l.Ranking(context.Background(), leaderboard.Query{Month: march})
	require.NoError(t, err)
	assert.Equal(t, 4, s.calls)
}

// failingCache fails every operation.
type failingCache struct{}

var errCache = errors.New("cache is down")

func (failingCache) Get(context.Context, types.Month, store.Order) ([]models.RankingEntry, bool, error) {
	return nil, false, errCache
}

func (failingCache) Set(context.Context, types.Month, store.Order, []models.RankingEntry) error {
	return errCache
}

func (failingCache) Invalidate(context.Context, types.Month) error {
	return errCache
}

func (failingCache) Flush(context.Context) error {
	return errCache
}

func (failingCache) Name() string {
	return "failing"
}

func TestRankingCacheFailure(t *testing.T) {
	s := newStore("alice")
	l := leaderboard.New(s, failingCache{})

	entries, err := l.Ranking(context.Background(), leaderboard.Query{Month: march})
	require.NoError(t, err)
	assert.Len(t, entries, 1)

	l.Invalidate(context.Background(), march)
	l.InvalidateAll(context.Background())
}
