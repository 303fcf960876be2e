// Package leaderboard ranks users by their monthly footprint.
package leaderboard

import (
	"context"
	"errors"
	"strings"

	"github.com/ecoechos/backend/internal/types"
	"github.com/ecoechos/backend/pkg/models"
	"github.com/ecoechos/backend/pkg/store"
	"github.com/rs/zerolog/log"
	"github.com/ryanuber/go-glob"
)

const (
	DefaultLimit = 10
	MaxLimit     = 100
)

var (
	ErrInvalidLimit = errors.New("the limit must be between 1 and 100")
	ErrInvalidOrder = errors.New("the order must be 'desc' or 'asc'")
)

// Query selects a part of the ranking of a month.
type Query struct {
	Month types.Month
	Limit int         // Zero selects DefaultLimit
	Order store.Order // Empty selects store.OrderDescending
	Match string      // Glob for usernames, only '*' is supported
}

func (q *Query) normalize() error {
	if q.Limit == 0 {
		q.Limit = DefaultLimit
	}

	if q.Limit < 1 || q.Limit > MaxLimit {
		return ErrInvalidLimit
	}

	if q.Order == "" {
		q.Order = store.OrderDescending
	}

	if !q.Order.Valid() {
		return ErrInvalidOrder
	}

	return nil
}

type Service struct {
	store store.Store
	cache Cache
}

func New(s store.Store, c Cache) *Service {
	return &Service{store: s, cache: c}
}

// Cache returns the cache the service uses.
func (s *Service) Cache() Cache {
	return s.cache
}

// Ranking returns the users with records in the month.
//
// Positions always refer to the full ranking, so a user keeps their
// position when the ranking is filtered with a glob.
func (s *Service) Ranking(ctx context.Context, q Query) ([]models.RankingEntry, error) {
	if err := q.normalize(); err != nil {
		return nil, err
	}

	entries, err := s.full(ctx, q.Month, q.Order)
	if err != nil {
		return nil, err
	}

	out := make([]models.RankingEntry, 0, min(q.Limit, len(entries)))
	pattern := strings.ToLower(q.Match)

	for _, e := range entries {
		if len(out) == q.Limit {
			break
		}

		if pattern != "" && !glob.Glob(pattern, strings.ToLower(e.Username)) {
			continue
		}

		out = append(out, e)
	}

	return out, nil
}

// full loads the complete ranking, preferring the cache.
// Cache failures are logged and the store is used instead.
func (s *Service) full(ctx context.Context, month types.Month, order store.Order) ([]models.RankingEntry, error) {
	if s.cache != nil {
		entries, ok, err := s.cache.Get(ctx, month, order)
		if err != nil {
			log.Warn().Err(err).Str("month", month.String()).Msg("ranking cache read failed")
		} else if ok {
			return entries, nil
		}
	}

	entries, err := s.store.Ranking(ctx, month, order)
	if err != nil {
		return nil, err
	}

	for i := range entries {
		entries[i].Position = i + 1
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, month, order, entries); err != nil {
			log.Warn().Err(err).Str("month", month.String()).Msg("ranking cache write failed")
		}
	}

	return entries, nil
}

// Invalidate drops the cached rankings of a month. Call it after a daily
// record of the month changed.
func (s *Service) Invalidate(ctx context.Context, month types.Month) {
	if s.cache == nil {
		return
	}

	if err := s.cache.Invalidate(ctx, month); err != nil {
		log.Warn().Err(err).Str("month", month.String()).Msg("ranking cache invalidation failed")
	}
}

// InvalidateAll drops all cached rankings.
func (s *Service) InvalidateAll(ctx context.Context) {
	if s.cache == nil {
		return
	}

	if err := s.cache.Flush(ctx); err != nil {
		log.Warn().Err(err).Msg("ranking cache flush failed")
	}
}
