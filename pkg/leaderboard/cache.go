package leaderboard

import (
	"context"
	"sync"
	"time"

	"github.com/ecoechos/backend/internal/types"
	"github.com/ecoechos/backend/pkg/models"
	"github.com/ecoechos/backend/pkg/store"
)

const DefaultTTL = time.Minute

// Cache holds full rankings per month and order.
type Cache interface {
	Get(ctx context.Context, month types.Month, order store.Order) ([]models.RankingEntry, bool, error)
	Set(ctx context.Context, month types.Month, order store.Order, entries []models.RankingEntry) error
	Invalidate(ctx context.Context, month types.Month) error
	Flush(ctx context.Context) error

	// Name identifies the cache implementation
	Name() string
}

type memoryItem struct {
	entries []models.RankingEntry
	expires time.Time
}

// Memory is an in-process Cache for single instance deployments.
type Memory struct {
	ttl   time.Duration
	now   func() time.Time
	mu    sync.Mutex
	items map[string]map[store.Order]memoryItem
}

var _ Cache = (*Memory)(nil)

func NewMemory(ttl time.Duration) *Memory {
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	return &Memory{
		ttl:   ttl,
		now:   time.Now,
		items: make(map[string]map[store.Order]memoryItem),
	}
}

func (m *Memory) Name() string {
	return "memory"
}

func (m *Memory) Get(_ context.Context, month types.Month, order store.Order) ([]models.RankingEntry, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	item, ok := m.items[month.String()][order]
	if !ok {
		return nil, false, nil
	}

	if !m.now().Before(item.expires) {
		delete(m.items[month.String()], order)
		return nil, false, nil
	}

	return clone(item.entries), true, nil
}

func (m *Memory) Set(_ context.Context, month types.Month, order store.Order, entries []models.RankingEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	key := month.String()
	if m.items[key] == nil {
		m.items[key] = make(map[store.Order]memoryItem)
	}

	m.items[key][order] = memoryItem{
		entries: clone(entries),
		expires: m.now().Add(m.ttl),
	}
	return nil
}

func (m *Memory) Invalidate(_ context.Context, month types.Month) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.items, month.String())
	return nil
}

func (m *Memory) Flush(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.items = make(map[string]map[store.Order]memoryItem)
	return nil
}

func clone(entries []models.RankingEntry) []models.RankingEntry {
	out := make([]models.RankingEntry, len(entries))
	copy(out, entries)
	return out
}
