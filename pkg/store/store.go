// Package store persists users and their daily footprint records.
//
// Two backends implement Store: SQLite through gorm, and MongoDB.
// Both return the errors defined in the models package.
package store

import (
	"context"
	"errors"

	"github.com/ecoechos/backend/internal/types"
	"github.com/ecoechos/backend/pkg/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	BackendSQLite = "sqlite"
	BackendMongo  = "mongo"
)

var ErrUnknownBackend = errors.New("unknown database backend")

// Order is the sort direction of a ranking.
type Order string

const (
	OrderDescending Order = "desc"
	OrderAscending  Order = "asc"
)

// Valid reports whether the order is known.
func (o Order) Valid() bool {
	return o == OrderDescending || o == OrderAscending
}

type Store interface {
	CreateUser(ctx context.Context, username, passwordHash string) (models.User, error)
	UserByID(ctx context.Context, id uuid.UUID) (models.User, error)
	UserByName(ctx context.Context, username string) (models.User, error)
	UpdateUser(ctx context.Context, id uuid.UUID, update models.UserUpdate) (models.User, error)

	// SaveDaily creates the record or replaces the one with the same
	// user and date.
	SaveDaily(ctx context.Context, record models.DailyRecord) (models.DailyRecord, error)
	Daily(ctx context.Context, userID uuid.UUID, date types.Date) (models.DailyRecord, error)
	DeleteDaily(ctx context.Context, userID uuid.UUID, date types.Date) error
	DailyInMonth(ctx context.Context, userID uuid.UUID, month types.Month) ([]models.DailyRecord, error)

	// MonthlyTotal sums all daily totals of the month and counts the days.
	// A month without records has a total of zero.
	MonthlyTotal(ctx context.Context, userID uuid.UUID, month types.Month) (decimal.Decimal, int, error)

	// Ranking returns the monthly totals of all users with at least one
	// record in the month, sorted by total and then username.
	// Positions are not set.
	Ranking(ctx context.Context, month types.Month, order Order) ([]models.RankingEntry, error)

	DeleteAll(ctx context.Context) error
	Ping(ctx context.Context) error
	Backend() string
	Close() error
}
