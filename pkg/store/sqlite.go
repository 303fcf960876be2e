package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/ecoechos/backend/internal/types"
	"github.com/ecoechos/backend/pkg/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SQLite stores data with gorm in an SQLite database.
type SQLite struct {
	db *gorm.DB
}

var _ Store = (*SQLite)(nil)

// OpenSQLite connects to the database file and migrates it.
func OpenSQLite(dsn string) (*SQLite, error) {
	db, err := models.Connect(dsn)
	if err != nil {
		return nil, err
	}

	return &SQLite{db: db}, nil
}

// DB returns the underlying gorm connection.
func (s *SQLite) DB() *gorm.DB {
	return s.db
}

func (s *SQLite) Backend() string {
	return BackendSQLite
}

func (s *SQLite) CreateUser(ctx context.Context, username, passwordHash string) (models.User, error) {
	user := models.User{
		Username:     username,
		PasswordHash: passwordHash,
	}

	err := s.db.WithContext(ctx).Create(&user).Error
	return user, err
}

func (s *SQLite) UserByID(ctx context.Context, id uuid.UUID) (models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).First(&user, "id = ?", id).Error
	return user, err
}

func (s *SQLite) UserByName(ctx context.Context, username string) (models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).Where("username = ?", username).First(&user).Error
	return user, err
}

func (s *SQLite) UpdateUser(ctx context.Context, id uuid.UUID, update models.UserUpdate) (models.User, error) {
	if update.Empty() {
		return models.User{}, models.ErrNothingToUpdate
	}

	var user models.User
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&user, "id = ?", id).Error; err != nil {
			return err
		}

		if update.Username != nil {
			user.Username = *update.Username
		}

		if update.PasswordHash != nil {
			user.PasswordHash = *update.PasswordHash
		}

		return tx.Save(&user).Error
	})

	return user, err
}

func (s *SQLite) SaveDaily(ctx context.Context, record models.DailyRecord) (models.DailyRecord, error) {
	db := s.db.WithContext(ctx)

	err := db.Omit(clause.Associations).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{"total", "emissions", "input", "updated_at"}),
	}).Create(&record).Error
	if err != nil {
		return models.DailyRecord{}, err
	}

	// On conflict, the existing row keeps its ID, so read it back
	return s.Daily(ctx, record.UserID, record.Date)
}

func (s *SQLite) Daily(ctx context.Context, userID uuid.UUID, date types.Date) (models.DailyRecord, error) {
	var record models.DailyRecord
	err := s.db.WithContext(ctx).Where("user_id = ? AND date = ?", userID, date).First(&record).Error
	return record, err
}

func (s *SQLite) DeleteDaily(ctx context.Context, userID uuid.UUID, date types.Date) error {
	tx := s.db.WithContext(ctx).Where("user_id = ? AND date = ?", userID, date).Delete(&models.DailyRecord{})
	if tx.Error != nil {
		return tx.Error
	}

	if tx.RowsAffected == 0 {
		return fmt.Errorf("%w daily record matching your query", models.ErrResourceNotFound)
	}

	return nil
}

// monthPattern selects all dates of a month with LIKE.
func monthPattern(month types.Month) string {
	return month.String() + "-%"
}

func (s *SQLite) DailyInMonth(ctx context.Context, userID uuid.UUID, month types.Month) ([]models.DailyRecord, error) {
	var records []models.DailyRecord

	err := s.db.WithContext(ctx).
		Where("user_id = ? AND date LIKE ?", userID, monthPattern(month)).
		Order("date ASC").
		Find(&records).Error

	return records, err
}

// MonthlyTotal sums the totals with decimal arithmetic. SQLite's SUM
// would add them as floats.
func (s *SQLite) MonthlyTotal(ctx context.Context, userID uuid.UUID, month types.Month) (decimal.Decimal, int, error) {
	var totals []string

	err := s.db.WithContext(ctx).
		Model(&models.DailyRecord{}).
		Where("user_id = ? AND date LIKE ?", userID, monthPattern(month)).
		Pluck("total", &totals).Error
	if err != nil {
		return decimal.Zero, 0, err
	}

	sum := decimal.Zero
	for _, t := range totals {
		d, err := decimal.NewFromString(t)
		if err != nil {
			return decimal.Zero, 0, fmt.Errorf("%w: stored total '%s' is not a decimal", models.ErrGeneral, t)
		}
		sum = sum.Add(d)
	}

	return sum, len(totals), nil
}

// Ranking groups the month's records by user in Go, for the same reason
// as MonthlyTotal.
func (s *SQLite) Ranking(ctx context.Context, month types.Month, order Order) ([]models.RankingEntry, error) {
	var rows []struct {
		UserID   uuid.UUID
		Username string
		Total    decimal.Decimal
	}

	err := s.db.WithContext(ctx).
		Table("daily_records AS d").
		Select("d.user_id AS user_id, u.username AS username, d.total AS total").
		Joins("JOIN users AS u ON u.id = d.user_id").
		Where("d.date LIKE ?", monthPattern(month)).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	index := make(map[uuid.UUID]int)
	entries := make([]models.RankingEntry, 0)
	for _, r := range rows {
		i, ok := index[r.UserID]
		if !ok {
			i = len(entries)
			index[r.UserID] = i
			entries = append(entries, models.RankingEntry{
				UserID:   r.UserID,
				Username: r.Username,
				Total:    decimal.Zero,
			})
		}

		entries[i].Total = entries[i].Total.Add(r.Total)
		entries[i].Days++
	}

	slices.SortFunc(entries, func(a, b models.RankingEntry) int {
		c := a.Total.Cmp(b.Total)
		if order != OrderAscending {
			c = -c
		}
		if c != 0 {
			return c
		}
		return strings.Compare(a.Username, b.Username)
	})

	return entries, nil
}

// DeleteAll removes all records and users.
func (s *SQLite) DeleteAll(ctx context.Context) error {
	// The order is important here since there are foreign keys to consider!
	resources := []any{
		&models.DailyRecord{},
		&models.User{},
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, model := range resources {
			if err := tx.Where("true").Delete(model).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *SQLite) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}

	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("%w: %w", models.ErrGeneral, err)
	}
	return nil
}

func (s *SQLite) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
