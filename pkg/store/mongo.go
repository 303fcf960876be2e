package store

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/ecoechos/backend/internal/types"
	"github.com/ecoechos/backend/pkg/footprint"
	"github.com/ecoechos/backend/pkg/models"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
)

const (
	collectionUsers        = "users"
	collectionDailyRecords = "daily_records"
)

// Mongo stores data in a MongoDB database.
type Mongo struct {
	client *mongo.Client
	db     *mongo.Database
}

var _ Store = (*Mongo)(nil)

type userDocument struct {
	ID           string    `bson:"_id"`
	Username     string    `bson:"username"`
	PasswordHash string    `bson:"password_hash"`
	CreatedAt    time.Time `bson:"created_at"`
	UpdatedAt    time.Time `bson:"updated_at"`
}

type emissionsDocument struct {
	Energy      bson.Decimal128 `bson:"energy"`
	Transport   bson.Decimal128 `bson:"transport"`
	Food        bson.Decimal128 `bson:"food"`
	Housing     bson.Decimal128 `bson:"housing"`
	Consumption bson.Decimal128 `bson:"consumption"`
	Waste       bson.Decimal128 `bson:"waste"`
	Lifestyle   bson.Decimal128 `bson:"lifestyle"`
	Offsets     bson.Decimal128 `bson:"offsets"`
	Total       bson.Decimal128 `bson:"total"`
}

type dailyDocument struct {
	ID        string            `bson:"_id"`
	UserID    string            `bson:"user_id"`
	Date      string            `bson:"date"`
	Total     bson.Decimal128   `bson:"total"`
	Emissions emissionsDocument `bson:"emissions"`
	Input     footprint.Input   `bson:"input"`
	CreatedAt time.Time         `bson:"created_at"`
	UpdatedAt time.Time         `bson:"updated_at"`
}

// OpenMongo connects to the server, checks the connection and
// creates the indexes.
func OpenMongo(ctx context.Context, uri, database string) (*Mongo, error) {
	client, err := mongo.Connect(options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	m := &Mongo{
		client: client,
		db:     client.Database(database),
	}

	if err := m.createIndexes(ctx); err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}

	log.Info().Str("database", database).Msg("connected to MongoDB")
	return m, nil
}

func (m *Mongo) createIndexes(ctx context.Context) error {
	_, err := m.users().Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("could not create username index: %w", err)
	}

	_, err = m.records().Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "user_id", Value: 1}, {Key: "date", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("could not create daily record index: %w", err)
	}

	log.Debug().Msg("MongoDB indexes are in place")
	return nil
}

func (m *Mongo) users() *mongo.Collection {
	return m.db.Collection(collectionUsers)
}

func (m *Mongo) records() *mongo.Collection {
	return m.db.Collection(collectionDailyRecords)
}

func (m *Mongo) Backend() string {
	return BackendMongo
}

// mongoError maps driver errors to the errors of the models package.
func mongoError(err error, resource string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, mongo.ErrNoDocuments):
		return fmt.Errorf("%w %s matching your query", models.ErrResourceNotFound, resource)
	case mongo.IsDuplicateKeyError(err) && resource == "user":
		return models.ErrUsernameNotUnique
	}

	log.Error().Msgf("%T: %v", err, err.Error())
	return general(err)
}

// general wraps an unexpected error so that it matches models.ErrGeneral.
func general(err error) error {
	return fmt.Errorf("%w: %w", models.ErrGeneral, err)
}

func (m *Mongo) CreateUser(ctx context.Context, username, passwordHash string) (models.User, error) {
	user := models.User{
		Username:     username,
		PasswordHash: passwordHash,
	}

	// The gorm hook does this for SQLite
	if err := user.BeforeSave(nil); err != nil {
		return models.User{}, err
	}

	now := time.Now().UTC()
	user.ID = uuid.New()
	user.CreatedAt = now
	user.UpdatedAt = now

	_, err := m.users().InsertOne(ctx, userToDocument(user))
	if err != nil {
		return models.User{}, mongoError(err, "user")
	}

	return user, nil
}

func (m *Mongo) UserByID(ctx context.Context, id uuid.UUID) (models.User, error) {
	return m.findUser(ctx, bson.D{{Key: "_id", Value: id.String()}})
}

func (m *Mongo) UserByName(ctx context.Context, username string) (models.User, error) {
	return m.findUser(ctx, bson.D{{Key: "username", Value: username}})
}

func (m *Mongo) findUser(ctx context.Context, filter bson.D) (models.User, error) {
	var doc userDocument
	err := m.users().FindOne(ctx, filter).Decode(&doc)
	if err != nil {
		return models.User{}, mongoError(err, "user")
	}

	return userFromDocument(doc), nil
}

func (m *Mongo) UpdateUser(ctx context.Context, id uuid.UUID, update models.UserUpdate) (models.User, error) {
	if update.Empty() {
		return models.User{}, models.ErrNothingToUpdate
	}

	set := bson.D{{Key: "updated_at", Value: time.Now().UTC()}}
	if update.Username != nil {
		user := models.User{Username: *update.Username}
		if err := user.BeforeSave(nil); err != nil {
			return models.User{}, err
		}
		set = append(set, bson.E{Key: "username", Value: user.Username})
	}

	if update.PasswordHash != nil {
		set = append(set, bson.E{Key: "password_hash", Value: *update.PasswordHash})
	}

	var doc userDocument
	err := m.users().FindOneAndUpdate(ctx,
		bson.D{{Key: "_id", Value: id.String()}},
		bson.D{{Key: "$set", Value: set}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		return models.User{}, mongoError(err, "user")
	}

	return userFromDocument(doc), nil
}

func (m *Mongo) SaveDaily(ctx context.Context, record models.DailyRecord) (models.DailyRecord, error) {
	if err := record.BeforeSave(nil); err != nil {
		return models.DailyRecord{}, err
	}

	// There are no foreign keys, the user is checked explicitly
	if _, err := m.UserByID(ctx, record.UserID); err != nil {
		return models.DailyRecord{}, err
	}

	now := time.Now().UTC()
	doc := recordToDocument(record)

	var saved dailyDocument
	err := m.records().FindOneAndUpdate(ctx,
		bson.D{{Key: "user_id", Value: doc.UserID}, {Key: "date", Value: doc.Date}},
		bson.D{
			{Key: "$set", Value: bson.D{
				{Key: "total", Value: doc.Total},
				{Key: "emissions", Value: doc.Emissions},
				{Key: "input", Value: doc.Input},
				{Key: "updated_at", Value: now},
			}},
			{Key: "$setOnInsert", Value: bson.D{
				{Key: "_id", Value: uuid.New().String()},
				{Key: "created_at", Value: now},
			}},
		},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&saved)
	if err != nil {
		return models.DailyRecord{}, mongoError(err, "daily record")
	}

	return recordFromDocument(saved)
}

func (m *Mongo) Daily(ctx context.Context, userID uuid.UUID, date types.Date) (models.DailyRecord, error) {
	var doc dailyDocument
	err := m.records().FindOne(ctx, bson.D{
		{Key: "user_id", Value: userID.String()},
		{Key: "date", Value: date.String()},
	}).Decode(&doc)
	if err != nil {
		return models.DailyRecord{}, mongoError(err, "daily record")
	}

	return recordFromDocument(doc)
}

func (m *Mongo) DeleteDaily(ctx context.Context, userID uuid.UUID, date types.Date) error {
	res, err := m.records().DeleteOne(ctx, bson.D{
		{Key: "user_id", Value: userID.String()},
		{Key: "date", Value: date.String()},
	})
	if err != nil {
		return mongoError(err, "daily record")
	}

	if res.DeletedCount == 0 {
		return fmt.Errorf("%w daily record matching your query", models.ErrResourceNotFound)
	}

	return nil
}

// monthRegex matches all dates of a month.
func monthRegex(month types.Month) bson.Regex {
	return bson.Regex{Pattern: "^" + regexp.QuoteMeta(month.String()+"-")}
}

func (m *Mongo) DailyInMonth(ctx context.Context, userID uuid.UUID, month types.Month) ([]models.DailyRecord, error) {
	cursor, err := m.records().Find(ctx,
		bson.D{
			{Key: "user_id", Value: userID.String()},
			{Key: "date", Value: monthRegex(month)},
		},
		options.Find().SetSort(bson.D{{Key: "date", Value: 1}}),
	)
	if err != nil {
		return nil, mongoError(err, "daily record")
	}

	var docs []dailyDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, mongoError(err, "daily record")
	}

	records := make([]models.DailyRecord, 0, len(docs))
	for _, doc := range docs {
		r, err := recordFromDocument(doc)
		if err != nil {
			return nil, err
		}
		records = append(records, r)
	}

	return records, nil
}

// monthlyTotalPipeline sums the totals of one user in a month.
func monthlyTotalPipeline(userID uuid.UUID, month types.Month) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$match", Value: bson.D{
			{Key: "user_id", Value: userID.String()},
			{Key: "date", Value: monthRegex(month)},
		}}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$user_id"},
			{Key: "total", Value: bson.D{{Key: "$sum", Value: "$total"}}},
			{Key: "days", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
	}
}

// rankingPipeline sums the totals of all users in a month and
// resolves their usernames.
func rankingPipeline(month types.Month, order Order) mongo.Pipeline {
	direction := -1
	if order == OrderAscending {
		direction = 1
	}

	return mongo.Pipeline{
		{{Key: "$match", Value: bson.D{{Key: "date", Value: monthRegex(month)}}}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$user_id"},
			{Key: "total", Value: bson.D{{Key: "$sum", Value: "$total"}}},
			{Key: "days", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: collectionUsers},
			{Key: "localField", Value: "_id"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "user"},
		}}},
		{{Key: "$unwind", Value: "$user"}},
		{{Key: "$project", Value: bson.D{
			{Key: "_id", Value: 0},
			{Key: "user_id", Value: "$_id"},
			{Key: "username", Value: "$user.username"},
			{Key: "total", Value: 1},
			{Key: "days", Value: 1},
		}}},
		{{Key: "$sort", Value: bson.D{
			{Key: "total", Value: direction},
			{Key: "username", Value: 1},
		}}},
	}
}

type aggregate struct {
	UserID   string          `bson:"user_id"`
	Username string          `bson:"username"`
	Total    bson.Decimal128 `bson:"total"`
	Days     int             `bson:"days"`
}

func (m *Mongo) MonthlyTotal(ctx context.Context, userID uuid.UUID, month types.Month) (decimal.Decimal, int, error) {
	cursor, err := m.records().Aggregate(ctx, monthlyTotalPipeline(userID, month))
	if err != nil {
		return decimal.Zero, 0, mongoError(err, "daily record")
	}

	var rows []aggregate
	if err := cursor.All(ctx, &rows); err != nil {
		return decimal.Zero, 0, mongoError(err, "daily record")
	}

	if len(rows) == 0 {
		return decimal.Zero, 0, nil
	}

	total, err := fromDecimal128(rows[0].Total)
	if err != nil {
		return decimal.Zero, 0, general(err)
	}

	return total, rows[0].Days, nil
}

func (m *Mongo) Ranking(ctx context.Context, month types.Month, order Order) ([]models.RankingEntry, error) {
	cursor, err := m.records().Aggregate(ctx, rankingPipeline(month, order))
	if err != nil {
		return nil, mongoError(err, "daily record")
	}

	var rows []aggregate
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, mongoError(err, "daily record")
	}

	entries := make([]models.RankingEntry, 0, len(rows))
	for _, r := range rows {
		id, err := uuid.Parse(r.UserID)
		if err != nil {
			return nil, general(err)
		}

		total, err := fromDecimal128(r.Total)
		if err != nil {
			return nil, general(err)
		}

		entries = append(entries, models.RankingEntry{
			UserID:   id,
			Username: r.Username,
			Total:    total,
			Days:     r.Days,
		})
	}

	return entries, nil
}

// DeleteAll removes all records and users.
func (m *Mongo) DeleteAll(ctx context.Context) error {
	for _, c := range []*mongo.Collection{m.records(), m.users()} {
		if _, err := c.DeleteMany(ctx, bson.D{}); err != nil {
			return mongoError(err, c.Name())
		}
	}
	return nil
}

func (m *Mongo) Ping(ctx context.Context) error {
	if err := m.client.Ping(ctx, readpref.Primary()); err != nil {
		return general(err)
	}
	return nil
}

func (m *Mongo) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return m.client.Disconnect(ctx)
}

func userToDocument(u models.User) userDocument {
	return userDocument{
		ID:           u.ID.String(),
		Username:     u.Username,
		PasswordHash: u.PasswordHash,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

func userFromDocument(d userDocument) models.User {
	// IDs are only ever written by this package
	id, _ := uuid.Parse(d.ID)

	return models.User{
		DefaultModel: models.DefaultModel{
			ID: id,
			Timestamps: models.Timestamps{
				CreatedAt: d.CreatedAt.UTC(),
				UpdatedAt: d.UpdatedAt.UTC(),
			},
		},
		Username:     d.Username,
		PasswordHash: d.PasswordHash,
	}
}

func toDecimal128(d decimal.Decimal) bson.Decimal128 {
	v, err := bson.ParseDecimal128(d.String())
	if err != nil {
		return bson.NewDecimal128(0, 0)
	}
	return v
}

func fromDecimal128(d bson.Decimal128) (decimal.Decimal, error) {
	return decimal.NewFromString(d.String())
}

func recordToDocument(r models.DailyRecord) dailyDocument {
	e := r.Emissions

	return dailyDocument{
		ID:     r.ID.String(),
		UserID: r.UserID.String(),
		Date:   r.Date.String(),
		Total:  toDecimal128(r.Total),
		Emissions: emissionsDocument{
			Energy:      toDecimal128(e.Energy),
			Transport:   toDecimal128(e.Transport),
			Food:        toDecimal128(e.Food),
			Housing:     toDecimal128(e.Housing),
			Consumption: toDecimal128(e.Consumption),
			Waste:       toDecimal128(e.Waste),
			Lifestyle:   toDecimal128(e.Lifestyle),
			Offsets:     toDecimal128(e.Offsets),
			Total:       toDecimal128(e.Total),
		},
		Input:     r.Input,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

func recordFromDocument(d dailyDocument) (models.DailyRecord, error) {
	id, err := uuid.Parse(d.ID)
	if err != nil {
		return models.DailyRecord{}, general(err)
	}

	userID, err := uuid.Parse(d.UserID)
	if err != nil {
		return models.DailyRecord{}, general(err)
	}

	date, err := types.ParseDate(d.Date)
	if err != nil {
		return models.DailyRecord{}, general(err)
	}

	values := []bson.Decimal128{
		d.Total,
		d.Emissions.Energy, d.Emissions.Transport, d.Emissions.Food, d.Emissions.Housing,
		d.Emissions.Consumption, d.Emissions.Waste, d.Emissions.Lifestyle, d.Emissions.Offsets,
		d.Emissions.Total,
	}

	decimals := make([]decimal.Decimal, len(values))
	for i, v := range values {
		decimals[i], err = fromDecimal128(v)
		if err != nil {
			return models.DailyRecord{}, general(err)
		}
	}

	return models.DailyRecord{
		DefaultModel: models.DefaultModel{
			ID: id,
			Timestamps: models.Timestamps{
				CreatedAt: d.CreatedAt.UTC(),
				UpdatedAt: d.UpdatedAt.UTC(),
			},
		},
		UserID: userID,
		Date:   date,
		Total:  decimals[0],
		Emissions: footprint.Result{
			Energy:      decimals[1],
			Transport:   decimals[2],
			Food:        decimals[3],
			Housing:     decimals[4],
			Consumption: decimals[5],
			Waste:       decimals[6],
			Lifestyle:   decimals[7],
			Offsets:     decimals[8],
			Total:       decimals[9],
		},
		Input: d.Input,
	}, nil
}
