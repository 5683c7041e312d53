package repository

import (
	"context"
	"fmt"
	"time"

	"ride-hail/internal/captain/model"
	"ride-hail/internal/captain/service"
	"ride-hail/internal/common/logger"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const CaptainsCollection = "captains"

type captainDocument struct {
	ID        primitive.ObjectID  `bson:"_id"`
	Fullname  model.Fullname      `bson:"fullname"`
	Email     string              `bson:"email"`
	Password  string              `bson:"password"`
	Vehicle   model.Vehicle       `bson:"vehicle"`
	Status    model.CaptainStatus `bson:"status"`
	CreatedAt time.Time           `bson:"createdAt"`
}

func (d captainDocument) toModel() model.Captain {
	return model.Captain{
		ID:        d.ID.Hex(),
		Fullname:  d.Fullname,
		Email:     d.Email,
		Password:  d.Password,
		Vehicle:   d.Vehicle,
		Status:    d.Status,
		CreatedAt: d.CreatedAt,
	}
}

type MongoStore struct {
	coll *mongo.Collection
	now  func() time.Time
}

var _ service.CaptainStore = (*MongoStore)(nil)

func NewMongoStore(coll *mongo.Collection) *MongoStore {
	return &MongoStore{coll: coll, now: time.Now}
}

// emailIndex is unique under a strength-2 collation, so emails differing only
// in case collide, matching the Postgres and in-memory stores.
func emailIndex() mongo.IndexModel {
	return mongo.IndexModel{
		Keys: bson.D{{Key: "email", Value: 1}},
		Options: options.Index().
			SetUnique(true).
			SetName("captains_email_key").
			SetCollation(&options.Collation{Locale: "en", Strength: 2}),
	}
}

// EnsureIndexes creates the unique email index the store relies on for duplicate detection.
func (s *MongoStore) EnsureIndexes(ctx context.Context) error {
	_, err := s.coll.Indexes().CreateOne(ctx, emailIndex())
	if err != nil {
		return fmt.Errorf("failed to create captains email index: %w", err)
	}
	return nil
}

func (s *MongoStore) Create(ctx context.Context, captain model.Captain) (model.Captain, error) {
	doc := captainDocument{
		ID:        primitive.NewObjectID(),
		Fullname:  captain.Fullname,
		Email:     captain.Email,
		Password:  captain.Password,
		Vehicle:   captain.Vehicle,
		Status:    captain.Status,
		CreatedAt: s.now().UTC().Truncate(time.Millisecond),
	}
	if doc.Status == "" {
		doc.Status = model.CaptainStatusInactive
	}

	if _, err := s.coll.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			logger.Warn("create_captain", "duplicate captain email", "", "", err.Error())
			return model.Captain{}, model.ErrEmailTaken
		}
		logger.Error("create_captain", "failed to insert captain document", "", "", err.Error())
		return model.Captain{}, fmt.Errorf("failed to insert captain: %w", err)
	}

	logger.Debug("create_captain", "captain document inserted", "", doc.ID.Hex())
	return doc.toModel(), nil
}
