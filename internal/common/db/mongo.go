package db

import (
	"context"
	"fmt"
	"time"

	"ride-hail/internal/common/logger"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

type Mongo struct {
	Client   *mongo.Client
	Database *mongo.Database
}

func NewMongo(uri, database string) (*Mongo, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		logger.Error("mongo_connection_failed", "Failed to connect to MongoDB", "", "", err.Error())
		return nil, fmt.Errorf("failed to connect to mongo: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		logger.Error("mongo_ping_failed", "MongoDB ping failed", "", "", err.Error())
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("mongo ping failed: %w", err)
	}

	logger.Info("mongo_connected", "Connected to MongoDB successfully", "", "")
	return &Mongo{Client: client, Database: client.Database(database)}, nil
}

func (m *Mongo) Close() {
	if m.Client != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = m.Client.Disconnect(ctx)
		logger.Info("mongo_connection_closed", "MongoDB connection closed", "", "")
	}
}
