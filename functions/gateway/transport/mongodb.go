package transport

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	mongoClient    *mongo.Client
	mongoClientErr error
	mongoOnce      sync.Once
)

func MongoURI(host string, port int) string {
	return fmt.Sprintf("mongodb://%s:%d", host, port)
}

func CreateMongoClient(ctx context.Context, host string, port int) (*mongo.Client, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(MongoURI(host, port)))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}
	return client, nil
}

// GetMongoCollection returns a collection handle on the process-wide client.
func GetMongoCollection(ctx context.Context, host string, port int, database, collection string) (*mongo.Collection, error) {
	mongoOnce.Do(func() {
		mongoClient, mongoClientErr = CreateMongoClient(ctx, host, port)
		if mongoClientErr == nil {
			log.Info().Str("host", host).Int("port", port).Msg("mongodb client created")
		}
	})
	if mongoClientErr != nil {
		return nil, mongoClientErr
	}
	return mongoClient.Database(database).Collection(collection), nil
}
