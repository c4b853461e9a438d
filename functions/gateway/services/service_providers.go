package services

import (
	"context"
	"fmt"

	"github.com/meetnearme/pizza/functions/gateway/helpers"
	"github.com/meetnearme/pizza/functions/gateway/services/dynamodb_service"
	"github.com/meetnearme/pizza/functions/gateway/services/mongodb_service"
	"github.com/meetnearme/pizza/functions/gateway/transport"
	internal_types "github.com/meetnearme/pizza/functions/gateway/types"
)

// PizzaServiceDeps lets callers hand in an already built client. A nil field
// means the client is built from the environment.
type PizzaServiceDeps struct {
	DynamoDB internal_types.DynamoDBAPI
	Mongo    internal_types.MongoCollectionAPI
}

// GetPizzaService picks the storage backend once, at startup.
func GetPizzaService(ctx context.Context, cfg helpers.Config, deps PizzaServiceDeps) (internal_types.PizzaServiceInterface, error) {
	switch cfg.StorageBackend {
	case helpers.STORAGE_BACKEND_DYNAMODB:
		client := deps.DynamoDB
		if client == nil {
			db, err := transport.GetDB(ctx, cfg.AWSRegion, cfg.DynamoDBEndpoint)
			if err != nil {
				return nil, err
			}
			client = db
		}
		return dynamodb_service.NewPizzaService(client, cfg.PizzaTableName), nil

	case helpers.STORAGE_BACKEND_MONGODB:
		collection := deps.Mongo
		if collection == nil {
			coll, err := transport.GetMongoCollection(ctx, cfg.MongoHost, cfg.MongoPort, cfg.MongoDatabase, cfg.PizzaTableName)
			if err != nil {
				return nil, err
			}
			collection = coll
		}
		return mongodb_service.NewPizzaService(collection), nil
	}

	return nil, fmt.Errorf("unknown storage backend %q", cfg.StorageBackend)
}
