package main

import (
	"context"

	"github.com/rs/zerolog/log"

	_ "github.com/joho/godotenv/autoload"

	"github.com/meetnearme/pizza/functions/gateway/helpers"
	"github.com/meetnearme/pizza/functions/gateway/startup"
	"github.com/meetnearme/pizza/functions/gateway/transport"
)

func main() {
	cfg, err := helpers.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("FATAL: could not load config")
	}
	helpers.InitLogger(cfg.LogLevel)

	if cfg.StorageBackend != helpers.STORAGE_BACKEND_DYNAMODB {
		log.Info().Str("backend", cfg.StorageBackend).Msg("nothing to set up for this backend")
		return
	}

	ctx := context.Background()
	client, err := transport.GetDB(ctx, cfg.AWSRegion, cfg.DynamoDBEndpoint)
	if err != nil {
		log.Fatal().Err(err).Msg("FATAL: could not create dynamodb client")
	}

	registry := &startup.Registry{}
	registry.Register("DynamoDB pizza table", func(ctx context.Context) error {
		return startup.EnsurePizzaTable(ctx, client, cfg.PizzaTableName)
	})

	if err := registry.RunAll(ctx); err != nil {
		log.Fatal().Err(err).Msg("FATAL: setup failed")
	}
}
