package helpers

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	StorageBackend   string `env:"STORAGE_BACKEND" envDefault:"dynamodb"`
	PizzaTableName   string `env:"PIZZA_TABLE_NAME" envDefault:"Pizzas"`
	DynamoDBEndpoint string `env:"DYNAMODB_ENDPOINT"`
	AWSRegion        string `env:"AWS_REGION" envDefault:"us-east-1"`
	MongoHost        string `env:"MONGO_HOST" envDefault:"localhost"`
	MongoPort        int    `env:"MONGO_PORT" envDefault:"27017"`
	MongoDatabase    string `env:"MONGO_DATABASE" envDefault:"pizza"`
	LogLevel         string `env:"LOG_LEVEL" envDefault:"info"`
	Port             int    `env:"PORT" envDefault:"8000"`
}

func LoadConfig() (Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	switch cfg.StorageBackend {
	case STORAGE_BACKEND_DYNAMODB, STORAGE_BACKEND_MONGODB:
	default:
		return Config{}, fmt.Errorf("unknown STORAGE_BACKEND %q", cfg.StorageBackend)
	}
	cfg.PizzaTableName = GetDbTableName(cfg.PizzaTableName)
	if cfg.PizzaTableName == "" {
		return Config{}, fmt.Errorf("pizza table name is empty")
	}
	return cfg, nil
}
