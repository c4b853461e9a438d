package transport

import (
	"context"
	"fmt"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/rs/zerolog/log"
)

var (
	db     *dynamodb.Client
	dbErr  error
	dbOnce sync.Once
)

// CreateDbClient builds a DynamoDB client from ambient credentials. A non-empty
// endpoint points the client at a local DynamoDB, which still needs some
// credentials to sign requests with.
func CreateDbClient(ctx context.Context, region, endpoint string) (*dynamodb.Client, error) {
	opts := []func(*config.LoadOptions) error{config.WithRegion(region)}
	if endpoint != "" {
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider("local", "local", ""),
		))
	}

	cfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load aws config: %w", err)
	}

	return dynamodb.NewFromConfig(cfg, func(o *dynamodb.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
	}), nil
}

// GetDB returns the process-wide DynamoDB client. The client is safe for
// concurrent use, so every invocation shares it.
func GetDB(ctx context.Context, region, endpoint string) (*dynamodb.Client, error) {
	dbOnce.Do(func() {
		db, dbErr = CreateDbClient(ctx, region, endpoint)
		if dbErr == nil {
			log.Info().Str("region", region).Str("endpoint", endpoint).Msg("dynamodb client created")
		}
	})
	return db, dbErr
}
