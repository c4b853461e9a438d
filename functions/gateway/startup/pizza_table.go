package startup

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	dynamodb_types "github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/rs/zerolog/log"

	internal_types "github.com/meetnearme/pizza/functions/gateway/types"
)

const pizzaTableCapacityUnits = 5

var PizzaTableActiveTimeout = 2 * time.Minute

func pizzaTableInput(tableName string) *dynamodb.CreateTableInput {
	return &dynamodb.CreateTableInput{
		TableName: aws.String(tableName),
		KeySchema: []dynamodb_types.KeySchemaElement{
			{AttributeName: aws.String(internal_types.PizzaNameAttr), KeyType: dynamodb_types.KeyTypeHash},
		},
		AttributeDefinitions: []dynamodb_types.AttributeDefinition{
			{AttributeName: aws.String(internal_types.PizzaNameAttr), AttributeType: dynamodb_types.ScalarAttributeTypeS},
		},
		ProvisionedThroughput: &dynamodb_types.ProvisionedThroughput{
			ReadCapacityUnits:  aws.Int64(pizzaTableCapacityUnits),
			WriteCapacityUnits: aws.Int64(pizzaTableCapacityUnits),
		},
	}
}

// EnsurePizzaTable creates the pizza table keyed on name when it does not
// exist yet and waits for it to become active. An existing table is left as is.
func EnsurePizzaTable(ctx context.Context, client internal_types.DynamoDBTableAPI, tableName string) error {
	if tableName == "" {
		return fmt.Errorf("ERR: tableName is empty")
	}

	_, err := client.DescribeTable(ctx, &dynamodb.DescribeTableInput{TableName: aws.String(tableName)})
	if err == nil {
		log.Info().Str("table", tableName).Msg("pizza table already exists")
		return nil
	}
	var notFound *dynamodb_types.ResourceNotFoundException
	if !errors.As(err, &notFound) {
		return fmt.Errorf("failed to describe table %s: %w", tableName, err)
	}

	if _, err := client.CreateTable(ctx, pizzaTableInput(tableName)); err != nil {
		return fmt.Errorf("failed to create table %s: %w", tableName, err)
	}
	log.Info().Str("table", tableName).Msg("pizza table created")

	waiter := dynamodb.NewTableExistsWaiter(client)
	if err := waiter.Wait(ctx, &dynamodb.DescribeTableInput{TableName: aws.String(tableName)}, PizzaTableActiveTimeout); err != nil {
		return fmt.Errorf("table %s did not become active: %w", tableName, err)
	}

	out, err := client.ListTables(ctx, &dynamodb.ListTablesInput{})
	if err != nil {
		return fmt.Errorf("failed to list tables: %w", err)
	}
	log.Info().Strs("tables", out.TableNames).Msg("dynamodb tables")

	return nil
}
