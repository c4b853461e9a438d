package dynamodb_service

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/rs/zerolog/log"

	internal_types "github.com/meetnearme/pizza/functions/gateway/types"
)

type PizzaService struct {
	client    internal_types.DynamoDBAPI
	tableName string
}

func NewPizzaService(client internal_types.DynamoDBAPI, tableName string) internal_types.PizzaServiceInterface {
	return &PizzaService{client: client, tableName: tableName}
}

// CreatePizza overwrites any pizza already stored under the same name.
func (s *PizzaService) CreatePizza(ctx context.Context, pizza internal_types.Pizza) (*internal_types.Pizza, error) {
	if s.tableName == "" {
		return nil, internal_types.Unavailable("put pizza", fmt.Errorf("tableName is empty"))
	}

	item, err := pizza.ToItem()
	if err != nil {
		return nil, fmt.Errorf("failed to marshal pizza: %w", err)
	}

	input := &dynamodb.PutItemInput{
		TableName: aws.String(s.tableName),
		Item:      item,
	}

	if _, err := s.client.PutItem(ctx, input); err != nil {
		return nil, internal_types.Unavailable("put pizza", err)
	}

	return &pizza, nil
}

func (s *PizzaService) GetPizza(ctx context.Context, name string) (*internal_types.Pizza, error) {
	if s.tableName == "" {
		return nil, internal_types.Unavailable("query pizza", fmt.Errorf("tableName is empty"))
	}

	keyEx := expression.Key(internal_types.PizzaNameAttr).Equal(expression.Value(name))

	expr, err := expression.NewBuilder().WithKeyCondition(keyEx).Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build expression: %w", err)
	}

	queryInput := &dynamodb.QueryInput{
		TableName:                 aws.String(s.tableName),
		KeyConditionExpression:    expr.KeyCondition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	}

	result, err := s.client.Query(ctx, queryInput)
	if err != nil {
		return nil, internal_types.Unavailable("query pizza", err)
	}

	// the key schema guarantees at most one item
	if len(result.Items) == 0 {
		log.Debug().Str("name", name).Str("table", s.tableName).Msg("no pizza found")
		return nil, nil
	}

	return internal_types.PizzaFromItem(result.Items[0])
}
