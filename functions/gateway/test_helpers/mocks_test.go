package test_helpers

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	dynamodb_types "github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestMockDynamoDBClient_PutItem(t *testing.T) {
	mockClient := &MockDynamoDBClient{}

	_, err := mockClient.PutItem(context.Background(), &dynamodb.PutItemInput{})
	if err != nil {
		t.Fatalf("PutItem failed: %v", err)
	}
}

func TestMockDynamoDBClient_Query(t *testing.T) {
	mockClient := &MockDynamoDBClient{
		QueryFunc: func(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
			return &dynamodb.QueryOutput{Items: []map[string]dynamodb_types.AttributeValue{
				{"name": &dynamodb_types.AttributeValueMemberS{Value: "margherita"}},
			}}, nil
		},
	}

	result, err := mockClient.Query(context.Background(), &dynamodb.QueryInput{})
	if err != nil {
		t.Fatalf("Query failed: %v", err)
	}
	if len(result.Items) != 1 {
		t.Errorf("expected 1 item, got %d", len(result.Items))
	}
}

func TestInMemoryDynamoDB_PutThenQuery(t *testing.T) {
	db := NewInMemoryDynamoDB()
	ctx := context.Background()

	_, err := db.PutItem(ctx, &dynamodb.PutItemInput{Item: map[string]dynamodb_types.AttributeValue{
		"name":  &dynamodb_types.AttributeValueMemberS{Value: "margherita"},
		"price": &dynamodb_types.AttributeValueMemberN{Value: "10"},
	}})
	if err != nil {
		t.Fatalf("PutItem failed: %v", err)
	}

	out, err := db.Query(ctx, &dynamodb.QueryInput{ExpressionAttributeValues: map[string]dynamodb_types.AttributeValue{
		":0": &dynamodb_types.AttributeValueMemberS{Value: "margherita"},
	}})
	if err != nil {
		t.Fatalf("Query failed: %v", err)
	}
	if len(out.Items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(out.Items))
	}

	out, err = db.Query(ctx, &dynamodb.QueryInput{ExpressionAttributeValues: map[string]dynamodb_types.AttributeValue{
		":0": &dynamodb_types.AttributeValueMemberS{Value: "Margherita"},
	}})
	if err != nil {
		t.Fatalf("Query failed: %v", err)
	}
	if len(out.Items) != 0 {
		t.Errorf("expected case-sensitive miss, got %d items", len(out.Items))
	}
}

func TestInMemoryDynamoDB_PutWithoutKey(t *testing.T) {
	db := NewInMemoryDynamoDB()
	_, err := db.PutItem(context.Background(), &dynamodb.PutItemInput{Item: map[string]dynamodb_types.AttributeValue{}})
	if err == nil {
		t.Error("expected error for item without key attribute")
	}
}

func TestInMemoryMongoCollection_KeepsDuplicates(t *testing.T) {
	coll := NewInMemoryMongoCollection()
	ctx := context.Background()

	for _, price := range []int32{10, 12} {
		if _, err := coll.InsertOne(ctx, bson.D{{Key: "name", Value: "margherita"}, {Key: "price", Value: price}}); err != nil {
			t.Fatalf("InsertOne failed: %v", err)
		}
	}
	if coll.Count() != 2 {
		t.Errorf("expected 2 documents, got %d", coll.Count())
	}

	raw, err := coll.FindOne(ctx, bson.D{{Key: "name", Value: "margherita"}}).Raw()
	if err != nil {
		t.Fatalf("FindOne failed: %v", err)
	}
	if got := raw.Lookup("price").Int32(); got != 10 {
		t.Errorf("expected first inserted document, got price %d", got)
	}

	_, err = coll.FindOne(ctx, bson.D{{Key: "name", Value: "hawaiian"}}).Raw()
	if err != mongo.ErrNoDocuments {
		t.Errorf("expected ErrNoDocuments, got %v", err)
	}
}

func TestMockPizzaService_CountsCalls(t *testing.T) {
	svc := &MockPizzaService{}
	_, _ = svc.GetPizza(context.Background(), "margherita")
	if svc.Calls.Load() != 1 {
		t.Errorf("expected 1 call, got %d", svc.Calls.Load())
	}
}
