package test_helpers

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	dynamodb_types "github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/meetnearme/pizza/functions/gateway/types"
)

type MockDynamoDBClient struct {
	PutItemFunc       func(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	QueryFunc         func(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	CreateTableFunc   func(ctx context.Context, params *dynamodb.CreateTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.CreateTableOutput, error)
	DescribeTableFunc func(ctx context.Context, params *dynamodb.DescribeTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error)
	ListTablesFunc    func(ctx context.Context, params *dynamodb.ListTablesInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ListTablesOutput, error)
}

func (m *MockDynamoDBClient) PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	if m.PutItemFunc != nil {
		return m.PutItemFunc(ctx, params, optFns...)
	}
	return &dynamodb.PutItemOutput{}, nil
}

func (m *MockDynamoDBClient) Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	return m.QueryFunc(ctx, params, optFns...)
}

func (m *MockDynamoDBClient) CreateTable(ctx context.Context, params *dynamodb.CreateTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.CreateTableOutput, error) {
	if m.CreateTableFunc != nil {
		return m.CreateTableFunc(ctx, params, optFns...)
	}
	return &dynamodb.CreateTableOutput{}, nil
}

func (m *MockDynamoDBClient) DescribeTable(ctx context.Context, params *dynamodb.DescribeTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error) {
	return m.DescribeTableFunc(ctx, params, optFns...)
}

func (m *MockDynamoDBClient) ListTables(ctx context.Context, params *dynamodb.ListTablesInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ListTablesOutput, error) {
	if m.ListTablesFunc != nil {
		return m.ListTablesFunc(ctx, params, optFns...)
	}
	return &dynamodb.ListTablesOutput{}, nil
}

// InMemoryDynamoDB keeps items keyed by their "name" attribute, which is all
// the pizza table's key schema needs.
type InMemoryDynamoDB struct {
	mu    sync.Mutex
	items map[string]map[string]dynamodb_types.AttributeValue
}

func NewInMemoryDynamoDB() *InMemoryDynamoDB {
	return &InMemoryDynamoDB{items: map[string]map[string]dynamodb_types.AttributeValue{}}
}

func (db *InMemoryDynamoDB) PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	key, ok := params.Item[types.PizzaNameAttr].(*dynamodb_types.AttributeValueMemberS)
	if !ok {
		return nil, fmt.Errorf("ValidationException: missing key attribute %q", types.PizzaNameAttr)
	}
	db.mu.Lock()
	defer db.mu.Unlock()
	db.items[key.Value] = params.Item
	return &dynamodb.PutItemOutput{}, nil
}

// Query only understands a single equality key condition.
func (db *InMemoryDynamoDB) Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	if len(params.ExpressionAttributeValues) != 1 {
		return nil, fmt.Errorf("ValidationException: expected one key value, got %d", len(params.ExpressionAttributeValues))
	}
	var key string
	for _, v := range params.ExpressionAttributeValues {
		s, ok := v.(*dynamodb_types.AttributeValueMemberS)
		if !ok {
			return nil, fmt.Errorf("ValidationException: key value must be S")
		}
		key = s.Value
	}

	db.mu.Lock()
	defer db.mu.Unlock()
	item, ok := db.items[key]
	if !ok {
		return &dynamodb.QueryOutput{Items: []map[string]dynamodb_types.AttributeValue{}}, nil
	}
	return &dynamodb.QueryOutput{Items: []map[string]dynamodb_types.AttributeValue{item}, Count: 1}, nil
}

type MockMongoCollection struct {
	InsertOneFunc func(ctx context.Context, document interface{}, opts ...*options.InsertOneOptions) (*mongo.InsertOneResult, error)
	FindOneFunc   func(ctx context.Context, filter interface{}, opts ...*options.FindOneOptions) *mongo.SingleResult
}

func (m *MockMongoCollection) InsertOne(ctx context.Context, document interface{}, opts ...*options.InsertOneOptions) (*mongo.InsertOneResult, error) {
	if m.InsertOneFunc != nil {
		return m.InsertOneFunc(ctx, document, opts...)
	}
	return &mongo.InsertOneResult{}, nil
}

func (m *MockMongoCollection) FindOne(ctx context.Context, filter interface{}, opts ...*options.FindOneOptions) *mongo.SingleResult {
	return m.FindOneFunc(ctx, filter, opts...)
}

// NoDocumentResult behaves like a FindOne that matched nothing.
func NoDocumentResult() *mongo.SingleResult {
	return &mongo.SingleResult{}
}

// ErrorResult behaves like a FindOne that failed; Raw returns
// mongo.ErrNilDocument.
func ErrorResult() *mongo.SingleResult {
	return mongo.NewSingleResultFromDocument(nil, nil, nil)
}

func DocumentResult(doc interface{}) *mongo.SingleResult {
	return mongo.NewSingleResultFromDocument(doc, nil, nil)
}

// InMemoryMongoCollection appends every inserted document, so documents with
// the same name pile up just like a collection without a unique index.
type InMemoryMongoCollection struct {
	mu   sync.Mutex
	docs []bson.Raw
}

func NewInMemoryMongoCollection() *InMemoryMongoCollection {
	return &InMemoryMongoCollection{}
}

func (c *InMemoryMongoCollection) InsertOne(ctx context.Context, document interface{}, opts ...*options.InsertOneOptions) (*mongo.InsertOneResult, error) {
	raw, err := bson.Marshal(document)
	if err != nil {
		return nil, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.docs = append(c.docs, raw)
	return &mongo.InsertOneResult{InsertedID: len(c.docs)}, nil
}

// FindOne only understands a bson.D of exact-match string fields.
func (c *InMemoryMongoCollection) FindOne(ctx context.Context, filter interface{}, opts ...*options.FindOneOptions) *mongo.SingleResult {
	d, ok := filter.(bson.D)
	if !ok {
		return ErrorResult()
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	for _, doc := range c.docs {
		if matches(doc, d) {
			return DocumentResult(doc)
		}
	}
	return NoDocumentResult()
}

func (c *InMemoryMongoCollection) Count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.docs)
}

func matches(doc bson.Raw, filter bson.D) bool {
	for _, e := range filter {
		want, ok := e.Value.(string)
		if !ok {
			return false
		}
		got, ok := doc.Lookup(e.Key).StringValueOK()
		if !ok || got != want {
			return false
		}
	}
	return true
}

type MockPizzaService struct {
	CreatePizzaFunc func(ctx context.Context, pizza types.Pizza) (*types.Pizza, error)
	GetPizzaFunc    func(ctx context.Context, name string) (*types.Pizza, error)

	Calls atomic.Int32
}

func (m *MockPizzaService) CreatePizza(ctx context.Context, pizza types.Pizza) (*types.Pizza, error) {
	m.Calls.Add(1)
	if m.CreatePizzaFunc != nil {
		return m.CreatePizzaFunc(ctx, pizza)
	}
	return &pizza, nil
}

func (m *MockPizzaService) GetPizza(ctx context.Context, name string) (*types.Pizza, error) {
	m.Calls.Add(1)
	if m.GetPizzaFunc != nil {
		return m.GetPizzaFunc(ctx, name)
	}
	return nil, nil
}
