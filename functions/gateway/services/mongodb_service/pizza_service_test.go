package mongodb_service

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/meetnearme/pizza/functions/gateway/test_helpers"
	internal_types "github.com/meetnearme/pizza/functions/gateway/types"
)

func TestCreatePizza(t *testing.T) {
	t.Run("inserts document", func(t *testing.T) {
		mockColl := &test_helpers.MockMongoCollection{
			InsertOneFunc: func(ctx context.Context, document interface{}, opts ...*options.InsertOneOptions) (*mongo.InsertOneResult, error) {
				want := bson.D{{Key: "name", Value: "margherita"}, {Key: "price", Value: int32(10)}}
				if !reflect.DeepEqual(document, want) {
					t.Errorf("unexpected document %#v", document)
				}
				return &mongo.InsertOneResult{InsertedID: "id"}, nil
			},
		}
		svc := NewPizzaService(mockColl)

		got, err := svc.CreatePizza(context.Background(), internal_types.Pizza{Name: "margherita", Price: 10})
		if err != nil {
			t.Fatalf("CreatePizza() error = %v", err)
		}
		if *got != (internal_types.Pizza{Name: "margherita", Price: 10}) {
			t.Errorf("CreatePizza() = %v", *got)
		}
	})

	t.Run("insert error", func(t *testing.T) {
		mockColl := &test_helpers.MockMongoCollection{
			InsertOneFunc: func(ctx context.Context, document interface{}, opts ...*options.InsertOneOptions) (*mongo.InsertOneResult, error) {
				return nil, errors.New("server selection timeout")
			},
		}
		svc := NewPizzaService(mockColl)

		got, err := svc.CreatePizza(context.Background(), internal_types.Pizza{Name: "margherita", Price: 10})
		if !errors.Is(err, internal_types.ErrStorageUnavailable) {
			t.Errorf("CreatePizza() error = %v, want ErrStorageUnavailable", err)
		}
		if got != nil {
			t.Errorf("CreatePizza() = %v, want nil", got)
		}
	})
}

func TestGetPizza(t *testing.T) {
	tests := []struct {
		name    string
		result  func() *mongo.SingleResult
		want    *internal_types.Pizza
		wantErr error
	}{
		{
			name: "found",
			result: func() *mongo.SingleResult {
				return test_helpers.DocumentResult(bson.D{
					{Key: "_id", Value: "abc"},
					{Key: "name", Value: "margherita"},
					{Key: "price", Value: int32(10)},
				})
			},
			want: &internal_types.Pizza{Name: "margherita", Price: 10},
		},
		{
			name:   "no document",
			result: test_helpers.NoDocumentResult,
		},
		{
			name:    "find error",
			result:  test_helpers.ErrorResult,
			wantErr: internal_types.ErrStorageUnavailable,
		},
		{
			name: "price stored as string",
			result: func() *mongo.SingleResult {
				return test_helpers.DocumentResult(bson.D{
					{Key: "name", Value: "margherita"},
					{Key: "price", Value: "10"},
				})
			},
			wantErr: internal_types.ErrStorageDecode,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockColl := &test_helpers.MockMongoCollection{
				FindOneFunc: func(ctx context.Context, filter interface{}, opts ...*options.FindOneOptions) *mongo.SingleResult {
					want := bson.D{{Key: "name", Value: "margherita"}}
					if !reflect.DeepEqual(filter, want) {
						t.Errorf("unexpected filter %#v", filter)
					}
					return tt.result()
				},
			}
			svc := NewPizzaService(mockColl)

			got, err := svc.GetPizza(context.Background(), "margherita")
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("GetPizza() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("GetPizza() unexpected error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("GetPizza() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPizzaRoundTrip(t *testing.T) {
	svc := NewPizzaService(test_helpers.NewInMemoryMongoCollection())
	ctx := context.Background()

	pizzas := []internal_types.Pizza{
		{Name: "margherita", Price: 10},
		{Name: "diavola", Price: 12},
		{Name: "free", Price: 0},
	}
	for _, p := range pizzas {
		if _, err := svc.CreatePizza(ctx, p); err != nil {
			t.Fatalf("CreatePizza(%v) error = %v", p, err)
		}
	}
	for _, p := range pizzas {
		got, err := svc.GetPizza(ctx, p.Name)
		if err != nil {
			t.Fatalf("GetPizza(%s) error = %v", p.Name, err)
		}
		if got == nil || *got != p {
			t.Errorf("GetPizza(%s) = %v, want %v", p.Name, got, p)
		}
	}

	got, err := svc.GetPizza(ctx, "never-written")
	if err != nil || got != nil {
		t.Errorf("GetPizza(never-written) = %v, %v; want nil, nil", got, err)
	}
}

func TestCreatePizzaKeepsDuplicates(t *testing.T) {
	coll := test_helpers.NewInMemoryMongoCollection()
	svc := NewPizzaService(coll)
	ctx := context.Background()

	for _, price := range []int32{10, 12} {
		if _, err := svc.CreatePizza(ctx, internal_types.Pizza{Name: "margherita", Price: price}); err != nil {
			t.Fatal(err)
		}
	}
	if coll.Count() != 2 {
		t.Errorf("expected both documents to be kept, got %d", coll.Count())
	}

	got, err := svc.GetPizza(ctx, "margherita")
	if err != nil {
		t.Fatal(err)
	}
	if got == nil || got.Name != "margherita" {
		t.Errorf("GetPizza() = %v", got)
	}
}
