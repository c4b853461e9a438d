package mongodb_service

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	internal_types "github.com/meetnearme/pizza/functions/gateway/types"
)

type PizzaService struct {
	collection internal_types.MongoCollectionAPI
}

func NewPizzaService(collection internal_types.MongoCollectionAPI) internal_types.PizzaServiceInterface {
	return &PizzaService{collection: collection}
}

// CreatePizza inserts a new document every time. Two creates with the same
// name leave two documents behind; GetPizza returns whichever the server
// finds first.
func (s *PizzaService) CreatePizza(ctx context.Context, pizza internal_types.Pizza) (*internal_types.Pizza, error) {
	if _, err := s.collection.InsertOne(ctx, pizza.ToDocument()); err != nil {
		return nil, internal_types.Unavailable("insert pizza", err)
	}
	return &pizza, nil
}

func (s *PizzaService) GetPizza(ctx context.Context, name string) (*internal_types.Pizza, error) {
	filter := bson.D{{Key: internal_types.PizzaNameAttr, Value: name}}

	raw, err := s.collection.FindOne(ctx, filter).Raw()
	if errors.Is(err, mongo.ErrNoDocuments) {
		log.Debug().Str("name", name).Msg("no pizza found")
		return nil, nil
	}
	if err != nil {
		return nil, internal_types.Unavailable("find pizza", err)
	}

	return internal_types.PizzaFromDocument(raw)
}
