package types

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	dynamodb_types "github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

const (
	PizzaNameAttr  = "name"
	PizzaPriceAttr = "price"
)

var (
	ErrStorageUnavailable = errors.New("storage unavailable")
	ErrStorageDecode      = errors.New("stored pizza could not be decoded")
)

type Pizza struct {
	Name  string `json:"name" dynamodbav:"name" bson:"name"`
	Price int32  `json:"price" dynamodbav:"price" bson:"price"`
}

// PizzaInput is the POST body. Price is a pointer so that a zero price still
// counts as present.
type PizzaInput struct {
	Name  string `json:"name" validate:"required"`
	Price *int32 `json:"price" validate:"required"`
}

func (p PizzaInput) ToPizza() Pizza {
	var price int32
	if p.Price != nil {
		price = *p.Price
	}
	return Pizza{Name: p.Name, Price: price}
}

// PizzaServiceInterface is the storage port. GetPizza returns nil, nil when no
// pizza has the given name.
type PizzaServiceInterface interface {
	CreatePizza(ctx context.Context, pizza Pizza) (*Pizza, error)
	GetPizza(ctx context.Context, name string) (*Pizza, error)
}

type DecodeError struct {
	Field  string
	Reason string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s: field %q %s", ErrStorageDecode.Error(), e.Field, e.Reason)
}

func (e *DecodeError) Is(target error) bool {
	return target == ErrStorageDecode
}

func Unavailable(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrStorageUnavailable, op, err)
}

// ToItem encodes name as S and price as N.
func (p Pizza) ToItem() (map[string]dynamodb_types.AttributeValue, error) {
	return attributevalue.MarshalMap(&p)
}

func PizzaFromItem(item map[string]dynamodb_types.AttributeValue) (*Pizza, error) {
	nameAttr, ok := item[PizzaNameAttr]
	if !ok {
		return nil, &DecodeError{Field: PizzaNameAttr, Reason: "is missing"}
	}
	name, ok := nameAttr.(*dynamodb_types.AttributeValueMemberS)
	if !ok {
		return nil, &DecodeError{Field: PizzaNameAttr, Reason: fmt.Sprintf("has type %T, want S", nameAttr)}
	}

	priceAttr, ok := item[PizzaPriceAttr]
	if !ok {
		return nil, &DecodeError{Field: PizzaPriceAttr, Reason: "is missing"}
	}
	price, ok := priceAttr.(*dynamodb_types.AttributeValueMemberN)
	if !ok {
		return nil, &DecodeError{Field: PizzaPriceAttr, Reason: fmt.Sprintf("has type %T, want N", priceAttr)}
	}
	parsed, err := strconv.ParseInt(price.Value, 10, 32)
	if err != nil {
		return nil, &DecodeError{Field: PizzaPriceAttr, Reason: fmt.Sprintf("is not an integer: %q", price.Value)}
	}

	return &Pizza{Name: name.Value, Price: int32(parsed)}, nil
}

// ToDocument encodes name as a string and price as int32.
func (p Pizza) ToDocument() bson.D {
	return bson.D{
		{Key: PizzaNameAttr, Value: p.Name},
		{Key: PizzaPriceAttr, Value: p.Price},
	}
}

func PizzaFromDocument(doc bson.Raw) (*Pizza, error) {
	nameVal, err := doc.LookupErr(PizzaNameAttr)
	if err != nil {
		return nil, &DecodeError{Field: PizzaNameAttr, Reason: "is missing"}
	}
	name, ok := nameVal.StringValueOK()
	if !ok {
		return nil, &DecodeError{Field: PizzaNameAttr, Reason: fmt.Sprintf("has type %s, want %s", nameVal.Type, bsontype.String)}
	}

	priceVal, err := doc.LookupErr(PizzaPriceAttr)
	if err != nil {
		return nil, &DecodeError{Field: PizzaPriceAttr, Reason: "is missing"}
	}
	price, ok := priceVal.Int32OK()
	if !ok {
		return nil, &DecodeError{Field: PizzaPriceAttr, Reason: fmt.Sprintf("has type %s, want %s", priceVal.Type, bsontype.Int32)}
	}

	return &Pizza{Name: name, Price: price}, nil
}
