package helpers

const PizzaTablePrefix = "Pizzas"
const PIZZA_NAME_KEY string = "pizza_name"

const (
	STORAGE_BACKEND_DYNAMODB = "dynamodb"
	STORAGE_BACKEND_MONGODB  = "mongodb"
)

// client-facing error messages
const (
	ERR_NO_PARAM_FOUND   = "no param found"
	ERR_NO_PIZZA_FOUND   = "no pizza found"
	ERR_COULD_NOT_READ   = "could not read the pizza"
	ERR_UNSUPPORTED      = "unsupported"
	ERR_INTERNAL_STORAGE = "internal storage error"
)

type contextKey string

const ApiGwReqKey contextKey = "apiGwReq"
