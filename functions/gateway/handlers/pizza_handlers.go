package handlers

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"

	"github.com/meetnearme/pizza/functions/gateway/helpers"
	"github.com/meetnearme/pizza/functions/gateway/transport"
	internal_types "github.com/meetnearme/pizza/functions/gateway/types"
)

var validate *validator.Validate = validator.New()

type PizzaHandler struct {
	PizzaService internal_types.PizzaServiceInterface
}

func NewPizzaHandler(pizzaService internal_types.PizzaServiceInterface) *PizzaHandler {
	return &PizzaHandler{PizzaService: pizzaService}
}

// Dispatch maps one request onto the pizza service. Client mistakes come back
// as a 400 status with a JSON error body; storage failures come back as err
// and are never turned into a status here.
func (h *PizzaHandler) Dispatch(ctx context.Context, method, pizzaName, body string) (int, []byte, error) {
	switch method {
	case http.MethodGet:
		return h.getPizza(ctx, pizzaName)
	case http.MethodPost:
		return h.createPizza(ctx, body)
	default:
		return rejected(ctx, helpers.ERR_UNSUPPORTED, "method", method)
	}
}

func (h *PizzaHandler) getPizza(ctx context.Context, pizzaName string) (int, []byte, error) {
	if pizzaName == "" {
		return rejected(ctx, helpers.ERR_NO_PARAM_FOUND, "param", helpers.PIZZA_NAME_KEY)
	}

	pizza, err := h.PizzaService.GetPizza(ctx, pizzaName)
	if err != nil {
		return 0, nil, err
	}
	if pizza == nil {
		return rejected(ctx, helpers.ERR_NO_PIZZA_FOUND, "name", pizzaName)
	}

	return ok(pizza)
}

func (h *PizzaHandler) createPizza(ctx context.Context, body string) (int, []byte, error) {
	var input internal_types.PizzaInput
	if err := json.Unmarshal([]byte(body), &input); err != nil {
		return rejected(ctx, helpers.ERR_COULD_NOT_READ, "reason", err.Error())
	}
	if err := validate.Struct(&input); err != nil {
		return rejected(ctx, helpers.ERR_COULD_NOT_READ, "reason", err.Error())
	}

	pizza, err := h.PizzaService.CreatePizza(ctx, input.ToPizza())
	if err != nil {
		return 0, nil, err
	}

	return ok(pizza)
}

func ok(pizza *internal_types.Pizza) (int, []byte, error) {
	res, err := json.Marshal(pizza)
	if err != nil {
		return 0, nil, err
	}
	return http.StatusOK, res, nil
}

func rejected(ctx context.Context, message, key, value string) (int, []byte, error) {
	log.Ctx(ctx).Debug().Str(key, value).Str("error", message).Msg("rejected pizza request")
	return http.StatusBadRequest, transport.ErrorJSON(message), nil
}

// Router is the entrypoint for a function triggered directly by an API
// Gateway proxy event. Storage failures are returned to the Lambda runtime.
func (h *PizzaHandler) Router(ctx context.Context, req transport.Request) (transport.Response, error) {
	ctx = helpers.WithRequestLogger(ctx, req.RequestContext.RequestID)

	var body string
	if req.HTTPMethod == http.MethodPost {
		body = req.Body
	}
	if body != "" && req.IsBase64Encoded {
		decoded, err := base64.StdEncoding.DecodeString(body)
		if err != nil {
			return transport.SendClientError(http.StatusBadRequest, helpers.ERR_COULD_NOT_READ)
		}
		body = string(decoded)
	}

	status, res, err := h.Dispatch(ctx, req.HTTPMethod, req.PathParameters[helpers.PIZZA_NAME_KEY], body)
	if err != nil {
		return transport.SendServerError(err)
	}
	return transport.SendJSONRes(status, res)
}

// ServeHTTP is the entrypoint behind the gorilla/mux router. The proxy
// adapter has no way to report an invocation error, so storage failures are
// answered with a 500.
func (h *PizzaHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var body []byte
	if r.Method == http.MethodPost {
		var err error
		body, err = io.ReadAll(r.Body)
		if err != nil {
			transport.SendServerRes(w, transport.ErrorJSON(helpers.ERR_COULD_NOT_READ), http.StatusBadRequest, err)
			return
		}
	}

	status, res, err := h.Dispatch(r.Context(), r.Method, mux.Vars(r)[helpers.PIZZA_NAME_KEY], string(body))
	if err != nil {
		transport.SendServerRes(w, transport.ErrorJSON(helpers.ERR_INTERNAL_STORAGE), http.StatusInternalServerError, err)
		return
	}

	transport.SendServerRes(w, res, status, nil)
}

// PizzaRouteHandler wraps a PizzaHandler in the route handler shape used by
// the gateway router.
func PizzaRouteHandler(pizzaService internal_types.PizzaServiceInterface) func(http.ResponseWriter, *http.Request) http.HandlerFunc {
	handler := NewPizzaHandler(pizzaService)
	return func(w http.ResponseWriter, r *http.Request) http.HandlerFunc {
		return handler.ServeHTTP
	}
}
