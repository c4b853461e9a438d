package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/awslabs/aws-lambda-go-api-proxy/gorillamux"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"

	_ "github.com/joho/godotenv/autoload"

	"github.com/meetnearme/pizza/functions/gateway/handlers"
	"github.com/meetnearme/pizza/functions/gateway/helpers"
	"github.com/meetnearme/pizza/functions/gateway/services"
	internal_types "github.com/meetnearme/pizza/functions/gateway/types"
)

// Route handlers are registered for every method; the pizza dispatcher
// answers unsupported methods itself.
type Route struct {
	Path    string
	Handler func(http.ResponseWriter, *http.Request) http.HandlerFunc
}

func InitRoutes(pizzaService internal_types.PizzaServiceInterface) []Route {
	pizzaHandler := handlers.PizzaRouteHandler(pizzaService)
	return []Route{
		{"/pizza", pizzaHandler},
		{"/pizza/", pizzaHandler},
		{"/pizza/{" + helpers.PIZZA_NAME_KEY + "}", pizzaHandler},
	}
}

type App struct {
	Router *mux.Router
}

func NewApp() *App {
	app := &App{
		Router: mux.NewRouter(),
	}
	app.Router.Use(withContext)
	return app
}

func (app *App) SetupRoutes(routes []Route) {
	for _, route := range routes {
		app.addRoute(route)
	}
}

func (app *App) addRoute(route Route) {
	handler := func(w http.ResponseWriter, r *http.Request) {
		route.Handler(w, r).ServeHTTP(w, r)
	}
	app.Router.HandleFunc(route.Path, handler).Name(route.Path)
}

func (app *App) SetupNotFoundHandler() {
	app.Router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.Ctx(r.Context()).Debug().Str("path", r.URL.Path).Msg("route not found")
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error":"not found"}`))
	})
}

// withContext tags every request with the API Gateway request id, or a fresh
// uuid when running outside Lambda, and echoes it in X-Request-Id.
func withContext(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		requestID := uuid.NewString()
		if apiGwReq, ok := ctx.Value(helpers.ApiGwReqKey).(events.APIGatewayV2HTTPRequest); ok && apiGwReq.RequestContext.RequestID != "" {
			requestID = apiGwReq.RequestContext.RequestID
		}
		ctx = helpers.WithRequestLogger(ctx, requestID)
		w.Header().Set("X-Request-Id", requestID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func isLambda() bool {
	return os.Getenv("AWS_LAMBDA_RUNTIME_API") != ""
}

func main() {
	local := flag.Bool("local", false, "serve over plain HTTP instead of the Lambda runtime")
	flag.Parse()

	cfg, err := helpers.LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	helpers.InitLogger(cfg.LogLevel)

	pizzaService, err := services.GetPizzaService(context.Background(), cfg, services.PizzaServiceDeps{})
	if err != nil {
		log.Fatal().Err(err).Str("backend", cfg.StorageBackend).Msg("could not create pizza service")
	}

	app := NewApp()
	app.SetupNotFoundHandler()
	app.SetupRoutes(InitRoutes(pizzaService))

	if *local || !isLambda() {
		addr := fmt.Sprintf(":%d", cfg.Port)
		log.Info().Str("addr", addr).Str("backend", cfg.StorageBackend).Msg("serving pizza api")
		if err := http.ListenAndServe(addr, app.Router); err != nil {
			log.Fatal().Err(err).Msg("server stopped")
		}
		return
	}

	adapter := gorillamux.NewV2(app.Router)

	lambda.Start(func(ctx context.Context, request events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
		ctx = context.WithValue(ctx, helpers.ApiGwReqKey, request)
		return adapter.ProxyWithContext(ctx, request)
	})
}
