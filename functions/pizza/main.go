package main

import (
	"context"
	"fmt"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/rs/zerolog/log"

	_ "github.com/joho/godotenv/autoload"

	"github.com/meetnearme/pizza/functions/gateway/handlers"
	"github.com/meetnearme/pizza/functions/gateway/helpers"
	"github.com/meetnearme/pizza/functions/gateway/services"
)

// main serves a function triggered directly by API Gateway proxy events.
func main() {
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

	lambda.Start(handlers.NewPizzaHandler(pizzaService).Router)
}
