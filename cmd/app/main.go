package main

import (
	"context"
	"fmt"
	"log"

	"orders/api"
	"orders/cmd"
	_ "orders/docs"
	httpin "orders/internal/adapters/in/http"

	"github.com/caarlos0/env/v11"
	"github.com/getkin/kin-openapi/openapi3"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// @title Orders API
// @version 1.0.0
// @description Order management service with scoped authorization and RFC 7807 errors.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// A missing .env file is fine, real environment variables still apply.
	_ = godotenv.Load()

	var config cmd.Config
	if err := env.Parse(&config); err != nil {
		log.Fatalf("parse config: %v", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer logger.Sync()
	sugar := logger.Sugar()

	apiDoc, err := api.Load(context.Background())
	if err != nil {
		sugar.Fatalw("failed to load openapi document", "error", err)
	}

	root := cmd.NewCompositionRoot(config, sugar)

	e := buildEcho(&root, apiDoc, sugar)

	sugar.Infow("starting http server", "service", cmd.ServiceName, "port", config.HTTPPort)
	if err := e.Start(fmt.Sprintf(":%s", config.HTTPPort)); err != nil {
		sugar.Fatalw("http server stopped", "error", err)
	}
}

func buildEcho(root *cmd.CompositionRoot, apiDoc *openapi3.T, log *zap.SugaredLogger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = httpin.NewErrorHandler(log)

	server := httpin.NewServer(
		cmd.ServiceName,
		cmd.ServiceVersion,
		apiDoc,
		root.CreateCreateOrderCommandHandler(),
		root.CreateChangeOrderStatusCommandHandler(),
		root.CreateGetOrderQueryHandler(),
		root.CreateListOrdersQueryHandler(),
		log,
	)
	server.RegisterRoutes(e, root.CreateTokenAuthenticator(), root.CreateScopeAuthorizer())

	return e
}
