// File: cmd/service/main.go
// @title        Registration Form API
// @version      1.0
// @description  Validates registration form submissions and stores avatars in object storage
// @host         localhost:8080
// @BasePath     /api
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/Gwhiite/form/internal/config"
	"github.com/Gwhiite/form/internal/form"
	"github.com/Gwhiite/form/internal/router"
	"github.com/Gwhiite/form/internal/storage"

	_ "github.com/Gwhiite/form/docs" // swag generated docs

	echoSwagger "github.com/swaggo/echo-swagger"
)

var (
	loadConfig  = config.Load
	newStorage  = storage.NewMinioStorage
	newLogger   = zap.NewProduction
	startServer = func(e *echo.Echo, addr string) error { return e.Start(addr) }
	exitFunc    = os.Exit
)

func run() error {
	_ = godotenv.Load()

	cfg, err := loadConfig(os.Getenv("FORM_CONFIG"))
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger, err := newLogger()
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	store, err := newStorage(
		cfg.Storage.Endpoint,
		cfg.Storage.AccessKey,
		cfg.Storage.SecretKey,
		cfg.Storage.Bucket,
		cfg.Storage.UseSSL,
	)
	if err != nil {
		return fmt.Errorf("storage client: %w", err)
	}

	e := echo.New()
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	router.Setup(e, form.New(cfg.EmailDomain), store, logger)

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	logger.Info("starting server",
		zap.String("addr", cfg.ListenAddr),
		zap.String("bucket", cfg.Storage.Bucket),
	)
	return startServer(e, cfg.ListenAddr)
}

func main() {
	if err := run(); err != nil {
		log.Print(err)
		exitFunc(1)
	}
}
