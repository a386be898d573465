package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"parcel/cmd"
	_ "parcel/docs"
	httpin "parcel/internal/adapters/in/http"
	"parcel/internal/adapters/out/postgres/driverrepo"
	"parcel/internal/adapters/out/postgres/orderrepo"
	"parcel/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	echoSwagger "github.com/swaggo/echo-swagger"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	tariff, err := configs.Tariff()
	if err != nil {
		log.Fatalf("Invalid tariff configuration: %v", err)
	}

	gormDB, err := gorm.Open(gorm_postgres.Open(configs.DatabaseDSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err = gormDB.AutoMigrate(&orderrepo.OrderDTO{}, &driverrepo.DriverDTO{}); err != nil {
		log.Fatalf("Failed to migrate database schema: %v", err)
	}

	app := cmd.NewCompositionRoot(configs, gormDB, tariff)

	jobManager := jobs.NewJobManager(
		app.CreateAssignPendingOrderCommandHandler(),
		slog.New(slog.NewJSONHandler(os.Stdout, nil)),
	)
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start background jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs)
}

func getConfigs() cmd.Config {
	if err := godotenv.Load(".env"); err != nil {
		log.Warnf("No .env file loaded: %v", err)
	}

	return cmd.Config{
		HTTPPort:    envOrDefault("HTTP_PORT", "8080"),
		DBHost:      os.Getenv("DB_HOST"),
		DBPort:      os.Getenv("DB_PORT"),
		DBUser:      os.Getenv("DB_USER"),
		DBPassword:  os.Getenv("DB_PASSWORD"),
		DBName:      os.Getenv("DB_NAME"),
		DBSslMode:   envOrDefault("DB_SSLMODE", "disable"),
		OpenAPIPath: envOrDefault("OPENAPI_PATH", "api/openapi.yml"),

		TariffBaseFare:       os.Getenv("TARIFF_BASE_FARE"),
		TariffPerKmRate:      os.Getenv("TARIFF_PER_KM_RATE"),
		TariffFragileRate:    os.Getenv("TARIFF_FRAGILE_RATE"),
		TariffInsuranceRate:  os.Getenv("TARIFF_INSURANCE_RATE"),
		TariffAfterHoursRate: os.Getenv("TARIFF_AFTER_HOURS_RATE"),
		TariffWeekendRate:    os.Getenv("TARIFF_WEEKEND_RATE"),
		TariffMinimumCharge:  os.Getenv("TARIFF_MINIMUM_CHARGE"),
		TariffCommissionRate: os.Getenv("TARIFF_COMMISSION_RATE"),
	}
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func startWebServer(app *cmd.CompositionRoot, configs cmd.Config) {
	e := echo.New()

	validation, err := httpin.NewOpenAPIValidationMiddleware(configs.OpenAPIPath)
	if err != nil {
		log.Fatalf("Failed to load OpenAPI contract: %v", err)
	}
	e.Use(validation)

	server := httpin.NewServer(
		app.CreateCreateOrderCommandHandler(),
		app.CreateCreateDriverCommandHandler(),
		app.CreateAssignDriverCommandHandler(),
		app.CreateUpdateOrderStatusCommandHandler(),
		app.CreateCancelOrderCommandHandler(),
		app.CreateRecordPaymentCommandHandler(),
		app.CreateRecordFeedbackCommandHandler(),
		app.CreateGetOrderQueryHandler(),
		app.CreateGetTrackedOrderQueryHandler(),
		app.CreateGetActiveOrdersQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)))
}
