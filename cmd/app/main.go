package main

import (
	"fmt"
	"log/slog"
	"os"

	"bakeshop/cmd"
	bakeshophttp "bakeshop/internal/adapters/in/http"
	"bakeshop/internal/adapters/out/postgres/orderrepo"
	"bakeshop/internal/adapters/out/postgres/partnerrepo"
	"bakeshop/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB, err := gorm.Open(postgres.Open(configs.DSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	if err := gormDB.AutoMigrate(&orderrepo.OrderDTO{}, &partnerrepo.PartnerDTO{}); err != nil {
		log.Fatalf("Error migrating database schema: %v", err)
	}

	storeLocation, err := configs.StoreLocation()
	if err != nil {
		log.Fatalf("Invalid store location: %v", err)
	}

	deliverySettings, err := cmd.DefaultDeliverySettings()
	if err != nil {
		log.Fatalf("Invalid delivery settings: %v", err)
	}

	app := cmd.NewCompositionRoot(configs, gormDB, storeLocation, deliverySettings)

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	jobManager := jobs.NewJobManager(app.CreateDispatchOrdersCommandHandler(), logger)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting background jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:   goDotEnvVariable("HTTP_PORT"),
		DBHost:     goDotEnvVariable("DB_HOST"),
		DBPort:     goDotEnvVariable("DB_PORT"),
		DBUser:     goDotEnvVariable("DB_USER"),
		DBPassword: goDotEnvVariable("DB_PASSWORD"),
		DBName:     goDotEnvVariable("DB_NAME"),
		DBSslMode:  goDotEnvVariable("DB_SSLMODE"),
	}

	storeLat, err := cmd.ParseCoordinate(goDotEnvVariable("STORE_LAT"), cmd.DefaultStoreLat)
	if err != nil {
		log.Fatalf("Invalid STORE_LAT: %v", err)
	}
	storeLng, err := cmd.ParseCoordinate(goDotEnvVariable("STORE_LNG"), cmd.DefaultStoreLng)
	if err != nil {
		log.Fatalf("Invalid STORE_LNG: %v", err)
	}
	config.StoreLat = storeLat
	config.StoreLng = storeLng

	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func startWebServer(app cmd.CompositionRoot, port string) {
	server := bakeshophttp.NewServer(
		app.CreatePlaceOrderCommandHandler(),
		app.CreateChangeOrderStatusCommandHandler(),
		app.CreateAssignPartnerCommandHandler(),
		app.CreateCreatePartnerCommandHandler(),
		app.CreateTogglePartnerStatusCommandHandler(),
		app.CreateGetAllOrdersQueryHandler(),
		app.CreateGetAllPartnersQueryHandler(),
		app.StoreLocation(),
		app.DeliverySettings(),
	)

	e := echo.New()
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
