package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"pos/cmd"
	poshttp "pos/internal/adapters/in/http"
	"pos/internal/adapters/out/postgres/orderrepo"
	"pos/internal/adapters/out/postgres/productrepo"
	"pos/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	db := mustConnectDB(configs)

	root := cmd.NewCompositionRoot(configs, db)

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	jobManager := jobs.NewJobManager(
		root.CreatePurgePaidOrdersCommandHandler(),
		configs.PurgeSchedule,
		configs.PurgeRetention,
		logger,
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&root, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	if err := godotenv.Load(".env"); err != nil {
		log.Fatalf("Error loading .env file")
	}

	retention, err := time.ParseDuration(os.Getenv("PURGE_RETENTION"))
	if err != nil {
		log.Fatalf("Invalid PURGE_RETENTION: %v", err)
	}

	return cmd.Config{
		HTTPPort:       os.Getenv("HTTP_PORT"),
		DBHost:         os.Getenv("DB_HOST"),
		DBPort:         os.Getenv("DB_PORT"),
		DBUser:         os.Getenv("DB_USER"),
		DBPassword:     os.Getenv("DB_PASSWORD"),
		DBName:         os.Getenv("DB_NAME"),
		DBSslMode:      os.Getenv("DB_SSLMODE"),
		PurgeSchedule:  os.Getenv("PURGE_SCHEDULE"),
		PurgeRetention: retention,
	}
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword,
		configs.DBName, configs.DBSslMode)

	db, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
		&orderrepo.OrderExtraDTO{},
		&productrepo.ProductDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	return db
}

func startWebServer(root *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := poshttp.NewServer(
		root.CreateCreateOrderCommandHandler(),
		root.CreateUpdateOrderCommandHandler(),
		root.CreateDeleteOrderCommandHandler(),
		root.CreateAddOrderItemCommandHandler(),
		root.CreateChangeOrderItemQuantityCommandHandler(),
		root.CreateRemoveOrderItemCommandHandler(),
		root.CreateApplyOrderDiscountCommandHandler(),
		root.CreateRemoveOrderDiscountCommandHandler(),
		root.CreateAddOrderExtraCommandHandler(),
		root.CreateRemoveOrderExtraCommandHandler(),
		root.CreateMarkOrderPaidCommandHandler(),
		root.CreateCreateProductCommandHandler(),
		root.CreateChangeProductPriceCommandHandler(),
		root.CreateDeactivateProductCommandHandler(),
		root.CreateGetOrdersQueryHandler(),
		root.CreateGetActiveProductsQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
