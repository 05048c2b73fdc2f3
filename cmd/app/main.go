package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"instore/cmd"
	httpin "instore/internal/adapters/in/http"
	"instore/internal/adapters/out/postgres/sessionrepo"
	"instore/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB := mustOpenDB(configs)

	app := cmd.NewCompositionRoot(configs, gormDB)

	jobManager := startJobs(&app)
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:        goDotEnvVariable("HTTP_PORT"),
		DBHost:          goDotEnvVariable("DB_HOST"),
		DBPort:          goDotEnvVariable("DB_PORT"),
		DBUser:          goDotEnvVariable("DB_USER"),
		DBPassword:      goDotEnvVariable("DB_PASSWORD"),
		DBName:          goDotEnvVariable("DB_NAME"),
		DBSslMode:       goDotEnvVariable("DB_SSLMODE"),
		OrderServiceURL: goDotEnvVariable("ORDER_SERVICE_URL"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func mustOpenDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := gormDB.AutoMigrate(&sessionrepo.SessionDTO{}, &sessionrepo.ItemDTO{}); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	return gormDB
}

func startJobs(app *cmd.CompositionRoot) *jobs.JobManager {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	jobManager := jobs.NewJobManager(
		app.CreateGetTrackedOrdersQueryHandler(),
		app.CreateRefreshOrderCommandHandler(),
		logger,
	)

	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}

	return jobManager
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := httpin.NewServer(httpin.Handlers{
		BeginOrder:    app.CreateBeginOrderCommandHandler(),
		AddItem:       app.CreateAddItemCommandHandler(),
		UpdateItem:    app.CreateUpdateItemCommandHandler(),
		RemoveItem:    app.CreateRemoveItemCommandHandler(),
		AddToWishlist: app.CreateAddToWishlistCommandHandler(),
		MoveItem:      app.CreateMoveItemCommandHandler(),
		CloseOrder:    app.CreateCloseOrderCommandHandler(),
		CashierLogin:  app.CreateCashierLoginCommandHandler(),
		AdvanceOrder:  app.CreateAdvanceOrderCommandHandler(),
		RefreshOrder:  app.CreateRefreshOrderCommandHandler(),

		GetOrder:         app.CreateGetOrderQueryHandler(),
		GetTrackedOrders: app.CreateGetTrackedOrdersQueryHandler(),
		SearchProduct:    app.CreateSearchProductQueryHandler(),
	})
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
