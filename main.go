package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ledgerly/config"
	"ledgerly/cron"
	"ledgerly/database"
	financeRepo "ledgerly/database/repository/finance"
	notificationRepo "ledgerly/database/repository/notification"
	"ledgerly/handlers"
	"ledgerly/middleware"
	"ledgerly/routes"
	"ledgerly/services/alerts"
	"ledgerly/services/notification"
	"ledgerly/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitLockClient()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	finRepo := financeRepo.NewMongoFinanceRepo()
	notifRepo := notificationRepo.NewMongoNotificationRepo()
	if err := finRepo.EnsureIndexes(); err != nil {
		logger.Sugar().Fatalf("main: failed to ensure financial record indexes: %v", err)
	}
	if err := notifRepo.EnsureIndexes(); err != nil {
		logger.Sugar().Fatalf("main: failed to ensure notification indexes: %v", err)
	}

	// services.
	formatter, err := alerts.NewCurrencyFormatter(config.AppConfig.CurrencyCode)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize currency formatter: %v", err)
	}
	rules := alerts.DefaultRules(
		config.AppConfig.LowSalesThreshold,
		config.AppConfig.HighExpenseThreshold,
		config.AppConfig.SalesWindowDays,
	)
	alertService := alerts.NewDefaultAlertService(finRepo, notifRepo, rules, formatter)

	notificationService, err := notification.NewDefaultNotificationService(notifRepo)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize notification service: %v", err)
	}

	locks := utils.NewLockManager(utils.GetLockClient(), 30*time.Second)

	// handlers.
	alertHandler := handlers.NewAlertHandler(alertService, locks)
	notificationHandler := handlers.NewNotificationHandler(notificationService)
	financeHandler := handlers.NewFinanceHandler(finRepo)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		CheckAlertsHandler: alertHandler.CheckAlertsHandler,

		ListNotificationsHandler:    notificationHandler.ListNotificationsHandler,
		MarkNotificationReadHandler: notificationHandler.MarkNotificationReadHandler,
		TestAlertHandler:            notificationHandler.TestAlertHandler,

		CreateSaleHandler:    financeHandler.CreateSaleHandler,
		ListSalesHandler:     financeHandler.ListSalesHandler,
		CreateExpenseHandler: financeHandler.CreateExpenseHandler,
		ListExpensesHandler:  financeHandler.ListExpensesHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Background evaluation: asynq worker plus the periodic sweep.
	cron.InitAlertWorker(alertService, locks)
	schedulerCtx, stopScheduler := context.WithCancel(context.Background())
	go cron.StartAlertScheduler(schedulerCtx, finRepo)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	stopScheduler()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
