package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/Abhishek-dev18/Water-Distribution-Management/internal/auth"
	"github.com/Abhishek-dev18/Water-Distribution-Management/internal/config"
	"github.com/Abhishek-dev18/Water-Distribution-Management/internal/handlers"
	"github.com/Abhishek-dev18/Water-Distribution-Management/internal/health"
	apphttp "github.com/Abhishek-dev18/Water-Distribution-Management/internal/http"
	"github.com/Abhishek-dev18/Water-Distribution-Management/internal/middleware"
	"github.com/Abhishek-dev18/Water-Distribution-Management/internal/repositories"
	"github.com/Abhishek-dev18/Water-Distribution-Management/internal/services"
	"github.com/Abhishek-dev18/Water-Distribution-Management/internal/store"
)

func openStore(cfg *config.Config) store.Store {
	switch cfg.Storage.Backend {
	case "postgres":
		pg := cfg.Storage.Postgres
		s, err := store.NewPostgres(pg.Host, pg.Port, pg.User, pg.Password, pg.Name)
		if err != nil {
			log.Fatalf("Failed to connect to postgres: %v", err)
		}
		return s
	case "memory":
		log.Println("[Main] Using in-memory storage, data will not survive restarts")
		return store.NewMemory()
	default:
		rd := cfg.Storage.Redis
		s, err := store.NewRedis(rd.Addr, rd.Password, rd.DB)
		if err != nil {
			log.Fatalf("Failed to connect to redis at %s: %v", rd.Addr, err)
		}
		log.Printf("[Main] Connected to redis at %s", rd.Addr)
		return s
	}
}

func main() {
	cfg := config.Load()

	kv := openStore(cfg)
	defer kv.Close()

	// Repositories
	customerRepo := repositories.NewCustomerRepository(kv)
	areaRepo := repositories.NewAreaRepository(kv)
	transactionRepo := repositories.NewTransactionRepository(kv)
	settingsRepo := repositories.NewSettingsRepository(kv)

	// Services
	transliterateService := services.NewTransliterateService()
	customerService := services.NewCustomerService(customerRepo, transliterateService)
	areaService := services.NewAreaService(areaRepo, customerRepo)
	ledgerService := services.NewLedgerService(customerRepo, transactionRepo)
	supplyService := services.NewSupplyService(customerRepo, transactionRepo, ledgerService)
	billingService := services.NewBillingService(customerRepo, settingsRepo, ledgerService)
	paymentService := services.NewPaymentService(customerRepo, transactionRepo)
	razorpayService := services.NewRazorpayService(cfg.Razorpay.KeyID, cfg.Razorpay.KeySecret, ledgerService, paymentService)
	insightService := services.NewInsightService(ledgerService, cfg.Gemini.APIKey)
	backupService := services.NewBackupService(customerRepo, areaRepo, transactionRepo, settingsRepo, services.R2Config{
		Endpoint:  cfg.Backup.R2Endpoint,
		AccessKey: cfg.Backup.R2AccessKey,
		SecretKey: cfg.Backup.R2SecretKey,
		Bucket:    cfg.Backup.R2Bucket,
		Region:    cfg.Backup.R2Region,
	})

	backupInterval := time.Duration(cfg.Backup.IntervalHours) * time.Hour
	if backupService.R2Enabled() {
		backupService.StartScheduler(backupInterval)
	}

	// Auth
	jwtManager := auth.NewJWTManager(cfg)
	authMiddleware := middleware.NewAuthMiddleware(jwtManager)

	// Handlers
	authHandler := handlers.NewAuthHandler(cfg, jwtManager)
	customerHandler := handlers.NewCustomerHandler(customerService, ledgerService)
	areaHandler := handlers.NewAreaHandler(areaService)
	transactionHandler := handlers.NewTransactionHandler(transactionRepo, ledgerService)
	ledgerHandler := handlers.NewLedgerHandler(ledgerService)
	supplyHandler := handlers.NewSupplyHandler(supplyService, billingService)
	billingHandler := handlers.NewBillingHandler(billingService)
	paymentHandler := handlers.NewPaymentHandler(paymentService)
	razorpayHandler := handlers.NewRazorpayHandler(razorpayService)
	settingsHandler := handlers.NewSettingsHandler(settingsRepo)
	backupHandler := handlers.NewBackupHandler(backupService, backupInterval)
	insightHandler := handlers.NewInsightHandler(insightService)
	transliterateHandler := handlers.NewTransliterateHandler(transliterateService)
	healthHandler := handlers.NewHealthHandler(health.NewHealthChecker(kv))

	router := apphttp.NewRouter(
		authHandler,
		customerHandler,
		areaHandler,
		transactionHandler,
		ledgerHandler,
		supplyHandler,
		billingHandler,
		paymentHandler,
		razorpayHandler,
		settingsHandler,
		backupHandler,
		insightHandler,
		transliterateHandler,
		healthHandler,
		authMiddleware,
	)

	corsMiddleware := middleware.NewCORS(cfg)
	handler := middleware.PanicRecovery(middleware.MetricsMiddleware(corsMiddleware(router)))

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Printf("[Main] AquaFlow backend listening on %s (storage: %s)", addr, cfg.Storage.Backend)
	if err := http.ListenAndServe(addr, handler); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
