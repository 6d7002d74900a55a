package http

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Abhishek-dev18/Water-Distribution-Management/internal/handlers"
	"github.com/Abhishek-dev18/Water-Distribution-Management/internal/middleware"
)

func NewRouter(
	authHandler *handlers.AuthHandler,
	customerHandler *handlers.CustomerHandler,
	areaHandler *handlers.AreaHandler,
	transactionHandler *handlers.TransactionHandler,
	ledgerHandler *handlers.LedgerHandler,
	supplyHandler *handlers.SupplyHandler,
	billingHandler *handlers.BillingHandler,
	paymentHandler *handlers.PaymentHandler,
	razorpayHandler *handlers.RazorpayHandler,
	settingsHandler *handlers.SettingsHandler,
	backupHandler *handlers.BackupHandler,
	insightHandler *handlers.InsightHandler,
	transliterateHandler *handlers.TransliterateHandler,
	healthHandler *handlers.HealthHandler,
	authMiddleware *middleware.AuthMiddleware,
) *mux.Router {
	r := mux.NewRouter()

	// Public routes
	r.HandleFunc("/health", healthHandler.Basic).Methods("GET")
	r.HandleFunc("/health/system", healthHandler.System).Methods("GET")
	r.Handle("/metrics", promhttp.Handler()).Methods("GET")
	r.HandleFunc("/api/auth/login", authHandler.Login).Methods("POST")

	// Protected API routes - Customers
	customersAPI := r.PathPrefix("/api/customers").Subrouter()
	customersAPI.Use(authMiddleware.Authenticate)
	customersAPI.HandleFunc("", customerHandler.ListCustomers).Methods("GET")
	customersAPI.HandleFunc("", customerHandler.SaveCustomer).Methods("POST")
	customersAPI.HandleFunc("/bulk", customerHandler.BulkSeed).Methods("POST")
	customersAPI.HandleFunc("/next-id", customerHandler.NextID).Methods("GET")
	customersAPI.HandleFunc("/{id}", customerHandler.GetCustomer).Methods("GET")
	customersAPI.HandleFunc("/{id}", customerHandler.DeleteCustomer).Methods("DELETE")
	customersAPI.HandleFunc("/{id}/stats", customerHandler.GetStats).Methods("GET")

	// Protected API routes - Areas
	areasAPI := r.PathPrefix("/api/areas").Subrouter()
	areasAPI.Use(authMiddleware.Authenticate)
	areasAPI.HandleFunc("", areaHandler.ListAreas).Methods("GET")
	areasAPI.HandleFunc("", areaHandler.SaveArea).Methods("POST")
	areasAPI.HandleFunc("/{id}", areaHandler.DeleteArea).Methods("DELETE")

	// Protected API routes - Transactions
	transactionsAPI := r.PathPrefix("/api/transactions").Subrouter()
	transactionsAPI.Use(authMiddleware.Authenticate)
	transactionsAPI.HandleFunc("", transactionHandler.ListTransactions).Methods("GET")
	transactionsAPI.HandleFunc("", transactionHandler.UpsertTransaction).Methods("POST")
	transactionsAPI.HandleFunc("/month", transactionHandler.MonthTransactions).Methods("GET")

	// Protected API routes - Ledger views
	r.Handle("/api/stats", authMiddleware.Authenticate(http.HandlerFunc(ledgerHandler.AllStats))).Methods("GET")
	r.Handle("/api/dashboard", authMiddleware.Authenticate(http.HandlerFunc(ledgerHandler.Dashboard))).Methods("GET")
	r.Handle("/api/analytics", authMiddleware.Authenticate(http.HandlerFunc(ledgerHandler.Analytics))).Methods("GET")

	// Protected API routes - Supply sheet
	supplyAPI := r.PathPrefix("/api/supply-sheet").Subrouter()
	supplyAPI.Use(authMiddleware.Authenticate)
	supplyAPI.HandleFunc("", supplyHandler.GetSheet).Methods("GET")
	supplyAPI.HandleFunc("/save", supplyHandler.SaveSheet).Methods("POST")
	supplyAPI.HandleFunc("/pdf", supplyHandler.GetSheetPDF).Methods("GET")
	supplyAPI.HandleFunc("/live", supplyHandler.LiveSheet).Methods("GET")

	// Protected API routes - Billing
	billsAPI := r.PathPrefix("/api/bills").Subrouter()
	billsAPI.Use(authMiddleware.Authenticate)
	billsAPI.HandleFunc("/archive", billingHandler.GetBulkBills).Methods("GET")
	billsAPI.HandleFunc("/customers-csv", billingHandler.GetCustomersCSV).Methods("GET")
	billsAPI.HandleFunc("/{id}", billingHandler.GetStatement).Methods("GET")
	billsAPI.HandleFunc("/{id}/pdf", billingHandler.GetBillPDF).Methods("GET")

	// Protected API routes - Payments
	paymentsAPI := r.PathPrefix("/api/payments").Subrouter()
	paymentsAPI.Use(authMiddleware.Authenticate)
	paymentsAPI.HandleFunc("", paymentHandler.Collect).Methods("POST")
	paymentsAPI.HandleFunc("/recent", paymentHandler.Recent).Methods("GET")

	// Protected API routes - Online payments
	razorpayAPI := r.PathPrefix("/api/razorpay").Subrouter()
	razorpayAPI.Use(authMiddleware.Authenticate)
	razorpayAPI.HandleFunc("/status", razorpayHandler.Status).Methods("GET")
	razorpayAPI.HandleFunc("/order", razorpayHandler.CreateOrder).Methods("POST")
	razorpayAPI.HandleFunc("/verify", razorpayHandler.VerifyPayment).Methods("POST")

	// Protected API routes - Settings
	settingsAPI := r.PathPrefix("/api/settings").Subrouter()
	settingsAPI.Use(authMiddleware.Authenticate)
	settingsAPI.HandleFunc("", settingsHandler.GetSettings).Methods("GET")
	settingsAPI.HandleFunc("", settingsHandler.SaveSettings).Methods("PUT")

	// Protected API routes - Backup
	backupAPI := r.PathPrefix("/api/backup").Subrouter()
	backupAPI.Use(authMiddleware.Authenticate)
	backupAPI.HandleFunc("/export", backupHandler.Export).Methods("GET")
	backupAPI.HandleFunc("/import", backupHandler.Import).Methods("POST")
	backupAPI.HandleFunc("/upload", backupHandler.Upload).Methods("POST")
	backupAPI.HandleFunc("/list", backupHandler.List).Methods("GET")
	backupAPI.HandleFunc("/restore", backupHandler.Restore).Methods("POST")
	backupAPI.HandleFunc("/scheduler", backupHandler.SchedulerStatus).Methods("GET")
	backupAPI.HandleFunc("/scheduler/start", backupHandler.StartScheduler).Methods("POST")
	backupAPI.HandleFunc("/scheduler/stop", backupHandler.StopScheduler).Methods("POST")

	// Protected API routes - Helpers
	r.Handle("/api/insights", authMiddleware.Authenticate(http.HandlerFunc(insightHandler.Generate))).Methods("GET")
	r.Handle("/api/transliterate", authMiddleware.Authenticate(http.HandlerFunc(transliterateHandler.Transliterate))).Methods("POST")

	return r
}
