package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/gfmartins/revenda/internal/account"
	accountStore "github.com/gfmartins/revenda/internal/account/store"
	"github.com/gfmartins/revenda/internal/auth"
	"github.com/gfmartins/revenda/internal/category"
	categoryStore "github.com/gfmartins/revenda/internal/category/store"
	"github.com/gfmartins/revenda/internal/config"
	"github.com/gfmartins/revenda/internal/database"
	"github.com/gfmartins/revenda/internal/expense"
	expenseStore "github.com/gfmartins/revenda/internal/expense/store"
	"github.com/gfmartins/revenda/internal/history"
	revendaHttp "github.com/gfmartins/revenda/internal/http"
	accountHandler "github.com/gfmartins/revenda/internal/http/account"
	authHandler "github.com/gfmartins/revenda/internal/http/auth"
	categoryHandler "github.com/gfmartins/revenda/internal/http/category"
	expenseHandler "github.com/gfmartins/revenda/internal/http/expense"
	historyHandler "github.com/gfmartins/revenda/internal/http/history"
	matchingHandler "github.com/gfmartins/revenda/internal/http/matching"
	orderHandler "github.com/gfmartins/revenda/internal/http/order"
	partnerHandler "github.com/gfmartins/revenda/internal/http/partner"
	statementHandler "github.com/gfmartins/revenda/internal/http/statement"
	titleHandler "github.com/gfmartins/revenda/internal/http/title"
	txHandler "github.com/gfmartins/revenda/internal/http/transaction"
	vehicleHandler "github.com/gfmartins/revenda/internal/http/vehicle"
	"github.com/gfmartins/revenda/internal/matching"
	matchingStore "github.com/gfmartins/revenda/internal/matching/store"
	"github.com/gfmartins/revenda/internal/order"
	orderStore "github.com/gfmartins/revenda/internal/order/store"
	"github.com/gfmartins/revenda/internal/partner"
	partnerStore "github.com/gfmartins/revenda/internal/partner/store"
	"github.com/gfmartins/revenda/internal/realtime"
	"github.com/gfmartins/revenda/internal/statement"
	"github.com/gfmartins/revenda/internal/title"
	titleStore "github.com/gfmartins/revenda/internal/title/store"
	"github.com/gfmartins/revenda/internal/transaction"
	txStore "github.com/gfmartins/revenda/internal/transaction/store"
	"github.com/gfmartins/revenda/internal/vehicle"
	vehicleStore "github.com/gfmartins/revenda/internal/vehicle/store"
)

func main() {
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString(), database.Pool{
		MaxOpenConns:    cfg.DB.MaxOpenConns,
		MaxIdleConns:    cfg.DB.MaxIdleConns,
		ConnMaxLifetime: cfg.DB.ConnMaxLifetime,
	})
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	hub := realtime.NewHub(logger)
	go hub.Run()

	var (
		authService        = auth.NewService(cfg.Auth.JWTSecret, cfg.Auth.TokenLifetime, cfg.Auth.AdminUser, cfg.Auth.AdminPassword)
		vehicleService     = vehicle.NewService(vehicleStore.New(db))
		partnerService     = partner.NewService(partnerStore.New(db))
		categoryService    = category.NewService(categoryStore.New(db))
		accountService     = account.NewService(accountStore.New(db))
		transactionService = transaction.NewService(txStore.New(db))
		titleService       = title.NewService(titleStore.New(db), transactionService)
		orderService       = order.NewService(orderStore.New(db), titleService, vehicleService)
		expenseService     = expense.NewService(expenseStore.New(db), titleService)
		historyService     = history.NewService(transactionService, titleService, orderService)
		matchingService    = matching.NewService(matchingStore.New(db))
		statementService   = statement.NewService(matchingService, transactionService)
	)

	handlers := revendaHttp.Handlers{
		Auth:         authHandler.NewHandler(authService),
		Vehicles:     vehicleHandler.NewHandler(vehicleService, hub),
		Partners:     partnerHandler.NewHandler(partnerService, hub),
		Categories:   categoryHandler.NewHandler(categoryService, hub),
		Accounts:     accountHandler.NewHandler(accountService, hub),
		Transactions: txHandler.NewHandler(transactionService, hub),
		Titles:       titleHandler.NewHandler(titleService, hub),
		Orders:       orderHandler.NewHandler(orderService, hub),
		Expenses:     expenseHandler.NewHandler(expenseService, hub),
		History:      historyHandler.NewHandler(historyService),
		Statement:    statementHandler.NewHandler(statementService, hub),
		Matching:     matchingHandler.NewHandler(matchingService),
	}

	router := revendaHttp.New(authService, hub, cfg.CORS.AllowedOrigins, handlers)

	// No write timeout on the server: the websocket endpoint holds its
	// connection open indefinitely.
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: cfg.Server.Timeout,
	}

	slog.Info("starting server", "addr", srv.Addr)

	if err := srv.ListenAndServe(); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
