package app

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	natsio "github.com/nats-io/nats.go"
	"github.com/redis/go-redis/v9"

	natsadapter "github.com/kurobe2240/NFT-EC/internal/adapter/nats"
	redisadapter "github.com/kurobe2240/NFT-EC/internal/adapter/redis"
	"github.com/kurobe2240/NFT-EC/internal/app/config"
	"github.com/kurobe2240/NFT-EC/internal/platform/logger"
	httpport "github.com/kurobe2240/NFT-EC/internal/port/http"
	"github.com/kurobe2240/NFT-EC/internal/security"
	"github.com/kurobe2240/NFT-EC/internal/service"
)

type App struct {
	cfg         *config.Config
	log         logger.Logger
	server      *http.Server
	catalog     service.CatalogService
	cart        service.CartService
	redisClient *redis.Client
	natsConn    *natsio.Conn
}

func New(cfg *config.Config) (*App, error) {
	ctx := context.Background()

	appLogger, err := logger.NewZapLogger(logger.ZapLoggerConfig{
		Level:      cfg.Logger.Level,
		Encoding:   cfg.Logger.Encoding,
		TimeFormat: cfg.Logger.TimeFormat,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	appLogger.Infof("Configuration loaded: Env=%s, HTTP Port: %s", cfg.Env, cfg.HTTPServer.Port)

	redisClient, err := redisadapter.NewClient(ctx, cfg.Redis)
	if err != nil {
		appLogger.Errorf("Failed to initialize Redis client: %v", err)
		return nil, fmt.Errorf("failed to initialize Redis client: %w", err)
	}
	appLogger.Info("Redis client initialized")

	var notifier service.Notifier
	var natsConn *natsio.Conn
	if cfg.NATS.Enabled {
		natsConn, err = natsadapter.NewConnection(cfg.NATS)
		if err != nil {
			appLogger.Errorf("Failed to connect to NATS: %v", err)
			return nil, fmt.Errorf("failed to connect to NATS: %w", err)
		}
		notifier = natsadapter.NewNotifier(natsConn, cfg.NATS.Subject, appLogger)
		appLogger.Infof("NATS notifier initialized on subject %s", cfg.NATS.Subject)
	} else {
		notifier = service.NewLogNotifier(appLogger)
		appLogger.Info("NATS disabled, notifications go to the log")
	}

	// rand.Rand is not safe for concurrent use; each service owns its source.
	seed := time.Now().UnixNano()
	catalogRng := rand.New(rand.NewSource(seed))
	walletRng := rand.New(rand.NewSource(seed + 1))

	catalog := service.NewCatalogService(
		service.SampleListings(),
		redisadapter.NewCriteriaRepository(redisClient),
		notifier,
		appLogger,
		catalogRng,
		service.CatalogConfig{
			FailureRate:    cfg.Refresh.FailureRate,
			FetchDelay:     cfg.Refresh.FetchDelay,
			AttemptTimeout: cfg.Refresh.AttemptTimeout,
			RetryDelay:     cfg.Refresh.RetryDelay,
			MaxRetries:     cfg.Refresh.MaxRetries,
		},
	)
	cart := service.NewCartService(redisadapter.NewCartRepository(redisClient), appLogger)
	wallet := service.NewWalletService(notifier, appLogger, walletRng, cfg.Wallet.ConnectDelay)
	purchase := service.NewPurchaseService(cart, wallet, notifier, appLogger, cfg.Purchase.SettleDelay)
	csrf := security.NewCSRFManager(redisadapter.NewTokenRepository(redisClient), appLogger)

	handler := httpport.NewHandler(catalog, cart, wallet, purchase, csrf, appLogger)
	mux := chi.NewRouter()
	httpport.SetupRoutes(mux, handler, csrf, appLogger)

	server := &http.Server{
		Addr:         ":" + cfg.HTTPServer.Port,
		Handler:      mux,
		ReadTimeout:  cfg.HTTPServer.ReadTimeout,
		WriteTimeout: cfg.HTTPServer.WriteTimeout,
	}

	return &App{
		cfg:         cfg,
		log:         appLogger,
		server:      server,
		catalog:     catalog,
		cart:        cart,
		redisClient: redisClient,
		natsConn:    natsConn,
	}, nil
}

func (a *App) Run() {
	go func() {
		a.log.Infof("HTTP server listening on %s", a.server.Addr)
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.log.Fatalf("Failed to start HTTP server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	receivedSignal := <-quit
	a.log.Infof("Received shutdown signal: %v. Shutting down...", receivedSignal)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.HTTPServer.TimeoutGraceful)
	defer cancel()

	if err := a.server.Shutdown(shutdownCtx); err != nil {
		a.log.Errorf("Error during HTTP server shutdown: %v", err)
	} else {
		a.log.Info("HTTP server stopped")
	}

	// Drain fire-and-forget persistence writes before closing storage.
	a.cart.Flush()
	a.catalog.Flush()

	if a.natsConn != nil {
		a.natsConn.Close()
		a.log.Info("NATS connection closed")
	}
	if err := a.redisClient.Close(); err != nil {
		a.log.Errorf("Error closing Redis client: %v", err)
	} else {
		a.log.Info("Redis client closed")
	}

	a.log.Info("Application shut down")
}
