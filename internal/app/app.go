package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"

	"github.com/GlebRadaev/investledger/internal/config"
	"github.com/GlebRadaev/investledger/internal/expiry"
	"github.com/GlebRadaev/investledger/internal/handlers"
	"github.com/GlebRadaev/investledger/internal/metrics"
	"github.com/GlebRadaev/investledger/internal/notify"
	"github.com/GlebRadaev/investledger/internal/pg"
	"github.com/GlebRadaev/investledger/internal/repo"
	"github.com/GlebRadaev/investledger/internal/service"
	"github.com/GlebRadaev/investledger/internal/service/authservice"
	"github.com/GlebRadaev/investledger/internal/service/ledgerservice"
	"github.com/GlebRadaev/investledger/pkg/auth"
	"github.com/GlebRadaev/investledger/pkg/clients"
	"github.com/GlebRadaev/investledger/pkg/logger"
)

const serviceName = "ledgerd"

type ApplicationI interface {
	Start(ctx context.Context) error
	Wait(ctx context.Context, cancel context.CancelFunc) error
}

type Application struct {
	cfg     *config.Config
	api     *handlers.Handlers
	srv     *service.Services
	repo    *repo.Repositories
	pool    *pgxpool.Pool
	sweeper *expiry.Sweeper
	webhook *notify.Webhook

	errCh chan error
	wg    sync.WaitGroup
	ready bool
}

func New() *Application {
	return &Application{
		errCh: make(chan error),
	}
}

func (a *Application) Start(ctx context.Context) error {
	cfg, err := config.New()
	if err != nil {
		return fmt.Errorf("can't load config: %w", err)
	}

	err = logger.InitLogger(logger.Options{Level: cfg.LogLvl, Format: cfg.LogFormat, Service: serviceName})
	if err != nil {
		return fmt.Errorf("can't init logger: %w", err)
	}

	pool, err := getPgxpool(ctx, cfg)
	if err != nil {
		zap.L().Error("build pgx pool failed: ", zap.Error(err))
		return fmt.Errorf("can't build pgx pool: %w", err)
	}
	if err := pg.RunMigrations(pool); err != nil {
		zap.L().Error("migrations failed: ", zap.Error(err))
		pool.Close()
		return fmt.Errorf("can't run migrations: %w", err)
	}
	a.pool = pool

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)

	var notifier ledgerservice.Notifier
	if cfg.WebhookURL != "" {
		a.webhook = notify.New(cfg.WebhookURL, clients.NewHTTPClient(otelhttp.NewTransport(http.DefaultTransport)))
		notifier = a.webhook
	}

	jwtService := auth.NewJWTService(cfg.JWTSecret)

	a.cfg = cfg
	a.repo = repo.New(pool, pg.NewTXManager(pool))
	a.srv = service.New(a.repo, service.Options{
		JWT:      jwtService,
		Notifier: notifier,
		Metrics:  m,
		Auth: authservice.Options{
			TokenTTL: cfg.TokenTTL,
		},
	})
	a.api = handlers.New(a.srv, auth.NewMiddleware(jwtService), metrics.Handler(reg))
	a.sweeper = expiry.New(a.repo.RequestRepo, a.srv.LedgerService, cfg.PendingTTL, cfg.SweepInterval, m)

	if err = a.startHTTPServer(ctx); err != nil {
		return fmt.Errorf("can't start http server: %w", err)
	}
	a.startBackground(ctx)

	a.ready = true
	zap.L().Info("all systems started successfully")
	return nil
}

func getPgxpool(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	cfgpool, err := pgxpool.ParseConfig(cfg.Database)
	if err != nil {
		return nil, err
	}
	if cfg.MaxConns > 0 {
		cfgpool.MaxConns = cfg.MaxConns
	}
	dbpool, err := pgxpool.NewWithConfig(ctx, cfgpool)
	if err != nil {
		return nil, err
	}
	if err = dbpool.Ping(ctx); err != nil {
		dbpool.Close()
		return nil, err
	}
	return dbpool, nil
}

func (a *Application) startHTTPServer(ctx context.Context) error {
	router := chi.NewRouter()
	a.api.InitRoutes(router)
	server := http.Server{
		Addr:              a.cfg.Address,
		Handler:           otelhttp.NewHandler(router, serviceName),
		ReadHeaderTimeout: 5 * time.Second,
	}
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		<-ctx.Done()

		sCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(sCtx); err != nil {
			zap.L().Error("http server shutdown failed", zap.Error(err))
		}
		a.pool.Close()
	}()

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		zap.L().Info("starting http server on port", zap.String("port", a.cfg.Address))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.errCh <- fmt.Errorf("http server exited with error: %w", err)
		}
	}()

	return nil
}

// startBackground runs the expiry sweeper and, when configured, the
// decision webhook until ctx is done.
func (a *Application) startBackground(ctx context.Context) {
	if a.webhook != nil {
		a.webhook.Start(ctx)
	}
	a.sweeper.Start(ctx)
}

func (a *Application) Wait(ctx context.Context, cancel context.CancelFunc) error {
	var appErr error

	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		defer wg.Done()

		for err := range a.errCh {
			cancel()
			zap.L().Error(err.Error())
			appErr = err
		}
	}()

	<-ctx.Done()
	a.wg.Wait()
	close(a.errCh)
	wg.Wait()

	return appErr
}
