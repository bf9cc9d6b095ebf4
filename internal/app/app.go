package app

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/PedroCamargo-dev/core-bank-ledger-service/internal/config"
	"github.com/PedroCamargo-dev/core-bank-ledger-service/internal/impl/gateway/memory"
	"github.com/PedroCamargo-dev/core-bank-ledger-service/internal/impl/gateway/notification"
	"github.com/PedroCamargo-dev/core-bank-ledger-service/internal/impl/gateway/platform"
	"github.com/PedroCamargo-dev/core-bank-ledger-service/internal/impl/transport/rest"
	impl_account "github.com/PedroCamargo-dev/core-bank-ledger-service/internal/impl/usecase/account"
	impl_transfer "github.com/PedroCamargo-dev/core-bank-ledger-service/internal/impl/usecase/transfer"
	"github.com/PedroCamargo-dev/core-bank-ledger-service/internal/platform/telemetry"
	"github.com/PedroCamargo-dev/core-bank-ledger-service/internal/ports/gateway/messaging"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"
)

// App is the wired service: in-memory store, use cases and HTTP router.
type App struct {
	Accounts *memory.AccountRepository
	Router   http.Handler

	cfg config.Config
	log *slog.Logger
}

type Option func(*options)

type options struct {
	notifier messaging.Notifier
	registry *prometheus.Registry
}

// WithNotifier replaces the default log notifier.
func WithNotifier(n messaging.Notifier) Option {
	return func(o *options) { o.notifier = n }
}

func WithRegistry(reg *prometheus.Registry) Option {
	return func(o *options) { o.registry = reg }
}

func New(cfg config.Config, log *slog.Logger, opts ...Option) *App {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	if o.registry == nil {
		o.registry = prometheus.NewRegistry()
		o.registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}
	if o.notifier == nil {
		o.notifier = notification.NewLogNotifier(log)
	}

	metrics := telemetry.NewMetrics(o.registry)
	accounts := memory.NewAccountRepository()
	clock := platform.SystemClock{}
	ids := platform.UUIDGenerator{}

	h := rest.NewHandler(
		config.ServiceName,
		impl_account.NewCreateAccountUsecaseImpl(accounts, clock, metrics, log),
		impl_account.NewGetAccountUsecaseImpl(accounts),
		impl_transfer.NewTransferMoneyUsecaseImpl(accounts, o.notifier, clock, ids, metrics, log),
		log,
	)

	return &App{
		Accounts: accounts,
		Router:   rest.NewRouter(h, metrics, o.registry),
		cfg:      cfg,
		log:      log,
	}
}

// Run serves HTTP until ctx is canceled, then shuts down within the
// configured timeout.
func (a *App) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              a.cfg.HTTPAddr,
		Handler:           a.Router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		a.log.Info("http server listening", slog.String("addr", a.cfg.HTTPAddr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		a.log.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), a.cfg.ShutdownTimeout)
		defer cancel()

		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		return err
	}

	a.log.Info("service stopped")
	return nil
}
