package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/nats-io/nats.go"
	"github.com/pressly/goose/v3"
	"github.com/stpnv0/LandBooker/internal/bot"
	"github.com/stpnv0/LandBooker/internal/cache"
	"github.com/stpnv0/LandBooker/internal/config"
	"github.com/stpnv0/LandBooker/internal/domain"
	"github.com/stpnv0/LandBooker/internal/gateway"
	"github.com/stpnv0/LandBooker/internal/handler"
	"github.com/stpnv0/LandBooker/internal/middleware"
	"github.com/stpnv0/LandBooker/internal/notification"
	"github.com/stpnv0/LandBooker/internal/presentation"
	"github.com/stpnv0/LandBooker/internal/repository"
	"github.com/stpnv0/LandBooker/internal/router"
	"github.com/stpnv0/LandBooker/internal/scheduler"
	"github.com/stpnv0/LandBooker/internal/service"
	"github.com/stpnv0/LandBooker/internal/service/ports"
	"github.com/stpnv0/LandBooker/internal/session"
	"github.com/stpnv0/LandBooker/internal/storage/jsonfile"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/logger"
	"golang.org/x/time/rate"
)

const (
	migrationsDir      = "migrations"
	templatesGlob      = "web/templates/*"
	notifyDrainTimeout = 10 * time.Second
)

type App struct {
	cfg        *config.Config
	log        logger.Logger
	api        *tgbotapi.BotAPI
	sessions   *session.Store
	bot        *bot.Bot
	booking    *service.BookingService
	nc         *nats.Conn
	db         *dbpg.DB
	httpServer *http.Server
	scheduler  *scheduler.Scheduler
}

func New(cfg *config.Config) (*App, error) {
	app := &App{cfg: cfg}

	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		"LandBooker",
		cfg.Gin.Mode,
		logger.WithLevel(cfg.Logger.LogLevel()),
	)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	app.log = log

	if err = app.initBot(); err != nil {
		return nil, fmt.Errorf("init bot: %w", err)
	}

	if cfg.Web.Enabled {
		if err = app.initWeb(); err != nil {
			return nil, fmt.Errorf("init web: %w", err)
		}
	}

	return app, nil
}

func (a *App) initBot() error {
	api, err := tgbotapi.NewBotAPI(a.cfg.Telegram.BotToken)
	if err != nil {
		return fmt.Errorf("connect telegram: %w", err)
	}
	a.api = api
	a.log.Info("telegram bot authorized", logger.String("username", api.Self.UserName))

	location, err := time.LoadLocation(a.cfg.Bot.Timezone)
	if err != nil {
		return fmt.Errorf("load timezone %q: %w", a.cfg.Bot.Timezone, err)
	}

	a.sessions = session.NewStore(a.cfg.Session.IdleTTL)
	if a.cfg.Session.IdleTTL > 0 {
		a.scheduler = scheduler.New(a.sessions, a.cfg.Scheduler.Interval, a.log)
	}

	client := gateway.New(a.cfg.API.BaseURL, a.cfg.API.Timeout, a.log)

	dispatcher, err := a.initNotifier()
	if err != nil {
		return fmt.Errorf("init notifier: %w", err)
	}

	catalog := service.NewCatalogService(
		client,
		a.sessions,
		cache.New[[]domain.Plot](a.cfg.Cache.DefaultTTL),
		cache.New[[]domain.Booking](a.cfg.Cache.DefaultTTL),
		a.cfg.Cache.ListingTTL,
		a.cfg.Bot.CatalogLimit,
		a.log,
	)
	booking := service.NewBookingService(client, catalog, a.sessions, dispatcher, a.log)
	a.booking = booking

	h := bot.NewHandler(
		catalog,
		booking,
		a.sessions,
		presentation.NewRenderer(a.cfg.Bot.PageSize, location),
		api,
		a.log,
	)
	a.bot = bot.New(api, h, a.sessions, a.cfg.Bot.Workers, a.cfg.Bot.PollTimeout, a.log)

	return nil
}

func (a *App) initNotifier() (*notification.Dispatcher, error) {
	sinks := []notification.Sink{notification.NewLogSink(a.log)}
	limiter := rate.NewLimiter(rate.Limit(a.cfg.Telegram.RatePerSecond), 1)

	if a.cfg.Telegram.NotifyCustomers {
		sinks = append(sinks, notification.NewCustomerSink(a.api, limiter, a.log))
	}

	if chatID := a.cfg.Telegram.NotifyChatID; chatID != 0 {
		sinks = append(sinks, notification.NewTelegramSink(a.api, chatID, limiter, a.log))
	}

	if url := a.cfg.NATS.URL; url != "" {
		nc, err := notification.ConnectNATS(url, a.log)
		if err != nil {
			return nil, fmt.Errorf("connect nats: %w", err)
		}
		a.nc = nc
		sinks = append(sinks, notification.NewNATSSink(nc, a.cfg.NATS.SubjectPrefix))
	}

	return notification.NewDispatcher(a.log, sinks...), nil
}

func (a *App) initWeb() error {
	store, err := a.initLandStore()
	if err != nil {
		return err
	}

	h := handler.NewHandler(service.NewLandService(store))
	r := router.InitRouter(
		a.cfg.Gin.Mode,
		templatesGlob,
		h,
		middleware.RequestID(),
		middleware.RequestLogger(a.log),
		middleware.Recovery(a.log),
	)

	a.httpServer = &http.Server{
		Addr:         a.cfg.Web.Addr,
		Handler:      r,
		ReadTimeout:  a.cfg.Web.ReadTimeout,
		WriteTimeout: a.cfg.Web.WriteTimeout,
		IdleTimeout:  a.cfg.Web.IdleTimeout,
	}

	return nil
}

func (a *App) initLandStore() (ports.LandStore, error) {
	if a.cfg.Storage.Driver != "postgres" {
		store, err := jsonfile.New(a.cfg.Storage.Dir, a.log)
		if err != nil {
			return nil, fmt.Errorf("init json storage: %w", err)
		}
		a.log.Info("land store ready", logger.String("driver", "json"), logger.String("dir", a.cfg.Storage.Dir))
		return store, nil
	}

	if err := a.runMigrations(); err != nil {
		return nil, fmt.Errorf("migrations: %w", err)
	}
	if err := a.initDB(); err != nil {
		return nil, fmt.Errorf("init db: %w", err)
	}

	return repository.NewLandRepo(a.db), nil
}

func (a *App) initDB() error {
	db, err := dbpg.New(
		a.cfg.Postgres.DSN(),
		nil,
		&dbpg.Options{
			MaxOpenConns: a.cfg.Postgres.MaxOpenConns,
			MaxIdleConns: a.cfg.Postgres.MaxIdleConns,
		},
	)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}

	db.Master.SetConnMaxLifetime(a.cfg.Postgres.ConnMaxLifetime)

	if err := db.Master.PingContext(context.Background()); err != nil {
		return fmt.Errorf("pinging database: %w", err)
	}

	a.db = db
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connected",
		logger.String("host", a.cfg.Postgres.Host),
		logger.Int("port", a.cfg.Postgres.Port),
		logger.String("database", a.cfg.Postgres.Database),
	)

	return nil
}

func (a *App) runMigrations() error {
	db, err := sql.Open("postgres", a.cfg.Postgres.DSN())
	if err != nil {
		return fmt.Errorf("open db for migrations: %w", err)
	}
	defer db.Close()

	if err := goose.Up(db, migrationsDir); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	a.log.Info("migrations applied successfully")
	return nil
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if a.scheduler != nil {
		go a.scheduler.Start(ctx)
	}

	errCh := make(chan error, 2)
	botDone := make(chan struct{})
	go func() {
		defer close(botDone)
		if err := a.bot.Run(ctx); err != nil {
			errCh <- fmt.Errorf("bot: %w", err)
		}
	}()

	if a.httpServer != nil {
		go func() {
			a.log.LogAttrs(ctx, logger.InfoLevel, "HTTP server starting",
				logger.String("addr", a.httpServer.Addr),
			)
			if err := a.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- fmt.Errorf("http server: %w", err)
			}
		}()
	}

	var runErr error
	select {
	case <-ctx.Done():
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutdown signal received")
	case runErr = <-errCh:
		a.log.Error("component failed", logger.String("error", runErr.Error()))
		stop()
	}

	<-botDone

	if err := a.shutdown(); err != nil {
		return errors.Join(runErr, err)
	}
	return runErr
}

func (a *App) shutdown() error {
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutting down...")

	var errs []error

	if a.httpServer != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.Web.WriteTimeout)
		defer cancel()

		if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
			errs = append(errs, fmt.Errorf("http server shutdown: %w", err))
		} else {
			a.log.LogAttrs(context.Background(), logger.InfoLevel, "HTTP server stopped")
		}
	}

	a.waitNotifications()

	if a.nc != nil {
		if err := a.nc.Drain(); err != nil {
			errs = append(errs, fmt.Errorf("drain nats: %w", err))
		}
	}

	if a.db != nil {
		if err := a.db.Master.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close db: %w", err))
		} else {
			a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connection closed")
		}
	}

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "app stopped")

	return errors.Join(errs...)
}

// waitNotifications lets in-flight booking notifications reach their sinks
// before the NATS connection is drained.
func (a *App) waitNotifications() {
	if a.booking == nil {
		return
	}

	done := make(chan struct{})
	go func() {
		a.booking.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(notifyDrainTimeout):
		a.log.Warn("notifications still in flight at shutdown")
	}
}
