package main // Entry point package

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/iliyamo/cinema-box-office/internal/boxoffice"
	"github.com/iliyamo/cinema-box-office/internal/config"
	"github.com/iliyamo/cinema-box-office/internal/database"
	"github.com/iliyamo/cinema-box-office/internal/handler"
	"github.com/iliyamo/cinema-box-office/internal/i18n"
	"github.com/iliyamo/cinema-box-office/internal/middleware"
	"github.com/iliyamo/cinema-box-office/internal/queue"
	"github.com/iliyamo/cinema-box-office/internal/repository"
	"github.com/iliyamo/cinema-box-office/internal/router"
	"github.com/iliyamo/cinema-box-office/internal/service"
)

// store is everything the server persists.  Both the MySQL and the
// in-memory stores satisfy it.
type store interface {
	boxoffice.Store
	handler.UserStore
	handler.TokenStore
}

func openStore(ctx context.Context, cfg config.Config) (store, func()) {
	if cfg.StoreDriver == config.DriverMemory {
		log.Printf("store: in-memory, data is lost on exit")
		return repository.NewMemoryStore(), func() {}
	}
	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("db connect: %v", err)
	}
	if err := database.Migrate(ctx, db); err != nil {
		log.Fatalf("db migrate: %v", err)
	}
	return repository.NewSQLStore(db), func() { _ = db.Close() }
}

func main() {
	config.LoadEnvFile()
	cfg := config.Load() // Load environment config

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	st, closeStore := openStore(ctx, cfg)
	defer closeStore()

	bootCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	if _, err := service.EnsureAdmin(bootCtx, st, cfg.AdminEmail, cfg.AdminPassword, cfg.BcryptCost); err != nil {
		log.Fatalf("bootstrap admin: %v", err)
	}
	cancel()

	var opts []boxoffice.Option
	if cfg.QueueEnabled {
		pub := service.NewRabbitPublisher(cfg.RabbitMQURL)
		defer pub.Close()
		opts = append(opts, boxoffice.WithPublisher(pub))
		go func() {
			if err := queue.StartTicketConsumer(ctx, cfg.RabbitMQURL, cfg.TicketLogDir); err != nil && !errors.Is(err, context.Canceled) {
				log.Printf("ticket-consumer: stopped: %v", err)
			}
		}()
	}
	office := boxoffice.New(st, opts...)

	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Printf("redis: unavailable, cache and rate limit disabled")
	} else {
		defer rdb.Close()
	}

	lang, ok := i18n.Parse(cfg.Language)
	if !ok {
		lang = i18n.English
	}

	e := echo.New() // Create Echo instance
	e.HideBanner = true
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())
	e.Use(middleware.Language(lang))

	deps := router.Deps{
		JWTSecret: cfg.JWTSecret,
		Redis:     rdb,
		Cache:     config.LoadCacheConfig(),
		RateLimit: config.LoadRateLimitConfig(),
	}
	boxHandler := handler.NewBoxOfficeHandler(office)
	router.RegisterRoutes(e)
	router.RegisterAuth(e, handler.NewAuthHandler(cfg, st, st), deps)
	router.RegisterPublic(e, boxHandler, deps)
	router.RegisterStaff(e, boxHandler, deps)
	router.RegisterAdmin(e, boxHandler, deps)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s, store=%s, lang=%s)", addr, cfg.Env, cfg.StoreDriver, lang)

	go func() {
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal(err)
		}
	}()
	<-ctx.Done()

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown: %v", err)
	}
}
