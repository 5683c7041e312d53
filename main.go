package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	cmdCaptain "ride-hail/cmd/captain-service"
	"ride-hail/internal/captain/handler"
	token "ride-hail/internal/captain/jwt"
	"ride-hail/internal/captain/repository"
	captainrmq "ride-hail/internal/captain/rmq"
	"ride-hail/internal/captain/service"
	"ride-hail/internal/common/config"
	"ride-hail/internal/common/db"
	"ride-hail/internal/common/logger"
	"ride-hail/internal/common/middleware"
	"ride-hail/internal/common/mq"
	"ride-hail/migrations"
)

func main() {
	cfg, err := config.LoadConfig(".env")
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Fatalf("config error: %v", err)
	}
	logger.SetLevel(level)
	cfg.Print()

	policy, err := service.ParsePresencePolicy(cfg.Captain.PresencePolicy)
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		log.Fatalf("store error: %v", err)
	}
	defer closeStore()

	var events handler.EventPublisher
	rabbit, err := mq.NewRabbitMQ(cfg.RabbitMQURL())
	if err != nil {
		logger.Warn("startup", "RabbitMQ unavailable, registration events disabled", "", "", err.Error())
	} else {
		defer rabbit.Close()
		events = captainrmq.NewClient(rabbit.Chan, cfg.RabbitMQ.Exchange)
	}

	jwtManager := token.NewManager(cfg.JWT.Secret, cfg.JWT.AccessTTL, cfg.JWT.RefreshTTL)

	mux := http.NewServeMux()
	cmdCaptain.Run(
		repository.NewHashingStore(store, cfg.Captain.BcryptCost),
		mux,
		jwtManager,
		events,
		service.WithPresencePolicy(policy),
	)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Captain.Port),
		Handler:           middleware.RequestID(mux),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	logger.Info("http_listen", fmt.Sprintf("Listening on %s", srv.Addr), "", "")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("http server error: %v", err)
	}
}

func openStore(ctx context.Context, cfg *config.Config) (service.CaptainStore, func(), error) {
	switch cfg.Captain.Store {
	case "mongo":
		m, err := db.NewMongo(cfg.Mongo.URI, cfg.Mongo.Database)
		if err != nil {
			return nil, nil, err
		}
		store := repository.NewMongoStore(m.Database.Collection(repository.CaptainsCollection))
		if err := store.EnsureIndexes(ctx); err != nil {
			m.Close()
			return nil, nil, err
		}
		return store, m.Close, nil
	case "memory":
		logger.Warn("startup", "using in-memory captain store", "", "", "")
		return repository.NewMemoryStore(), func() {}, nil
	default:
		pg, err := db.NewPostgres(cfg.DatabaseDSN())
		if err != nil {
			return nil, nil, err
		}
		if err := pg.RunMigrations(ctx, migrations.FS); err != nil {
			pg.Close()
			return nil, nil, err
		}
		return repository.NewCaptainRepository(pg.Pool), pg.Close, nil
	}
}
