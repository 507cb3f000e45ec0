package main

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"rentnest/internal/config"
	"rentnest/internal/delivery/http/route"
	"rentnest/internal/realtime"
	"rentnest/internal/repository/postgresql/migrations"
	"rentnest/internal/storage"

	"github.com/gin-gonic/gin"
	redis "github.com/go-redis/redis/v8"
	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func main() {
	log := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg := config.Load()

	db, err := sql.Open("postgres", cfg.PostgresDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open postgres")
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := db.PingContext(ctx); err != nil {
		cancel()
		log.Fatal().Err(err).Msg("failed to ping postgres")
	}
	cancel()

	if err := runMigrations(context.Background(), db); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	mongoClient := connectMongo(cfg, log)
	if mongoClient != nil {
		defer mongoClient.Disconnect(context.Background())
	}

	redisClient := connectRedis(cfg, log)
	if redisClient != nil {
		defer redisClient.Close()
	}

	images, err := storage.NewS3Store(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to init object storage")
	}

	hub := realtime.NewHub()

	app := gin.New()
	app.Use(gin.Recovery())

	route.SetupRoute(app, route.Deps{
		DB:          db,
		Mongo:       mongoClient,
		MongoDBName: cfg.MongoDB,
		Redis:       redisClient,
		Images:      images,
		Hub:         hub,
		Log:         log,
	})

	srv := &http.Server{
		Addr:    cfg.BindAddr,
		Handler: app,
	}

	go func() {
		log.Info().Str("addr", cfg.BindAddr).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("forced shutdown")
	}
}

func runMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}
	return goose.UpContext(ctx, db, ".")
}

// connectMongo is best-effort: the audit trail degrades to warn logs when the
// document store is unreachable.
func connectMongo(cfg *config.Config, log zerolog.Logger) *mongo.Client {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Warn().Err(err).Msg("mongo unavailable, audit trail disabled")
		return nil
	}
	if err := client.Ping(ctx, nil); err != nil {
		log.Warn().Err(err).Msg("mongo unavailable, audit trail disabled")
		return nil
	}
	return client
}

// connectRedis is best-effort: the contact cache falls back to the messages
// table when the cache is unreachable.
func connectRedis(cfg *config.Config, log zerolog.Logger) *redis.Client {
	client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Warn().Err(err).Msg("redis unavailable, contact cache disabled")
		client.Close()
		return nil
	}
	return client
}
