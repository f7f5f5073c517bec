package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"cleaningparty/internal/config"
	"cleaningparty/internal/service"
	"cleaningparty/internal/store"
	"cleaningparty/internal/transport/rest"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	ctx := context.Background()

	gameStore, cleanup, err := newStore(ctx, cfg)
	if err != nil {
		log.Fatal("Failed to initialize store:", err)
	}
	defer cleanup()
	log.Printf("Using %s store backend", cfg.StoreBackend)

	games := service.NewGameService(gameStore)
	router := rest.NewRouter(games)

	srv := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: router,
	}

	go func() {
		log.Printf("Server starting on :%s", cfg.HTTPPort)
		log.Println("Endpoints:")
		log.Println("  POST /v1/games/{code}/join")
		log.Println("  GET  /v1/games/{code}")
		log.Println("  POST /v1/games/{code}/start")
		log.Println("  POST /v1/games/{code}/partner")
		log.Println("  POST /v1/games/{code}/complete")
		log.Println("  GET  /v1/games/{code}/qr")

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("ListenAndServe:", err)
		}
	}()

	// Wait for interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}

func newStore(ctx context.Context, cfg *config.Config) (store.GameStore, func(), error) {
	switch cfg.StoreBackend {
	case config.BackendRedis:
		addr := strings.TrimPrefix(cfg.RedisAddr, "redis://")
		rdb := redis.NewClient(&redis.Options{Addr: addr})

		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if _, err := rdb.Ping(pingCtx).Result(); err != nil {
			rdb.Close()
			return nil, nil, err
		}
		log.Println("Connected to Redis")

		st := store.NewRedisStore(rdb, cfg.GameTTL, cfg.OptimisticLock, cfg.UpdateRetries)
		return st, func() { rdb.Close() }, nil

	case config.BackendMongo:
		client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
		if err != nil {
			return nil, nil, err
		}

		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := client.Ping(pingCtx, nil); err != nil {
			client.Disconnect(ctx)
			return nil, nil, err
		}
		log.Println("Connected to MongoDB")

		st := store.NewMongoStore(client.Database(cfg.MongoDatabase))
		return st, func() { client.Disconnect(ctx) }, nil

	default:
		return store.NewMemoryStore(), func() {}, nil
	}
}
