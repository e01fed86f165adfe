package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/SergeyBogomolovv/campus-laundry/docs"
	"github.com/SergeyBogomolovv/campus-laundry/internal/app"
	"github.com/SergeyBogomolovv/campus-laundry/internal/config"
	"github.com/SergeyBogomolovv/campus-laundry/internal/entities"
	"github.com/SergeyBogomolovv/campus-laundry/internal/feed"
	"github.com/SergeyBogomolovv/campus-laundry/internal/handler"
	"github.com/SergeyBogomolovv/campus-laundry/internal/middleware"
	"github.com/SergeyBogomolovv/campus-laundry/internal/postgres"
	"github.com/SergeyBogomolovv/campus-laundry/internal/projection"
	"github.com/SergeyBogomolovv/campus-laundry/internal/redis"
	"github.com/SergeyBogomolovv/campus-laundry/internal/repo"
	"github.com/SergeyBogomolovv/campus-laundry/internal/service"
	"github.com/SergeyBogomolovv/campus-laundry/pkg/cache"
	"github.com/SergeyBogomolovv/campus-laundry/pkg/token"
	"github.com/SergeyBogomolovv/campus-laundry/pkg/trm"

	"github.com/joho/godotenv"
)

const connectTimeout = 10 * time.Second

// @title           Campus Laundry API
// @version         1.0
// @description     Laundry pickup ordering for students and hostel laundry workers
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	conf := config.New()
	logger := newLogger(conf.Env)
	panicIfErr("invalid config", conf.Validate())

	connectCtx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	db, err := postgres.New(connectCtx, conf.Postgres)
	panicIfErr("failed to connect to db", err)
	defer db.Close()
	logger.Info("postgres connected")

	rdb, err := redis.New(connectCtx, conf.Redis)
	panicIfErr("failed to connect to redis", err)
	defer rdb.Close()
	logger.Info("redis connected")

	pgRepo := repo.NewPostgresRepo(db)
	redisRepo := repo.NewRedisRepo(rdb)
	txManager := trm.NewManager(db, nil)

	orderCache := cache.NewLRUCache[entities.Order](conf.Cache.OrderCapacity, conf.Cache.OrderTTL)
	cartCache := cache.NewLRUCache[*entities.Cart](conf.Cache.CartCapacity, conf.Cache.CartTTL)

	publisher := feed.NewKafkaPublisher(conf.Kafka)
	defer publisher.Close()

	issuer := token.NewIssuer(conf.Auth.JWTSecret, conf.Auth.TokenTTL)
	authService := service.NewAuthService(logger, pgRepo, redisRepo, issuer)
	cartService := service.NewCartService(logger, cartCache)
	orderService := service.NewOrderService(logger, txManager, pgRepo, redisRepo, cartService, orderCache, publisher)

	broker := feed.NewBroker(logger)
	unsubscribe := broker.Subscribe(nil, orderService.Reconcile)
	defer unsubscribe()
	hub := projection.NewHub(logger, authService)
	authenticate := func(next http.Handler) http.Handler {
		return middleware.Authenticate(authService)(middleware.Actor(logger)(next))
	}

	kafkaHandler := handler.NewKafkaHandler(logger, conf.Kafka, broker)
	authHandler := handler.NewAuthHandler(logger, authService, authenticate)
	cartHandler := handler.NewCartHandler(logger, cartService, authenticate)
	orderHandler := handler.NewOrderHandler(logger, orderService, hub, authenticate)
	streamHandler := handler.NewStreamHandler(logger, orderService, broker, hub, conf.Http.StreamHeartbeat, authenticate)
	handler.RegisterMetrics()

	app := app.New(logger, conf)

	app.SetHTTPHandlers(authHandler, cartHandler, orderHandler, streamHandler)
	app.SetConsumers(kafkaHandler)
	app.SetStarters(orderCache, cartCache, hub)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	panicIfErr("failed to start app", app.Start(ctx))
	<-ctx.Done()
	panicIfErr("failed to stop app", app.Stop())
}

func init() {
	godotenv.Load()
}

func newLogger(env string) *slog.Logger {
	switch env {
	case "production":
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}

func panicIfErr(prefix string, err error) {
	if err != nil {
		panic(prefix + ": " + err.Error())
	}
}
