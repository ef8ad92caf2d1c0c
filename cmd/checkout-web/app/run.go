package app

import (
	"context"
	"time"

	"github.com/bellj/connect-api-examples/configs"
	"github.com/bellj/connect-api-examples/internal/adapter/cache"
	"github.com/bellj/connect-api-examples/internal/adapter/http"
	"github.com/bellj/connect-api-examples/internal/adapter/kafka"
	"github.com/bellj/connect-api-examples/internal/logging"
	"github.com/bellj/connect-api-examples/internal/square"
	"github.com/bellj/connect-api-examples/internal/usecase"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

type App struct {
	Router *gin.Engine
}

func InitWithConfig(cfg configs.Config) (*App, func(), error) {
	// init logger
	logger := logging.Init(cfg.App.Name, cfg.App.LogFile, cfg.App.LogLevel)
	logger.Info("checkout-web: starting up")

	// Square client: the only collaborator that holds state across requests
	sq := square.NewClient(cfg.Square.BaseURL, cfg.Square.AccessToken, cfg.Square.Version, cfg.Square.Timeout)

	// optional redis location cache
	var locCache usecase.LocationCache
	var rdb *redis.Client
	if cfg.Redis.Addr != "" {
		rdb = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       0,
		})
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		err := rdb.Ping(ctx).Err()
		cancel()
		if err != nil {
			return nil, nil, err
		}
		locCache = cache.NewRedisLocationCache(rdb, cfg.Cache.LocationTTL)
	}

	// optional kafka event publisher
	var events usecase.EventPublisher
	var producer *kafka.Producer
	if len(cfg.Kafka.Brokers) > 0 {
		p, err := kafka.NewProducer(cfg.Kafka.Brokers, cfg.Kafka.TopicEvents)
		if err != nil {
			return nil, nil, err
		}
		producer = p
		events = p
	}

	// use cases
	place := usecase.NewPlaceOrder(sq, events)
	load := usecase.NewLoadCheckout(sq, sq, locCache)
	setFul := usecase.NewSetFulfillment(sq, events)
	pay := usecase.NewSubmitPayment(sq, sq, events)

	// handlers + router
	h := http.NewCheckoutHandler(place, load, setFul, pay, cfg.Square.ApplicationID)
	sh := http.NewStatusHandler(load)
	router := http.NewRouter(h, sh)

	cleanup := func() {
		if rdb != nil {
			_ = rdb.Close()
		}
		if producer != nil {
			_ = producer.Close()
		}
	}

	return &App{Router: router}, cleanup, nil
}
