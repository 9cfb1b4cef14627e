package app

import (
	"context"

	"github.com/go-redis/redis/v8"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/dig"

	"vendora-dispatch/internal/config"
	ordersgw "vendora-dispatch/internal/gateway/orders"
	"vendora-dispatch/internal/logx"
	"vendora-dispatch/internal/notify"
	"vendora-dispatch/internal/repository"
	"vendora-dispatch/internal/service/dispatch"
)

var (
	newRedisClient   = repository.NewRedisClient
	newKafkaNotifier = notify.NewKafkaNotifier
)

// closer releases a resource on shutdown. A nil fn is skipped.
type closer struct {
	name string
	fn   func() error
}

func registerStore(container *dig.Container) error {
	return provideAll(container,
		repository.NewOrderRepo,
		repository.NewAssignmentRepo,
		repository.NewRiderRepo,
		repository.NewSweepRepo,
		provideRedis,
		provideAssignmentStore,
		provideOrderReader,
		provideNotifier,
	)
}

type redisOut struct {
	dig.Out

	Client *redis.Client
	Closer closer `group:"closers"`
}

// provideRedis returns a nil client when the cache is not configured.
func provideRedis(ctx context.Context, cfg *config.Config) (redisOut, error) {
	if !cfg.Redis.Enabled() {
		return redisOut{Closer: closer{name: "redis"}}, nil
	}
	client, err := newRedisClient(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		return redisOut{}, err
	}
	return redisOut{Client: client, Closer: closer{name: "redis", fn: client.Close}}, nil
}

func provideAssignmentStore(
	cfg *config.Config,
	logger logx.Logger,
	repo *repository.AssignmentRepo,
	client *redis.Client,
) dispatch.AssignmentStore {
	if client == nil {
		return repo
	}
	logger.Info("assignment cache enabled", logx.String("addr", cfg.Redis.Addr))
	cache := repository.NewAssignmentCache(client, cfg.Redis.TTL)
	return repository.NewCachedAssignments(repo, cache, logger)
}

type orderReaderIn struct {
	dig.In

	Config  *config.Config
	Logger  logx.Logger
	Repo    *repository.OrderRepo
	Retries prometheus.Counter `name:"store_retries_total"`
}

func provideOrderReader(in orderReaderIn) dispatch.OrderReader {
	return ordersgw.NewRetryingReader(in.Repo, in.Logger, in.Retries, ordersgw.RetryConfig{
		MaxAttempts: in.Config.StoreRetry.MaxAttempts,
		MinDelay:    in.Config.StoreRetry.MinDelay,
		MaxDelay:    in.Config.StoreRetry.MaxDelay,
	})
}

type notifierOut struct {
	dig.Out

	Notifier dispatch.Notifier
	Closer   closer `group:"closers"`
}

// provideNotifier publishes offers to Kafka when a notify topic is configured
// and falls back to the log notifier otherwise.
func provideNotifier(cfg *config.Config, logger logx.Logger) (notifierOut, error) {
	kn, err := newKafkaNotifier(logger, cfg.Kafka.Brokers, cfg.Kafka.NotifyTopic)
	if err != nil {
		return notifierOut{}, err
	}
	if kn == nil {
		return notifierOut{
			Notifier: notify.NewLogNotifier(logger),
			Closer:   closer{name: "notifier"},
		}, nil
	}
	logger.Info("kafka notifier enabled", logx.String("topic", cfg.Kafka.NotifyTopic))
	return notifierOut{
		Notifier: kn,
		Closer:   closer{name: "notifier", fn: kn.Close},
	}, nil
}
