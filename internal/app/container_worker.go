package app

import (
	"go.uber.org/dig"

	"vendora-dispatch/internal/config"
	"vendora-dispatch/internal/logx"
	"vendora-dispatch/internal/service/dispatch"
	"vendora-dispatch/internal/service/orders"
	"vendora-dispatch/internal/transport/kafka"
)

var newConsumer = kafka.NewConsumer

func registerWorker(container *dig.Container) error {
	return provideAll(container,
		func(svc *dispatch.Service, logger logx.Logger) *orders.Processor {
			return orders.NewProcessor(svc, logger)
		},
		provideConsumer,
	)
}

// provideConsumer returns a nil consumer when Kafka is not configured; the
// worker then only runs the sweeper.
func provideConsumer(cfg *config.Config, logger logx.Logger, p *orders.Processor) (*kafka.Consumer, error) {
	return newConsumer(logger, cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.OrdersTopic, makeOrdersKafka(p))
}
