package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/IBM/sarama"

	"vendora-dispatch/internal/domain"
	"vendora-dispatch/internal/logx"
)

var newSyncProducer = sarama.NewSyncProducer

// OfferMessage is the payload published for every rider offer.
type OfferMessage struct {
	AssignmentID             string    `json:"assignment_id"`
	OrderID                  string    `json:"order_id"`
	RiderID                  string    `json:"rider_id"`
	VendorID                 string    `json:"vendor_id"`
	PickupAddress            string    `json:"pickup_address"`
	PickupLat                float64   `json:"pickup_lat"`
	PickupLng                float64   `json:"pickup_lng"`
	DeliveryAddress          string    `json:"delivery_address"`
	DistanceKm               float64   `json:"distance_km"`
	DeliveryFeeKobo          int64     `json:"delivery_fee_kobo"`
	EstimatedDurationMinutes int       `json:"estimated_duration_minutes"`
	OfferedAt                time.Time `json:"offered_at"`
}

// KafkaNotifier publishes offers to a topic keyed by rider id, so every
// offer for one rider lands on the same partition.
type KafkaNotifier struct {
	producer sarama.SyncProducer
	topic    string
	logger   logx.Logger
	now      func() time.Time
}

// NewKafkaNotifier connects a synchronous producer. It returns (nil, nil)
// when brokers or topic are not configured.
func NewKafkaNotifier(logger logx.Logger, brokers []string, topic string) (*KafkaNotifier, error) {
	if len(brokers) == 0 || strings.TrimSpace(topic) == "" {
		return nil, nil
	}

	cfg := sarama.NewConfig()
	cfg.Producer.Return.Successes = true
	cfg.Producer.Return.Errors = true
	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Producer.Retry.Max = 3

	producer, err := newSyncProducer(brokers, cfg)
	if err != nil {
		return nil, fmt.Errorf("create producer for topic %s: %w", topic, err)
	}
	return NewKafkaNotifierWithProducer(producer, topic, logger), nil
}

// NewKafkaNotifierWithProducer wraps an existing producer.
func NewKafkaNotifierWithProducer(producer sarama.SyncProducer, topic string, logger logx.Logger) *KafkaNotifier {
	if logger == nil {
		logger = logx.Nop()
	}
	return &KafkaNotifier{
		producer: producer,
		topic:    topic,
		logger:   logger,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// NotifyRiderOffered publishes the offer.
func (n *KafkaNotifier) NotifyRiderOffered(ctx context.Context, riderID string, a domain.Assignment) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := json.Marshal(OfferMessage{
		AssignmentID:             a.ID,
		OrderID:                  a.OrderID,
		RiderID:                  riderID,
		VendorID:                 a.VendorID,
		PickupAddress:            a.PickupAddress,
		PickupLat:                a.PickupLat,
		PickupLng:                a.PickupLng,
		DeliveryAddress:          a.DeliveryAddress,
		DistanceKm:               a.DistanceKm,
		DeliveryFeeKobo:          a.DeliveryFeeKobo,
		EstimatedDurationMinutes: a.EstimatedDurationMinutes,
		OfferedAt:                n.now(),
	})
	if err != nil {
		return fmt.Errorf("encode offer: %w", err)
	}

	partition, offset, err := n.producer.SendMessage(&sarama.ProducerMessage{
		Topic: n.topic,
		Key:   sarama.StringEncoder(riderID),
		Value: sarama.ByteEncoder(data),
	})
	if err != nil {
		return fmt.Errorf("publish offer to %s: %w", n.topic, err)
	}

	n.logger.Debug("rider offer published",
		logx.String("rider_id", riderID),
		logx.String("assignment_id", a.ID),
		logx.Int("partition", int(partition)),
		logx.Int64("offset", offset),
	)
	return nil
}

// Close closes the producer.
func (n *KafkaNotifier) Close() error {
	if n == nil {
		return nil
	}
	return n.producer.Close()
}
