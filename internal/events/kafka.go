// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/IBM/sarama"

	"github.com/canonical/content-service/internal/logging"
	"github.com/canonical/content-service/internal/monitoring"
	"github.com/canonical/content-service/internal/tracing"
)

var _ PublisherInterface = (*KafkaPublisher)(nil)

// KafkaPublisher writes events keyed by output ID, so all transitions of an
// output land on the same partition in order.
type KafkaPublisher struct {
	producer sarama.SyncProducer
	topic    string

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (p *KafkaPublisher) PublishTransition(ctx context.Context, ev *OutputTransitioned) error {
	_, span := p.tracer.Start(ctx, "events.KafkaPublisher.PublishTransition")
	defer span.End()

	value, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("failed to encode event: %w", err)
	}

	partition, offset, err := p.producer.SendMessage(&sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(ev.OutputID),
		Value: sarama.ByteEncoder(value),
		Headers: []sarama.RecordHeader{
			{Key: []byte("type"), Value: []byte(ev.Type)},
		},
		Timestamp: ev.OccurredAt,
	})
	if err != nil {
		return fmt.Errorf("failed to publish %s for output %s: %w", ev.Type, ev.OutputID, err)
	}

	p.logger.Debugf("published %s %s->%s for output %s at %d/%d", ev.Type, ev.From, ev.To, ev.OutputID, partition, offset)

	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.producer.Close()
}

// NewProducerConfig returns the sarama configuration used for event publishing.
func NewProducerConfig() *sarama.Config {
	cfg := sarama.NewConfig()
	cfg.Version = sarama.V3_6_0_0
	cfg.ClientID = "content-service"
	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Producer.Return.Successes = true
	cfg.Producer.Retry.Max = 3
	cfg.Producer.Retry.Backoff = 250 * time.Millisecond
	cfg.Producer.Idempotent = true
	cfg.Net.MaxOpenRequests = 1

	return cfg
}

func NewKafkaPublisher(producer sarama.SyncProducer, topic string, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *KafkaPublisher {
	p := new(KafkaPublisher)

	p.producer = producer
	p.topic = topic

	p.tracer = tracer
	p.monitor = monitor
	p.logger = logger

	return p
}

// DialKafkaPublisher connects a sync producer to the brokers.
func DialKafkaPublisher(brokers []string, topic string, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) (*KafkaPublisher, error) {
	producer, err := sarama.NewSyncProducer(brokers, NewProducerConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to kafka: %w", err)
	}

	return NewKafkaPublisher(producer, topic, tracer, monitor, logger), nil
}
