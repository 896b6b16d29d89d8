package kafka

//go:generate go run go.uber.org/mock/mockgen -source=./kafka.go -destination=./mocks/kafka_mock.go -package=mocks

import (
	"agenda/config"
	"agenda/infras/otel"
	"agenda/shared/constant"
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog/log"
	kafkaGo "github.com/segmentio/kafka-go"
	"github.com/segmentio/kafka-go/sasl/plain"
)

type Message struct {
	Key   string
	Value any
}

func (m *Message) ToKafkaMessage() (kafkaGo.Message, error) {
	jsonValue, err := json.Marshal(m.Value)
	if err != nil {
		log.Error().Err(err).Msg("Failed to marshal message value to JSON")

		return kafkaGo.Message{}, fmt.Errorf("failed to marshal message value to JSON: %w", err)
	}

	return kafkaGo.Message{
		Key:   []byte(m.Key),
		Value: jsonValue,
	}, nil
}

// Client publishes to the configured topic.
type Client interface {
	SendMessages(ctx context.Context, messages ...Message) (err error)
	Close() error
}

type kafkaClientImpl struct {
	writer *kafkaGo.Writer
	otel   otel.Otel
}

type disabledClient struct{}

func New(config *config.Config, otel otel.Otel) Client {
	if !config.Kafka.Enable || len(config.Kafka.Brokers) == 0 {
		log.Info().Msg("Kafka publishing disabled")

		return disabledClient{}
	}

	transport := &kafkaGo.Transport{}
	if config.Kafka.SASL.Username != "" {
		transport.SASL = plain.Mechanism{
			Username: config.Kafka.SASL.Username,
			Password: config.Kafka.SASL.Password,
		}
	}

	log.Info().Strs("brokers", config.Kafka.Brokers).Str("topic", config.Kafka.Topic).Msg("Kafka client initialized")

	return &kafkaClientImpl{
		writer: &kafkaGo.Writer{
			Addr:                   kafkaGo.TCP(config.Kafka.Brokers...),
			Topic:                  config.Kafka.Topic,
			Transport:              transport,
			Balancer:               &kafkaGo.Hash{},
			AllowAutoTopicCreation: true,
		},
		otel: otel,
	}
}

func (k *kafkaClientImpl) SendMessages(ctx context.Context, messages ...Message) (err error) {
	ctx, scope := k.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".SendMessages")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute("messaging.destination", k.writer.Topic)

	msgs := make([]kafkaGo.Message, 0, len(messages))

	for _, message := range messages {
		msg, err := message.ToKafkaMessage()
		if err != nil {
			return fmt.Errorf("failed to convert message to Kafka message: %w", err)
		}

		msgs = append(msgs, msg)
	}

	if err = k.writer.WriteMessages(ctx, msgs...); err != nil {
		log.Error().Err(err).Str("topic", k.writer.Topic).Msg("Failed to send message to Kafka.")

		return fmt.Errorf("failed to send message to Kafka: %w", err)
	}

	log.Debug().Str("topic", k.writer.Topic).Int("count", len(msgs)).Msg("Sent message successfully.")

	return nil
}

func (k *kafkaClientImpl) Close() error {
	return k.writer.Close() //nolint:wrapcheck
}

func (disabledClient) SendMessages(_ context.Context, _ ...Message) error {
	return nil
}

func (disabledClient) Close() error {
	return nil
}
