package kafka

//go:generate go run go.uber.org/mock/mockgen -source=./kafka.go -destination=./mocks/kafka_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog/log"
	kafkaGo "github.com/segmentio/kafka-go"
	"github.com/segmentio/kafka-go/sasl/plain"

	"frontdesk/config"
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

// Client publishes activity events. The back office only produces;
// consumers live in the upstream services.
type Client interface {
	SendMessages(ctx context.Context, topic string, messages ...Message) error
}

type kafkaClientImpl struct {
	config *config.Config
	writer *kafkaGo.Writer
}

func New(config *config.Config) Client {
	if !config.Kafka.Enable {
		return &noopClientImpl{}
	}

	transport := &kafkaGo.Transport{}

	if config.Kafka.SASL.Username != "" {
		transport.SASL = plain.Mechanism{
			Username: config.Kafka.SASL.Username,
			Password: config.Kafka.SASL.Password,
		}
	}

	writer := &kafkaGo.Writer{
		Addr:      kafkaGo.TCP(config.Kafka.Brokers...),
		Balancer:  &kafkaGo.LeastBytes{},
		Transport: transport,
	}

	log.Info().Strs("brokers", config.Kafka.Brokers).Msg("Kafka producer initialized")

	return &kafkaClientImpl{
		config: config,
		writer: writer,
	}
}

func (c *kafkaClientImpl) SendMessages(ctx context.Context, topic string, messages ...Message) error {
	kafkaMessages := make([]kafkaGo.Message, 0, len(messages))

	for _, message := range messages {
		kafkaMessage, err := message.ToKafkaMessage()
		if err != nil {
			return err
		}

		kafkaMessage.Topic = topic
		kafkaMessages = append(kafkaMessages, kafkaMessage)
	}

	if err := c.writer.WriteMessages(ctx, kafkaMessages...); err != nil {
		log.Error().Err(err).Str("topic", topic).Msg("Failed to send kafka messages")

		return fmt.Errorf("failed to send kafka messages: %w", err)
	}

	return nil
}

// noopClientImpl keeps event publishing optional in environments without
// a broker (local development, tests).
type noopClientImpl struct{}

func (c *noopClientImpl) SendMessages(_ context.Context, topic string, messages ...Message) error {
	log.Debug().Str("topic", topic).Int("count", len(messages)).Msg("Kafka disabled, dropping messages")

	return nil
}
