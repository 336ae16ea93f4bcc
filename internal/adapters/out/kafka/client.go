// Package kafka provides the Kafka-backed transports: the notification
// publisher for lifecycle events and the publish/subscribe bus the presence
// protocol runs over.
package kafka

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"strconv"
	"sync"
	"time"

	"github.com/segmentio/kafka-go"
)

const dialTimeout = 5 * time.Second

// MessageHandler consumes a single message from a subscribed topic.
type MessageHandler func(topic string, payload []byte)

// Client wraps a kafka-go writer and per-topic readers behind a small
// publish/subscribe surface. Connect must be called before Publish or
// Subscribe.
type Client struct {
	mu       sync.RWMutex
	brokers  []string
	groupID  string
	logger   *slog.Logger
	handlers map[string]MessageHandler
	state    *kafkaState
}

type kafkaState struct {
	readers map[string]*kafka.Reader
	writer  *kafka.Writer
}

// NewClient creates a disconnected client for the given brokers.
func NewClient(brokers []string, groupID string, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		brokers:  brokers,
		groupID:  groupID,
		logger:   logger.With("component", "kafka"),
		handlers: make(map[string]MessageHandler),
	}
}

// Connect verifies broker reachability, ensures the given topics exist and
// sets up the writer.
func (c *Client) Connect(topics ...string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.brokers) == 0 {
		return fmt.Errorf("no kafka brokers configured")
	}

	var conn *kafka.Conn
	var connErr error
	for _, broker := range c.brokers {
		ctx, cancel := context.WithTimeout(context.Background(), dialTimeout)
		conn, connErr = kafka.DialContext(ctx, "tcp", broker)
		cancel()
		if connErr == nil {
			c.logger.Info("connected to broker", "broker", broker)
			break
		}
	}
	if connErr != nil {
		return fmt.Errorf("kafka connect: %w", connErr)
	}

	c.ensureTopics(conn, topics...)
	conn.Close()

	c.state = &kafkaState{
		readers: make(map[string]*kafka.Reader),
		writer: &kafka.Writer{
			Addr:     kafka.TCP(c.brokers...),
			Balancer: &kafka.LeastBytes{},
		},
	}
	return nil
}

// Publish writes a single message to the given topic.
func (c *Client) Publish(ctx context.Context, topic string, payload []byte) error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.state == nil || c.state.writer == nil {
		return fmt.Errorf("kafka not connected")
	}
	return c.state.writer.WriteMessages(ctx, kafka.Message{
		Topic: topic,
		Value: payload,
	})
}

// Subscribe starts a reader goroutine delivering every message on the topic
// to the handler. The goroutine exits when the reader is closed.
func (c *Client) Subscribe(topic string, handler MessageHandler) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.handlers[topic] = handler

	if c.state == nil {
		return fmt.Errorf("kafka not connected")
	}
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers: c.brokers,
		Topic:   topic,
		GroupID: c.groupID,
	})
	c.state.readers[topic] = reader
	go func() {
		for {
			msg, err := reader.ReadMessage(context.Background())
			if err != nil {
				return
			}
			handler(msg.Topic, msg.Value)
		}
	}()
	return nil
}

// ensureTopics creates topics if they don't already exist. Errors are logged
// but not fatal since the broker may have auto.create.topics.enable=true
// anyway.
func (c *Client) ensureTopics(conn *kafka.Conn, topics ...string) {
	if len(topics) == 0 {
		return
	}

	controller, err := conn.Controller()
	if err != nil {
		c.logger.Warn("cannot find controller for topic creation", "error", err)
		return
	}

	controllerAddr := net.JoinHostPort(controller.Host, strconv.Itoa(controller.Port))
	controllerConn, err := kafka.Dial("tcp", controllerAddr)
	if err != nil {
		c.logger.Warn("cannot connect to controller", "error", err)
		return
	}
	defer controllerConn.Close()

	configs := make([]kafka.TopicConfig, len(topics))
	for i, t := range topics {
		configs[i] = kafka.TopicConfig{
			Topic:             t,
			NumPartitions:     1,
			ReplicationFactor: 1,
		}
	}

	if err := controllerConn.CreateTopics(configs...); err != nil {
		c.logger.Warn("topic auto-create failed", "error", err)
	} else {
		c.logger.Info("ensured topics exist", "topics", topics)
	}
}

// Close shuts down the writer and all readers.
func (c *Client) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != nil {
		for _, r := range c.state.readers {
			r.Close()
		}
		if c.state.writer != nil {
			c.state.writer.Close()
		}
		c.state = nil
	}
}
