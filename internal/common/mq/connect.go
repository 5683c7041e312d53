package mq

import (
	"fmt"
	"math"
	"time"

	"ride-hail/internal/common/logger"

	amqp "github.com/rabbitmq/amqp091-go"
)

const maxAttempts = 5

type RabbitMQ struct {
	Conn *amqp.Connection
	Chan *amqp.Channel
	URL  string
}

func NewRabbitMQ(url string) (*RabbitMQ, error) {
	rmq := &RabbitMQ{URL: url}

	if err := rmq.connect(); err != nil {
		return nil, err
	}
	return rmq, nil
}

func (r *RabbitMQ) connect() error {
	var err error

	for i := 1; i <= maxAttempts; i++ {
		var conn *amqp.Connection
		conn, err = amqp.Dial(r.URL)
		if err == nil {
			ch, chErr := conn.Channel()
			if chErr != nil {
				_ = conn.Close()
				return fmt.Errorf("failed to open channel: %w", chErr)
			}
			r.Conn = conn
			r.Chan = ch
			logger.Info("rabbitmq_connected", "Connected to RabbitMQ", "", "")
			return nil
		}

		logger.Warn("rabbitmq_connect_retry", fmt.Sprintf("RabbitMQ connect attempt %d failed", i), "", "", err.Error())
		if i < maxAttempts {
			time.Sleep(backoff(i))
		}
	}

	return fmt.Errorf("failed to connect to RabbitMQ after retries: %w", err)
}

func backoff(attempt int) time.Duration {
	return time.Second * time.Duration(math.Pow(2, float64(attempt)))
}

func (r *RabbitMQ) Close() {
	if r.Chan != nil {
		_ = r.Chan.Close()
	}
	if r.Conn != nil {
		_ = r.Conn.Close()
	}
	r.Conn, r.Chan = nil, nil
	logger.Info("rabbitmq_connection_closed", "RabbitMQ connection closed", "", "")
}
