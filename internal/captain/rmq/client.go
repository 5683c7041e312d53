package rmq

import (
	"context"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Channel is the subset of *amqp.Channel used for publishing.
type Channel interface {
	ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp.Table) error
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

type Client struct {
	Channel  Channel
	Exchange string
}

func NewClient(ch Channel, exchange string) *Client {
	return &Client{
		Channel:  ch,
		Exchange: exchange,
	}
}
