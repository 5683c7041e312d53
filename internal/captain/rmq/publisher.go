package rmq

import (
	"context"
	"encoding/json"

	"ride-hail/internal/common/logger"
	"ride-hail/internal/common/rmq"

	amqp "github.com/rabbitmq/amqp091-go"
)

func (c *Client) PublishCaptainRegistered(ctx context.Context, msg rmq.CaptainRegisteredMessage) error {
	logger.Debug("publish_captain_registered", "Preparing to publish captain registration", msg.RequestID, msg.CaptainID)

	body, err := json.Marshal(msg)
	if err != nil {
		logger.Error("publish_captain_registered", "Failed to marshal captain registration message", msg.RequestID, msg.CaptainID, err.Error())
		return err
	}

	if err := c.Channel.ExchangeDeclare(
		c.Exchange,
		"topic",
		true,  // durable
		false, // auto-delete
		false, // internal
		false, // no-wait
		nil,
	); err != nil {
		logger.Error("publish_captain_registered", "Failed to declare exchange", msg.RequestID, msg.CaptainID, err.Error())
		return err
	}

	if err := c.Channel.PublishWithContext(
		ctx,
		c.Exchange,
		rmq.RoutingKeyCaptainRegistered,
		false,
		false,
		amqp.Publishing{
			ContentType:   "application/json",
			DeliveryMode:  amqp.Persistent,
			CorrelationId: msg.RequestID,
			Timestamp:     msg.RegisteredAt,
			Body:          body,
		},
	); err != nil {
		logger.Error("publish_captain_registered", "Failed to publish captain registration", msg.RequestID, msg.CaptainID, err.Error())
		return err
	}

	logger.Info("publish_captain_registered", "Captain registration published", msg.RequestID, msg.CaptainID)
	return nil
}
