package events

import (
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"

	"smart-auction/utils"
)

// ExchangeName is the topic exchange auction events are published to.
const ExchangeName = "auction.events"

// AMQPEmitter bridges fan-out events onto a RabbitMQ topic exchange so
// other services (mail, analytics) can consume them. Routing key is
// "<auctionID>.<event>".
type AMQPEmitter struct {
	conn *amqp.Connection
	ch   *amqp.Channel
}

// NewAMQPEmitter dials the broker and declares the events exchange.
func NewAMQPEmitter(url string) (*AMQPEmitter, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("amqp dial: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("amqp channel: %w", err)
	}

	err = ch.ExchangeDeclare(
		ExchangeName,
		"topic",
		true,  // durable
		false, // auto-delete
		false, // internal
		false, // no-wait
		nil,
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("amqp exchange declare: %w", err)
	}

	return &AMQPEmitter{conn: conn, ch: ch}, nil
}

// Emit publishes the event as JSON. Publish errors are logged and
// swallowed; the store is authoritative and consumers can re-read.
func (e *AMQPEmitter) Emit(auctionID, event string, payload any) {
	body, err := json.Marshal(map[string]any{
		"event":      event,
		"auction_id": auctionID,
		"data":       payload,
	})
	if err != nil {
		utils.Error("amqp emitter: marshal event", map[string]any{
			"auction_id": auctionID,
			"event":      event,
			"error":      err.Error(),
		})
		return
	}

	err = e.ch.Publish(
		ExchangeName,
		auctionID+"."+event,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType: "application/json",
			Body:        body,
		},
	)
	if err != nil {
		utils.Error("amqp emitter: publish event", map[string]any{
			"auction_id": auctionID,
			"event":      event,
			"error":      err.Error(),
		})
	}
}

// Close tears down the channel and connection at process shutdown.
func (e *AMQPEmitter) Close() {
	if e.ch != nil {
		e.ch.Close()
	}
	if e.conn != nil {
		e.conn.Close()
	}
}
