package events

import (
	"encoding/json"
	"log"

	"github.com/rabbitmq/amqp091-go"

	"kashmeeri-backend/internal/models"
)

const orderPlacedExchange = "order_placed"

// Publisher announces accepted orders on a fanout exchange so downstream
// services (notifications, fulfilment) can react. Publishing is best
// effort: a broker failure is logged and never fails the order request.
type Publisher struct {
	ch *amqp091.Channel
}

// NewPublisher opens a channel and declares the order_placed exchange.
func NewPublisher(conn *amqp091.Connection) (*Publisher, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, err
	}

	err = ch.ExchangeDeclare(
		orderPlacedExchange,
		"fanout",
		true,  // durable
		false, // auto-delete
		false, // internal
		false, // no-wait
		nil,
	)
	if err != nil {
		return nil, err
	}

	return &Publisher{ch: ch}, nil
}

type orderPlacedMessage struct {
	OrderID string  `json:"orderId"`
	Status  string  `json:"status"`
	Total   float64 `json:"total"`
}

// OrderPlaced publishes a summary of a freshly created order.
func (p *Publisher) OrderPlaced(order models.Order) {
	body, err := json.Marshal(orderPlacedMessage{
		OrderID: order.ID.Hex(),
		Status:  order.Status,
		Total:   order.Summary.Total,
	})
	if err != nil {
		log.Println("[RABBIT] [ERROR] marshal order_placed:", err)
		return
	}

	err = p.ch.Publish(
		orderPlacedExchange,
		"", // fanout ignores the routing key
		false,
		false,
		amqp091.Publishing{
			ContentType: "application/json",
			Body:        body,
		},
	)
	if err != nil {
		log.Println("[RABBIT] [ERROR] publish order_placed:", err)
	}
}
