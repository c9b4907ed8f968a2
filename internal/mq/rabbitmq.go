package mq

import (
	amqp "github.com/rabbitmq/amqp091-go"
)

func NewMQConn(url string) (*amqp.Connection, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, err
	}
	return conn, nil
}

func NewChannel(conn *amqp.Connection) (*amqp.Channel, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, err
	}
	return ch, nil
}

// InitQueues declares every queue the service uses. Declaration is
// idempotent; queues are durable so messages survive broker restarts.
func InitQueues(conn *amqp.Connection) error {
	ch, err := NewChannel(conn)
	if err != nil {
		return err
	}
	defer ch.Close()

	_, err = ch.QueueDeclare(ReservationCreatedQueue, true, false, false, false, nil)
	return err
}
