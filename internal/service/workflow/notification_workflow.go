package workflow

import (
	"encoding/json"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"

	"github.com/velesk/theatre-booking/internal/mq"
)

// NotificationWorkflow consumes reservation.created messages and logs
// a booking confirmation per message. It is the seam where e-mail or
// push delivery would plug in.
type NotificationWorkflow struct {
	Logger *zap.Logger
}

func NewNotificationWorkflow(logger *zap.Logger) *NotificationWorkflow {
	return &NotificationWorkflow{Logger: logger}
}

func (w *NotificationWorkflow) Start(mqConn *amqp.Connection) error {
	ch, err := mq.NewChannel(mqConn)
	if err != nil {
		return err
	}

	msgs, err := ch.Consume(mq.ReservationCreatedQueue, "", false, false, false, false, nil)
	if err != nil {
		return err
	}

	go func() {
		for msg := range msgs {
			w.handleReservationCreated(msg)
		}
	}()

	return nil
}

func (w *NotificationWorkflow) handleReservationCreated(msg amqp.Delivery) {
	var message mq.ReservationCreatedMessage
	if err := json.Unmarshal(msg.Body, &message); err != nil {
		w.Logger.Warn("dropping malformed reservation.created message", zap.Error(err))
		msg.Nack(false, false)
		return
	}

	w.Logger.Info("booking confirmed",
		zap.Uint("reservation_id", message.ReservationID),
		zap.Uint("user_id", message.UserID),
		zap.Int("seats", len(message.Seats)),
		zap.String("created_at", message.CreatedAt),
	)
	msg.Ack(false)
}
