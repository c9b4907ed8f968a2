package workflow

import (
	"context"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"

	"github.com/velesk/theatre-booking/internal/model"
	"github.com/velesk/theatre-booking/internal/mq"
	"github.com/velesk/theatre-booking/internal/service/domain"
)

// BookingWorkflow wraps the booking service with the post-commit
// notification publish. The reservation is durable before any message
// is sent; a broker outage is logged and otherwise ignored.
type BookingWorkflow struct {
	BookingService domain.BookingService
	MQConn         *amqp.Connection
	Logger         *zap.Logger
}

func NewBookingWorkflow(bookingService domain.BookingService, mqConn *amqp.Connection, logger *zap.Logger) *BookingWorkflow {
	return &BookingWorkflow{
		BookingService: bookingService,
		MQConn:         mqConn,
		Logger:         logger,
	}
}

func (w *BookingWorkflow) CreateReservation(ctx context.Context, userID uint, items []domain.SeatRequest) (*model.Reservation, error) {
	res, err := w.BookingService.CreateReservation(ctx, userID, items)
	if err != nil {
		return nil, err
	}
	w.publishCreated(ctx, res)
	return res, nil
}

func (w *BookingWorkflow) publishCreated(ctx context.Context, res *model.Reservation) {
	if w.MQConn == nil {
		return
	}
	ch, err := mq.NewChannel(w.MQConn)
	if err != nil {
		w.Logger.Warn("failed to open mq channel", zap.Error(err))
		return
	}
	defer ch.Close()

	seats := make([]mq.ReservedSeat, len(res.Tickets))
	for i, t := range res.Tickets {
		seats[i] = mq.ReservedSeat{
			PerformanceID: t.PerformanceID,
			Row:           t.Row,
			Seat:          t.Seat,
		}
	}
	message := mq.ReservationCreatedMessage{
		ReservationID: res.ID,
		UserID:        res.UserID,
		Seats:         seats,
		CreatedAt:     res.CreatedAt.UTC().Format(time.RFC3339),
	}
	if err := mq.SendMessage(ctx, ch, mq.ReservationCreatedQueue, message); err != nil {
		w.Logger.Warn("failed to publish reservation.created",
			zap.Uint("reservation_id", res.ID),
			zap.Error(err),
		)
	}
}
