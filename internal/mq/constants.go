package mq

// Queue names and message definitions

// ReservationCreatedQueue carries one message per committed
// reservation, consumed by the notification workflow. Nothing on this
// path can undo a booking; publishing happens strictly after commit.
const (
	ReservationCreatedQueue = "reservation.created"
)

type ReservedSeat struct {
	PerformanceID uint `json:"performance_id"`
	Row           int  `json:"row"`
	Seat          int  `json:"seat"`
}

type ReservationCreatedMessage struct {
	ReservationID uint           `json:"reservation_id"`
	UserID        uint           `json:"user_id"`
	Seats         []ReservedSeat `json:"seats"`
	CreatedAt     string         `json:"created_at"`
}
