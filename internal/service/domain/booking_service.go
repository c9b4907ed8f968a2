package domain

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/velesk/theatre-booking/internal/model"
	"github.com/velesk/theatre-booking/internal/repository"
	"github.com/velesk/theatre-booking/internal/service"
)

// SeatRequest is one requested seat within a reservation batch.
type SeatRequest struct {
	PerformanceID uint `json:"performance_id"`
	Row           int  `json:"row"`
	Seat          int  `json:"seat"`
}

type BookingService interface {
	CreateReservation(ctx context.Context, userID uint, items []SeatRequest) (*model.Reservation, error)
	ListReservations(ctx context.Context, userID uint) ([]model.Reservation, error)
	GetReservation(ctx context.Context, userID, reservationID uint) (*model.Reservation, error)
	CancelReservation(ctx context.Context, userID, reservationID uint) error
	GetTicket(ctx context.Context, userID, ticketID uint) (*model.Ticket, error)
}

type bookingService struct {
	db           *gorm.DB
	performances repository.PerformanceRepo
	reservations repository.ReservationRepo
	tickets      repository.TicketRepo
}

var _ BookingService = (*bookingService)(nil)

func NewBookingService(
	db *gorm.DB,
	performanceRepo repository.PerformanceRepo,
	reservationRepo repository.ReservationRepo,
	ticketRepo repository.TicketRepo,
) *bookingService {
	return &bookingService{
		db:           db,
		performances: performanceRepo,
		reservations: reservationRepo,
		tickets:      ticketRepo,
	}
}

// CreateReservation books every requested seat or none of them.
//
// Validation (empty batch, unknown performance, geometry, in-batch
// duplicates) happens before any write and aborts with zero state
// change. The occupancy pre-check and the reservation+tickets insert
// run inside one transaction; the unique index on (performance_id,
// row, seat) is the backstop for the read/write race, so the loser of
// two concurrent commits fails at write time, rolls back entirely and
// reports the seat as taken.
func (s *bookingService) CreateReservation(ctx context.Context, userID uint, items []SeatRequest) (*model.Reservation, error) {
	if len(items) == 0 {
		return nil, service.ErrEmptyBatch
	}

	perfs, err := s.resolvePerformances(ctx, items)
	if err != nil {
		return nil, err
	}
	if err := validateBatch(items, perfs); err != nil {
		return nil, err
	}

	var created *model.Reservation
	err = s.db.Transaction(func(tx *gorm.DB) error {
		ticketsTx := s.tickets.WithTx(tx)

		if err := s.checkConflicts(ctx, ticketsTx, items); err != nil {
			return err
		}

		res := &model.Reservation{UserID: userID}
		if err := s.reservations.WithTx(tx).Create(ctx, res); err != nil {
			return err
		}

		batch := make([]model.Ticket, len(items))
		for i, item := range items {
			batch[i] = model.Ticket{
				Row:           item.Row,
				Seat:          item.Seat,
				PerformanceID: item.PerformanceID,
				ReservationID: res.ID,
			}
		}
		if err := ticketsTx.CreateBatch(ctx, batch); err != nil {
			return err
		}

		res.Tickets = batch
		created = res
		return nil
	})
	if err != nil {
		return nil, s.translateCommitError(ctx, err, items)
	}
	return created, nil
}

// resolvePerformances loads each distinct performance with its hall.
func (s *bookingService) resolvePerformances(ctx context.Context, items []SeatRequest) (map[uint]*model.Performance, error) {
	perfs := make(map[uint]*model.Performance)
	for _, item := range items {
		if _, ok := perfs[item.PerformanceID]; ok {
			continue
		}
		perf, err := s.performances.GetWithHall(ctx, item.PerformanceID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("performance %d: %w", item.PerformanceID, service.ErrNotFound)
			}
			return nil, &service.StorageError{Err: err}
		}
		perfs[item.PerformanceID] = perf
	}
	return perfs, nil
}

// validateBatch runs the pure checks: hall geometry per item, then
// in-batch duplicates. First violation aborts the whole batch.
func validateBatch(items []SeatRequest, perfs map[uint]*model.Performance) error {
	for _, item := range items {
		if err := model.ValidateSeat(item.Row, item.Seat, perfs[item.PerformanceID].TheatreHall); err != nil {
			return err
		}
	}
	seen := make(map[SeatRequest]struct{}, len(items))
	for _, item := range items {
		if _, dup := seen[item]; dup {
			return &service.DuplicateRequestError{
				PerformanceID: item.PerformanceID,
				Row:           item.Row,
				Seat:          item.Seat,
			}
		}
		seen[item] = struct{}{}
	}
	return nil
}

// checkConflicts tests every item against the committed occupancy
// inside the commit transaction. This is the fast path that produces
// exact error coordinates; correctness does not depend on it.
func (s *bookingService) checkConflicts(ctx context.Context, tickets repository.TicketRepo, items []SeatRequest) error {
	occupied := make(map[uint]map[model.SeatRef]struct{})
	for _, item := range items {
		taken, ok := occupied[item.PerformanceID]
		if !ok {
			seats, err := tickets.OccupiedSeats(ctx, item.PerformanceID)
			if err != nil {
				return err
			}
			taken = make(map[model.SeatRef]struct{}, len(seats))
			for _, s := range seats {
				taken[s] = struct{}{}
			}
			occupied[item.PerformanceID] = taken
		}
		if _, exists := taken[model.SeatRef{Row: item.Row, Seat: item.Seat}]; exists {
			return &service.SeatTakenError{
				PerformanceID: item.PerformanceID,
				Row:           item.Row,
				Seat:          item.Seat,
			}
		}
	}
	return nil
}

// translateCommitError maps a failed transaction to the domain
// taxonomy. A unique-index violation means a concurrent booking won
// the seat between our pre-check and commit.
func (s *bookingService) translateCommitError(ctx context.Context, err error, items []SeatRequest) error {
	var taken *service.SeatTakenError
	if errors.As(err, &taken) {
		return taken
	}
	var dup *service.DuplicateRequestError
	if errors.As(err, &dup) {
		return dup
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return s.locateConflict(ctx, items)
	}
	return &service.StorageError{Err: err}
}

// locateConflict re-reads occupancy after a rollback to name the seat
// the concurrent winner holds. Best effort: if the store moved again
// in the meantime, the first requested seat is reported.
func (s *bookingService) locateConflict(ctx context.Context, items []SeatRequest) error {
	for _, item := range items {
		exists, err := s.tickets.ExistsAt(ctx, item.PerformanceID, item.Row, item.Seat)
		if err == nil && exists {
			return &service.SeatTakenError{
				PerformanceID: item.PerformanceID,
				Row:           item.Row,
				Seat:          item.Seat,
			}
		}
	}
	return &service.SeatTakenError{
		PerformanceID: items[0].PerformanceID,
		Row:           items[0].Row,
		Seat:          items[0].Seat,
	}
}

func (s *bookingService) ListReservations(ctx context.Context, userID uint) ([]model.Reservation, error) {
	reservations, err := s.reservations.ListByUser(ctx, userID)
	if err != nil {
		return nil, &service.StorageError{Err: err}
	}
	return reservations, nil
}

func (s *bookingService) GetReservation(ctx context.Context, userID, reservationID uint) (*model.Reservation, error) {
	res, err := s.reservations.GetByID(ctx, reservationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, service.ErrNotFound
		}
		return nil, &service.StorageError{Err: err}
	}
	if res.UserID != userID {
		return nil, service.ErrForbidden
	}
	return res, nil
}

// CancelReservation deletes the reservation and, through the cascade,
// its tickets, freeing the seats.
func (s *bookingService) CancelReservation(ctx context.Context, userID, reservationID uint) error {
	res, err := s.GetReservation(ctx, userID, reservationID)
	if err != nil {
		return err
	}
	if err := s.reservations.Delete(ctx, res.ID); err != nil {
		return &service.StorageError{Err: err}
	}
	return nil
}

func (s *bookingService) GetTicket(ctx context.Context, userID, ticketID uint) (*model.Ticket, error) {
	ticket, err := s.tickets.GetByID(ctx, ticketID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, service.ErrNotFound
		}
		return nil, &service.StorageError{Err: err}
	}
	res, err := s.reservations.GetByID(ctx, ticket.ReservationID)
	if err != nil {
		return nil, &service.StorageError{Err: err}
	}
	if res.UserID != userID {
		return nil, service.ErrForbidden
	}
	return ticket, nil
}
