package domain

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/velesk/theatre-booking/internal/model"
	"github.com/velesk/theatre-booking/internal/repository"
	"github.com/velesk/theatre-booking/internal/service"
)

// Availability is the seat map of one performance: the free seats in
// row-then-seat order plus the committed occupancy.
type Availability struct {
	FreeSeats  []model.SeatRef `json:"free_seats"`
	TakenSeats []model.SeatRef `json:"taken_seats"`
}

type AvailabilityService interface {
	GetAvailability(ctx context.Context, performanceID uint) (*Availability, error)
	FreeSeatCount(ctx context.Context, performanceID uint) (int, error)
}

type availabilityService struct {
	performances repository.PerformanceRepo
	tickets      repository.TicketRepo
}

var _ AvailabilityService = (*availabilityService)(nil)

func NewAvailabilityService(performanceRepo repository.PerformanceRepo, ticketRepo repository.TicketRepo) *availabilityService {
	return &availabilityService{
		performances: performanceRepo,
		tickets:      ticketRepo,
	}
}

// GetAvailability recomputes the seat map from the committed tickets
// on every call. Occupancy changes with each booking, so nothing here
// is cached.
func (s *availabilityService) GetAvailability(ctx context.Context, performanceID uint) (*Availability, error) {
	perf, err := s.performances.GetWithHall(ctx, performanceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, service.ErrNotFound
		}
		return nil, &service.StorageError{Err: err}
	}

	taken, err := s.tickets.OccupiedSeats(ctx, performanceID)
	if err != nil {
		return nil, &service.StorageError{Err: err}
	}

	return &Availability{
		FreeSeats:  model.FreeSeats(perf.TheatreHall, taken),
		TakenSeats: taken,
	}, nil
}

func (s *availabilityService) FreeSeatCount(ctx context.Context, performanceID uint) (int, error) {
	av, err := s.GetAvailability(ctx, performanceID)
	if err != nil {
		return 0, err
	}
	return len(av.FreeSeats), nil
}
