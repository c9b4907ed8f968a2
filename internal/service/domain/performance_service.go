package domain

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/velesk/theatre-booking/internal/cache"
	"github.com/velesk/theatre-booking/internal/model"
	"github.com/velesk/theatre-booking/internal/repository"
	"github.com/velesk/theatre-booking/internal/service"
)

// PerformanceListing is a performance row augmented with the current
// free-seat count. The count comes straight from the availability
// computation, never from the cache.
type PerformanceListing struct {
	model.Performance
	AvailableSeatsCount int `json:"available_seats_count"`
}

type PerformanceService interface {
	CreatePerformance(ctx context.Context, playID, hallID uint, showTime time.Time) (*model.Performance, error)
	GetPerformanceByID(ctx context.Context, id uint) (*model.Performance, error)
	ListPerformances(ctx context.Context, filter repository.PerformanceFilter) ([]PerformanceListing, error)
	UpdatePerformance(ctx context.Context, id uint, playID, hallID uint, showTime time.Time) (*model.Performance, error)
	DeletePerformance(ctx context.Context, id uint) error
}

type performanceService struct {
	performances repository.PerformanceRepo
	plays        repository.PlayRepo
	halls        repository.HallRepo
	availability AvailabilityService
	cache        *cache.RedisCache
}

var _ PerformanceService = (*performanceService)(nil)

func NewPerformanceService(
	performanceRepo repository.PerformanceRepo,
	playRepo repository.PlayRepo,
	hallRepo repository.HallRepo,
	availability AvailabilityService,
	cache *cache.RedisCache,
) *performanceService {
	return &performanceService{
		performances: performanceRepo,
		plays:        playRepo,
		halls:        hallRepo,
		availability: availability,
		cache:        cache,
	}
}

func (s *performanceService) CreatePerformance(ctx context.Context, playID, hallID uint, showTime time.Time) (*model.Performance, error) {
	if _, err := s.plays.GetByID(ctx, playID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, service.ErrNotFound
		}
		return nil, &service.StorageError{Err: err}
	}
	if _, err := s.halls.GetByID(ctx, hallID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, service.ErrNotFound
		}
		return nil, &service.StorageError{Err: err}
	}
	perf := &model.Performance{PlayID: playID, TheatreHallID: hallID, ShowTime: showTime}
	if err := s.performances.Create(ctx, perf); err != nil {
		return nil, &service.StorageError{Err: err}
	}
	return s.GetPerformanceByID(ctx, perf.ID)
}

func (s *performanceService) GetPerformanceByID(ctx context.Context, id uint) (*model.Performance, error) {
	var cached model.Performance
	if err := s.cache.Get(ctx, cache.MakePerformanceKey(id), &cached); err == nil {
		return &cached, nil
	}
	perf, err := s.performances.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, service.ErrNotFound
		}
		return nil, &service.StorageError{Err: err}
	}
	_ = s.cache.Set(ctx, cache.MakePerformanceKey(id), perf, cache.CatalogTTL)
	return perf, nil
}

func (s *performanceService) ListPerformances(ctx context.Context, filter repository.PerformanceFilter) ([]PerformanceListing, error) {
	perfs, err := s.performances.List(ctx, filter)
	if err != nil {
		return nil, &service.StorageError{Err: err}
	}
	listings := make([]PerformanceListing, 0, len(perfs))
	for _, perf := range perfs {
		count, err := s.availability.FreeSeatCount(ctx, perf.ID)
		if err != nil {
			return nil, err
		}
		listings = append(listings, PerformanceListing{Performance: perf, AvailableSeatsCount: count})
	}
	return listings, nil
}

func (s *performanceService) UpdatePerformance(ctx context.Context, id uint, playID, hallID uint, showTime time.Time) (*model.Performance, error) {
	perf, err := s.performances.GetWithHall(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, service.ErrNotFound
		}
		return nil, &service.StorageError{Err: err}
	}
	perf.PlayID = playID
	perf.TheatreHallID = hallID
	perf.ShowTime = showTime
	if err := s.performances.Update(ctx, perf); err != nil {
		return nil, &service.StorageError{Err: err}
	}
	s.invalidate(ctx, id)
	return s.GetPerformanceByID(ctx, id)
}

func (s *performanceService) DeletePerformance(ctx context.Context, id uint) error {
	if _, err := s.performances.GetWithHall(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return service.ErrNotFound
		}
		return &service.StorageError{Err: err}
	}
	if err := s.performances.Delete(ctx, id); err != nil {
		return &service.StorageError{Err: err}
	}
	s.invalidate(ctx, id)
	return nil
}

func (s *performanceService) invalidate(ctx context.Context, id uint) {
	_ = s.cache.Delete(ctx, cache.MakePerformanceKey(id))
}
