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

type HallService interface {
	CreateHall(ctx context.Context, name string, rows, seatsInRow int) (*model.TheatreHall, error)
	GetHallByID(ctx context.Context, id uint) (*model.TheatreHall, error)
	ListHalls(ctx context.Context) ([]model.TheatreHall, error)
	RenameHall(ctx context.Context, id uint, name string) (*model.TheatreHall, error)
	DeleteHall(ctx context.Context, id uint) error
}

type hallService struct {
	repo repository.HallRepo
}

var _ HallService = (*hallService)(nil)

func NewHallService(hallRepo repository.HallRepo) *hallService {
	return &hallService{repo: hallRepo}
}

// CreateHall persists a hall after checking the geometry invariant.
// Rows and seats per row are fixed for the hall's lifetime.
func (s *hallService) CreateHall(ctx context.Context, name string, rows, seatsInRow int) (*model.TheatreHall, error) {
	if rows < 1 {
		return nil, fmt.Errorf("rows must be at least 1, got %d: %w", rows, service.ErrInvalidInput)
	}
	if seatsInRow < 1 {
		return nil, fmt.Errorf("seats_in_row must be at least 1, got %d: %w", seatsInRow, service.ErrInvalidInput)
	}
	hall := &model.TheatreHall{Name: name, Rows: rows, SeatsInRow: seatsInRow}
	if err := s.repo.Create(ctx, hall); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, service.ErrConflict
		}
		return nil, &service.StorageError{Err: err}
	}
	return hall, nil
}

func (s *hallService) GetHallByID(ctx context.Context, id uint) (*model.TheatreHall, error) {
	hall, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, service.ErrNotFound
		}
		return nil, &service.StorageError{Err: err}
	}
	return hall, nil
}

func (s *hallService) ListHalls(ctx context.Context) ([]model.TheatreHall, error) {
	halls, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, &service.StorageError{Err: err}
	}
	return halls, nil
}

func (s *hallService) RenameHall(ctx context.Context, id uint, name string) (*model.TheatreHall, error) {
	if _, err := s.GetHallByID(ctx, id); err != nil {
		return nil, err
	}
	if err := s.repo.Rename(ctx, id, name); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, service.ErrConflict
		}
		return nil, &service.StorageError{Err: err}
	}
	return s.GetHallByID(ctx, id)
}

func (s *hallService) DeleteHall(ctx context.Context, id uint) error {
	if _, err := s.GetHallByID(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return &service.StorageError{Err: err}
	}
	return nil
}
