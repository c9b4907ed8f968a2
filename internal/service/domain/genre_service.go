package domain

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/velesk/theatre-booking/internal/model"
	"github.com/velesk/theatre-booking/internal/repository"
	"github.com/velesk/theatre-booking/internal/service"
)

type GenreService interface {
	CreateGenre(ctx context.Context, name string) (*model.Genre, error)
	GetGenreByID(ctx context.Context, id uint) (*model.Genre, error)
	ListGenres(ctx context.Context) ([]model.Genre, error)
	UpdateGenre(ctx context.Context, id uint, name string) (*model.Genre, error)
	DeleteGenre(ctx context.Context, id uint) error
}

type genreService struct {
	repo repository.GenreRepo
}

var _ GenreService = (*genreService)(nil)

func NewGenreService(genreRepo repository.GenreRepo) *genreService {
	return &genreService{repo: genreRepo}
}

func (s *genreService) CreateGenre(ctx context.Context, name string) (*model.Genre, error) {
	genre := &model.Genre{Name: name}
	if err := s.repo.Create(ctx, genre); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, service.ErrConflict
		}
		return nil, &service.StorageError{Err: err}
	}
	return genre, nil
}

func (s *genreService) GetGenreByID(ctx context.Context, id uint) (*model.Genre, error) {
	genre, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, service.ErrNotFound
		}
		return nil, &service.StorageError{Err: err}
	}
	return genre, nil
}

func (s *genreService) ListGenres(ctx context.Context) ([]model.Genre, error) {
	genres, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, &service.StorageError{Err: err}
	}
	return genres, nil
}

func (s *genreService) UpdateGenre(ctx context.Context, id uint, name string) (*model.Genre, error) {
	genre, err := s.GetGenreByID(ctx, id)
	if err != nil {
		return nil, err
	}
	genre.Name = name
	if err := s.repo.Update(ctx, genre); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, service.ErrConflict
		}
		return nil, &service.StorageError{Err: err}
	}
	return genre, nil
}

func (s *genreService) DeleteGenre(ctx context.Context, id uint) error {
	if _, err := s.GetGenreByID(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return &service.StorageError{Err: err}
	}
	return nil
}
