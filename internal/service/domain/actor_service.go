package domain

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/velesk/theatre-booking/internal/model"
	"github.com/velesk/theatre-booking/internal/repository"
	"github.com/velesk/theatre-booking/internal/service"
)

type ActorService interface {
	CreateActor(ctx context.Context, firstName, lastName string) (*model.Actor, error)
	GetActorByID(ctx context.Context, id uint) (*model.Actor, error)
	ListActors(ctx context.Context, filter repository.ActorFilter) ([]model.Actor, error)
	UpdateActor(ctx context.Context, id uint, firstName, lastName string) (*model.Actor, error)
	SetActorImage(ctx context.Context, id uint, path string) error
	DeleteActor(ctx context.Context, id uint) error
}

type actorService struct {
	repo repository.ActorRepo
}

var _ ActorService = (*actorService)(nil)

func NewActorService(actorRepo repository.ActorRepo) *actorService {
	return &actorService{repo: actorRepo}
}

func (s *actorService) CreateActor(ctx context.Context, firstName, lastName string) (*model.Actor, error) {
	actor := &model.Actor{FirstName: firstName, LastName: lastName}
	if err := s.repo.Create(ctx, actor); err != nil {
		return nil, &service.StorageError{Err: err}
	}
	return actor, nil
}

func (s *actorService) GetActorByID(ctx context.Context, id uint) (*model.Actor, error) {
	actor, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, service.ErrNotFound
		}
		return nil, &service.StorageError{Err: err}
	}
	return actor, nil
}

func (s *actorService) ListActors(ctx context.Context, filter repository.ActorFilter) ([]model.Actor, error) {
	actors, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, &service.StorageError{Err: err}
	}
	return actors, nil
}

func (s *actorService) UpdateActor(ctx context.Context, id uint, firstName, lastName string) (*model.Actor, error) {
	actor, err := s.GetActorByID(ctx, id)
	if err != nil {
		return nil, err
	}
	actor.FirstName = firstName
	actor.LastName = lastName
	if err := s.repo.Update(ctx, actor); err != nil {
		return nil, &service.StorageError{Err: err}
	}
	return actor, nil
}

func (s *actorService) SetActorImage(ctx context.Context, id uint, path string) error {
	if _, err := s.GetActorByID(ctx, id); err != nil {
		return err
	}
	if err := s.repo.UpdateImage(ctx, id, path); err != nil {
		return &service.StorageError{Err: err}
	}
	return nil
}

func (s *actorService) DeleteActor(ctx context.Context, id uint) error {
	if _, err := s.GetActorByID(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return &service.StorageError{Err: err}
	}
	return nil
}
