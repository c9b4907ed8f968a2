package domain

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/velesk/theatre-booking/internal/cache"
	"github.com/velesk/theatre-booking/internal/model"
	"github.com/velesk/theatre-booking/internal/repository"
	"github.com/velesk/theatre-booking/internal/service"
)

type PlayInput struct {
	Title       string
	Description string
	ActorIDs    []uint
	GenreIDs    []uint
}

type PlayService interface {
	CreatePlay(ctx context.Context, input PlayInput) (*model.Play, error)
	GetPlayByID(ctx context.Context, id uint) (*model.Play, error)
	ListPlays(ctx context.Context, filter repository.PlayFilter) ([]model.Play, error)
	UpdatePlay(ctx context.Context, id uint, input PlayInput) (*model.Play, error)
	SetPlayImage(ctx context.Context, id uint, path string) error
	DeletePlay(ctx context.Context, id uint) error
}

type playService struct {
	db     *gorm.DB
	plays  repository.PlayRepo
	actors repository.ActorRepo
	genres repository.GenreRepo
	cache  *cache.RedisCache
}

var _ PlayService = (*playService)(nil)

func NewPlayService(db *gorm.DB, playRepo repository.PlayRepo, actorRepo repository.ActorRepo, genreRepo repository.GenreRepo, cache *cache.RedisCache) *playService {
	return &playService{
		db:     db,
		plays:  playRepo,
		actors: actorRepo,
		genres: genreRepo,
		cache:  cache,
	}
}

func (s *playService) CreatePlay(ctx context.Context, input PlayInput) (*model.Play, error) {
	actors, genres, err := s.resolveRefs(ctx, input)
	if err != nil {
		return nil, err
	}
	play := &model.Play{
		Title:       input.Title,
		Description: input.Description,
		Actors:      actors,
		Genres:      genres,
	}
	if err := s.db.Transaction(func(tx *gorm.DB) error {
		return s.plays.WithTx(tx).Create(ctx, play)
	}); err != nil {
		return nil, &service.StorageError{Err: err}
	}
	s.invalidate(ctx, play.ID)
	return play, nil
}

func (s *playService) GetPlayByID(ctx context.Context, id uint) (*model.Play, error) {
	var cached model.Play
	if err := s.cache.Get(ctx, cache.MakePlayKey(id), &cached); err == nil {
		return &cached, nil
	}
	play, err := s.plays.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, service.ErrNotFound
		}
		return nil, &service.StorageError{Err: err}
	}
	_ = s.cache.Set(ctx, cache.MakePlayKey(id), play, cache.CatalogTTL)
	return play, nil
}

func (s *playService) ListPlays(ctx context.Context, filter repository.PlayFilter) ([]model.Play, error) {
	unfiltered := filter.Title == "" && len(filter.ActorIDs) == 0 && len(filter.GenreIDs) == 0
	if unfiltered {
		var cached []model.Play
		if err := s.cache.Get(ctx, cache.PlayListKey, &cached); err == nil {
			return cached, nil
		}
	}
	plays, err := s.plays.List(ctx, filter)
	if err != nil {
		return nil, &service.StorageError{Err: err}
	}
	if unfiltered {
		_ = s.cache.Set(ctx, cache.PlayListKey, plays, cache.CatalogTTL)
	}
	return plays, nil
}

func (s *playService) UpdatePlay(ctx context.Context, id uint, input PlayInput) (*model.Play, error) {
	play, err := s.plays.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, service.ErrNotFound
		}
		return nil, &service.StorageError{Err: err}
	}
	actors, genres, err := s.resolveRefs(ctx, input)
	if err != nil {
		return nil, err
	}
	play.Title = input.Title
	play.Description = input.Description
	if err := s.db.Transaction(func(tx *gorm.DB) error {
		playsTx := s.plays.WithTx(tx)
		if err := playsTx.Update(ctx, play); err != nil {
			return err
		}
		return playsTx.ReplaceAssociations(ctx, play, actors, genres)
	}); err != nil {
		return nil, &service.StorageError{Err: err}
	}
	s.invalidate(ctx, id)
	return s.GetPlayByID(ctx, id)
}

func (s *playService) SetPlayImage(ctx context.Context, id uint, path string) error {
	if _, err := s.GetPlayByID(ctx, id); err != nil {
		return err
	}
	if err := s.plays.UpdateImage(ctx, id, path); err != nil {
		return &service.StorageError{Err: err}
	}
	s.invalidate(ctx, id)
	return nil
}

func (s *playService) DeletePlay(ctx context.Context, id uint) error {
	if _, err := s.plays.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return service.ErrNotFound
		}
		return &service.StorageError{Err: err}
	}
	if err := s.plays.Delete(ctx, id); err != nil {
		return &service.StorageError{Err: err}
	}
	s.invalidate(ctx, id)
	return nil
}

// resolveRefs loads the referenced actors and genres, failing with
// ErrNotFound if any id is unknown.
func (s *playService) resolveRefs(ctx context.Context, input PlayInput) ([]model.Actor, []model.Genre, error) {
	actors := make([]model.Actor, 0, len(input.ActorIDs))
	for _, id := range input.ActorIDs {
		actor, err := s.actors.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, nil, service.ErrNotFound
			}
			return nil, nil, &service.StorageError{Err: err}
		}
		actors = append(actors, *actor)
	}
	genres := make([]model.Genre, 0, len(input.GenreIDs))
	for _, id := range input.GenreIDs {
		genre, err := s.genres.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, nil, service.ErrNotFound
			}
			return nil, nil, &service.StorageError{Err: err}
		}
		genres = append(genres, *genre)
	}
	return actors, genres, nil
}

func (s *playService) invalidate(ctx context.Context, id uint) {
	_ = s.cache.Delete(ctx, cache.PlayListKey, cache.MakePlayKey(id))
}
