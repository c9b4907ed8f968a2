package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/velesk/theatre-booking/internal/model"
)

// PlayFilter narrows play listings; zero fields match everything.
type PlayFilter struct {
	Title    string
	ActorIDs []uint
	GenreIDs []uint
}

type PlayRepo interface {
	WithTx(tx *gorm.DB) PlayRepo
	Create(ctx context.Context, play *model.Play) error
	GetByID(ctx context.Context, id uint) (*model.Play, error)
	List(ctx context.Context, filter PlayFilter) ([]model.Play, error)
	Update(ctx context.Context, play *model.Play) error
	ReplaceAssociations(ctx context.Context, play *model.Play, actors []model.Actor, genres []model.Genre) error
	UpdateImage(ctx context.Context, id uint, path string) error
	Delete(ctx context.Context, id uint) error
}

type playRepoGorm struct {
	db *gorm.DB
}

var _ PlayRepo = (*playRepoGorm)(nil)

func NewPlayRepoGorm(db *gorm.DB) *playRepoGorm {
	return &playRepoGorm{db: db}
}

func (r *playRepoGorm) WithTx(tx *gorm.DB) PlayRepo {
	return &playRepoGorm{db: tx}
}

func (r *playRepoGorm) Create(ctx context.Context, play *model.Play) error {
	return r.db.WithContext(ctx).Create(play).Error
}

func (r *playRepoGorm) GetByID(ctx context.Context, id uint) (*model.Play, error) {
	var play model.Play
	err := r.db.WithContext(ctx).
		Preload("Actors").
		Preload("Genres").
		First(&play, id).Error
	if err != nil {
		return nil, err
	}
	return &play, nil
}

func (r *playRepoGorm) List(ctx context.Context, filter PlayFilter) ([]model.Play, error) {
	q := r.db.WithContext(ctx).Model(&model.Play{})
	if filter.Title != "" {
		q = q.Where("title ILIKE ?", "%"+filter.Title+"%")
	}
	if len(filter.ActorIDs) > 0 {
		q = q.Joins("JOIN play_actors pa ON pa.play_id = plays.id").
			Where("pa.actor_id IN ?", filter.ActorIDs)
	}
	if len(filter.GenreIDs) > 0 {
		q = q.Joins("JOIN play_genres pg ON pg.play_id = plays.id").
			Where("pg.genre_id IN ?", filter.GenreIDs)
	}
	var plays []model.Play
	if err := q.Distinct("plays.*").Order("plays.id").Find(&plays).Error; err != nil {
		return nil, err
	}
	return plays, nil
}

func (r *playRepoGorm) Update(ctx context.Context, play *model.Play) error {
	return r.db.WithContext(ctx).Omit("Actors", "Genres").Save(play).Error
}

// ReplaceAssociations swaps the play's actor and genre sets in place.
func (r *playRepoGorm) ReplaceAssociations(ctx context.Context, play *model.Play, actors []model.Actor, genres []model.Genre) error {
	db := r.db.WithContext(ctx)
	if err := db.Model(play).Association("Actors").Replace(actors); err != nil {
		return err
	}
	return db.Model(play).Association("Genres").Replace(genres)
}

func (r *playRepoGorm) UpdateImage(ctx context.Context, id uint, path string) error {
	_, err := gorm.G[model.Play](r.db).Where("id = ?", id).Update(ctx, "image", path)
	return err
}

func (r *playRepoGorm) Delete(ctx context.Context, id uint) error {
	_, err := gorm.G[model.Play](r.db).Where("id = ?", id).Delete(ctx)
	return err
}
