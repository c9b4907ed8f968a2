package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/velesk/theatre-booking/internal/model"
)

// ActorFilter narrows actor listings; empty fields match everything.
type ActorFilter struct {
	FirstName string
	LastName  string
}

type ActorRepo interface {
	WithTx(tx *gorm.DB) ActorRepo
	Create(ctx context.Context, actor *model.Actor) error
	GetByID(ctx context.Context, id uint) (*model.Actor, error)
	List(ctx context.Context, filter ActorFilter) ([]model.Actor, error)
	Update(ctx context.Context, actor *model.Actor) error
	UpdateImage(ctx context.Context, id uint, path string) error
	Delete(ctx context.Context, id uint) error
}

type actorRepoGorm struct {
	db *gorm.DB
}

var _ ActorRepo = (*actorRepoGorm)(nil)

func NewActorRepoGorm(db *gorm.DB) *actorRepoGorm {
	return &actorRepoGorm{db: db}
}

func (r *actorRepoGorm) WithTx(tx *gorm.DB) ActorRepo {
	return &actorRepoGorm{db: tx}
}

func (r *actorRepoGorm) Create(ctx context.Context, actor *model.Actor) error {
	return gorm.G[model.Actor](r.db).Create(ctx, actor)
}

func (r *actorRepoGorm) GetByID(ctx context.Context, id uint) (*model.Actor, error) {
	var actor model.Actor
	err := r.db.WithContext(ctx).Preload("Plays").First(&actor, id).Error
	if err != nil {
		return nil, err
	}
	return &actor, nil
}

func (r *actorRepoGorm) List(ctx context.Context, filter ActorFilter) ([]model.Actor, error) {
	q := r.db.WithContext(ctx).Model(&model.Actor{})
	if filter.FirstName != "" {
		q = q.Where("first_name ILIKE ?", "%"+filter.FirstName+"%")
	}
	if filter.LastName != "" {
		q = q.Where("last_name ILIKE ?", "%"+filter.LastName+"%")
	}
	var actors []model.Actor
	if err := q.Order("id").Find(&actors).Error; err != nil {
		return nil, err
	}
	return actors, nil
}

func (r *actorRepoGorm) Update(ctx context.Context, actor *model.Actor) error {
	return r.db.WithContext(ctx).Save(actor).Error
}

func (r *actorRepoGorm) UpdateImage(ctx context.Context, id uint, path string) error {
	_, err := gorm.G[model.Actor](r.db).Where("id = ?", id).Update(ctx, "image", path)
	return err
}

func (r *actorRepoGorm) Delete(ctx context.Context, id uint) error {
	_, err := gorm.G[model.Actor](r.db).Where("id = ?", id).Delete(ctx)
	return err
}
