package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/velesk/theatre-booking/internal/model"
)

type HallRepo interface {
	WithTx(tx *gorm.DB) HallRepo
	Create(ctx context.Context, hall *model.TheatreHall) error
	GetByID(ctx context.Context, id uint) (*model.TheatreHall, error)
	ListAll(ctx context.Context) ([]model.TheatreHall, error)
	Rename(ctx context.Context, id uint, name string) error
	Delete(ctx context.Context, id uint) error
}

type hallRepoGorm struct {
	db *gorm.DB
}

var _ HallRepo = (*hallRepoGorm)(nil)

func NewHallRepoGorm(db *gorm.DB) *hallRepoGorm {
	return &hallRepoGorm{db: db}
}

func (r *hallRepoGorm) WithTx(tx *gorm.DB) HallRepo {
	return &hallRepoGorm{db: tx}
}

func (r *hallRepoGorm) Create(ctx context.Context, hall *model.TheatreHall) error {
	return gorm.G[model.TheatreHall](r.db).Create(ctx, hall)
}

func (r *hallRepoGorm) GetByID(ctx context.Context, id uint) (*model.TheatreHall, error) {
	hall, err := gorm.G[model.TheatreHall](r.db).Where("id = ?", id).First(ctx)
	if err != nil {
		return nil, err
	}
	return &hall, nil
}

func (r *hallRepoGorm) ListAll(ctx context.Context) ([]model.TheatreHall, error) {
	return gorm.G[model.TheatreHall](r.db).Order("id").Find(ctx)
}

// Rename updates the hall name only. Geometry is immutable, so rows
// and seats_in_row are never touched after creation.
func (r *hallRepoGorm) Rename(ctx context.Context, id uint, name string) error {
	_, err := gorm.G[model.TheatreHall](r.db).Where("id = ?", id).Update(ctx, "name", name)
	return err
}

func (r *hallRepoGorm) Delete(ctx context.Context, id uint) error {
	_, err := gorm.G[model.TheatreHall](r.db).Where("id = ?", id).Delete(ctx)
	return err
}
