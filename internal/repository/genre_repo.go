package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/velesk/theatre-booking/internal/model"
)

type GenreRepo interface {
	WithTx(tx *gorm.DB) GenreRepo
	Create(ctx context.Context, genre *model.Genre) error
	GetByID(ctx context.Context, id uint) (*model.Genre, error)
	ListAll(ctx context.Context) ([]model.Genre, error)
	Update(ctx context.Context, genre *model.Genre) error
	Delete(ctx context.Context, id uint) error
}

type genreRepoGorm struct {
	db *gorm.DB
}

var _ GenreRepo = (*genreRepoGorm)(nil)

func NewGenreRepoGorm(db *gorm.DB) *genreRepoGorm {
	return &genreRepoGorm{db: db}
}

func (r *genreRepoGorm) WithTx(tx *gorm.DB) GenreRepo {
	return &genreRepoGorm{db: tx}
}

func (r *genreRepoGorm) Create(ctx context.Context, genre *model.Genre) error {
	return gorm.G[model.Genre](r.db).Create(ctx, genre)
}

func (r *genreRepoGorm) GetByID(ctx context.Context, id uint) (*model.Genre, error) {
	genre, err := gorm.G[model.Genre](r.db).Where("id = ?", id).First(ctx)
	if err != nil {
		return nil, err
	}
	return &genre, nil
}

func (r *genreRepoGorm) ListAll(ctx context.Context) ([]model.Genre, error) {
	return gorm.G[model.Genre](r.db).Order("id").Find(ctx)
}

func (r *genreRepoGorm) Update(ctx context.Context, genre *model.Genre) error {
	return r.db.WithContext(ctx).Save(genre).Error
}

func (r *genreRepoGorm) Delete(ctx context.Context, id uint) error {
	_, err := gorm.G[model.Genre](r.db).Where("id = ?", id).Delete(ctx)
	return err
}
