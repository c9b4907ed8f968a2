package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/velesk/theatre-booking/internal/model"
)

// PerformanceFilter narrows performance listings; zero fields match
// everything. Date matches the calendar day of show_time.
type PerformanceFilter struct {
	PlayID uint
	Date   *time.Time
}

type PerformanceRepo interface {
	WithTx(tx *gorm.DB) PerformanceRepo
	Create(ctx context.Context, perf *model.Performance) error
	GetByID(ctx context.Context, id uint) (*model.Performance, error)
	GetWithHall(ctx context.Context, id uint) (*model.Performance, error)
	List(ctx context.Context, filter PerformanceFilter) ([]model.Performance, error)
	Update(ctx context.Context, perf *model.Performance) error
	Delete(ctx context.Context, id uint) error
}

type performanceRepoGorm struct {
	db *gorm.DB
}

var _ PerformanceRepo = (*performanceRepoGorm)(nil)

func NewPerformanceRepoGorm(db *gorm.DB) *performanceRepoGorm {
	return &performanceRepoGorm{db: db}
}

func (r *performanceRepoGorm) WithTx(tx *gorm.DB) PerformanceRepo {
	return &performanceRepoGorm{db: tx}
}

func (r *performanceRepoGorm) Create(ctx context.Context, perf *model.Performance) error {
	return r.db.WithContext(ctx).Omit("Play", "TheatreHall").Create(perf).Error
}

func (r *performanceRepoGorm) GetByID(ctx context.Context, id uint) (*model.Performance, error) {
	var perf model.Performance
	err := r.db.WithContext(ctx).
		Preload("Play").
		Preload("Play.Actors").
		Preload("Play.Genres").
		Preload("TheatreHall").
		First(&perf, id).Error
	if err != nil {
		return nil, err
	}
	return &perf, nil
}

// GetWithHall resolves a performance together with its hall geometry
// and nothing else. This is the lookup the booking path depends on.
func (r *performanceRepoGorm) GetWithHall(ctx context.Context, id uint) (*model.Performance, error) {
	var perf model.Performance
	err := r.db.WithContext(ctx).
		Preload("TheatreHall").
		First(&perf, id).Error
	if err != nil {
		return nil, err
	}
	return &perf, nil
}

func (r *performanceRepoGorm) List(ctx context.Context, filter PerformanceFilter) ([]model.Performance, error) {
	q := r.db.WithContext(ctx).
		Model(&model.Performance{}).
		Preload("Play").
		Preload("TheatreHall")
	if filter.PlayID != 0 {
		q = q.Where("play_id = ?", filter.PlayID)
	}
	if filter.Date != nil {
		dayStart := filter.Date.Truncate(24 * time.Hour)
		q = q.Where("show_time >= ? AND show_time < ?", dayStart, dayStart.Add(24*time.Hour))
	}
	var perfs []model.Performance
	if err := q.Order("show_time").Find(&perfs).Error; err != nil {
		return nil, err
	}
	return perfs, nil
}

func (r *performanceRepoGorm) Update(ctx context.Context, perf *model.Performance) error {
	return r.db.WithContext(ctx).Omit("Play", "TheatreHall").Save(perf).Error
}

func (r *performanceRepoGorm) Delete(ctx context.Context, id uint) error {
	_, err := gorm.G[model.Performance](r.db).Where("id = ?", id).Delete(ctx)
	return err
}
