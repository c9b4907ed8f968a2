package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/velesk/theatre-booking/internal/model"
)

type ReservationRepo interface {
	WithTx(tx *gorm.DB) ReservationRepo
	Create(ctx context.Context, res *model.Reservation) error
	GetByID(ctx context.Context, id uint) (*model.Reservation, error)
	ListByUser(ctx context.Context, userID uint) ([]model.Reservation, error)
	Delete(ctx context.Context, id uint) error
}

type reservationRepoGorm struct {
	db *gorm.DB
}

var _ ReservationRepo = (*reservationRepoGorm)(nil)

func NewReservationRepoGorm(db *gorm.DB) *reservationRepoGorm {
	return &reservationRepoGorm{db: db}
}

func (r *reservationRepoGorm) WithTx(tx *gorm.DB) ReservationRepo {
	return &reservationRepoGorm{db: tx}
}

// Create inserts the reservation row only; tickets are written
// separately by TicketRepo inside the same transaction.
func (r *reservationRepoGorm) Create(ctx context.Context, res *model.Reservation) error {
	return r.db.WithContext(ctx).Omit("Tickets").Create(res).Error
}

func (r *reservationRepoGorm) GetByID(ctx context.Context, id uint) (*model.Reservation, error) {
	var res model.Reservation
	err := r.db.WithContext(ctx).
		Preload("Tickets").
		First(&res, id).Error
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func (r *reservationRepoGorm) ListByUser(ctx context.Context, userID uint) ([]model.Reservation, error) {
	var reservations []model.Reservation
	err := r.db.WithContext(ctx).
		Preload("Tickets").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&reservations).Error
	if err != nil {
		return nil, err
	}
	return reservations, nil
}

// Delete removes the reservation; ticket rows go with it through the
// FK cascade.
func (r *reservationRepoGorm) Delete(ctx context.Context, id uint) error {
	_, err := gorm.G[model.Reservation](r.db).Where("id = ?", id).Delete(ctx)
	return err
}
