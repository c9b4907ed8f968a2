package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/velesk/theatre-booking/internal/model"
)

type TicketRepo interface {
	WithTx(tx *gorm.DB) TicketRepo
	CreateBatch(ctx context.Context, tickets []model.Ticket) error
	GetByID(ctx context.Context, id uint) (*model.Ticket, error)
	OccupiedSeats(ctx context.Context, performanceID uint) ([]model.SeatRef, error)
	ExistsAt(ctx context.Context, performanceID uint, row, seat int) (bool, error)
}

type ticketRepoGorm struct {
	db *gorm.DB
}

var _ TicketRepo = (*ticketRepoGorm)(nil)

func NewTicketRepoGorm(db *gorm.DB) *ticketRepoGorm {
	return &ticketRepoGorm{db: db}
}

func (r *ticketRepoGorm) WithTx(tx *gorm.DB) TicketRepo {
	return &ticketRepoGorm{db: tx}
}

// CreateBatch inserts all tickets in one statement. The composite
// unique index rejects the whole insert if any seat is already held,
// surfacing gorm.ErrDuplicatedKey to the caller.
func (r *ticketRepoGorm) CreateBatch(ctx context.Context, tickets []model.Ticket) error {
	if len(tickets) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&tickets).Error
}

func (r *ticketRepoGorm) GetByID(ctx context.Context, id uint) (*model.Ticket, error) {
	var ticket model.Ticket
	err := r.db.WithContext(ctx).
		Preload("Performance").
		Preload("Performance.Play").
		Preload("Performance.TheatreHall").
		First(&ticket, id).Error
	if err != nil {
		return nil, err
	}
	return &ticket, nil
}

// OccupiedSeats returns every committed (row, seat) pair for the
// performance, ordered by row then seat.
func (r *ticketRepoGorm) OccupiedSeats(ctx context.Context, performanceID uint) ([]model.SeatRef, error) {
	seats := make([]model.SeatRef, 0)
	err := r.db.WithContext(ctx).
		Model(&model.Ticket{}).
		Select(`"row"`, "seat").
		Where("performance_id = ?", performanceID).
		Order(`"row", seat`).
		Find(&seats).Error
	if err != nil {
		return nil, err
	}
	return seats, nil
}

func (r *ticketRepoGorm) ExistsAt(ctx context.Context, performanceID uint, row, seat int) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Ticket{}).
		Where(`performance_id = ? AND "row" = ? AND seat = ?`, performanceID, row, seat).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
