package model

import (
	"time"
)

type User struct {
	ID             uint   `gorm:"primaryKey" json:"id"`
	Email          string `gorm:"size:255;not null;uniqueIndex" json:"email"`
	HashedPassword string `gorm:"not null" json:"-"`
	IsStaff        bool   `gorm:"not null;default:false" json:"is_staff"`
}

type Actor struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	FirstName string  `gorm:"size:255;not null" json:"first_name"`
	LastName  string  `gorm:"size:255;not null" json:"last_name"`
	Image     *string `gorm:"size:512" json:"image"`
	Plays     []Play  `gorm:"many2many:play_actors" json:"-"`
}

type Genre struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	Name  string `gorm:"size:255;not null;uniqueIndex" json:"name"`
	Plays []Play `gorm:"many2many:play_genres" json:"-"`
}

type Play struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Title       string  `gorm:"size:255;not null" json:"title"`
	Description string  `gorm:"type:text" json:"description"`
	Image       *string `gorm:"size:512" json:"image"`
	Actors      []Actor `gorm:"many2many:play_actors" json:"actors,omitempty"`
	Genres      []Genre `gorm:"many2many:play_genres" json:"genres,omitempty"`
}

// TheatreHall geometry is immutable once created; no resize operation
// exists anywhere in the API.
type TheatreHall struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	Name       string `gorm:"size:255;not null;uniqueIndex" json:"name"`
	Rows       int    `gorm:"not null" json:"rows"`
	SeatsInRow int    `gorm:"not null" json:"seats_in_row"`
}

// Capacity returns the total number of seats in the hall.
func (h TheatreHall) Capacity() int {
	return h.Rows * h.SeatsInRow
}

type Performance struct {
	ID            uint        `gorm:"primaryKey" json:"id"`
	PlayID        uint        `gorm:"not null;index" json:"play_id"`
	TheatreHallID uint        `gorm:"not null;index" json:"theatre_hall_id"`
	ShowTime      time.Time   `gorm:"not null" json:"show_time"`
	Play          Play        `gorm:"foreignKey:PlayID;constraint:OnDelete:CASCADE" json:"play"`
	TheatreHall   TheatreHall `gorm:"foreignKey:TheatreHallID;constraint:OnDelete:CASCADE" json:"theatre_hall"`
}

type Reservation struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	Tickets   []Ticket  `gorm:"foreignKey:ReservationID;constraint:OnDelete:CASCADE" json:"tickets"`
}

// Ticket rows are written only inside a reservation commit and never
// updated afterwards. The composite unique index on (performance_id,
// row, seat) is the hard guarantee against double booking: of two
// concurrent commits for the same seat at most one can succeed,
// whatever the pre-check saw.
type Ticket struct {
	ID            uint `gorm:"primaryKey" json:"id"`
	Row           int  `gorm:"not null;uniqueIndex:uniq_performance_seat" json:"row"`
	Seat          int  `gorm:"not null;uniqueIndex:uniq_performance_seat" json:"seat"`
	PerformanceID uint `gorm:"not null;index;uniqueIndex:uniq_performance_seat" json:"performance_id"`
	ReservationID uint `gorm:"not null;index" json:"reservation_id"`

	Performance Performance `gorm:"foreignKey:PerformanceID;constraint:OnDelete:CASCADE" json:"-"`
	Reservation Reservation `gorm:"foreignKey:ReservationID;constraint:OnDelete:CASCADE" json:"-"`
}

// AllModels lists every entity for AutoMigrate, referenced tables first.
func AllModels() []any {
	return []any{
		&User{},
		&Actor{},
		&Genre{},
		&Play{},
		&TheatreHall{},
		&Performance{},
		&Reservation{},
		&Ticket{},
	}
}
