package service

import (
	"errors"
	"fmt"
)

// Domain errors shared across services. Handlers translate these to
// HTTP statuses; nothing below ever leaves a partially applied batch
// behind.
var (
	ErrNotFound     = errors.New("resource not found")
	ErrEmptyBatch   = errors.New("reservation batch is empty")
	ErrForbidden    = errors.New("operation not allowed for this user")
	ErrConflict     = errors.New("resource already exists")
	ErrInvalidInput = errors.New("invalid input")
)

// SeatTakenError reports a seat that already has a committed ticket,
// detected either by the occupancy pre-check or by the unique index at
// commit time.
type SeatTakenError struct {
	PerformanceID uint
	Row           int
	Seat          int
}

func (e *SeatTakenError) Error() string {
	return fmt.Sprintf("seat %d in row %d is already booked for performance %d",
		e.Seat, e.Row, e.PerformanceID)
}

// DuplicateRequestError reports the same seat appearing twice within
// one batch.
type DuplicateRequestError struct {
	PerformanceID uint
	Row           int
	Seat          int
}

func (e *DuplicateRequestError) Error() string {
	return fmt.Sprintf("seat %d in row %d for performance %d is requested more than once",
		e.Seat, e.Row, e.PerformanceID)
}

// StorageError marks a transient storage fault. The batch has been
// rolled back in full and the caller may retry it.
type StorageError struct {
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage failure: %v", e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }
