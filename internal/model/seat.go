package model

import "fmt"

// SeatRangeError reports a seat coordinate outside the hall geometry.
// Field is "row" or "seat".
type SeatRangeError struct {
	Field string
	Value int
	Min   int
	Max   int
}

func (e *SeatRangeError) Error() string {
	return fmt.Sprintf("%s %d must be in range [%d, %d]", e.Field, e.Value, e.Min, e.Max)
}

// SeatRef identifies a single seat inside a hall.
type SeatRef struct {
	Row  int `json:"row"`
	Seat int `json:"seat"`
}

// ValidateSeat checks a (row, seat) pair against the hall geometry.
// The seat coordinate is checked before the row coordinate, so a
// request violating both reports the seat violation. Pure, no I/O.
func ValidateSeat(row, seat int, hall TheatreHall) error {
	if seat < 1 || seat > hall.SeatsInRow {
		return &SeatRangeError{Field: "seat", Value: seat, Min: 1, Max: hall.SeatsInRow}
	}
	if row < 1 || row > hall.Rows {
		return &SeatRangeError{Field: "row", Value: row, Min: 1, Max: hall.Rows}
	}
	return nil
}

// FreeSeats enumerates every seat of the hall that is not in occupied,
// ordered by row ascending then seat ascending. The result is computed
// fresh on every call; occupancy is never cached.
func FreeSeats(hall TheatreHall, occupied []SeatRef) []SeatRef {
	taken := make(map[SeatRef]struct{}, len(occupied))
	for _, s := range occupied {
		taken[s] = struct{}{}
	}

	free := make([]SeatRef, 0, hall.Capacity()-len(taken))
	for row := 1; row <= hall.Rows; row++ {
		for seat := 1; seat <= hall.SeatsInRow; seat++ {
			ref := SeatRef{Row: row, Seat: seat}
			if _, ok := taken[ref]; !ok {
				free = append(free, ref)
			}
		}
	}
	return free
}
