package model

import (
	"errors"
	"testing"
)

func TestValidateSeat(t *testing.T) {
	hall := TheatreHall{Rows: 10, SeatsInRow: 12}

	cases := []struct {
		name      string
		row, seat int
		wantField string
		wantMax   int
	}{
		{"first seat", 1, 1, "", 0},
		{"last seat", 10, 12, "", 0},
		{"row too high", 11, 5, "row", 10},
		{"row zero", 0, 5, "row", 10},
		{"seat too high", 5, 13, "seat", 12},
		{"seat zero", 5, 0, "seat", 12},
		{"negative row", -1, 5, "row", 10},
		// both out of range: seat wins
		{"both out of range", 99, 99, "seat", 12},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateSeat(tc.row, tc.seat, hall)
			if tc.wantField == "" {
				if err != nil {
					t.Fatalf("ValidateSeat(%d, %d) = %v, want nil", tc.row, tc.seat, err)
				}
				return
			}
			var rangeErr *SeatRangeError
			if !errors.As(err, &rangeErr) {
				t.Fatalf("ValidateSeat(%d, %d) = %v, want SeatRangeError", tc.row, tc.seat, err)
			}
			if rangeErr.Field != tc.wantField {
				t.Errorf("field = %q, want %q", rangeErr.Field, tc.wantField)
			}
			if rangeErr.Min != 1 || rangeErr.Max != tc.wantMax {
				t.Errorf("range = [%d, %d], want [1, %d]", rangeErr.Min, rangeErr.Max, tc.wantMax)
			}
		})
	}
}

func TestSeatRangeErrorMessage(t *testing.T) {
	err := ValidateSeat(3, 15, TheatreHall{Rows: 5, SeatsInRow: 10})
	want := "seat 15 must be in range [1, 10]"
	if err == nil || err.Error() != want {
		t.Fatalf("error = %v, want %q", err, want)
	}
}

func TestFreeSeatsOrderAndComplement(t *testing.T) {
	hall := TheatreHall{Rows: 2, SeatsInRow: 2}
	occupied := []SeatRef{{Row: 1, Seat: 2}, {Row: 2, Seat: 1}}

	free := FreeSeats(hall, occupied)

	want := []SeatRef{{Row: 1, Seat: 1}, {Row: 2, Seat: 2}}
	if len(free) != len(want) {
		t.Fatalf("got %d free seats, want %d: %v", len(free), len(want), free)
	}
	for i := range want {
		if free[i] != want[i] {
			t.Errorf("free[%d] = %v, want %v", i, free[i], want[i])
		}
	}
}

func TestFreeSeatsEmptyHallOccupancy(t *testing.T) {
	hall := TheatreHall{Rows: 3, SeatsInRow: 4}

	free := FreeSeats(hall, nil)
	if len(free) != hall.Capacity() {
		t.Fatalf("got %d free seats, want %d", len(free), hall.Capacity())
	}
	// row-major ordering
	if free[0] != (SeatRef{Row: 1, Seat: 1}) || free[len(free)-1] != (SeatRef{Row: 3, Seat: 4}) {
		t.Errorf("ordering broken: first %v, last %v", free[0], free[len(free)-1])
	}
}

func TestFreeSeatsFullHouse(t *testing.T) {
	hall := TheatreHall{Rows: 2, SeatsInRow: 3}
	occupied := FreeSeats(hall, nil)

	free := FreeSeats(hall, occupied)
	if len(free) != 0 {
		t.Fatalf("got %d free seats in a full house, want 0", len(free))
	}
}
