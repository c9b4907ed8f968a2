package domain

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/velesk/theatre-booking/internal/model"
	"github.com/velesk/theatre-booking/internal/repository"
	"github.com/velesk/theatre-booking/internal/service"
)

func TestValidateBatch(t *testing.T) {
	hall := model.TheatreHall{Rows: 5, SeatsInRow: 10}
	perfs := map[uint]*model.Performance{
		1: {ID: 1, TheatreHall: hall},
		2: {ID: 2, TheatreHall: hall},
	}

	t.Run("valid batch", func(t *testing.T) {
		items := []SeatRequest{
			{PerformanceID: 1, Row: 1, Seat: 1},
			{PerformanceID: 1, Row: 1, Seat: 2},
			{PerformanceID: 2, Row: 5, Seat: 10},
		}
		if err := validateBatch(items, perfs); err != nil {
			t.Fatalf("validateBatch = %v, want nil", err)
		}
	})

	t.Run("seat out of range", func(t *testing.T) {
		items := []SeatRequest{{PerformanceID: 1, Row: 1, Seat: 11}}
		var rangeErr *model.SeatRangeError
		if err := validateBatch(items, perfs); !errors.As(err, &rangeErr) {
			t.Fatalf("validateBatch = %v, want SeatRangeError", err)
		}
	})

	t.Run("duplicate seat in batch", func(t *testing.T) {
		items := []SeatRequest{
			{PerformanceID: 1, Row: 2, Seat: 3},
			{PerformanceID: 1, Row: 2, Seat: 3},
		}
		var dupErr *service.DuplicateRequestError
		if err := validateBatch(items, perfs); !errors.As(err, &dupErr) {
			t.Fatalf("validateBatch = %v, want DuplicateRequestError", err)
		}
	})

	t.Run("same seat across performances is fine", func(t *testing.T) {
		items := []SeatRequest{
			{PerformanceID: 1, Row: 2, Seat: 3},
			{PerformanceID: 2, Row: 2, Seat: 3},
		}
		if err := validateBatch(items, perfs); err != nil {
			t.Fatalf("validateBatch = %v, want nil", err)
		}
	})

	t.Run("geometry checked before duplicates", func(t *testing.T) {
		items := []SeatRequest{
			{PerformanceID: 1, Row: 99, Seat: 1},
			{PerformanceID: 1, Row: 99, Seat: 1},
		}
		var rangeErr *model.SeatRangeError
		if err := validateBatch(items, perfs); !errors.As(err, &rangeErr) {
			t.Fatalf("validateBatch = %v, want SeatRangeError", err)
		}
	})
}

// setupBookingTest connects to TEST_DATABASE_DSN, rebuilds the schema
// and seeds one user, play, hall and performance. Tests are skipped
// when no test database is configured.
func setupBookingTest(t *testing.T, rows, seatsInRow int) (*gorm.DB, *bookingService, uint) {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_DSN")
	if dsn == "" {
		t.Skip("TEST_DATABASE_DSN not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open database: %v", err)
	}

	if err := db.Migrator().DropTable(
		&model.Ticket{}, &model.Reservation{}, &model.Performance{},
		"play_actors", "play_genres",
		&model.TheatreHall{}, &model.Play{}, &model.Genre{}, &model.Actor{}, &model.User{},
	); err != nil {
		t.Fatalf("drop tables: %v", err)
	}
	if err := db.AutoMigrate(model.AllModels()...); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	user := model.User{Email: "booker@example.com", HashedPassword: "x"}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	play := model.Play{Title: "Hamlet"}
	if err := db.Create(&play).Error; err != nil {
		t.Fatalf("seed play: %v", err)
	}
	hall := model.TheatreHall{Name: "Main Stage", Rows: rows, SeatsInRow: seatsInRow}
	if err := db.Create(&hall).Error; err != nil {
		t.Fatalf("seed hall: %v", err)
	}
	perf := model.Performance{PlayID: play.ID, TheatreHallID: hall.ID, ShowTime: time.Now().Add(48 * time.Hour)}
	if err := db.Create(&perf).Error; err != nil {
		t.Fatalf("seed performance: %v", err)
	}

	svc := NewBookingService(
		db,
		repository.NewPerformanceRepoGorm(db),
		repository.NewReservationRepoGorm(db),
		repository.NewTicketRepoGorm(db),
	)
	return db, svc, perf.ID
}

func countTickets(t *testing.T, db *gorm.DB, performanceID uint) int64 {
	t.Helper()
	var n int64
	if err := db.Model(&model.Ticket{}).Where("performance_id = ?", performanceID).Count(&n).Error; err != nil {
		t.Fatalf("count tickets: %v", err)
	}
	return n
}

func TestCreateReservationAtomicity(t *testing.T) {
	db, svc, perfID := setupBookingTest(t, 5, 10)
	ctx := context.Background()

	// occupy seat (2, 5)
	if _, err := svc.CreateReservation(ctx, 1, []SeatRequest{{PerformanceID: perfID, Row: 2, Seat: 5}}); err != nil {
		t.Fatalf("seed booking: %v", err)
	}

	// a batch mixing a free seat with the taken one must write nothing
	_, err := svc.CreateReservation(ctx, 1, []SeatRequest{
		{PerformanceID: perfID, Row: 1, Seat: 1},
		{PerformanceID: perfID, Row: 2, Seat: 5},
	})
	var taken *service.SeatTakenError
	if !errors.As(err, &taken) {
		t.Fatalf("err = %v, want SeatTakenError", err)
	}
	if taken.Row != 2 || taken.Seat != 5 {
		t.Errorf("reported seat = (%d, %d), want (2, 5)", taken.Row, taken.Seat)
	}

	if n := countTickets(t, db, perfID); n != 1 {
		t.Errorf("ticket count = %d, want 1 (failed batch must leave no tickets)", n)
	}
}

func TestCreateReservationConcurrentSameSeat(t *testing.T) {
	db, svc, perfID := setupBookingTest(t, 5, 10)
	ctx := context.Background()

	const concurrency = 16
	var wg sync.WaitGroup
	errs := make([]error, concurrency)

	for i := range concurrency {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			_, errs[idx] = svc.CreateReservation(ctx, 1, []SeatRequest{
				{PerformanceID: perfID, Row: 3, Seat: 7},
			})
		}(i)
	}
	wg.Wait()

	var successes, conflicts int
	for _, err := range errs {
		switch {
		case err == nil:
			successes++
		default:
			var taken *service.SeatTakenError
			if !errors.As(err, &taken) {
				t.Errorf("unexpected error: %v", err)
				continue
			}
			conflicts++
		}
	}
	if successes != 1 {
		t.Errorf("successes = %d, want exactly 1", successes)
	}
	if conflicts != concurrency-1 {
		t.Errorf("conflicts = %d, want %d", conflicts, concurrency-1)
	}
	if n := countTickets(t, db, perfID); n != 1 {
		t.Errorf("ticket count = %d, want 1", n)
	}
}

func TestCreateReservationConcurrentDistinctSeats(t *testing.T) {
	db, svc, perfID := setupBookingTest(t, 4, 4)
	ctx := context.Background()

	// one booker per seat of the hall, all at once
	var wg sync.WaitGroup
	errs := make([]error, 16)
	idx := 0
	for row := 1; row <= 4; row++ {
		for seat := 1; seat <= 4; seat++ {
			wg.Add(1)
			go func(idx, row, seat int) {
				defer wg.Done()
				_, errs[idx] = svc.CreateReservation(ctx, 1, []SeatRequest{
					{PerformanceID: perfID, Row: row, Seat: seat},
				})
			}(idx, row, seat)
			idx++
		}
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			t.Errorf("booking %d failed: %v", i, err)
		}
	}
	if n := countTickets(t, db, perfID); n != 16 {
		t.Errorf("ticket count = %d, want 16", n)
	}
}

func TestCreateReservationUnknownPerformance(t *testing.T) {
	_, svc, _ := setupBookingTest(t, 2, 2)

	_, err := svc.CreateReservation(context.Background(), 1, []SeatRequest{
		{PerformanceID: 9999, Row: 1, Seat: 1},
	})
	if !errors.Is(err, service.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestCreateReservationEmptyBatch(t *testing.T) {
	_, svc, _ := setupBookingTest(t, 2, 2)

	if _, err := svc.CreateReservation(context.Background(), 1, nil); !errors.Is(err, service.ErrEmptyBatch) {
		t.Fatalf("err = %v, want ErrEmptyBatch", err)
	}
}

func TestCancelReservationFreesSeats(t *testing.T) {
	db, svc, perfID := setupBookingTest(t, 3, 3)
	ctx := context.Background()

	res, err := svc.CreateReservation(ctx, 1, []SeatRequest{
		{PerformanceID: perfID, Row: 1, Seat: 1},
		{PerformanceID: perfID, Row: 1, Seat: 2},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := svc.CancelReservation(ctx, 1, res.ID); err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if n := countTickets(t, db, perfID); n != 0 {
		t.Errorf("ticket count after cancel = %d, want 0", n)
	}

	// the freed seats can be booked again
	if _, err := svc.CreateReservation(ctx, 1, []SeatRequest{{PerformanceID: perfID, Row: 1, Seat: 1}}); err != nil {
		t.Fatalf("rebook freed seat: %v", err)
	}
}

func TestGetReservationOwnership(t *testing.T) {
	db, svc, perfID := setupBookingTest(t, 3, 3)
	ctx := context.Background()

	other := model.User{Email: "other@example.com", HashedPassword: "x"}
	if err := db.Create(&other).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}

	res, err := svc.CreateReservation(ctx, 1, []SeatRequest{{PerformanceID: perfID, Row: 1, Seat: 1}})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := svc.GetReservation(ctx, other.ID, res.ID); !errors.Is(err, service.ErrForbidden) {
		t.Fatalf("err = %v, want ErrForbidden", err)
	}
	if err := svc.CancelReservation(ctx, other.ID, res.ID); !errors.Is(err, service.ErrForbidden) {
		t.Fatalf("cancel err = %v, want ErrForbidden", err)
	}
}

func TestAvailabilityComplement(t *testing.T) {
	db, svc, perfID := setupBookingTest(t, 2, 2)
	ctx := context.Background()

	if _, err := svc.CreateReservation(ctx, 1, []SeatRequest{
		{PerformanceID: perfID, Row: 1, Seat: 2},
		{PerformanceID: perfID, Row: 2, Seat: 1},
	}); err != nil {
		t.Fatalf("create: %v", err)
	}

	avail := NewAvailabilityService(
		repository.NewPerformanceRepoGorm(db),
		repository.NewTicketRepoGorm(db),
	)
	av, err := avail.GetAvailability(ctx, perfID)
	if err != nil {
		t.Fatalf("GetAvailability: %v", err)
	}

	wantFree := []model.SeatRef{{Row: 1, Seat: 1}, {Row: 2, Seat: 2}}
	if fmt.Sprint(av.FreeSeats) != fmt.Sprint(wantFree) {
		t.Errorf("free seats = %v, want %v", av.FreeSeats, wantFree)
	}
	if len(av.FreeSeats)+len(av.TakenSeats) != 4 {
		t.Errorf("free+taken = %d, want hall capacity 4", len(av.FreeSeats)+len(av.TakenSeats))
	}
}
