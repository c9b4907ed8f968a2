package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/velesk/theatre-booking/internal/model"
	"github.com/velesk/theatre-booking/internal/repository"
	"github.com/velesk/theatre-booking/internal/service"
	"github.com/velesk/theatre-booking/internal/service/domain"
)

type stubPerformanceService struct {
	listings []domain.PerformanceListing
	listErr  error
	filter   repository.PerformanceFilter
}

func (s *stubPerformanceService) CreatePerformance(ctx context.Context, playID, hallID uint, showTime time.Time) (*model.Performance, error) {
	return nil, nil
}

func (s *stubPerformanceService) GetPerformanceByID(ctx context.Context, id uint) (*model.Performance, error) {
	return nil, service.ErrNotFound
}

func (s *stubPerformanceService) ListPerformances(ctx context.Context, filter repository.PerformanceFilter) ([]domain.PerformanceListing, error) {
	s.filter = filter
	return s.listings, s.listErr
}

func (s *stubPerformanceService) UpdatePerformance(ctx context.Context, id uint, playID, hallID uint, showTime time.Time) (*model.Performance, error) {
	return nil, nil
}

func (s *stubPerformanceService) DeletePerformance(ctx context.Context, id uint) error {
	return nil
}

type stubAvailabilityService struct {
	availability *domain.Availability
	err          error
}

func (s *stubAvailabilityService) GetAvailability(ctx context.Context, performanceID uint) (*domain.Availability, error) {
	return s.availability, s.err
}

func (s *stubAvailabilityService) FreeSeatCount(ctx context.Context, performanceID uint) (int, error) {
	if s.err != nil {
		return 0, s.err
	}
	return len(s.availability.FreeSeats), nil
}

func newPerformanceRouter(perfs *stubPerformanceService, avail *stubAvailabilityService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewPerformanceHandler(perfs, avail)
	r.GET("/performances", h.HandleList)
	r.GET("/performances/:id", h.HandleGet)
	r.GET("/performances/:id/seats", h.HandleSeats)
	return r
}

func TestHandleSeats(t *testing.T) {
	avail := &stubAvailabilityService{
		availability: &domain.Availability{
			FreeSeats:  []model.SeatRef{{Row: 1, Seat: 1}, {Row: 2, Seat: 2}},
			TakenSeats: []model.SeatRef{{Row: 1, Seat: 2}, {Row: 2, Seat: 1}},
		},
	}
	r := newPerformanceRouter(&stubPerformanceService{}, avail)

	req := httptest.NewRequest("GET", "/performances/5/seats", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}

	var body struct {
		FreeSeats  []model.SeatRef `json:"free_seats"`
		TakenSeats []model.SeatRef `json:"taken_seats"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(body.FreeSeats) != 2 || body.FreeSeats[0] != (model.SeatRef{Row: 1, Seat: 1}) {
		t.Errorf("free_seats = %v", body.FreeSeats)
	}
	if len(body.TakenSeats) != 2 {
		t.Errorf("taken_seats = %v", body.TakenSeats)
	}
}

func TestHandleSeatsUnknownPerformance(t *testing.T) {
	avail := &stubAvailabilityService{err: service.ErrNotFound}
	r := newPerformanceRouter(&stubPerformanceService{}, avail)

	req := httptest.NewRequest("GET", "/performances/999/seats", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}

func TestHandleListParsesFilters(t *testing.T) {
	perfs := &stubPerformanceService{listings: []domain.PerformanceListing{}}
	r := newPerformanceRouter(perfs, &stubAvailabilityService{})

	req := httptest.NewRequest("GET", "/performances?play=3&date=2026-03-14", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}
	if perfs.filter.PlayID != 3 {
		t.Errorf("PlayID = %d, want 3", perfs.filter.PlayID)
	}
	if perfs.filter.Date == nil || !perfs.filter.Date.Equal(time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("Date = %v, want 2026-03-14", perfs.filter.Date)
	}
}

func TestHandleListRejectsBadDate(t *testing.T) {
	r := newPerformanceRouter(&stubPerformanceService{}, &stubAvailabilityService{})

	req := httptest.NewRequest("GET", "/performances?date=tomorrow", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}
