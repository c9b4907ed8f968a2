package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/velesk/theatre-booking/internal/auth"
	"github.com/velesk/theatre-booking/internal/model"
	"github.com/velesk/theatre-booking/internal/service"
	"github.com/velesk/theatre-booking/internal/service/domain"
)

// stubBookingService returns canned results so handler tests need no
// database.
type stubBookingService struct {
	createResult *model.Reservation
	createErr    error
	getResult    *model.Reservation
	getErr       error
	ticketResult *model.Ticket
	ticketErr    error
	cancelErr    error
	gotItems     []domain.SeatRequest
	gotUserID    uint
}

func (s *stubBookingService) CreateReservation(ctx context.Context, userID uint, items []domain.SeatRequest) (*model.Reservation, error) {
	s.gotUserID = userID
	s.gotItems = items
	return s.createResult, s.createErr
}

func (s *stubBookingService) ListReservations(ctx context.Context, userID uint) ([]model.Reservation, error) {
	return nil, nil
}

func (s *stubBookingService) GetReservation(ctx context.Context, userID, reservationID uint) (*model.Reservation, error) {
	return s.getResult, s.getErr
}

func (s *stubBookingService) CancelReservation(ctx context.Context, userID, reservationID uint) error {
	return s.cancelErr
}

func (s *stubBookingService) GetTicket(ctx context.Context, userID, ticketID uint) (*model.Ticket, error) {
	return s.ticketResult, s.ticketErr
}

func newReservationRouter(stub *stubBookingService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewReservationHandler(stub, stub)
	authed := r.Group("", func(ctx *gin.Context) {
		ctx.Set(ctxUserKey, auth.Claims{UserID: 7})
	})
	authed.POST("/reservations", h.HandleCreate)
	authed.GET("/reservations/:id", h.HandleGet)
	authed.DELETE("/reservations/:id", h.HandleCancel)
	authed.GET("/tickets/:id/qr", h.HandleTicketQR)
	return r
}

func postReservation(t *testing.T, r *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest("POST", "/reservations", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHandleCreateSuccess(t *testing.T) {
	stub := &stubBookingService{
		createResult: &model.Reservation{
			ID:     3,
			UserID: 7,
			Tickets: []model.Ticket{
				{ID: 1, Row: 2, Seat: 5, PerformanceID: 9, ReservationID: 3},
			},
		},
	}
	r := newReservationRouter(stub)

	w := postReservation(t, r, `{"seats":[{"performance_id":9,"row":2,"seat":5}]}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", w.Code, w.Body.String())
	}
	if stub.gotUserID != 7 {
		t.Errorf("service got user %d, want 7", stub.gotUserID)
	}
	if len(stub.gotItems) != 1 || stub.gotItems[0] != (domain.SeatRequest{PerformanceID: 9, Row: 2, Seat: 5}) {
		t.Errorf("service got items %v", stub.gotItems)
	}
}

func TestHandleCreateErrorMapping(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"empty batch", service.ErrEmptyBatch, http.StatusBadRequest},
		{"unknown performance", service.ErrNotFound, http.StatusNotFound},
		{"seat out of range", &model.SeatRangeError{Field: "seat", Value: 40, Min: 1, Max: 12}, http.StatusBadRequest},
		{"duplicate in batch", &service.DuplicateRequestError{PerformanceID: 9, Row: 2, Seat: 5}, http.StatusBadRequest},
		{"seat taken", &service.SeatTakenError{PerformanceID: 9, Row: 2, Seat: 5}, http.StatusConflict},
		{"storage failure", &service.StorageError{Err: context.DeadlineExceeded}, http.StatusServiceUnavailable},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			stub := &stubBookingService{createErr: tc.err}
			r := newReservationRouter(stub)

			w := postReservation(t, r, `{"seats":[{"performance_id":9,"row":2,"seat":5}]}`)
			if w.Code != tc.wantStatus {
				t.Fatalf("status = %d, want %d: %s", w.Code, tc.wantStatus, w.Body.String())
			}
		})
	}
}

func TestHandleCreateSeatRangeBody(t *testing.T) {
	stub := &stubBookingService{
		createErr: &model.SeatRangeError{Field: "seat", Value: 40, Min: 1, Max: 12},
	}
	r := newReservationRouter(stub)

	w := postReservation(t, r, `{"seats":[{"performance_id":9,"row":2,"seat":40}]}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}

	var body struct {
		Field      string `json:"field"`
		Value      int    `json:"value"`
		ValidRange []int  `json:"valid_range"`
		Detail     string `json:"detail"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body.Field != "seat" || body.Value != 40 {
		t.Errorf("field/value = %q/%d, want seat/40", body.Field, body.Value)
	}
	if len(body.ValidRange) != 2 || body.ValidRange[0] != 1 || body.ValidRange[1] != 12 {
		t.Errorf("valid_range = %v, want [1 12]", body.ValidRange)
	}
	if body.Detail != "seat 40 must be in range [1, 12]" {
		t.Errorf("detail = %q", body.Detail)
	}
}

func TestHandleCreateRejectsMalformedBody(t *testing.T) {
	stub := &stubBookingService{}
	r := newReservationRouter(stub)

	w := postReservation(t, r, `{"seats": "nope"`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestHandleGetForbidden(t *testing.T) {
	stub := &stubBookingService{getErr: service.ErrForbidden}
	r := newReservationRouter(stub)

	req := httptest.NewRequest("GET", "/reservations/3", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", w.Code)
	}
}

func TestHandleCancelNoContent(t *testing.T) {
	stub := &stubBookingService{}
	r := newReservationRouter(stub)

	req := httptest.NewRequest("DELETE", "/reservations/3", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want 204", w.Code)
	}
}

func TestHandleTicketQRRendersPNG(t *testing.T) {
	stub := &stubBookingService{
		ticketResult: &model.Ticket{ID: 11, Row: 2, Seat: 5, PerformanceID: 9, ReservationID: 3},
	}
	r := newReservationRouter(stub)

	req := httptest.NewRequest("GET", "/tickets/11/qr", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "image/png" {
		t.Errorf("content type = %q, want image/png", ct)
	}
	if w.Body.Len() == 0 {
		t.Error("empty PNG body")
	}
}
