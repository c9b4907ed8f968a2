package handler

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/velesk/theatre-booking/internal/model"
	"github.com/velesk/theatre-booking/internal/service/domain"
)

// reservationCreator is what the create endpoint needs from the booking
// side. Satisfied by both the bare booking service and the workflow
// that adds the post-commit notification.
type reservationCreator interface {
	CreateReservation(ctx context.Context, userID uint, items []domain.SeatRequest) (*model.Reservation, error)
}

type ReservationHandler struct {
	Creator  reservationCreator
	Bookings domain.BookingService
}

func NewReservationHandler(creator reservationCreator, bookings domain.BookingService) *ReservationHandler {
	return &ReservationHandler{Creator: creator, Bookings: bookings}
}

type seatItemRequest struct {
	PerformanceID uint `json:"performance_id" validate:"required"`
	Row           int  `json:"row" validate:"required"`
	Seat          int  `json:"seat" validate:"required"`
}

type reservationRequest struct {
	Seats []seatItemRequest `json:"seats"`
}

// HandleCreate books a batch of seats atomically. All seats succeed or
// the reservation is not created at all.
func (h *ReservationHandler) HandleCreate(ctx *gin.Context) {
	claims, ok := currentUser(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}
	var req reservationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		writeBindError(ctx, err)
		return
	}
	items := make([]domain.SeatRequest, len(req.Seats))
	for i, s := range req.Seats {
		items[i] = domain.SeatRequest{PerformanceID: s.PerformanceID, Row: s.Row, Seat: s.Seat}
	}
	res, err := h.Creator.CreateReservation(ctx.Request.Context(), claims.UserID, items)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, res)
}

func (h *ReservationHandler) HandleList(ctx *gin.Context) {
	claims, ok := currentUser(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}
	reservations, err := h.Bookings.ListReservations(ctx.Request.Context(), claims.UserID)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, reservations)
}

func (h *ReservationHandler) HandleGet(ctx *gin.Context) {
	claims, ok := currentUser(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}
	id, ok := idParam(ctx, "id")
	if !ok {
		return
	}
	res, err := h.Bookings.GetReservation(ctx.Request.Context(), claims.UserID, id)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, res)
}

// HandleCancel deletes the reservation and frees its seats.
func (h *ReservationHandler) HandleCancel(ctx *gin.Context) {
	claims, ok := currentUser(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}
	id, ok := idParam(ctx, "id")
	if !ok {
		return
	}
	if err := h.Bookings.CancelReservation(ctx.Request.Context(), claims.UserID, id); err != nil {
		writeError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// HandleTicketQR renders the ticket as a QR PNG for entry scanning.
func (h *ReservationHandler) HandleTicketQR(ctx *gin.Context) {
	claims, ok := currentUser(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}
	id, ok := idParam(ctx, "id")
	if !ok {
		return
	}
	ticket, err := h.Bookings.GetTicket(ctx.Request.Context(), claims.UserID, id)
	if err != nil {
		writeError(ctx, err)
		return
	}
	payload := fmt.Sprintf("ticket:%d performance:%d row:%d seat:%d",
		ticket.ID, ticket.PerformanceID, ticket.Row, ticket.Seat)
	png, err := qrcode.Encode(payload, qrcode.Medium, 256)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "failed to render ticket code"})
		return
	}
	ctx.Data(http.StatusOK, "image/png", png)
}
