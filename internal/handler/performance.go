package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/velesk/theatre-booking/internal/repository"
	"github.com/velesk/theatre-booking/internal/service/domain"
)

type PerformanceHandler struct {
	Performances domain.PerformanceService
	Availability domain.AvailabilityService
}

func NewPerformanceHandler(performances domain.PerformanceService, availability domain.AvailabilityService) *PerformanceHandler {
	return &PerformanceHandler{Performances: performances, Availability: availability}
}

type performanceRequest struct {
	PlayID        uint      `json:"play_id" validate:"required"`
	TheatreHallID uint      `json:"theatre_hall_id" validate:"required"`
	ShowTime      time.Time `json:"show_time" validate:"required"`
}

func (h *PerformanceHandler) HandleCreate(ctx *gin.Context) {
	var req performanceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		writeBindError(ctx, err)
		return
	}
	if err := validate.Struct(req); err != nil {
		writeBindError(ctx, err)
		return
	}
	perf, err := h.Performances.CreatePerformance(ctx.Request.Context(), req.PlayID, req.TheatreHallID, req.ShowTime)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, perf)
}

// HandleList filters performances by play and by calendar day, e.g.
// ?play=1&date=2026-03-14. Each listing carries the live free-seat
// count.
func (h *PerformanceHandler) HandleList(ctx *gin.Context) {
	filter := repository.PerformanceFilter{}
	if raw := ctx.Query("play"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			writeBindError(ctx, err)
			return
		}
		filter.PlayID = uint(id)
	}
	if raw := ctx.Query("date"); raw != "" {
		date, err := time.Parse("2006-01-02", raw)
		if err != nil {
			writeBindError(ctx, err)
			return
		}
		filter.Date = &date
	}
	listings, err := h.Performances.ListPerformances(ctx.Request.Context(), filter)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, listings)
}

func (h *PerformanceHandler) HandleGet(ctx *gin.Context) {
	id, ok := idParam(ctx, "id")
	if !ok {
		return
	}
	perf, err := h.Performances.GetPerformanceByID(ctx.Request.Context(), id)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, perf)
}

// HandleSeats reports the seat map of a performance: free seats in
// row-then-seat order plus the occupied set.
func (h *PerformanceHandler) HandleSeats(ctx *gin.Context) {
	id, ok := idParam(ctx, "id")
	if !ok {
		return
	}
	availability, err := h.Availability.GetAvailability(ctx.Request.Context(), id)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, availability)
}

func (h *PerformanceHandler) HandleUpdate(ctx *gin.Context) {
	id, ok := idParam(ctx, "id")
	if !ok {
		return
	}
	var req performanceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		writeBindError(ctx, err)
		return
	}
	if err := validate.Struct(req); err != nil {
		writeBindError(ctx, err)
		return
	}
	perf, err := h.Performances.UpdatePerformance(ctx.Request.Context(), id, req.PlayID, req.TheatreHallID, req.ShowTime)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, perf)
}

func (h *PerformanceHandler) HandleDelete(ctx *gin.Context) {
	id, ok := idParam(ctx, "id")
	if !ok {
		return
	}
	if err := h.Performances.DeletePerformance(ctx.Request.Context(), id); err != nil {
		writeError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
