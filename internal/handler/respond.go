package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/velesk/theatre-booking/internal/model"
	"github.com/velesk/theatre-booking/internal/service"
	"github.com/velesk/theatre-booking/internal/service/domain"
)

// writeError translates a domain error into an HTTP response. Every
// rejection carries enough detail (row, seat, performance, valid
// range) for the client to build a user-facing message; transient
// storage faults are flagged retryable.
func writeError(ctx *gin.Context, err error) {
	var rangeErr *model.SeatRangeError
	if errors.As(err, &rangeErr) {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error":       "invalid seat",
			"detail":      rangeErr.Error(),
			"field":       rangeErr.Field,
			"value":       rangeErr.Value,
			"valid_range": []int{rangeErr.Min, rangeErr.Max},
		})
		return
	}

	var dupErr *service.DuplicateRequestError
	if errors.As(err, &dupErr) {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error":          "duplicate request",
			"detail":         dupErr.Error(),
			"performance_id": dupErr.PerformanceID,
			"row":            dupErr.Row,
			"seat":           dupErr.Seat,
		})
		return
	}

	var takenErr *service.SeatTakenError
	if errors.As(err, &takenErr) {
		ctx.JSON(http.StatusConflict, gin.H{
			"error":          "seat taken",
			"detail":         takenErr.Error(),
			"performance_id": takenErr.PerformanceID,
			"row":            takenErr.Row,
			"seat":           takenErr.Seat,
		})
		return
	}

	var storageErr *service.StorageError
	if errors.As(err, &storageErr) {
		ctx.JSON(http.StatusServiceUnavailable, gin.H{
			"error":     "storage failure",
			"detail":    "the booking could not be processed, please retry",
			"retryable": true,
		})
		return
	}

	switch {
	case errors.Is(err, service.ErrEmptyBatch):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "empty batch", "detail": err.Error()})
	case errors.Is(err, service.ErrInvalidInput):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "detail": err.Error()})
	case errors.Is(err, service.ErrNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"error": "not found", "detail": err.Error()})
	case errors.Is(err, service.ErrForbidden):
		ctx.JSON(http.StatusForbidden, gin.H{"error": "forbidden", "detail": err.Error()})
	case errors.Is(err, service.ErrConflict):
		ctx.JSON(http.StatusConflict, gin.H{"error": "already exists", "detail": err.Error()})
	case errors.Is(err, domain.ErrInvalidCredentials):
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized", "detail": err.Error()})
	default:
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

// writeBindError reports a malformed request body or parameter.
func writeBindError(ctx *gin.Context, err error) {
	ctx.JSON(http.StatusBadRequest, gin.H{
		"error":  "invalid request format",
		"detail": err.Error(),
	})
}
