package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/velesk/theatre-booking/internal/service/domain"
)

type HallHandler struct {
	Halls domain.HallService
}

func NewHallHandler(halls domain.HallService) *HallHandler {
	return &HallHandler{Halls: halls}
}

type hallCreateRequest struct {
	Name       string `json:"name" validate:"required,max=255"`
	Rows       int    `json:"rows" validate:"required,min=1"`
	SeatsInRow int    `json:"seats_in_row" validate:"required,min=1"`
}

type hallRenameRequest struct {
	Name string `json:"name" validate:"required,max=255"`
}

func (h *HallHandler) HandleCreate(ctx *gin.Context) {
	var req hallCreateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		writeBindError(ctx, err)
		return
	}
	if err := validate.Struct(req); err != nil {
		writeBindError(ctx, err)
		return
	}
	hall, err := h.Halls.CreateHall(ctx.Request.Context(), req.Name, req.Rows, req.SeatsInRow)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, hall)
}

func (h *HallHandler) HandleList(ctx *gin.Context) {
	halls, err := h.Halls.ListHalls(ctx.Request.Context())
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, halls)
}

func (h *HallHandler) HandleGet(ctx *gin.Context) {
	id, ok := idParam(ctx, "id")
	if !ok {
		return
	}
	hall, err := h.Halls.GetHallByID(ctx.Request.Context(), id)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, hall)
}

// HandleRename updates the hall name. Geometry is immutable so there
// is no edit operation for rows or seats_in_row.
func (h *HallHandler) HandleRename(ctx *gin.Context) {
	id, ok := idParam(ctx, "id")
	if !ok {
		return
	}
	var req hallRenameRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		writeBindError(ctx, err)
		return
	}
	if err := validate.Struct(req); err != nil {
		writeBindError(ctx, err)
		return
	}
	hall, err := h.Halls.RenameHall(ctx.Request.Context(), id, req.Name)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, hall)
}

func (h *HallHandler) HandleDelete(ctx *gin.Context) {
	id, ok := idParam(ctx, "id")
	if !ok {
		return
	}
	if err := h.Halls.DeleteHall(ctx.Request.Context(), id); err != nil {
		writeError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
