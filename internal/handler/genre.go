package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/velesk/theatre-booking/internal/service/domain"
)

type GenreHandler struct {
	Genres domain.GenreService
}

func NewGenreHandler(genres domain.GenreService) *GenreHandler {
	return &GenreHandler{Genres: genres}
}

type genreRequest struct {
	Name string `json:"name" validate:"required,max=255"`
}

func (h *GenreHandler) HandleCreate(ctx *gin.Context) {
	var req genreRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		writeBindError(ctx, err)
		return
	}
	if err := validate.Struct(req); err != nil {
		writeBindError(ctx, err)
		return
	}
	genre, err := h.Genres.CreateGenre(ctx.Request.Context(), req.Name)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, genre)
}

func (h *GenreHandler) HandleList(ctx *gin.Context) {
	genres, err := h.Genres.ListGenres(ctx.Request.Context())
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, genres)
}

func (h *GenreHandler) HandleGet(ctx *gin.Context) {
	id, ok := idParam(ctx, "id")
	if !ok {
		return
	}
	genre, err := h.Genres.GetGenreByID(ctx.Request.Context(), id)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, genre)
}

func (h *GenreHandler) HandleUpdate(ctx *gin.Context) {
	id, ok := idParam(ctx, "id")
	if !ok {
		return
	}
	var req genreRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		writeBindError(ctx, err)
		return
	}
	if err := validate.Struct(req); err != nil {
		writeBindError(ctx, err)
		return
	}
	genre, err := h.Genres.UpdateGenre(ctx.Request.Context(), id, req.Name)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, genre)
}

func (h *GenreHandler) HandleDelete(ctx *gin.Context) {
	id, ok := idParam(ctx, "id")
	if !ok {
		return
	}
	if err := h.Genres.DeleteGenre(ctx.Request.Context(), id); err != nil {
		writeError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
