package handler

import (
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"github.com/velesk/theatre-booking/internal/repository"
	"github.com/velesk/theatre-booking/internal/service/domain"
	"github.com/velesk/theatre-booking/internal/util"
)

type PlayHandler struct {
	Plays     domain.PlayService
	UploadDir string
}

func NewPlayHandler(plays domain.PlayService, uploadDir string) *PlayHandler {
	return &PlayHandler{Plays: plays, UploadDir: uploadDir}
}

type playRequest struct {
	Title       string `json:"title" validate:"required,max=255"`
	Description string `json:"description"`
	ActorIDs    []uint `json:"actors"`
	GenreIDs    []uint `json:"genres"`
}

func (r playRequest) toInput() domain.PlayInput {
	return domain.PlayInput{
		Title:       r.Title,
		Description: r.Description,
		ActorIDs:    r.ActorIDs,
		GenreIDs:    r.GenreIDs,
	}
}

func (h *PlayHandler) HandleCreate(ctx *gin.Context) {
	var req playRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		writeBindError(ctx, err)
		return
	}
	if err := validate.Struct(req); err != nil {
		writeBindError(ctx, err)
		return
	}
	play, err := h.Plays.CreatePlay(ctx.Request.Context(), req.toInput())
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, play)
}

// HandleList filters plays by title substring and by actor/genre id
// lists, e.g. ?title=Hamlet&actors=1,3&genres=2.
func (h *PlayHandler) HandleList(ctx *gin.Context) {
	filter := repository.PlayFilter{
		Title:    ctx.Query("title"),
		ActorIDs: idListQuery(ctx, "actors"),
		GenreIDs: idListQuery(ctx, "genres"),
	}
	plays, err := h.Plays.ListPlays(ctx.Request.Context(), filter)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, plays)
}

func (h *PlayHandler) HandleGet(ctx *gin.Context) {
	id, ok := idParam(ctx, "id")
	if !ok {
		return
	}
	play, err := h.Plays.GetPlayByID(ctx.Request.Context(), id)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, play)
}

func (h *PlayHandler) HandleUpdate(ctx *gin.Context) {
	id, ok := idParam(ctx, "id")
	if !ok {
		return
	}
	var req playRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		writeBindError(ctx, err)
		return
	}
	if err := validate.Struct(req); err != nil {
		writeBindError(ctx, err)
		return
	}
	play, err := h.Plays.UpdatePlay(ctx.Request.Context(), id, req.toInput())
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, play)
}

func (h *PlayHandler) HandleUploadImage(ctx *gin.Context) {
	id, ok := idParam(ctx, "id")
	if !ok {
		return
	}
	play, err := h.Plays.GetPlayByID(ctx.Request.Context(), id)
	if err != nil {
		writeError(ctx, err)
		return
	}

	file, err := ctx.FormFile("image")
	if err != nil {
		writeBindError(ctx, err)
		return
	}
	name := util.ImageFilename(play.Title, file.Filename)
	dest := filepath.Join(h.UploadDir, name)
	if err := ctx.SaveUploadedFile(file, dest); err != nil {
		writeError(ctx, err)
		return
	}
	if err := h.Plays.SetPlayImage(ctx.Request.Context(), id, dest); err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"id": id, "image": dest})
}

func (h *PlayHandler) HandleDelete(ctx *gin.Context) {
	id, ok := idParam(ctx, "id")
	if !ok {
		return
	}
	if err := h.Plays.DeletePlay(ctx.Request.Context(), id); err != nil {
		writeError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
