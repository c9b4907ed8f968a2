package handler

import (
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"github.com/velesk/theatre-booking/internal/repository"
	"github.com/velesk/theatre-booking/internal/service/domain"
	"github.com/velesk/theatre-booking/internal/util"
)

type ActorHandler struct {
	Actors    domain.ActorService
	UploadDir string
}

func NewActorHandler(actors domain.ActorService, uploadDir string) *ActorHandler {
	return &ActorHandler{Actors: actors, UploadDir: uploadDir}
}

type actorRequest struct {
	FirstName string `json:"first_name" validate:"required,max=255"`
	LastName  string `json:"last_name" validate:"required,max=255"`
}

func (h *ActorHandler) HandleCreate(ctx *gin.Context) {
	var req actorRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		writeBindError(ctx, err)
		return
	}
	if err := validate.Struct(req); err != nil {
		writeBindError(ctx, err)
		return
	}
	actor, err := h.Actors.CreateActor(ctx.Request.Context(), req.FirstName, req.LastName)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, actor)
}

func (h *ActorHandler) HandleList(ctx *gin.Context) {
	filter := repository.ActorFilter{
		FirstName: ctx.Query("first_name"),
		LastName:  ctx.Query("last_name"),
	}
	actors, err := h.Actors.ListActors(ctx.Request.Context(), filter)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, actors)
}

func (h *ActorHandler) HandleGet(ctx *gin.Context) {
	id, ok := idParam(ctx, "id")
	if !ok {
		return
	}
	actor, err := h.Actors.GetActorByID(ctx.Request.Context(), id)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, actor)
}

func (h *ActorHandler) HandleUpdate(ctx *gin.Context) {
	id, ok := idParam(ctx, "id")
	if !ok {
		return
	}
	var req actorRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		writeBindError(ctx, err)
		return
	}
	if err := validate.Struct(req); err != nil {
		writeBindError(ctx, err)
		return
	}
	actor, err := h.Actors.UpdateActor(ctx.Request.Context(), id, req.FirstName, req.LastName)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, actor)
}

// HandleUploadImage stores a multipart image for the actor, named
// after the actor's last name.
func (h *ActorHandler) HandleUploadImage(ctx *gin.Context) {
	id, ok := idParam(ctx, "id")
	if !ok {
		return
	}
	actor, err := h.Actors.GetActorByID(ctx.Request.Context(), id)
	if err != nil {
		writeError(ctx, err)
		return
	}

	file, err := ctx.FormFile("image")
	if err != nil {
		writeBindError(ctx, err)
		return
	}
	name := util.ImageFilename(actor.LastName, file.Filename)
	dest := filepath.Join(h.UploadDir, name)
	if err := ctx.SaveUploadedFile(file, dest); err != nil {
		writeError(ctx, err)
		return
	}
	if err := h.Actors.SetActorImage(ctx.Request.Context(), id, dest); err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"id": id, "image": dest})
}

func (h *ActorHandler) HandleDelete(ctx *gin.Context) {
	id, ok := idParam(ctx, "id")
	if !ok {
		return
	}
	if err := h.Actors.DeleteActor(ctx.Request.Context(), id); err != nil {
		writeError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
