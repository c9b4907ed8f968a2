package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/velesk/theatre-booking/internal/auth"
	"github.com/velesk/theatre-booking/internal/service/domain"
)

var validate = validator.New()

type AuthHandler struct {
	Users  domain.UserService
	Secret string
}

func NewAuthHandler(users domain.UserService, secret string) *AuthHandler {
	return &AuthHandler{Users: users, Secret: secret}
}

type credentialsRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

func (h *AuthHandler) HandleRegister(ctx *gin.Context) {
	var req credentialsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		writeBindError(ctx, err)
		return
	}
	if err := validate.Struct(req); err != nil {
		writeBindError(ctx, err)
		return
	}

	user, err := h.Users.Register(ctx.Request.Context(), req.Email, req.Password)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, user)
}

func (h *AuthHandler) HandleLogin(ctx *gin.Context) {
	var req credentialsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		writeBindError(ctx, err)
		return
	}
	if err := validate.Struct(req); err != nil {
		writeBindError(ctx, err)
		return
	}

	user, err := h.Users.Authenticate(ctx.Request.Context(), req.Email, req.Password)
	if err != nil {
		writeError(ctx, err)
		return
	}
	token, err := auth.NewAccessToken(h.Secret, user.ID, user.IsStaff)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"access_token": token})
}
