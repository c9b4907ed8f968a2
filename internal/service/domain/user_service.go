package domain

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/velesk/theatre-booking/internal/auth"
	"github.com/velesk/theatre-booking/internal/model"
	"github.com/velesk/theatre-booking/internal/repository"
	"github.com/velesk/theatre-booking/internal/service"
)

// ErrInvalidCredentials covers both unknown email and wrong password,
// so login responses do not reveal which one failed.
var ErrInvalidCredentials = errors.New("invalid email or password")

type UserService interface {
	Register(ctx context.Context, email, password string) (*model.User, error)
	Authenticate(ctx context.Context, email, password string) (*model.User, error)
	GetUserByID(ctx context.Context, id uint) (*model.User, error)
}

type userService struct {
	repo repository.UserRepo
}

var _ UserService = (*userService)(nil)

func NewUserService(userRepo repository.UserRepo) *userService {
	return &userService{repo: userRepo}
}

func (s *userService) Register(ctx context.Context, email, password string) (*model.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	hashed, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}
	user := &model.User{Email: email, HashedPassword: hashed}
	if err := s.repo.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, service.ErrConflict
		}
		return nil, &service.StorageError{Err: err}
	}
	return user, nil
}

func (s *userService) Authenticate(ctx context.Context, email, password string) (*model.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, &service.StorageError{Err: err}
	}
	if !auth.VerifyPassword(user.HashedPassword, password) {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

func (s *userService) GetUserByID(ctx context.Context, id uint) (*model.User, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, service.ErrNotFound
		}
		return nil, &service.StorageError{Err: err}
	}
	return user, nil
}
