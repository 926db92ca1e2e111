package service

import (
	"context"
	"strings"

	"github.com/diasporahq/diaspora-backend/internal/model"
	"github.com/diasporahq/diaspora-backend/internal/repository"
)

type UserService interface {
	Register(ctx context.Context, name, email string) (*model.User, error)
}

type userService struct {
	repo repository.UserRepository
}

func NewUserService(repo repository.UserRepository) UserService {
	return &userService{repo: repo}
}

func (s *userService) Register(ctx context.Context, name, email string) (*model.User, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" || len(name) > 120 {
		return nil, &ValidationError{Field: "name", Reason: "required"}
	}
	if email == "" || !strings.Contains(email, "@") {
		return nil, &ValidationError{Field: "email", Reason: "must be a valid address"}
	}

	user := &model.User{
		Name:  name,
		Email: email,
		Mode:  model.UserModeSender,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, &PersistenceError{Op: "insert user", Err: err}
	}
	return user, nil
}
