package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/diasporahq/diaspora-backend/internal/logctx"
	"github.com/diasporahq/diaspora-backend/internal/model"
	"github.com/diasporahq/diaspora-backend/internal/service"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type UserHandler struct {
	svc service.UserService
}

func NewUserHandler(svc service.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

type RegisterUserRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type UserResponse struct {
	ID        uint64 `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Mode      string `json:"mode"`
	CreatedAt string `json:"createdAt"`
}

func (h *UserHandler) Register(c echo.Context) error {
	ctx := c.Request().Context()

	var req RegisterUserRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "invalid json"))
	}
	user, err := h.svc.Register(ctx, req.Name, req.Email)
	if err != nil {
		status := statusForError(err)
		if status == http.StatusInternalServerError {
			logctx.From(ctx).Error("failed to register user", zap.Error(err))
			return c.JSON(status, NewErrorResponse("internal_error", "failed to register user"))
		}
		var ve *service.ValidationError
		errors.As(err, &ve)
		return c.JSON(status, NewErrorResponse("bad_request", ve.Error()))
	}
	return c.JSON(http.StatusCreated, toUserResponse(user))
}

func toUserResponse(user *model.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Mode:      string(user.Mode),
		CreatedAt: user.CreatedAt.Format(time.RFC3339),
	}
}
