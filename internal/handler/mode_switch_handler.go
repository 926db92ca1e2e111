package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/diasporahq/diaspora-backend/internal/logctx"
	"github.com/diasporahq/diaspora-backend/internal/service"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type ModeSwitchHandler struct {
	svc service.ModeSwitchService
}

func NewModeSwitchHandler(svc service.ModeSwitchService) *ModeSwitchHandler {
	return &ModeSwitchHandler{svc: svc}
}

type CreateModeSwitchLogRequest struct {
	UserID     uint64 `json:"user_id"`
	SwitchedTo string `json:"switched_to"`
	Context    string `json:"context"`
}

type ModeSwitchLogResponse struct {
	ID           string `json:"id"`
	UserID       uint64 `json:"userId"`
	PreviousMode string `json:"previousMode"`
	SwitchedTo   string `json:"switchedTo"`
	Context      string `json:"context,omitempty"`
	SwitchedAt   string `json:"switchedAt"`
}

func (h *ModeSwitchHandler) Create(c echo.Context) error {
	ctx := c.Request().Context()

	var req CreateModeSwitchLogRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "invalid json"))
	}
	entry, err := h.svc.LogSwitch(ctx, service.ModeSwitchInput{
		UserID:     req.UserID,
		SwitchedTo: req.SwitchedTo,
		Context:    req.Context,
	})
	if err != nil {
		status := statusForError(err)
		if status == http.StatusInternalServerError {
			logctx.From(ctx).Error("failed to log mode switch", zap.Error(err))
			return c.JSON(status, NewErrorResponse("internal_error", "failed to log mode switch"))
		}
		var ve *service.ValidationError
		errors.As(err, &ve)
		return c.JSON(status, NewErrorResponse("bad_request", ve.Error()))
	}
	return c.JSON(http.StatusCreated, ModeSwitchLogResponse{
		ID:           entry.ID,
		UserID:       entry.UserID,
		PreviousMode: string(entry.PreviousMode),
		SwitchedTo:   string(entry.SwitchedTo),
		Context:      entry.Context,
		SwitchedAt:   entry.SwitchedAt.Format(time.RFC3339),
	})
}
