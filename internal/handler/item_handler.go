package handler

import (
	"net/http"

	"github.com/diasporahq/diaspora-backend/internal/logctx"
	"github.com/diasporahq/diaspora-backend/internal/service"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type ItemHandler struct {
	svc service.ItemService
}

func NewItemHandler(svc service.ItemService) *ItemHandler {
	return &ItemHandler{svc: svc}
}

// Create runs the ingestion pipeline: validate, persist, map the outcome to a
// bare status code. Responses carry no body on any branch; failure detail is
// visible only in the structured logs.
func (h *ItemHandler) Create(c echo.Context) error {
	ctx := c.Request().Context()

	var raw service.RawItemSubmission
	if err := c.Bind(&raw); err != nil {
		logctx.From(ctx).Info("rejecting item submission, body did not decode",
			zap.Error(err))
		return c.NoContent(http.StatusBadRequest)
	}

	// Request scope: opened before validation, carries the submission's
	// identifying attributes for every event that follows.
	scope := logctx.From(ctx).With(itemScopeFields(&raw)...)

	sub, err := service.ValidateItemSubmission(&raw)
	if err != nil {
		scope.Info("rejecting invalid item submission", zap.Error(err))
		return c.NoContent(http.StatusBadRequest)
	}

	scope.Info("saving new item")
	item, err := h.svc.Create(ctx, sub)
	if err != nil {
		scope.Error("failed to save new item", zap.Error(err))
		return c.NoContent(http.StatusInternalServerError)
	}
	scope.Info("new item saved", zap.String("item_id", item.ID))

	return c.NoContent(http.StatusCreated)
}

func itemScopeFields(raw *service.RawItemSubmission) []zap.Field {
	fields := make([]zap.Field, 0, 3)
	if raw.Description != nil {
		fields = append(fields, zap.String("item_description", *raw.Description))
	}
	if raw.Price != nil {
		fields = append(fields, zap.Float64("item_price", *raw.Price))
	}
	if raw.OriginCountry != nil {
		fields = append(fields, zap.String("origin_country", *raw.OriginCountry))
	}
	return fields
}
