package middleware

import (
	"github.com/diasporahq/diaspora-backend/internal/logctx"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

// RequestLogger attaches a request-scoped logger, tagged with the request id
// and route, to the request context. Handlers retrieve it through logctx and
// add their own attributes on top.
func RequestLogger(base *zap.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			rid := req.Header.Get(echo.HeaderXRequestID)
			if rid == "" {
				rid = c.Response().Header().Get(echo.HeaderXRequestID)
			}
			l := base.With(
				zap.String("request_id", rid),
				zap.String("method", req.Method),
				zap.String("path", req.URL.Path),
			)
			c.SetRequest(req.WithContext(logctx.WithLogger(req.Context(), l)))
			return next(c)
		}
	}
}

// RequestID delegates to echo's own request id middleware so every request
// carries a correlation id before RequestLogger runs.
func RequestID() echo.MiddlewareFunc {
	return echomw.RequestID()
}
