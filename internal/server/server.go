package server

import (
	"github.com/diasporahq/diaspora-backend/internal/handler"
	appmw "github.com/diasporahq/diaspora-backend/internal/middleware"
	"github.com/diasporahq/diaspora-backend/internal/repository"
	"github.com/diasporahq/diaspora-backend/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Server struct {
	e        *echo.Echo
	itemRepo repository.ItemRepository
	userRepo repository.UserRepository
	logRepo  repository.ModeSwitchLogRepository
}

// New wires the routes. The logger handle comes from bootstrap; nothing here
// reaches for a global. db may be nil at construction time and injected later
// through SetDB once the pool is up.
func New(db *gorm.DB, logger *zap.Logger) *Server {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(appmw.RequestID())
	e.Use(appmw.RequestLogger(logger))

	itemRepo := repository.NewItemRepository(db)
	itemSvc := service.NewItemService(itemRepo)
	itemHandler := handler.NewItemHandler(itemSvc)

	userRepo := repository.NewUserRepository(db)
	userSvc := service.NewUserService(userRepo)
	userHandler := handler.NewUserHandler(userSvc)

	logRepo := repository.NewModeSwitchLogRepository(db)
	modeSvc := service.NewModeSwitchService(logRepo, userRepo)
	modeHandler := handler.NewModeSwitchHandler(modeSvc)

	e.GET("/health_check", handler.HealthCheck)
	e.POST("/items", itemHandler.Create)
	e.POST("/users/register", userHandler.Register)
	e.POST("/mode_switch_logs", modeHandler.Create)

	return &Server{e: e, itemRepo: itemRepo, userRepo: userRepo, logRepo: logRepo}
}

func (s *Server) Start(addr string) error {
	return s.e.Start(addr)
}

// SetDB injects the database once the connection attempt finishes. Until
// then repositories answer ErrDBNotReady and writes map to 500.
func (s *Server) SetDB(db *gorm.DB) {
	s.itemRepo.SetDB(db)
	s.userRepo.SetDB(db)
	s.logRepo.SetDB(db)
}

// Echo exposes the underlying router for tests.
func (s *Server) Echo() *echo.Echo {
	return s.e
}
