package main

import (
	"log"

	"github.com/diasporahq/diaspora-backend/internal/config"
	"github.com/diasporahq/diaspora-backend/internal/db"
	"github.com/diasporahq/diaspora-backend/internal/logging"
	"github.com/diasporahq/diaspora-backend/internal/model"
	"github.com/diasporahq/diaspora-backend/internal/server"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load("configuration")
	if err != nil {
		log.Fatalf("failed to read configuration: %v", err)
	}

	logger, err := logging.Init(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	srv := server.New(nil, logger)

	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting server", zap.String("addr", cfg.Application.Addr()))
		errCh <- srv.Start(cfg.Application.Addr())
	}()

	// Connect lazily so the probe endpoint is up even while the database is
	// not. Writes answer 500 until the connection lands.
	go func() {
		conn, err := db.Connect(&cfg.Database)
		if err != nil {
			logger.Error("db connect error, writes will fail until restart", zap.Error(err))
			return
		}
		srv.SetDB(conn)
		if err := conn.AutoMigrate(&model.Item{}, &model.User{}, &model.ModeSwitchLog{}); err != nil {
			logger.Error("auto migrate error", zap.Error(err))
		}
		logger.Info("database ready")
	}()

	if err := <-errCh; err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
