package logging

import (
	"os"
	"sync"

	"github.com/diasporahq/diaspora-backend/internal/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	initOnce sync.Once
	shared   *zap.Logger
	initErr  error
)

// Init builds the process-wide structured logger and returns a handle to it.
// It is safe to call more than once: the first call wins and later calls
// return the same handle. The handle is meant to be passed explicitly into
// the server, never consumed through a package-level global.
func Init(cfg config.LoggerSettings) (*zap.Logger, error) {
	initOnce.Do(func() {
		shared, initErr = build(cfg)
	})
	return shared, initErr
}

func build(cfg config.LoggerSettings) (*zap.Logger, error) {
	var zapConfig zap.Config
	if cfg.Mode == "production" {
		zapConfig = zap.NewProductionConfig()
	} else {
		zapConfig = zap.NewDevelopmentConfig()
	}

	if !cfg.FileEnable {
		return zapConfig.Build(zap.AddCaller())
	}

	// Tee JSON output into a size-rotated file alongside the console.
	fileSink := &lumberjack.Logger{
		Filename:   cfg.Filename,
		MaxSize:    64,
		MaxBackups: 7,
		MaxAge:     7,
	}
	core := zapcore.NewTee(
		zapcore.NewCore(
			zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
			zapcore.AddSync(fileSink),
			zapConfig.Level,
		),
		zapcore.NewCore(
			zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
			zapcore.AddSync(os.Stdout),
			zapConfig.Level,
		),
	)
	return zap.New(core, zap.AddCaller()), nil
}
