package logger

import (
	"os"
	"sync"

	"go.uber.org/zap"
)

var (
	logger *zap.SugaredLogger
	once   sync.Once
)

// L returns the process-wide sugared logger, initializing it on first use.
func L() *zap.SugaredLogger {
	once.Do(func() {
		var base *zap.Logger
		var err error
		if os.Getenv("ENV") == "production" {
			base, err = zap.NewProduction()
		} else {
			base, err = zap.NewDevelopment()
		}
		if err != nil {
			panic("failed to initialize logger: " + err.Error())
		}
		logger = base.Sugar()
	})
	return logger
}

func Sync() {
	if logger != nil {
		_ = logger.Sync()
	}
}
