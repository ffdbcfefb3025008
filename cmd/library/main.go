package main

import (
	stdLog "log"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/lendkeep/library-service/library/app"
	"github.com/lendkeep/library-service/library/config"
)

// @title Library Lending Service API
// @version 1.0
// @description Book catalog, lending, late fees and fee settlement.
// @BasePath /api/v1
func main() {
	if err := godotenv.Load(); err != nil {
		stdLog.Fatal("load envs from .env ", zap.Error(err))
	}
	cfg := config.NewConfig(
		config.WithLogLevel(zapcore.DebugLevel),
		config.WithWriteTimeout(time.Minute),
	)

	app.Run(cfg)
}
