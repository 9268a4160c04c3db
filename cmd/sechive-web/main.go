package main

import (
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/sechive-dev/sechive-web/internal/config"
	"github.com/sechive-dev/sechive-web/internal/logger"
	"github.com/sechive-dev/sechive-web/internal/router"
	"github.com/sechive-dev/sechive-web/internal/setup"
)

const (
	defaultConfigDir = "config"
	readTimeout      = 5 * time.Second
	writeTimeout     = 10 * time.Second
)

func main() {
	// .env is optional, real deployments set the environment directly
	_ = godotenv.Load()

	configDir := os.Getenv("CONFIG_DIR")
	if configDir == "" {
		configDir = defaultConfigDir
	}
	cfg := config.MustLoad(configDir)
	logger.Initialize(cfg.Public.LogLevel, cfg.Public.LogJSON)

	deps, err := setup.SetupDependencies(cfg)
	if err != nil {
		logger.Log.Error("failed to set up dependencies", "error", err)
		os.Exit(1)
	}
	defer deps.SessionCache.Close()

	r := router.SetupRouter(deps)
	server := &http.Server{
		Addr:         ":" + cfg.Public.ListenPort,
		Handler:      r,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
	}

	logger.Log.Info("starting frontend", "port", cfg.Public.ListenPort)
	if err := server.ListenAndServe(); err != nil {
		logger.Log.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
