package main

import (
	"campushub_client/internal/config"
	"campushub_client/internal/devserver"
	"campushub_client/internal/logger"
)

func main() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Client.Env)

	srv := devserver.NewServer(cfg)
	if err := srv.Run(cfg); err != nil {
		logger.Fatal("Dev server startup error", "error", err)
	}
}
