package main

import (
	"parkdz/config"
	"parkdz/di"
	"parkdz/shared/logger"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	http := di.InitializeService()
	http.Serve()
}
