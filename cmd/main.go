package main

import (
	"os"

	"github.com/adangerfield1026/Capstone/config"
	"github.com/adangerfield1026/Capstone/logger"
	"github.com/adangerfield1026/Capstone/routes"
	"github.com/adangerfield1026/Capstone/utils"
)

func main() {
	logger.Init()
	config.LoadEnv()

	db, err := config.InitDB()
	if err != nil {
		logger.Error("database init failed", "err", err)
		os.Exit(1)
	}

	if err := utils.InitSES(); err != nil {
		logger.Warn("SES init failed, email disabled", "err", err)
	}
	if err := utils.InitS3(); err != nil {
		logger.Warn("S3 init failed, uploads disabled", "err", err)
	}

	r := routes.SetupRouter(db)

	addr := ":" + config.GetEnv("PORT", "8080")
	logger.Info("listening", "addr", addr)
	if err := r.Run(addr); err != nil {
		logger.Error("server stopped", "err", err)
		os.Exit(1)
	}
}
