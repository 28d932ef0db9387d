package main

import (
	"os"

	"backend/config"
	"backend/pkg/logger"
	"backend/routes"
	"backend/utils"
)

func main() {
	log := logger.New()
	defer log.Sync()

	config.InitDB()
	utils.InitS3()

	r := routes.SetupRouter(log)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Infow("server starting", "port", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalw("server stopped", "error", err)
	}
}
