package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	config "github.com/phillip/volunteerease-go/config"
	middleware "github.com/phillip/volunteerease-go/middleware"
	routes "github.com/phillip/volunteerease-go/routes"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("could not create logger: %v", err)
	}
	defer logger.Sync()

	cfg, err := config.Load(logger)
	if err != nil {
		logger.Fatal("startup failed", zap.Error(err))
	}

	r := gin.Default()
	r.Use(middleware.CORSMiddleware())

	if err := routes.SetupRoutes(r, cfg); err != nil {
		logger.Fatal("could not set up routes", zap.Error(err))
	}

	logger.Info("server listening", zap.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Fatal("server exited", zap.Error(err))
	}
}
