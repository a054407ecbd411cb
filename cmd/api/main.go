package main

import (
	"os"

	"github.com/sanad-app/sanad-backend/internal/pkg/logger"
	"github.com/sanad-app/sanad-backend/internal/server"
)

// @title Sanad API
// @version 1.0
// @description Case management API for the Sanad social assistance association

// @contact.name API Support
// @contact.email support@sanad.ma

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT token for authorization

func main() {
	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed")
		os.Exit(1)
	}
}
