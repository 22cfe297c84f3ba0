package main

import (
	"fmt"

	"github.com/apryandito/user-directory/internal/config"
	"github.com/apryandito/user-directory/internal/handler/http"
	"github.com/apryandito/user-directory/internal/logger"
	"github.com/apryandito/user-directory/internal/server"
	"github.com/apryandito/user-directory/internal/service"
	"github.com/apryandito/user-directory/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("user-directory-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("server config", cfg.Server).Msg("received configs")

	userRepository := store.NewMemoryUserRepository(log)
	services := service.NewServices(userRepository, cfg.App, log)
	handler := http.NewHandler(services, log)

	srv, err := server.NewServer(handler, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
