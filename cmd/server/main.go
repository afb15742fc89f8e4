package main

import (
	"context"
	"fmt"

	"github.com/fayrashop/api/internal/config"
	"github.com/fayrashop/api/internal/crypto"
	handlers "github.com/fayrashop/api/internal/handler/http"
	"github.com/fayrashop/api/internal/logger"
	"github.com/fayrashop/api/internal/ratelimit"
	"github.com/fayrashop/api/internal/server"
	"github.com/fayrashop/api/internal/service"
	"github.com/fayrashop/api/internal/store"
	"github.com/fayrashop/api/internal/token"
	"github.com/fayrashop/api/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("fayrashop-api")

	cfg, err := config.GetConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	db, err := store.NewConnectPostgres(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err := db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	repos := store.NewRepositories(db, log)

	codec, err := token.NewCodec(token.Config{
		AccessSecret:  cfg.Auth.AccessSecret,
		RefreshSecret: cfg.Auth.RefreshSecret,
		AccessTTL:     cfg.Auth.AccessTokenTTL.Std(),
		RefreshTTL:    cfg.Auth.RefreshTokenTTL.Std(),
		Issuer:        cfg.Auth.TokenIssuer,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("error creating token codec")
	}

	hasher := crypto.NewPasswordHasher(cfg.Auth.BcryptCost)
	limiter := ratelimit.New(ratelimit.Config{})

	loginRecorder := workers.NewLoginRecorder(repos.Users, log)
	appWorkers := workers.NewWorkers(loginRecorder)
	appWorkers.Run()
	defer appWorkers.Stop()

	services := service.NewServices(repos, codec, hasher, loginRecorder, log)
	handler := handlers.NewHandler(services, codec, limiter, cfg, log)

	srv, err := server.NewServer(handler.Init(), cfg.Server, log)
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
