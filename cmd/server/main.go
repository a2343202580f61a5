// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/resto-reviews/internal/config"
	"github.com/MKhiriev/resto-reviews/internal/handler"
	"github.com/MKhiriev/resto-reviews/internal/logger"
	"github.com/MKhiriev/resto-reviews/internal/server"
	"github.com/MKhiriev/resto-reviews/internal/service"
	"github.com/MKhiriev/resto-reviews/internal/store"
	"github.com/MKhiriev/resto-reviews/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Print(buildInfo)

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		logger.NewLogger("resto-reviews").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewLogger("resto-reviews", logger.WithLevel(cfg.App.LogLevel))
	log.Info().Any("build", buildInfo).Msg("starting resto-reviews")
	log.Debug().Any("config", cfg.Redacted()).Msg("received configs")

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Err(err).Msg("error closing storages")
		}
	}()

	services, err := service.NewServices(storages, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}
