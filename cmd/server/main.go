// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/bookmark-keeper/internal/app"
	"github.com/MKhiriev/bookmark-keeper/internal/config"
	"github.com/MKhiriev/bookmark-keeper/internal/logger"
	"github.com/MKhiriev/bookmark-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	log := logger.NewLogger("bookmark-server")
	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	log.SetLevel(cfg.App.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	application, err := app.New(ctx, cfg, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating application")
	}

	if err = application.Run(ctx); err != nil {
		log.Err(err).Msg("server stopped with error")
		stop()
		os.Exit(1)
	}
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", orNotAvailable(info.BuildVersion()))
	fmt.Printf("Build date: %s\n", orNotAvailable(info.BuildDate()))
	fmt.Printf("Build commit: %s\n", orNotAvailable(info.BuildCommit()))
}

func orNotAvailable(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
