package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-api-caller/internal/adapter"
	"github.com/MKhiriev/go-api-caller/internal/config"
	"github.com/MKhiriev/go-api-caller/internal/logger"
	"github.com/MKhiriev/go-api-caller/internal/service"
	"github.com/MKhiriev/go-api-caller/models"
	jsoniter "github.com/json-iterator/go"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Print(buildInfo)

	cfg, err := config.GetClientConfig()
	if err != nil {
		logger.NewLogger("api-caller", "").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewLogger("api-caller", cfg.Log.Level)
	if cfg.Adapter.UserAgent == "" {
		cfg.Adapter.UserAgent = buildInfo.UserAgent("go-api-caller")
	}

	caller := adapter.NewHTTPCaller(cfg.Adapter, log)
	services := service.NewServices(caller, *cfg, log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	items, err := services.DemoIntegrationService.ListItems(ctx, models.ItemFilter{Page: &models.Page{Number: 1, Size: 20}})
	if err != nil {
		log.Fatal().Err(err).Msg("list items")
	}

	out, err := jsoniter.ConfigCompatibleWithStandardLibrary.MarshalIndent(items, "", "  ")
	if err != nil {
		log.Fatal().Err(err).Msg("render items")
	}
	fmt.Println(string(out))
}
