package main

import (
	"context"

	"github.com/rs/zerolog/log"

	"diamond_hotels/internal/adapters/aaa"
	"diamond_hotels/internal/adapters/observability"
	"diamond_hotels/internal/app"
	"diamond_hotels/internal/shared"
	"diamond_hotels/internal/storage/jsonfile"
)

func main() {
	ctx := context.Background()
	cfg := shared.Load()

	// global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	log.Info().
		Str("feed", cfg.FeedURL).
		Str("out", cfg.OutputPath).
		Msg("etl starting")

	client, err := aaa.New(cfg.FeedURL, cfg.HTTPTimeout)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize feed client")
	}
	sink := jsonfile.New(cfg.OutputPath)
	svc := app.NewETLService(client, sink)

	n, err := svc.Run(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("etl failed")
	}
	log.Info().Int("hotels", n).Str("out", cfg.OutputPath).Msg("etl completed")
}
