package main

import (
	"context"
	"errors"
	"os/signal"
	"syscall"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"

	"placebot/internal/bot"
	"placebot/internal/config"
	"placebot/internal/dialog"
	"placebot/internal/nominatim"
	"placebot/internal/repository"
	"placebot/internal/resource"
	"placebot/internal/service"
)

func main() {
	cfg, err := config.LoadConfig("./configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}

	if cfg.BotToken == "" {
		log.Fatal().Msg("BOT_TOKEN is required")
	}

	requiredFields, err := cfg.RequiredFieldMask()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid REQUIRED_FIELDS")
	}

	var (
		forward service.GeoCodeProvider
		reverse service.ReverseGeoCodeProvider
	)

	switch cfg.GeocoderProvider {
	case config.ProviderNominatim:
		client := nominatim.NewClient(cfg.NominatimBaseURL)
		forward, reverse = client, client
	default:
		conn, err := pgxpool.New(context.Background(), cfg.DBSource)
		if err != nil {
			log.Fatal().Err(err).Msg("cannot connect to db")
		}
		defer conn.Close()

		repo := repository.NewRepository(conn)
		forward, reverse = repo, repo
	}

	geoCodeService := service.NewGeoCodeService(forward)
	reverseGeocodeService := service.NewReverseGeoCodeService(reverse)

	resources := resource.NewManager(cfg.DefaultLocale)
	if err := resources.LoadDir(cfg.LocaleDir); err != nil {
		log.Fatal().Err(err).Msg("cannot load locale strings")
	}

	api, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot connect to telegram")
	}

	opts := dialog.Options{
		UseNativeControl: cfg.UseNativeControl,
		ReverseGeocode:   cfg.ReverseGeocode,
	}
	newDialog := func() dialog.Dialog {
		return dialog.NewLocationDialog(
			cfg.BotChannel,
			resources.Get("prompt.location"),
			opts,
			requiredFields,
			reverseGeocodeService,
			geoCodeService,
			resources,
		)
	}

	b := bot.New(api, newDialog, resources, log.Logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := b.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal().Err(err).Msg("bot stopped")
	}

	log.Info().Msg("bot shut down")
}
