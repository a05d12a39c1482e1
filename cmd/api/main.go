package main

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "placebot/docs"
	"placebot/internal/config"
	"placebot/internal/handler"
	"placebot/internal/nominatim"
	"placebot/internal/repository"
	"placebot/internal/service"
)

//	@title			Placebot Geocoding API
//	@version		1.0
//	@description	Geocoding and place standardization endpoints backing the location dialog bot.
//	@BasePath		/
func main() {
	cfg, err := config.LoadConfig("./configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
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

	geoCodeHandler := handler.NewGeoCodeHandler(geoCodeService)
	reverseGeocodeHandler := handler.NewReverseGeocodeHandler(reverseGeocodeService)
	placeHandler := handler.NewPlaceHandler()

	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})

	r.GET("/geocode", geoCodeHandler.GeoCode)
	r.GET("/reverse-geocode", reverseGeocodeHandler.ReverseGeocode)
	r.POST("/places", placeHandler.Compose)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	log.Info().
		Str("address", cfg.ServerAddress).
		Str("geocoder", cfg.GeocoderProvider).
		Msg("starting api server")

	if err := r.Run(cfg.ServerAddress); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
