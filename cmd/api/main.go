package main

import (
	"context"
	"net/http"

	"ramen-review-api/docs"
	"ramen-review-api/internal/config"
	"ramen-review-api/internal/handler"
	"ramen-review-api/internal/places"
	"ramen-review-api/internal/repository"
	"ramen-review-api/internal/service"
	"ramen-review-api/internal/station"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title			Ramen Review API
// @version		1.0
// @description	Restaurant search, visit reviews, station lookup, and Instagram post export for ramen reviews.
// @BasePath		/
func main() {
	config, err := config.LoadConfig("./configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}

	// Database connection
	conn, err := pgxpool.New(context.Background(), config.DBSource)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot connect to db")
	}
	defer conn.Close()

	// Initialize layers
	repo := repository.NewRepository(conn)

	placesClient := places.NewClient(config.GooglePlacesAPIKey, config.GoogleAPIBaseURL, log.Logger)
	resolver := station.NewResolver(placesClient, log.Logger)

	searchService := service.NewSearchService(placesClient)
	restaurantService := service.NewRestaurantService(repo)
	reviewService := service.NewReviewService(repo)
	exportService := service.NewExportService(repo)
	stationService := service.NewStationService(resolver, repo, config.StationSearchRadius, config.WalkingCeilingMinutes)

	searchHandler := handler.NewSearchHandler(searchService)
	restaurantHandler := handler.NewRestaurantHandler(restaurantService)
	reviewHandler := handler.NewReviewHandler(reviewService, exportService)
	stationHandler := handler.NewStationHandler(stationService)

	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})

	r.GET("/places/search", searchHandler.Search)
	r.GET("/places/:placeId", searchHandler.Details)

	r.POST("/restaurants", restaurantHandler.Create)

	r.POST("/reviews", reviewHandler.Create)
	r.GET("/reviews", reviewHandler.List)
	r.GET("/reviews/:id/instagram", reviewHandler.Export)
	r.PUT("/reviews/:id/station", stationHandler.Attach)

	r.GET("/stations/search", stationHandler.Nearby)

	docs.SwaggerInfo.BasePath = "/"
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.Run(config.ServerAddress)
}
