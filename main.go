package main

import (
	"os"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"estate-service/internal/cache"
	"estate-service/internal/handler"
	"estate-service/internal/logging"
	"estate-service/internal/middleware"
	"estate-service/internal/mongo"
	"estate-service/internal/repository"
	"estate-service/internal/service"
)

func main() {
	// Missing .env is normal outside development.
	_ = godotenv.Load()
	log := logging.New()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL is required")
	}
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("JWT_SECRET is required")
	}
	mongoURI := os.Getenv("MONGO_URI")
	if mongoURI == "" {
		mongoURI = "mongodb://localhost:27017"
	}
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "localhost:6379"
	}

	db, err := sqlx.Connect("postgres", dbURL)
	if err != nil {
		log.WithError(err).Fatal("db connect error")
	}

	mongoClient, err := mongo.NewClient(mongoURI)
	if err != nil {
		log.WithError(err).Fatal("mongo connect error")
	}

	redisClient := redis.NewClient(&redis.Options{Addr: redisURL})
	featured := cache.NewFeaturedCache(redisClient)

	users := repository.NewUserRepository(db)
	properties := repository.NewPropertyRepository(db)
	requests := repository.NewPropertyRequestRepository(db)
	rentals := repository.NewRentalRequestRepository(db)
	images := repository.NewImageRepository(db)
	photos := repository.NewPhotoRepository(mongoClient, "estate")

	accounts := service.NewAccountService(users, jwtSecret)
	moderation := service.NewModerationService(requests, rentals, properties, featured, log)
	rentalSvc := service.NewRentalService(properties, rentals)

	auth := middleware.RequireAuth(jwtSecret)
	ownerOnly := middleware.RequireRole("owner")
	clientOnly := middleware.RequireRole("client")
	adminOnly := middleware.RequireRole("admin")

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.Metrics())

	r.GET("/healthz", func(c *gin.Context) { c.String(200, "ok") })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")

	authHandler := &handler.AuthHandler{Accounts: accounts}
	authHandler.RegisterRoutes(api, auth)

	propertyHandler := &handler.PropertyHandler{Repo: properties, Images: images, Cache: featured}
	propertyHandler.RegisterRoutes(api, auth, ownerOnly)

	requestHandler := &handler.RequestHandler{Requests: requests, Rentals: rentalSvc, RentalQ: rentals}
	requestHandler.RegisterRoutes(api, auth, ownerOnly, clientOnly)

	photoHandler := &handler.PhotoHandler{Photos: photos, Images: images, Requests: requests}
	photoHandler.RegisterRoutes(api, auth, ownerOnly)

	adminHandler := &handler.AdminHandler{Moderation: moderation, Requests: requests, Rentals: rentals}
	adminHandler.RegisterRoutes(api, auth, adminOnly)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.WithField("port", port).Info("starting estate-service")
	if err := r.Run(":" + port); err != nil {
		log.WithError(err).Fatal("server stopped")
	}
}
