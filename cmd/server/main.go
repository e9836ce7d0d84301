package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"travelmate/config"
	"travelmate/internal/handler"
	"travelmate/internal/model"
	"travelmate/internal/repository"
	"travelmate/internal/service"
	dbPkg "travelmate/pkg/db"
	"travelmate/pkg/jwt"
	"travelmate/pkg/logger"
	redisPkg "travelmate/pkg/redis"
	"travelmate/pkg/response"
	"travelmate/pkg/weather"
	"travelmate/pkg/ws"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	// 1. configuration
	cfg := config.LoadConfig()

	// 2. logging
	log := logger.InitLogger(cfg.Log)
	defer log.Sync()

	log.Info("=== travelmate starting ===")
	log.Info("server configuration",
		zap.String("port", cfg.Server.Port),
		zap.String("database_host", cfg.Database.Host),
		zap.Int("database_port", cfg.Database.Port),
		zap.String("database_name", cfg.Database.Database),
		zap.Duration("jwt_expire_time", cfg.JWT.ExpireTime),
		zap.String("log_level", cfg.Log.Level),
	)

	// 3. database
	if _, err := dbPkg.InitDB(cfg.Database); err != nil {
		log.Fatal("database connection failed", zap.Error(err))
	}
	defer func() {
		if err := dbPkg.CloseDB(); err != nil {
			log.Error("database close failed", zap.Error(err))
		}
	}()
	log.Info("database connected")

	if err := dbPkg.AutoMigrate(
		&model.User{},
		&model.Trip{},
		&model.Accommodation{},
		&model.Travel{},
		&model.Friendship{},
		&model.TripSharing{},
	); err != nil {
		log.Fatal("auto migration failed", zap.Error(err))
	}
	log.Info("auto migration done")

	// 4. redis (badge counters and weather cache)
	if err := redisPkg.InitRedis(cfg.Redis); err != nil {
		log.Fatal("redis connection failed", zap.Error(err))
	}
	defer func() {
		if err := redisPkg.Close(); err != nil {
			log.Error("redis close failed", zap.Error(err))
		}
	}()
	log.Info("redis connected")

	// 5. services
	db := dbPkg.GetDB()
	jwtSvc := jwt.NewJWTService(cfg.JWT)
	userRepo := repository.NewUserRepository(db)
	tripRepo := repository.NewTripRepository(db)
	friendshipRepo := repository.NewFriendshipRepository(db)
	sharingRepo := repository.NewSharingRepository(db)

	userSvc := service.NewUserService(userRepo, jwtSvc)
	friendshipSvc := service.NewFriendshipService(friendshipRepo, userRepo)
	accessSvc := service.NewAccessService(tripRepo, sharingRepo)
	tripSvc := service.NewTripService(tripRepo, accessSvc)
	sharingSvc := service.NewSharingService(sharingRepo, tripRepo, userRepo, friendshipSvc, accessSvc)
	notificationSvc := service.NewNotificationService(friendshipRepo, sharingRepo)
	weatherSvc := service.NewWeatherService(weather.NewClient(cfg.Weather.APIKey), cfg.Weather.CacheTTL)

	userHandler := handler.NewUserHandler(userSvc)
	friendHandler := handler.NewFriendHandler(friendshipSvc)
	tripHandler := handler.NewTripHandler(tripSvc)
	sharingHandler := handler.NewSharingHandler(sharingSvc)
	miscHandler := handler.NewMiscHandler(notificationSvc, weatherSvc)

	// 6. router
	if os.Getenv("GIN_MODE") == "" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(logger.LoggerMiddleware())
	router.Use(logger.ErrorLoggerMiddleware())

	router.GET("/health", func(c *gin.Context) {
		status := "ok"
		if err := dbPkg.HealthCheck(); err != nil {
			status = "db-down"
		} else if err := redisPkg.HealthCheck(); err != nil {
			status = "cache-down"
		}
		response.Success(c, gin.H{
			"status": status,
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	v1 := router.Group("/api/v1")
	{
		users := v1.Group("/users")
		{
			users.POST("/register", userHandler.Register)
			users.POST("/login", userHandler.Login)

			authUsers := users.Group("")
			authUsers.Use(jwtSvc.AuthMiddleware())
			{
				authUsers.GET("/profile", userHandler.GetProfile)
				authUsers.GET("/search", userHandler.Search)
			}
		}

		friends := v1.Group("/friends")
		friends.Use(jwtSvc.AuthMiddleware())
		{
			friends.GET("", friendHandler.List)
			friends.POST("/requests", friendHandler.SendRequest)
			friends.GET("/requests/received", friendHandler.PendingReceived)
			friends.GET("/requests/sent", friendHandler.PendingSent)
			friends.POST("/requests/:id/respond", friendHandler.Respond)
			friends.POST("/:id/block", friendHandler.Block)
			friends.DELETE("/:user_id", friendHandler.Remove)
		}

		trips := v1.Group("/trips")
		trips.Use(jwtSvc.AuthMiddleware())
		{
			trips.POST("", tripHandler.Create)
			trips.GET("", tripHandler.List)
			trips.GET("/shared", sharingHandler.SharedTrips)
			trips.GET("/:trip_id", tripHandler.Get)
			trips.PUT("/:trip_id", tripHandler.Update)
			trips.DELETE("/:trip_id", tripHandler.Delete)

			trips.POST("/:trip_id/accommodations", tripHandler.AddAccommodation)
			trips.PUT("/:trip_id/accommodations/order", tripHandler.ReorderAccommodations)
			trips.PUT("/:trip_id/accommodations/:acc_id", tripHandler.UpdateAccommodation)
			trips.DELETE("/:trip_id/accommodations/:acc_id", tripHandler.DeleteAccommodation)

			trips.POST("/:trip_id/travels", tripHandler.AddTravel)
			trips.PUT("/:trip_id/travels/order", tripHandler.ReorderTravels)
			trips.PUT("/:trip_id/travels/:travel_id", tripHandler.UpdateTravel)
			trips.DELETE("/:trip_id/travels/:travel_id", tripHandler.DeleteTravel)

			trips.POST("/:trip_id/share", sharingHandler.Share)
			trips.DELETE("/:trip_id/share/:user_id", sharingHandler.Revoke)
		}

		shares := v1.Group("/shares")
		shares.Use(jwtSvc.AuthMiddleware())
		{
			shares.GET("/pending", sharingHandler.PendingInvitations)
			shares.POST("/:id/respond", sharingHandler.Respond)
		}

		notifications := v1.Group("/notifications")
		notifications.Use(jwtSvc.AuthMiddleware())
		{
			notifications.GET("/counts", miscHandler.NotificationCounts)
		}

		weatherGroup := v1.Group("/weather")
		weatherGroup.Use(jwtSvc.AuthMiddleware())
		{
			weatherGroup.GET("", miscHandler.Weather)
		}
	}

	// notification socket, token in query string
	router.GET("/ws", ws.Handler(jwtSvc))

	// 7. HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		log.Info("http server started", zap.String("port", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("http server failed", zap.Error(err))
		}
	}()

	// 8. graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("http server shutdown failed", zap.Error(err))
	}

	log.Info("server stopped")
}
