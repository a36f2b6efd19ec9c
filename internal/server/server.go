package server

import (
	"net/http"
	"strings"
	"time"

	"agrirent/internal/config"
	"agrirent/internal/handler"
	"agrirent/internal/middleware"
	"agrirent/internal/repository"
	"agrirent/internal/service"
	"agrirent/pkg/response"
	pkgvalidator "agrirent/pkg/validator"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Server struct {
	engine *gin.Engine
	db     *gorm.DB
}

func NewServer(db *gorm.DB, redisClient *redis.Client, cfg *config.Config) *Server {
	pkgvalidator.Init()
	response.SetDebug(cfg.AppDebug)

	userRepo := repository.NewUserRepository(db)
	profileRepo := repository.NewProfileRepository(db)

	revocations := service.NewRedisRevocationStore(redisClient)
	tokenService := service.NewTokenService(cfg.JWTSecret, cfg.TokenTTL, revocations)

	authService := service.NewAuthService(userRepo, tokenService)
	authHandler := handler.NewAuthHandler(authService)

	registerService := service.NewRegisterService(userRepo, tokenService)
	registerHandler := handler.NewRegisterHandler(registerService)

	profileService := service.NewProfileService(profileRepo)
	profileHandler := handler.NewProfileHandler(profileService)

	generalHandler := handler.NewGeneralHandler()

	router := gin.New()
	setupCORS(router, cfg.AllowedOrigins)
	router.Use(gin.Recovery())
	router.Use(gin.Logger())

	authMiddleware := middleware.NewAuthMiddleware(userRepo, tokenService)

	api := router.Group("/api")

	// Public routes (no authentication required)
	auth := api.Group("/auth")
	{
		auth.POST("/register", registerHandler.Register)
		auth.GET("/registration-config", registerHandler.RegistrationConfig)
		auth.GET("/check-phone", registerHandler.CheckPhone)
		auth.POST("/login", authHandler.Login)
		auth.GET("/check", authHandler.CheckAuth)
	}

	// Protected routes
	protected := api.Group("")
	protected.Use(authMiddleware.RequireAuth())
	{
		authProtected := protected.Group("/auth")
		{
			authProtected.POST("/logout", authHandler.Logout)
			authProtected.GET("/user", authHandler.CurrentUser)
			authProtected.POST("/switch-role", authHandler.SwitchRole)
			authProtected.GET("/role-availability", authHandler.RoleAvailability)
		}

		profile := protected.Group("/profile")
		{
			farmer := profile.Group("/farmer")
			{
				farmer.GET("", profileHandler.GetFarmerProfile)
				farmer.PUT("", profileHandler.UpdateFarmerProfile)
				farmer.POST("/create", profileHandler.CreateFarmerProfile)
			}

			owner := profile.Group("/owner")
			{
				owner.GET("", profileHandler.GetOwnerProfile)
				owner.PUT("", profileHandler.UpdateOwnerProfile)
				owner.POST("/create", profileHandler.CreateOwnerProfile)
				owner.PUT("/bank-details", profileHandler.UpdateBankDetails)
			}
		}

		general := protected.Group("/general")
		{
			general.GET("/districts", generalHandler.GetDistricts)
			general.GET("/equipment-types", generalHandler.GetEquipmentTypes)
			general.GET("/crop-types", generalHandler.GetCropTypes)
			general.GET("/livestock-types", generalHandler.GetLivestockTypes)
		}

		// Equipment and booking groups mount here once those subsystems
		// land: equipment behind RequireRole(owner), bookings split
		// between farmer and owner groups.
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"message": "API endpoint not found.",
		})
	})

	srv := &Server{
		engine: router,
		db:     db,
	}
	router.GET("/health", srv.health)

	return srv
}

// health reports whether the database connection is alive.
func (s *Server) health(c *gin.Context) {
	if s.db != nil {
		if sqlDB, err := s.db.DB(); err == nil && sqlDB.Ping() == nil {
			c.JSON(http.StatusOK, gin.H{"success": true, "status": "ok"})
			return
		}
	}
	c.JSON(http.StatusServiceUnavailable, gin.H{"success": false, "status": "degraded"})
}

func (s *Server) Run(addr string) error {
	return s.engine.Run(addr)
}

// Engine exposes the router for tests.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func setupCORS(router *gin.Engine, allowedOrigins string) {
	var origins []string
	if allowedOrigins != "" {
		origins = strings.Split(allowedOrigins, ",")
	} else {
		origins = []string{"http://localhost:3000"}
	}

	router.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
}
