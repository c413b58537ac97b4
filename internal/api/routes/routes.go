package routes

import (
	"fmt"
	"net/http"
	"time"

	"gearguard-backend/internal/api/handlers"
	"gearguard-backend/internal/api/middleware"
	"gearguard-backend/internal/auth"
	"gearguard-backend/internal/config"
	"gearguard-backend/internal/repository"
	"gearguard-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config, log *logrus.Logger) (*gin.Engine, error) {
	router := gin.New()

	// Add middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(log))
	router.Use(middleware.Recovery(log))
	router.Use(middleware.CORS(cfg.AllowedOrigins))

	// Initialize validator
	validate := validator.New()

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	equipmentRepo := repository.NewEquipmentRepository(db)
	teamRepo := repository.NewTeamRepository(db)
	requestRepo := repository.NewRequestRepository(db)

	// Initialize services
	projector := service.NewProjector(equipmentRepo, teamRepo, userRepo)
	equipmentService := service.NewEquipmentService(equipmentRepo, requestRepo, projector, validate)
	teamService := service.NewTeamService(teamRepo, userRepo, projector, validate)
	requestService := service.NewRequestService(requestRepo, equipmentRepo, projector, validate)
	userService := service.NewUserService(userRepo, validate)

	// Initialize auth
	authConfig := &auth.Config{
		JWTSecret:       cfg.JWTSecret,
		AccessTokenTTL:  time.Duration(cfg.AccessTokenTTLMinutes) * time.Minute,
		RefreshTokenTTL: time.Duration(cfg.RefreshTokenTTLHours) * time.Hour,
		CookieSecure:    cfg.CookieSecure,
	}
	authService, err := auth.NewService(authConfig, userRepo, validate)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize auth service: %w", err)
	}
	policy, err := auth.LoadPolicy(cfg.AuthorizationPolicyPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load authorization policy: %w", err)
	}
	authMiddleware := auth.NewMiddleware(authService)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	userHandler := handlers.NewUserHandler(userService)
	equipmentHandler := handlers.NewEquipmentHandler(equipmentService)
	teamHandler := handlers.NewTeamHandler(teamService)
	requestHandler := handlers.NewRequestHandler(requestService)
	healthHandler := handlers.NewHealthHandler(db)

	router.GET("/health", healthHandler.Health)

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"statusCode": http.StatusNotFound,
			"message":    "Route not found",
			"success":    false,
			"errors":     []string{},
		})
	})

	v1 := router.Group("/api/v1")

	// Auth routes
	authRoutes := v1.Group("/auth")
	{
		authRoutes.POST("/register", authHandler.Register)
		authRoutes.POST("/login", authHandler.Login)
		authRoutes.POST("/refresh", authHandler.Refresh)
		authRoutes.POST("/logout", authMiddleware.RequireAuth(), authHandler.Logout)
	}

	// User routes
	users := v1.Group("/users")
	users.Use(authMiddleware.RequireAuth())
	{
		users.GET("/me", userHandler.Me)
		users.PATCH("/update", userHandler.UpdateProfile)
		users.POST("/change-password", userHandler.ChangePassword)
		users.GET("/technicians", userHandler.ListTechnicians)
		users.GET("", authMiddleware.RequireRoles(policy.RolesFor(auth.ActionUserAdmin)...), userHandler.List)
	}

	// Equipment routes
	equipment := v1.Group("/equipment")
	equipment.Use(authMiddleware.RequireAuth())
	{
		equipment.GET("", equipmentHandler.List)
		equipment.GET("/:id", equipmentHandler.GetByID)
		equipment.GET("/:id/requests", equipmentHandler.GetRequests)

		equipmentWrite := authMiddleware.RequireRoles(policy.RolesFor(auth.ActionEquipmentWrite)...)
		equipment.POST("", equipmentWrite, equipmentHandler.Create)
		equipment.PUT("/:id", equipmentWrite, equipmentHandler.Update)
		equipment.PATCH("/:id", equipmentWrite, equipmentHandler.Update)
		equipment.PATCH("/:id/scrap", equipmentWrite, equipmentHandler.Scrap)
		equipment.DELETE("/:id", equipmentWrite, equipmentHandler.Delete)
	}

	// Team routes
	teams := v1.Group("/teams")
	teams.Use(authMiddleware.RequireAuth())
	{
		teams.GET("", teamHandler.List)
		teams.GET("/:id", teamHandler.GetByID)

		teamWrite := authMiddleware.RequireRoles(policy.RolesFor(auth.ActionTeamWrite)...)
		teams.POST("", teamWrite, teamHandler.Create)
		teams.PUT("/:id", teamWrite, teamHandler.Update)
		teams.PATCH("/:id", teamWrite, teamHandler.Update)
		teams.DELETE("/:id", teamWrite, teamHandler.Delete)
		teams.POST("/:id/technicians", teamWrite, teamHandler.AddTechnician)
		teams.DELETE("/:id/technicians/:technicianId", teamWrite, teamHandler.RemoveTechnician)
	}

	// Maintenance request routes
	requests := v1.Group("/requests")
	requests.Use(authMiddleware.RequireAuth())
	{
		requests.GET("", requestHandler.List)
		requests.GET("/kanban", requestHandler.Kanban)
		requests.GET("/preventive", requestHandler.Preventive)
		requests.GET("/:id", requestHandler.GetByID)
		requests.POST("", requestHandler.Create)
		requests.PUT("/:id", requestHandler.Update)
		requests.PATCH("/:id", requestHandler.Update)
		requests.DELETE("/:id", requestHandler.Delete)

		requestStatus := authMiddleware.RequireRoles(policy.RolesFor(auth.ActionRequestStatus)...)
		requests.PATCH("/:id/status", requestStatus, requestHandler.UpdateStatus)
	}

	return router, nil
}
