// main.go
package main

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"marketing-planner/controllers"
	"marketing-planner/logger"
	"marketing-planner/middleware"
	"marketing-planner/services"
)

// appConfig holds everything read from the environment at startup.
type appConfig struct {
	DataAPIURL    string
	DataAPIKey    string
	SessionSecret string
	StaticDir     string
	Port          string
	Env           string
}

// loadConfig reads configuration from environment variables. The data
// service endpoint, its key and the session secret have no sane defaults:
// missing any of them is a startup error.
func loadConfig() (appConfig, error) {
	cfg := appConfig{
		DataAPIURL:    os.Getenv("DATA_API_URL"),
		DataAPIKey:    os.Getenv("DATA_API_KEY"),
		SessionSecret: os.Getenv("SESSION_SECRET"),
		StaticDir:     os.Getenv("STATIC_DIR"),
		Port:          os.Getenv("PORT"),
		Env:           os.Getenv("APP_ENV"),
	}
	if cfg.DataAPIURL == "" || cfg.DataAPIKey == "" {
		return cfg, fmt.Errorf("DATA_API_URL and DATA_API_KEY must be set")
	}
	if cfg.SessionSecret == "" {
		return cfg, fmt.Errorf("SESSION_SECRET must be set")
	}
	if cfg.StaticDir == "" {
		cfg.StaticDir = "./public"
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	return cfg, nil
}

// corsMiddleware allows credentialed requests from any origin. The origin is
// echoed back because "*" is invalid when credentials are allowed.
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if origin := c.GetHeader("Origin"); origin != "" {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
			c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
			c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		}
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

// newRouter wires middleware, sessions and all application routes.
func newRouter(cfg appConfig) *gin.Engine {
	router := gin.Default()
	router.Use(corsMiddleware())

	// Initialize session store
	store := cookie.NewStore([]byte(cfg.SessionSecret))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days
		HttpOnly: true,
		Secure:   cfg.Env == "production",
		SameSite: http.SameSiteLaxMode,
	})
	router.Use(sessions.Sessions("planner_session", store))

	router.GET("/health", controllers.Health)

	// Public routes
	api := router.Group("/api")
	api.POST("/login", controllers.Login)
	api.POST("/logout", controllers.Logout)

	// Protected routes
	events := api.Group("/events", middleware.AuthRequired)
	{
		events.GET("", controllers.ListEvents)
		events.POST("", controllers.CreateEvent)
		events.PUT("/:id", controllers.UpdateEvent)
		events.POST("/:id/toggle-posted", controllers.TogglePosted)
		events.DELETE("/:id", middleware.AdminRequired(), controllers.DeleteEvent)
	}

	// Serve the frontend from the static directory, index fallback for
	// anything that is not an API route.
	router.Static("/static", cfg.StaticDir)
	router.NoRoute(func(c *gin.Context) {
		if c.Request.Method == http.MethodGet && !strings.HasPrefix(c.Request.URL.Path, "/api/") {
			c.File(filepath.Join(cfg.StaticDir, "index.html"))
			return
		}
		c.JSON(http.StatusNotFound, gin.H{"error": "No existe"})
	})

	return router
}

func main() {
	// Load .env when present; real environments set variables directly.
	if err := godotenv.Load(); err != nil {
		logger.Debug.Println("main: no .env file loaded:", err)
	}

	cfg, err := loadConfig()
	if err != nil {
		logger.Error.Fatalf("main: invalid configuration: %v", err)
	}

	logger.SetLogLevel(cfg.Env)
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	controllers.SetDataService(services.NewRestDataService(cfg.DataAPIURL, cfg.DataAPIKey))

	router := newRouter(cfg)
	logger.Info.Printf("main: listening on :%s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		logger.Error.Fatalf("Failed to run server: %v", err)
	}
}
