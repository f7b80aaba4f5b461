package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/KaustubhAs/student-alumni-connect-app/api"
	"github.com/KaustubhAs/student-alumni-connect-app/config"
	"github.com/KaustubhAs/student-alumni-connect-app/db"
	_ "github.com/KaustubhAs/student-alumni-connect-app/docs" // Import for side effect: registers swagger spec via init()
	"github.com/KaustubhAs/student-alumni-connect-app/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title           Student Alumni Connect API
// @version         1.0.0

// @description     ## Student Alumni Connect API
// @description
// @description     A small social-networking backend for **educational purposes only**: user login, a profile directory, directional "connections" (follow relationships), and a polling-based direct-messaging feature, all backed by a single flat JSON file acting as a pseudo-database.
// @description
// @description     Every endpoint performs a full document load, an in-memory filter/transform/mutate, and (for mutating endpoints) a full document overwrite. The eight original endpoints always answer 200 and report domain outcomes in their bodies.
// @description
// @description     Known, deliberately preserved weaknesses: passwords are stored and compared in plain text (and echoed by /login), and /adminAccess is a hardcoded username check. **This is NOT intended for production use.**

// @license.name  MIT

// @host      localhost:5000
// @BasePath  /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the token from /login.
func main() {
	// --- Configuration ---
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("CRITICAL: Failed to load configuration: %v", err)
	}

	// --- Database ---
	database, err := db.NewDatabase(cfg)
	if err != nil {
		// NewDatabase logs specifics, including critical parse errors
		log.Fatalf("CRITICAL: Failed to initialize database: %v", err)
	}

	// --- Gin Router Setup ---
	// gin.Default() already carries the logger and recovery middleware.
	router := gin.Default()

	// The SPA client is served from a different origin and talks to every
	// endpoint directly, so cross-origin requests are allowed from anywhere.
	router.Use(cors.Default())
	router.Use(utils.RequestIDMiddleware())

	// --- Public Routes ---
	// Paths, methods, and query/body field names mirror the original API
	// surface consumed by the existing SPA.
	router.GET("/login", func(c *gin.Context) {
		api.LoginHandler(c, database, cfg)
	})
	router.GET("/getAllProfiles", func(c *gin.Context) {
		api.GetAllProfilesHandler(c, database, cfg)
	})
	router.GET("/getProfileByUserName", func(c *gin.Context) {
		api.GetProfileByUserNameHandler(c, database, cfg)
	})
	router.GET("/adminAccess", func(c *gin.Context) {
		api.AdminAccessHandler(c, database, cfg)
	})
	router.GET("/getAllConnection", func(c *gin.Context) {
		api.GetAllConnectionHandler(c, database, cfg)
	})
	router.POST("/connectionInsert", func(c *gin.Context) {
		api.ConnectionInsertHandler(c, database, cfg)
	})
	router.GET("/getMessages", func(c *gin.Context) {
		api.GetMessagesHandler(c, database, cfg)
	})
	router.POST("/sendMessage", func(c *gin.Context) {
		api.SendMessageHandler(c, database, cfg)
	})

	// --- Protected Routes ---
	authMiddleware := utils.AuthMiddleware(cfg)
	router.GET("/me", authMiddleware, func(c *gin.Context) {
		api.MeHandler(c, database, cfg)
	})

	// --- Swagger Route ---
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// --- Start Server ---
	listenAddr := fmt.Sprintf("%s:%s", cfg.ListenAddress, cfg.ListenPort)
	log.Printf("INFO: Starting server on %s", listenAddr)

	server := &http.Server{
		Addr:    listenAddr,
		Handler: router,
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("CRITICAL: Server failed to start: %v", err)
	}
}
