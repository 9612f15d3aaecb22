package main

import (
	"context"
	"log"
	"os"
	"time"

	"fittrack/internal/auth"
	"fittrack/internal/dashboard"
	"fittrack/internal/db"
	"fittrack/internal/diet"
	"fittrack/internal/middleware"
	"fittrack/internal/storage"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {

	// ───────────────────────── ENV ─────────────────────────
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	if os.Getenv("JWT_SECRET") == "" {
		log.Fatal("Missing env var: JWT_SECRET")
	}

	// ───────────────────────── STORE ─────────────────────────
	// DATABASE_URL selects Postgres; otherwise accounts live in a
	// single JSON file rewritten on every mutation.
	var accountRepo auth.AccountRepository
	if os.Getenv("DATABASE_URL") != "" {
		pool := db.ConnectPostgres()
		defer pool.Close()
		accountRepo = auth.NewPostgresAccountRepository(pool)
		log.Println("using Postgres account store")
	} else {
		dataFile := os.Getenv("DATA_FILE")
		if dataFile == "" {
			dataFile = "data/users.json"
		}
		fileRepo, err := auth.NewFileAccountRepository(dataFile)
		if err != nil {
			log.Fatal("file store init failed:", err)
		}
		accountRepo = fileRepo
		log.Printf("using JSON file account store at %s", dataFile)
	}

	// ───────────────────────── GIN ─────────────────────────
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// ───────────────────────── AUTH ─────────────────────────
	authService := auth.NewService(accountRepo)
	authHandler := auth.NewHandler(authService)

	authGroup := r.Group("/api/auth")
	{
		authGroup.POST("/register", authHandler.Register)
		authGroup.POST("/login", authHandler.Login)
	}

	// ───────────────────────── DASHBOARD ─────────────────────────
	dashboardService := dashboard.NewService(accountRepo)
	dashboardHandler := dashboard.NewHandler(dashboardService)

	dashboardGroup := r.Group("/api/dashboard")
	dashboardGroup.Use(middleware.AuthMiddleware(accountRepo))
	{
		dashboardGroup.GET("", dashboardHandler.GetDashboard)
		dashboardGroup.POST("/water/add", dashboardHandler.AddWater)
		dashboardGroup.GET("/meals", dashboardHandler.GetMealPlan)
		dashboardGroup.POST("/meals", dashboardHandler.SetMealSlot)
	}

	// ───────────────────────── PROFILE ─────────────────────────
	profileGroup := r.Group("/api/profile")
	profileGroup.Use(middleware.AuthMiddleware(accountRepo))
	{
		profileGroup.PUT("", dashboardHandler.UpdateProfile)

		if storage.Configured() {
			r2Client, err := storage.NewR2Client(context.Background())
			if err != nil {
				log.Fatal("R2 init failed:", err)
			}
			avatarHandler := dashboard.NewAvatarHandler(dashboardService, r2Client)
			profileGroup.POST("/avatar", avatarHandler.Upload)
		} else {
			log.Println("avatar storage not configured, upload route disabled")
		}
	}

	// ───────────────────────── DIET ─────────────────────────
	dietService := diet.NewService(accountRepo, diet.NewGeminiClient())
	dietHandler := diet.NewHandler(dietService)

	dietGroup := r.Group("/api/diet")
	{
		dietGroup.POST("/generate", middleware.OptionalAuth(accountRepo), dietHandler.Generate)
		dietGroup.POST("/save", middleware.AuthMiddleware(accountRepo), dietHandler.Save)
	}

	// ───────────────────────── HEALTH ─────────────────────────
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ───────────────────────── START ─────────────────────────
	port := os.Getenv("PORT")
	if port == "" {
		port = "4000"
	}
	log.Printf("API running at http://localhost:%s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
