package main

import (
	"log"
	"net/http"
	"os"
	"runtime"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"riskwise/database"
	"riskwise/docs"
	"riskwise/internal/cache"
	"riskwise/internal/controllers"
	"riskwise/internal/insight"
	"riskwise/internal/repository"
	"riskwise/internal/risk"
	"riskwise/internal/services"
	"riskwise/routes"
)

func main() {
	// Load environment variables
	if err := godotenv.Load("../.env"); err != nil {
		log.Println("No .env file found, relying on process environment")
	}

	// Swagger Documentation
	docs.SwaggerInfo.Title = "Riskwise API"
	docs.SwaggerInfo.Description = "Preventive health risk scoring API with async assessment jobs via RabbitMQ."
	docs.SwaggerInfo.Version = "1.0"
	docs.SwaggerInfo.Schemes = []string{"http", "https"}

	// Database
	database.ConnectDatabase()
	if err := database.MigrateDatabase(); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}
	database.MonitorDBConnections()

	// Repositories
	assessmentRepo := repository.NewAssessmentRepository(database.DB)
	jobRepo := repository.NewAssessmentJobRepository(database.DB)

	// Scenario cache; what-if scenarios degrade gracefully without Redis
	redisCache, err := cache.NewRedisClient()
	if err != nil {
		log.Printf("Warning: Redis unavailable, what-if scenarios will not be cached: %v", err)
		redisCache = nil
	}

	// Narrative generation; assessments work without it
	var insights services.InsightGenerator
	if client, err := insight.NewClient(); err != nil {
		log.Printf("Warning: narrative generation disabled: %v", err)
	} else {
		insights = client
	}

	// Scoring engine
	engine := risk.NewEngine()
	log.Printf("Scoring engine ready, conditions: %v", engine.Conditions())

	// Assessment job worker
	workerCount := runtime.NumCPU()
	if workerCount < 3 {
		workerCount = 3
	}

	jobWorker := services.NewAssessmentJobWorker(
		jobRepo,
		assessmentRepo,
		engine,
		insights,
		workerCount,
	)

	log.Printf("Starting assessment job worker with %d workers...", workerCount)
	jobWorker.Start()
	defer jobWorker.Stop()

	// Controller
	var scenarioCache controllers.ScenarioCache
	if redisCache != nil {
		scenarioCache = redisCache
	}
	assessmentController := controllers.NewAssessmentController(
		assessmentRepo,
		jobRepo,
		jobWorker,
		engine,
		insights,
		scenarioCache,
	)

	gin.SetMode(gin.ReleaseMode)
	router := gin.Default()

	router.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message":    "Riskwise API is running",
			"version":    "1.0.0",
			"status":     "healthy",
			"conditions": engine.Conditions(),
			"assessment": "Sync scoring plus async jobs via RabbitMQ",
		})
	})

	routes.RegisterAssessmentRoutes(router, assessmentController)
	routes.RegisterSwaggerRoutes(router)

	// Debug endpoints
	router.GET("/debug/stats", func(c *gin.Context) {
		var m runtime.MemStats
		runtime.ReadMemStats(&m)

		c.JSON(200, gin.H{
			"goroutines": runtime.NumGoroutine(),
			"memory_mb":  m.Alloc / 1024 / 1024,
			"workers":    workerCount,
		})
	})

	router.GET("/debug/database", func(c *gin.Context) {
		sqlDB, err := database.DB.DB()
		if err != nil {
			c.JSON(500, gin.H{
				"database_health": false,
				"error":           err.Error(),
			})
			return
		}

		var result int
		row := sqlDB.QueryRowContext(c.Request.Context(), "SELECT 1")
		err = row.Scan(&result)

		c.JSON(200, gin.H{
			"database_health": err == nil && result == 1,
		})
	})

	if redisCache != nil {
		router.GET("/debug/cache", func(c *gin.Context) {
			status, err := redisCache.GetStatus()
			if err != nil {
				c.JSON(500, gin.H{"cache": gin.H{"connected": false, "error": err.Error()}})
				return
			}
			c.JSON(200, gin.H{"cache": status})
		})
	}

	// Start the server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s", port)
	log.Printf("API Documentation: http://localhost:%s/swagger/index.html", port)
	log.Printf("Health Check: http://localhost:%s/assessment/health", port)

	server := &http.Server{
		Addr:           ":" + port,
		Handler:        router,
		ReadTimeout:    30 * time.Second,
		WriteTimeout:   30 * time.Second,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	if err := server.ListenAndServe(); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
