package main

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"polarplotter/cache"
	"polarplotter/config"
	"polarplotter/db"
	_ "polarplotter/docs" // Swagger docs
	"polarplotter/handlers"
	"polarplotter/service"
	"polarplotter/session"
)

func main() {
	cfg := config.GetConfig()

	// Initialize export record store
	database, err := db.New(cfg.DBPath)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer database.Close()

	// Initialize session store
	example, err := service.LoadExampleTable()
	if err != nil {
		log.Fatalf("Failed to load example dataset: %v", err)
	}
	sessions := session.NewManager(cache.New(cfg.SessionTTL), example)

	// Initialize export service
	exportService, err := service.NewExportService(cfg.ExportsDir, database, cfg.ChromePath, cfg.PNGTimeout)
	if err != nil {
		log.Fatalf("Failed to initialize export service: %v", err)
	}

	// Initialize handlers
	h := handlers.New(sessions, exportService)

	// Setup Gin router
	r := gin.Default()

	// CORS configuration - allow all origins so the front-end can be served
	// from anywhere during development
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "X-Session-ID")
	r.Use(cors.New(corsConfig))

	// Swagger documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Routes
	r.GET("/health", h.HealthHandler)
	r.GET("/api/version", h.VersionHandler)
	r.GET("/api/sidebar", h.SidebarHandler)
	r.POST("/api/sessions", h.CreateSessionHandler)

	// Style routes
	r.GET("/api/style", h.GetStyleHandler)
	r.PUT("/api/style", h.UpdateStyleHandler)
	r.POST("/api/style/reset", h.ResetStyleHandler)

	// Data routes
	r.GET("/api/data", h.GetDataHandler)
	r.PUT("/api/data", h.SetDataHandler)
	r.POST("/api/data/upload", h.UploadDataHandler)
	r.POST("/api/data/example", h.UseExampleHandler)

	// Chart and export routes
	r.GET("/api/chart", h.GetChartHandler)
	r.POST("/api/export/html", h.ExportHTMLHandler)
	r.POST("/api/export/png", h.ExportPNGHandler)
	r.GET("/api/exports", h.ListExportsHandler)
	r.GET("/api/exports/file/:filename", h.DownloadExportHandler)

	// Serve static files (front-end)
	r.Static("/static", cfg.WebDir+"/static")
	r.StaticFile("/", cfg.WebDir+"/index.html")
	r.NoRoute(func(c *gin.Context) {
		c.File(cfg.WebDir + "/index.html")
	})

	log.Printf("Server starting on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
