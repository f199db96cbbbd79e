package server

import (
	"context"
	"database/sql"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"cvbuilder-backend/internal/documents"
	"cvbuilder-backend/internal/exports"
	"cvbuilder-backend/internal/shared/config"
	"cvbuilder-backend/internal/shared/metrics"
	"cvbuilder-backend/internal/shared/server/middleware"
	"cvbuilder-backend/internal/shared/server/respond"
	"cvbuilder-backend/internal/shared/storage/db"
	"cvbuilder-backend/internal/templates"
)

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(cfg config.Config) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(cfg.CORSAllowOrigin),
	)

	// Dependencies
	var sqlDB *sql.DB
	if cfg.DatabaseURL != "" {
		dbConn, err := db.Connect(context.Background(), cfg.DatabaseURL, db.OptionsFromEnv(db.DefaultServerOptions()))
		if err != nil {
			log.Printf("failed to connect database, falling back to memory: %v", err)
		} else {
			if err := db.RunMigrations(context.Background(), dbConn); err != nil {
				log.Printf("failed to run migrations, falling back to memory: %v", err)
				dbConn.Close()
				dbConn = nil
			}
		}
		sqlDB = dbConn
	}

	var docRepo documents.Repo
	var ledger exports.Repo
	if sqlDB != nil {
		docRepo = &documents.PGRepo{DB: sqlDB}
		ledger = &exports.PGRepo{DB: sqlDB}
	} else {
		docRepo = documents.NewMemoryRepo()
		ledger = exports.NewMemoryRepo()
	}

	docHandler := &documents.Handler{Service: &documents.Service{Repo: docRepo}}
	exportHandler := &exports.Handler{Service: &exports.Service{Documents: docRepo, Ledger: ledger}}
	templateHandler := &templates.Handler{}

	r.GET("/api/v1/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})
	if cfg.Env == "dev" || cfg.Env == "local" {
		r.GET("/api/v1/metrics", metrics.Handler())
	}

	api := r.Group("/api/v1")
	api.Use(middleware.Auth())

	// Exports hold the rendering pipeline; keep them from starving the rest
	// of the API under a burst of downloads.
	api.Use(middleware.RateLimit(middleware.RateLimitConfig{
		Rules: map[string]middleware.RateLimitRule{
			"EXPORT": {Rate: 1, Burst: 5},
		},
		GroupFor: func(c *gin.Context) string {
			if c.Request.Method == http.MethodPost && c.FullPath() == "/api/v1/exports" {
				return "EXPORT"
			}
			return ""
		},
	}))

	templateHandler.RegisterRoutes(api)
	docHandler.RegisterRoutes(api)
	exportHandler.RegisterRoutes(api)

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
