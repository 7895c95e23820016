package api

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/runlog/runs-backend-go/internal/config"
	"github.com/runlog/runs-backend-go/internal/handler"
	"github.com/runlog/runs-backend-go/internal/middleware"
	"github.com/runlog/runs-backend-go/internal/repository"
	"github.com/runlog/runs-backend-go/internal/service"
	"github.com/runlog/runs-backend-go/internal/session"
	"github.com/runlog/runs-backend-go/internal/spatial"
)

// SetupRouter wires repositories, services and handlers onto the gin engine.
func SetupRouter(cfg *config.Config, db *sql.DB) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())
	r.Use(middleware.RateLimit(120, time.Minute))

	// CORS
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Runs Backend API is running",
		})
	})

	gates := spatial.Gates{
		AccuracyCeilingMeters: cfg.AccuracyCeilingMeters,
		MinStepMeters:         cfg.MinStepMeters,
		MaxJumpMeters:         cfg.MaxJumpMeters,
		RouteSpacingMeters:    cfg.RouteSpacingMeters,
	}
	calibration := session.Calibration{
		WeightKg:       cfg.WeightKg,
		KcalPerKmPerKg: cfg.KcalPerKmPerKg,
	}

	runRepo := repository.NewRunRepository(db)
	tracker := session.NewTracker(gates, calibration)

	sessionHandler := handler.NewSessionHandler(service.NewSessionService(tracker, runRepo))
	runHandler := handler.NewRunHandler(service.NewRunService(runRepo))
	statsHandler := handler.NewStatsHandler(service.NewStatsService(runRepo))
	authHandler := handler.NewAuthHandler(cfg.JWTSecret)

	api := r.Group("/api/v1")
	{
		api.POST("/auth/token", authHandler.IssueToken)

		protected := api.Group("", middleware.JWTAuth(cfg.JWTSecret))
		{
			sess := protected.Group("/session")
			{
				sess.POST("/start", sessionHandler.Start)
				sess.POST("/samples", sessionHandler.Ingest)
				sess.GET("/snapshot", sessionHandler.Snapshot)
				sess.POST("/stop", sessionHandler.Stop)
				sess.POST("/save", sessionHandler.Save)
				sess.POST("/discard", sessionHandler.Discard)
			}

			runs := protected.Group("/runs")
			{
				runs.GET("", runHandler.GetRuns)
				runs.GET("/:id", runHandler.GetRunByID)
				runs.DELETE("/:id", runHandler.DeleteRun)
			}

			stats := protected.Group("/stats")
			{
				stats.GET("/summary", statsHandler.GetSummary)
			}
		}
	}

	return r
}
