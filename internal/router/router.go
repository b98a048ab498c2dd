package router

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/NDAYIZEYE-Vincent/Gestion-de-Stock-et-Ventes/internal/config"
	"github.com/NDAYIZEYE-Vincent/Gestion-de-Stock-et-Ventes/internal/handler"
	"github.com/NDAYIZEYE-Vincent/Gestion-de-Stock-et-Ventes/internal/middleware"
	"github.com/NDAYIZEYE-Vincent/Gestion-de-Stock-et-Ventes/internal/service"
	"github.com/NDAYIZEYE-Vincent/Gestion-de-Stock-et-Ventes/internal/storage"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Store (ledgers + CSV files)
func New(cfg *config.Config, store *storage.Store) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(cfg.RateLimitPerMin, time.Minute))
	middleware.StartRateLimiterPurge(5 * time.Minute)

	// ── Services ─────────────────────────────────────────────────────────────
	stockSvc := service.NewStockService(store)
	salesSvc := service.NewSalesService(store, cfg.Currency)
	analyticsSvc := service.NewAnalyticsService(store)

	// ── Handlers ─────────────────────────────────────────────────────────────
	stockH := handler.NewStockHandler(stockSvc)
	ventesH := handler.NewVentesHandler(salesSvc)
	dashboardH := handler.NewDashboardHandler(analyticsSvc)
	exportH := handler.NewExportHandler(analyticsSvc, cfg.Currency)

	// ── Routes ───────────────────────────────────────────────────────────────
	r.GET("/health", handler.Health())

	v1 := r.Group("/v1")
	{
		stock := v1.Group("/stock")
		{
			stock.GET("", stockH.Lister)
			stock.POST("", stockH.Ajouter)
			stock.GET("/choices", stockH.Choices)
			stock.PUT("/:index", stockH.Modifier)
			stock.DELETE("/:index", stockH.Supprimer)
		}

		ventes := v1.Group("/ventes")
		{
			ventes.GET("", ventesH.Lister)
			ventes.POST("", ventesH.Vendre)
			ventes.DELETE("/:index", ventesH.Supprimer)
		}

		dashboard := v1.Group("/dashboard")
		{
			dashboard.GET("/alertes", dashboardH.Alertes)
			dashboard.GET("/statistiques", dashboardH.Statistiques)
			dashboard.GET("/stock", dashboardH.Report)
			dashboard.GET("/periodes/:raccourci", dashboardH.Periode)
			dashboard.GET("/export", exportH.Export)
		}
	}

	return r
}
