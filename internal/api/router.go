package api

import (
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/kuafor-app/salon-booking-backend/internal/activitylog"
	logHttp "github.com/kuafor-app/salon-booking-backend/internal/activitylog/http"
	"github.com/kuafor-app/salon-booking-backend/internal/appointment"
	appointmentHttp "github.com/kuafor-app/salon-booking-backend/internal/appointment/http"
	"github.com/kuafor-app/salon-booking-backend/internal/auth"
	"github.com/kuafor-app/salon-booking-backend/internal/catalog"
	catalogHttp "github.com/kuafor-app/salon-booking-backend/internal/catalog/http"
	"github.com/kuafor-app/salon-booking-backend/internal/gallery"
	galleryHttp "github.com/kuafor-app/salon-booking-backend/internal/gallery/http"
	"github.com/kuafor-app/salon-booking-backend/internal/pkg/metrics"
	"github.com/kuafor-app/salon-booking-backend/internal/promotion"
	promotionHttp "github.com/kuafor-app/salon-booking-backend/internal/promotion/http"
	"github.com/kuafor-app/salon-booking-backend/internal/user"
	userHttp "github.com/kuafor-app/salon-booking-backend/internal/user/http"
)

// Config bundles everything the router needs to assemble middleware and
// register module routes.
type Config struct {
	IsProduction bool
	ProdOrigins  string

	UserService        user.Service
	GalleryService     gallery.Service
	CatalogService     catalog.CatalogService
	AppointmentService appointment.Service
	PromotionService   promotion.Service
	ActivityLogService activitylog.Service

	JWTManager *auth.JWTManager
	Metrics    *metrics.Metrics
}

// NewRouter initializes the HTTP router engine.
// It assembles the global middleware (logging, recovery, CORS, metrics) and
// registers each module's routes under /v1.
func NewRouter(cfg Config) *gin.Engine {
	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	corsConfig := cors.DefaultConfig()
	if cfg.IsProduction {
		corsConfig.AllowOrigins = splitOrigins(cfg.ProdOrigins)
	} else {
		corsConfig.AllowOrigins = []string{
			"http://localhost:3000",
			"http://localhost:8081", // Swagger
		}
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	if cfg.Metrics != nil {
		r.Use(cfg.Metrics.Middleware())
		r.GET("/metrics", cfg.Metrics.Handler())
	}

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	authMiddleware := auth.AuthRequired(cfg.JWTManager)
	staffMiddleware := auth.RequireRole(auth.RoleStaff)

	userHandler := userHttp.NewUserHandler(cfg.UserService, cfg.GalleryService, cfg.JWTManager)
	galleryHandler := galleryHttp.NewHandler(cfg.GalleryService)
	catalogHandler := catalogHttp.NewHandler(cfg.CatalogService)
	appointmentHandler := appointmentHttp.NewHandler(cfg.AppointmentService)
	promotionHandler := promotionHttp.NewHandler(cfg.PromotionService)
	logHandler := logHttp.NewHandler(cfg.ActivityLogService)

	v1 := r.Group("/v1")
	{
		userHttp.RegisterRoutes(v1, userHandler, authMiddleware, staffMiddleware)
		galleryHttp.RegisterRoutes(v1, galleryHandler, authMiddleware, staffMiddleware)
		catalogHttp.RegisterRoutes(v1, catalogHandler, authMiddleware, staffMiddleware)
		appointmentHttp.RegisterRoutes(v1, appointmentHandler, authMiddleware, staffMiddleware)
		promotionHttp.RegisterRoutes(v1, promotionHandler, authMiddleware, staffMiddleware)
		logHttp.RegisterRoutes(v1, logHandler, authMiddleware, staffMiddleware)
	}

	return r
}

func splitOrigins(origins string) []string {
	parts := strings.Split(origins, ",")
	cleaned := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			cleaned = append(cleaned, trimmed)
		}
	}
	return cleaned
}
