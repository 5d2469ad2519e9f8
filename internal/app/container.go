package app

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kuafor-app/salon-booking-backend/internal/activitylog"
	"github.com/kuafor-app/salon-booking-backend/internal/api"
	"github.com/kuafor-app/salon-booking-backend/internal/appointment"
	"github.com/kuafor-app/salon-booking-backend/internal/auth"
	"github.com/kuafor-app/salon-booking-backend/internal/catalog"
	"github.com/kuafor-app/salon-booking-backend/internal/gallery"
	"github.com/kuafor-app/salon-booking-backend/internal/pkg/cache"
	"github.com/kuafor-app/salon-booking-backend/internal/pkg/metrics"
	"github.com/kuafor-app/salon-booking-backend/internal/pkg/storage"
	"github.com/kuafor-app/salon-booking-backend/internal/promotion"
	"github.com/kuafor-app/salon-booking-backend/internal/user"
)

// Config holds the dependencies and settings required to start the application.
type Config struct {
	IsProduction   bool
	ProdOrigins    string
	DBPool         *pgxpool.Pool
	Cache          *cache.Cache
	JWTSecret      string
	JWTTTL         time.Duration
	BcryptCost     int
	UploadDir      string
	MetricsEnabled bool
}

// Container holds the initialized components that are needed externally.
type Container struct {
	Router     *gin.Engine
	JWTManager *auth.JWTManager
}

// NewContainer initializes all modules and returns the container.
func NewContainer(cfg Config) (*Container, error) {
	// Init components
	passwordHasher := auth.NewBcryptPasswordHasherWithCost(cfg.BcryptCost)
	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTTTL)

	store, err := storage.NewLocalStorage(cfg.UploadDir)
	if err != nil {
		return nil, fmt.Errorf("init storage failed: %w", err)
	}

	var m *metrics.Metrics
	if cfg.MetricsEnabled {
		m = metrics.New("salon_booking")
	}

	// User module
	userRepo := user.NewPgxRepository(cfg.DBPool)
	userService := user.NewService(userRepo, passwordHasher, store)

	// Gallery module
	galleryRepo := gallery.NewPgxRepository(cfg.DBPool)
	galleryService := gallery.NewService(galleryRepo, store)

	// Catalog module
	catalogRepo := catalog.NewPgxRepository(cfg.DBPool)
	catalogService := catalog.NewService(catalogRepo)

	// Promotion module
	promotionRepo := promotion.NewPgxRepository(cfg.DBPool)
	promotionService := promotion.NewService(promotionRepo)

	// Activity log module
	logRepo := activitylog.NewPgxRepository(cfg.DBPool)
	logService := activitylog.NewService(logRepo)

	// Appointment module
	appointmentRepo := appointment.NewPgxRepository(cfg.DBPool)
	appointmentService := appointment.NewService(appointmentRepo, catalogService, userService, logService, cfg.Cache)

	router := api.NewRouter(api.Config{
		IsProduction:       cfg.IsProduction,
		ProdOrigins:        cfg.ProdOrigins,
		UserService:        userService,
		GalleryService:     galleryService,
		CatalogService:     catalogService,
		AppointmentService: appointmentService,
		PromotionService:   promotionService,
		ActivityLogService: logService,
		JWTManager:         jwtManager,
		Metrics:            m,
	})

	return &Container{
		Router:     router,
		JWTManager: jwtManager,
	}, nil
}
