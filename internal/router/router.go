package router

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "lodgeos/docs"
	"lodgeos/internal/config"
	"lodgeos/internal/domain"
	"lodgeos/internal/handler"
	"lodgeos/internal/middleware"
	"lodgeos/internal/service"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	cfg *config.Config,
	authSvc service.AuthService,
	authH *handler.AuthHandler,
	customerH *handler.CustomerHandler,
	inventoryH *handler.InventoryHandler,
	bookingH *handler.BookingHandler,
	billH *handler.BillHandler,
	counterH *handler.CounterHandler,
	settingsH *handler.SettingsHandler,
	reportH *handler.ReportHandler,
	healthH *handler.HealthHandler,
) *gin.Engine {
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(cfg.CORS))

	// Health checks
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	// API documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := r.Group("/api/v1")

	// Public auth routes
	auth := v1.Group("/auth")
	auth.POST("/register", authH.Register)
	auth.POST("/login", authH.Login)
	auth.POST("/refresh", authH.RefreshToken)

	// Protected routes - require valid JWT
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(authSvc))

	// Customer routes
	customers := protected.Group("/customers")
	customers.POST("", customerH.Create)
	customers.GET("", customerH.List)
	customers.GET("/:id", customerH.Get)
	customers.GET("/:id/history", customerH.History)
	customers.POST("/:id/photo", customerH.UploadPhoto)
	customers.GET("/:id/photo", customerH.PhotoURL)

	// Room type routes
	roomTypes := protected.Group("/room-types")
	roomTypes.POST("", inventoryH.CreateRoomType)
	roomTypes.GET("", inventoryH.ListRoomTypes)
	roomTypes.DELETE("/:id", middleware.RequireRole(domain.RoleAdmin), inventoryH.DeleteRoomType)

	// Room routes
	rooms := protected.Group("/rooms")
	rooms.POST("", inventoryH.CreateRoom)
	rooms.GET("", inventoryH.ListRooms)
	rooms.GET("/:id", inventoryH.GetRoom)
	rooms.PATCH("/:id/status", inventoryH.SetRoomStatus)
	rooms.DELETE("/:id", middleware.RequireRole(domain.RoleAdmin), inventoryH.DeleteRoom)

	// Booking routes
	bookings := protected.Group("/bookings")
	bookings.POST("", bookingH.Create)
	bookings.GET("", bookingH.List)
	bookings.GET("/:id", bookingH.Get)
	bookings.PUT("/:id", bookingH.Update)
	bookings.POST("/:id/check-in", bookingH.CheckIn)
	bookings.POST("/:id/check-out", bookingH.CheckOut)
	bookings.POST("/:id/cancel", bookingH.Cancel)
	bookings.POST("/:id/generate-bill", billH.GenerateForBooking)
	bookings.GET("/:id/bill", billH.GetForBooking)

	// Bill routes
	bills := protected.Group("/bills")
	bills.POST("", billH.CreateManual)
	bills.GET("/:id", billH.Get)
	bills.POST("/:id/finalize", billH.Finalize)
	bills.POST("/:id/payments", billH.RecordPayment)

	// Invoice counter routes (admin only)
	counters := protected.Group("/invoice-counters")
	counters.Use(middleware.RequireRole(domain.RoleAdmin))
	counters.GET("", counterH.List)
	counters.PUT("/:series", counterH.SetStartingNumber)

	// Settings routes
	settings := protected.Group("/settings")
	settings.GET("", settingsH.Get)
	settings.PUT("", middleware.RequireRole(domain.RoleAdmin), settingsH.Update)

	// Report routes
	reports := protected.Group("/reports")
	reports.GET("/rental", reportH.Rental)
	reports.GET("/rental/export/csv", reportH.ExportCSV)
	reports.GET("/rental/export/xlsx", reportH.ExportXLSX)

	return r
}
