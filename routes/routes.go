package routes

import (
	"net/http"
	"time"

	"pawhub/handlers"
	"pawhub/middleware"
	"pawhub/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterUserRoutes registers pet owner account endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/users")
	{
		api.POST("/register", hb.User.RegisterUser)
		api.POST("/login", hb.User.AuthenticateUser)

		// Protected routes (require authentication).
		api.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo))
		api.GET("/me", hb.User.GetProfile)
		api.PATCH("/me", hb.User.UpdateProfile)
		api.DELETE("/me/token", hb.User.RevokeAuthToken)

		api.POST("/me/pets", hb.User.AddPet)
		api.PUT("/me/pets/:petId", hb.User.UpdatePet)
		api.DELETE("/me/pets/:petId", hb.User.RemovePet)
	}
}

// RegisterBusinessRoutes registers business account endpoints.
func RegisterBusinessRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/business")
	{
		api.POST("/register", hb.Business.RegisterBusiness)
		api.POST("/login", hb.Business.AuthenticateBusiness)

		// Protected routes (require authentication).
		api.Use(middleware.JWTAuthBusinessMiddleware(hb.BusinessRepo))
		api.GET("/me", hb.Business.GetProfile)
		api.PATCH("/me", hb.Business.UpdateProfile)
		api.DELETE("/me/token", hb.Business.RevokeAuthToken)
	}
}

// RegisterBookingRoutes registers the booking lifecycle endpoints for
// both principals.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	owner := r.Group("/api/bookings")
	{
		owner.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo))
		owner.POST("", hb.Booking.CreateBooking)
		owner.GET("", hb.Booking.ListOwnerBookings)
		owner.GET("/:id", hb.Booking.GetBooking)
		owner.POST("/:id/cancel", hb.Booking.CancelBooking)
	}

	biz := r.Group("/api/business/bookings")
	{
		biz.Use(middleware.JWTAuthBusinessMiddleware(hb.BusinessRepo))
		biz.GET("", hb.Booking.ListBusinessBookings)
		biz.GET("/:id", hb.Booking.GetBooking)
		biz.PATCH("/:id/status", hb.Booking.AdvanceBooking)
		biz.POST("/:id/complete", hb.Booking.CompleteBooking)
		biz.POST("/:id/cancel", hb.Booking.CancelBooking)
		biz.PATCH("/:id/payment", hb.Booking.SetPaymentStatus)
		biz.POST("/:id/documents", hb.Storage.UploadBookingDocument)
	}
}

// RegisterCatalogRoutes registers service catalog endpoints. The public
// listing is unauthenticated so owners can browse a provider's offering.
func RegisterCatalogRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/business/services")
	{
		api.Use(middleware.JWTAuthBusinessMiddleware(hb.BusinessRepo))
		api.POST("", hb.Catalog.CreateService)
		api.GET("", hb.Catalog.ListOwnServices)
		api.PATCH("/:id", hb.Catalog.UpdateService)
		api.PATCH("/:id/toggle", hb.Catalog.ToggleServiceActive)
		api.DELETE("/:id", hb.Catalog.DeleteService)
	}

	r.GET("/api/services/business/:businessId", hb.Catalog.ListPublicServices)
}

// RegisterHealthRoute exposes the dependency health snapshot.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, utils.GetHealthStatus())
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterUserRoutes(r, hb)
	RegisterBusinessRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterCatalogRoutes(r, hb)
	RegisterHealthRoute(r)
}
