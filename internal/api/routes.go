package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"careconnect-backend-go/internal/core"
	"careconnect-backend-go/internal/middleware"
	"careconnect-backend-go/internal/models"
)

// Services bundles the core services the routes depend on.
type Services struct {
	Users        core.UserService
	Catalog      core.CatalogService
	Bookings     core.BookingService
	Content      core.ContentService
	Testimonials core.TestimonialService
	Activity     core.ActivityService
	Payments     core.PaymentService
}

// SetupRoutes registers all application routes. Global middleware
// (logging, recovery, CORS) is expected to be applied to the router
// before this call.
func SetupRoutes(router *gin.Engine, authMW *middleware.AuthMiddleware, svcs Services, logger *zap.Logger) {
	userHandler := NewUserHandler(svcs.Users, logger)
	catalogHandler := NewCatalogHandler(svcs.Catalog, logger)
	bookingHandler := NewBookingHandler(svcs.Bookings, logger)
	contentHandler := NewContentHandler(svcs.Content, logger)
	testimonialHandler := NewTestimonialHandler(svcs.Testimonials, logger)
	activityHandler := NewActivityHandler(svcs.Activity, logger)
	paymentHandler := NewPaymentHandler(svcs.Payments, logger)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "UP"})
	})

	apiV1 := router.Group("/api/v1")
	{
		// Public marketing surface: no credential required.
		apiV1.GET("/services", catalogHandler.PublicList)
		apiV1.GET("/services/:id", catalogHandler.PublicGet)
		apiV1.GET("/content/about", contentHandler.GetAbout)
		apiV1.GET("/content/footer", contentHandler.GetFooter)
		apiV1.GET("/content/slides", contentHandler.ListSlides)
		apiV1.GET("/testimonials", testimonialHandler.PublicList)

		// Profile bootstrap runs with token verification only; the profile
		// is created here if it does not exist yet.
		apiV1.POST("/users/initialize", authMW.Authenticate(), userHandler.InitializeProfile)

		// Authenticated user surface.
		authed := apiV1.Group("", authMW.Authenticate(), authMW.WithProfile())
		{
			authed.GET("/users/me", userHandler.GetMe)
			authed.PUT("/users/me", userHandler.UpdateMe)
			authed.POST("/bookings", bookingHandler.Create)
			authed.GET("/bookings/me", bookingHandler.ListMine)
			authed.POST("/payments/create-intent", paymentHandler.CreateIntent)
		}

		// Admin control panel: admin tier (admin or super_admin). The
		// finer-grained super-admin rules live in the services.
		admin := apiV1.Group("/admin",
			authMW.Authenticate(), authMW.WithProfile(), middleware.RequireRole(models.RoleAdmin))
		{
			admin.GET("/services", catalogHandler.AdminList)
			admin.POST("/services", catalogHandler.Create)
			admin.PUT("/services/:id", catalogHandler.Update)
			admin.DELETE("/services/:id", catalogHandler.Delete)

			admin.GET("/bookings", bookingHandler.AdminList)
			admin.PUT("/bookings/:id/status", bookingHandler.UpdateStatus)
			admin.DELETE("/bookings/:id", bookingHandler.Delete)

			admin.GET("/users", userHandler.AdminList)
			admin.PUT("/users/:id", userHandler.AdminUpdate)
			admin.DELETE("/users/:id", userHandler.AdminDelete)

			admin.PUT("/content/about", contentHandler.UpdateAbout)
			admin.PUT("/content/footer", contentHandler.UpdateFooter)
			admin.POST("/content/slides", contentHandler.CreateSlide)
			admin.PUT("/content/slides/:id", contentHandler.UpdateSlide)
			admin.DELETE("/content/slides/:id", contentHandler.DeleteSlide)

			admin.GET("/testimonials", testimonialHandler.AdminList)
			admin.POST("/testimonials", testimonialHandler.Create)
			admin.PUT("/testimonials/:id", testimonialHandler.Update)
			admin.DELETE("/testimonials/:id", testimonialHandler.Delete)

			admin.GET("/activity-logs", activityHandler.List)
		}
	}

	logger.Info("API routes configured", zap.String("base", "/api/v1"))
}
