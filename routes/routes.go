package routes

import (
	"net/http"
	"slices"
	"time"

	"dentalcare/handlers"
	"dentalcare/middleware"
	"dentalcare/services/policy"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires every endpoint onto r.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle, origins []string) {
	corsCfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(origins) == 0 || slices.Contains(origins, "*") {
		corsCfg.AllowAllOrigins = true
		corsCfg.AllowCredentials = false
	} else {
		corsCfg.AllowOrigins = origins
	}
	r.Use(cors.New(corsCfg))

	r.GET("/", handlers.WelcomeHandler)
	if hb.Health != nil {
		r.GET("/health", handlers.HealthHandler(hb.Health))
	}

	RegisterCatalogRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterUserRoutes(r, hb)
	RegisterDoctorRoutes(r, hb)

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"message": "route not found"})
	})
}

// guard authenticates the caller and enforces action.
func guard(hb *handlers.HandlerBundle, action policy.Action) []gin.HandlerFunc {
	return []gin.HandlerFunc{
		middleware.JWTAuthMiddleware(hb.Tokens),
		middleware.Authorize(action, hb.Roles),
	}
}

func with(chain []gin.HandlerFunc, h gin.HandlerFunc) []gin.HandlerFunc {
	return append(chain, h)
}

func RegisterCatalogRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/appointments", hb.Treatments.GetTreatmentsHandler)
	r.GET("/available", hb.Treatments.GetAvailableHandler)
	r.POST("/appointments", with(guard(hb, policy.ActionManageCatalog), hb.Treatments.UpsertTreatmentHandler)...)
}

func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/booking", hb.Bookings.CreateBookingHandler)
	r.GET("/booking", with(guard(hb, policy.ActionReadBookings), hb.Bookings.GetPatientBookingsHandler)...)
	r.GET("/booking/:id", with(guard(hb, policy.ActionReadBookings), hb.Bookings.GetBookingHandler)...)
	r.PATCH("/booking/:id", with(guard(hb, policy.ActionPayBooking), hb.Bookings.CompletePaymentHandler)...)
	r.POST("/create-payment-intent", with(guard(hb, policy.ActionCreatePayment), hb.Payments.CreatePaymentIntentHandler)...)
}

func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.PUT("/user/:email", hb.Users.UpsertUserHandler)
	r.GET("/users", with(guard(hb, policy.ActionListUsers), hb.Users.GetUsersHandler)...)
	r.GET("/admin/:email", with(guard(hb, policy.ActionCheckAdmin), hb.Users.CheckAdminHandler)...)
	r.PUT("/admin/:email", with(guard(hb, policy.ActionGrantAdmin), hb.Users.MakeAdminHandler)...)
}

func RegisterDoctorRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	chain := guard(hb, policy.ActionManageDoctors)
	r.POST("/doctor", with(chain, hb.Doctors.AddDoctorHandler)...)
	r.GET("/doctor", with(chain, hb.Doctors.GetDoctorsHandler)...)
	r.DELETE("/doctor/:email", with(chain, hb.Doctors.DeleteDoctorHandler)...)
}
