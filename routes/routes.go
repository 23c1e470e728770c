package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"hoteldesk-backend/controllers"
	"hoteldesk-backend/middleware"
)

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// Controllers bundles every handler group the router mounts.
type Controllers struct {
	Auth             *controllers.AuthController
	Users            *controllers.UserController
	Customers        *controllers.CustomerController
	Rooms            *controllers.RoomController
	RoomTypes        *controllers.RoomTypeController
	Hotels           *controllers.HotelController
	Bookings         *controllers.BookingController
	Guests           *controllers.GuestController
	Reservations     *controllers.ReservationController
	ReservationRooms *controllers.ReservationRoomController
	Checkins         *controllers.CheckinController
	Services         *controllers.ServiceController
	ServiceOrders    *controllers.ServiceOrderController
	Invoices         *controllers.InvoiceController
	Payments         *controllers.PaymentController
	Housekeeping     *controllers.HousekeepingController
	Roles            *controllers.RoleController
	AuditLogs        *controllers.AuditLogController
	Stats            *controllers.StatsController
}

func SetupRouter(ctrl Controllers) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())

	origins := parseCorsOrigins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	api := r.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"ok": true})
		})

		auth := api.Group("/auth")
		{
			auth.POST("/register", ctrl.Auth.Register)
			auth.POST("/login", ctrl.Auth.Login)
		}

		users := api.Group("/users")
		{
			users.GET("", ctrl.Users.List)
			users.GET("/:id", ctrl.Users.GetByID)
			users.POST("", ctrl.Users.Create)
			users.PUT("/:id", ctrl.Users.Update)
			users.DELETE("/:id", ctrl.Users.Delete)
		}

		customers := api.Group("/customers")
		{
			customers.POST("/register", ctrl.Customers.Register)
			customers.POST("/login", ctrl.Customers.Login)
			customers.GET("", ctrl.Customers.List)
			customers.GET("/:id", ctrl.Customers.GetByID)
			customers.PUT("/:id", ctrl.Customers.Update)
			customers.DELETE("/:id", ctrl.Customers.Delete)
		}

		rooms := api.Group("/rooms")
		{
			rooms.GET("", ctrl.Rooms.List)
			rooms.GET("/:id", ctrl.Rooms.GetByID)
			rooms.POST("", ctrl.Rooms.Create)
			rooms.PUT("/:id", ctrl.Rooms.Update)
			rooms.DELETE("/:id", ctrl.Rooms.Delete)
		}

		roomTypes := api.Group("/room-types")
		{
			roomTypes.GET("", ctrl.RoomTypes.List)
			roomTypes.GET("/:id", ctrl.RoomTypes.GetByID)
			roomTypes.POST("", ctrl.RoomTypes.Create)
			roomTypes.PUT("/:id", ctrl.RoomTypes.Update)
			roomTypes.DELETE("/:id", ctrl.RoomTypes.Delete)
		}

		hotels := api.Group("/hotels")
		{
			hotels.GET("", ctrl.Hotels.List)
			hotels.GET("/:id", ctrl.Hotels.GetByID)
			hotels.POST("", ctrl.Hotels.Create)
			hotels.PUT("/:id", ctrl.Hotels.Update)
			hotels.DELETE("/:id", ctrl.Hotels.Delete)
		}

		bookings := api.Group("/bookings")
		{
			bookings.GET("", ctrl.Bookings.List)
			bookings.GET("/:id", ctrl.Bookings.GetByID)
			bookings.POST("", ctrl.Bookings.Create)
			bookings.PATCH("/:id", ctrl.Bookings.UpdateStatus)
			bookings.PUT("/:id", ctrl.Bookings.Update)
			bookings.DELETE("/:id", ctrl.Bookings.Delete)
		}

		guests := api.Group("/guests")
		{
			guests.GET("", ctrl.Guests.List)
			guests.GET("/:id", ctrl.Guests.GetByID)
			guests.POST("", ctrl.Guests.Create)
			guests.PUT("/:id", ctrl.Guests.Update)
			guests.DELETE("/:id", ctrl.Guests.Delete)
		}

		reservations := api.Group("/reservations")
		{
			reservations.GET("", ctrl.Reservations.List)
			reservations.GET("/:id", ctrl.Reservations.GetByID)
			reservations.POST("", ctrl.Reservations.Create)
			reservations.PATCH("/:id", ctrl.Reservations.UpdateStatus)
			reservations.DELETE("/:id", ctrl.Reservations.Delete)
		}

		reservationRooms := api.Group("/reservation-rooms")
		{
			reservationRooms.GET("", ctrl.ReservationRooms.List)
			reservationRooms.GET("/:id", ctrl.ReservationRooms.GetByID)
			reservationRooms.POST("", ctrl.ReservationRooms.Create)
			reservationRooms.DELETE("/:id", ctrl.ReservationRooms.Delete)
		}

		checkins := api.Group("/checkins")
		{
			checkins.GET("", ctrl.Checkins.List)
			checkins.GET("/:id", ctrl.Checkins.GetByID)
			checkins.POST("", ctrl.Checkins.Create)
			checkins.PATCH("/:id", ctrl.Checkins.Update)
			checkins.DELETE("/:id", ctrl.Checkins.Delete)
		}

		servicesGroup := api.Group("/services")
		{
			servicesGroup.GET("", ctrl.Services.List)
			servicesGroup.GET("/:id", ctrl.Services.GetByID)
			servicesGroup.POST("", ctrl.Services.Create)
			servicesGroup.PUT("/:id", ctrl.Services.Update)
			servicesGroup.DELETE("/:id", ctrl.Services.Delete)
		}

		serviceOrders := api.Group("/service-orders")
		{
			serviceOrders.GET("", ctrl.ServiceOrders.List)
			serviceOrders.GET("/:id", ctrl.ServiceOrders.GetByID)
			serviceOrders.POST("", ctrl.ServiceOrders.Create)
			serviceOrders.DELETE("/:id", ctrl.ServiceOrders.Delete)
		}

		invoices := api.Group("/invoices")
		{
			invoices.GET("", ctrl.Invoices.List)
			invoices.GET("/:id", ctrl.Invoices.GetByID)
			invoices.POST("", ctrl.Invoices.Create)
			invoices.PUT("/:id", ctrl.Invoices.Update)
			invoices.DELETE("/:id", ctrl.Invoices.Delete)
		}

		payments := api.Group("/payments")
		{
			payments.GET("", ctrl.Payments.List)
			payments.GET("/:id", ctrl.Payments.GetByID)
			payments.POST("", ctrl.Payments.Create)
			payments.DELETE("/:id", ctrl.Payments.Delete)
		}

		housekeeping := api.Group("/housekeeping")
		{
			housekeeping.GET("", ctrl.Housekeeping.List)
			housekeeping.GET("/:id", ctrl.Housekeeping.GetByID)
			housekeeping.POST("", ctrl.Housekeeping.Create)
			housekeeping.PATCH("/:id", ctrl.Housekeeping.Update)
			housekeeping.DELETE("/:id", ctrl.Housekeeping.Delete)
		}

		roles := api.Group("/roles")
		{
			roles.GET("", ctrl.Roles.List)
			roles.GET("/:id", ctrl.Roles.GetByID)
			roles.POST("", ctrl.Roles.Create)
			roles.PUT("/:id", ctrl.Roles.Update)
			roles.DELETE("/:id", ctrl.Roles.Delete)
		}

		auditLogs := api.Group("/audit-logs")
		{
			auditLogs.GET("", ctrl.AuditLogs.List)
			auditLogs.GET("/:id", ctrl.AuditLogs.GetByID)
			auditLogs.POST("", ctrl.AuditLogs.Create)
			auditLogs.DELETE("/:id", ctrl.AuditLogs.Delete)
		}

		api.GET("/stats", ctrl.Stats.Summary)
	}

	return r
}
