package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"hoteldesk-backend/config"
	"hoteldesk-backend/controllers"
	"hoteldesk-backend/routes"
	"hoteldesk-backend/services"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println(".env not found; continuing with environment variables")
	}

	// The schema must exist before the first request can be served, so
	// connect and bootstrap complete before the listener starts.
	if err := config.ConnectDatabase(); err != nil {
		log.Fatalf("database connect failed: %v", err)
	}
	db := config.DB

	userService := services.NewUserService(db)
	customerService := services.NewCustomerService(db)
	roomService := services.NewRoomService(db)
	roomTypeService := services.NewRoomTypeService(db)
	hotelService := services.NewHotelService(db)
	bookingService := services.NewBookingService(db)
	guestService := services.NewGuestService(db)
	reservationService := services.NewReservationService(db)
	reservationRoomService := services.NewReservationRoomService(db)
	checkinService := services.NewCheckinService(db)
	catalogService := services.NewServiceCatalogService(db)
	serviceOrderService := services.NewServiceOrderService(db)
	invoiceService := services.NewInvoiceService(db)
	paymentService := services.NewPaymentService(db)
	housekeepingService := services.NewHousekeepingService(db)
	roleService := services.NewRoleService(db)
	auditLogService := services.NewAuditLogService(db)
	statsService := services.NewStatsService(db)

	router := routes.SetupRouter(routes.Controllers{
		Auth:             controllers.NewAuthController(userService),
		Users:            controllers.NewUserController(userService),
		Customers:        controllers.NewCustomerController(customerService),
		Rooms:            controllers.NewRoomController(roomService),
		RoomTypes:        controllers.NewRoomTypeController(roomTypeService),
		Hotels:           controllers.NewHotelController(hotelService),
		Bookings:         controllers.NewBookingController(bookingService),
		Guests:           controllers.NewGuestController(guestService),
		Reservations:     controllers.NewReservationController(reservationService),
		ReservationRooms: controllers.NewReservationRoomController(reservationRoomService),
		Checkins:         controllers.NewCheckinController(checkinService),
		Services:         controllers.NewServiceController(catalogService),
		ServiceOrders:    controllers.NewServiceOrderController(serviceOrderService),
		Invoices:         controllers.NewInvoiceController(invoiceService),
		Payments:         controllers.NewPaymentController(paymentService),
		Housekeeping:     controllers.NewHousekeepingController(housekeepingService),
		Roles:            controllers.NewRoleController(roleService),
		AuditLogs:        controllers.NewAuditLogController(auditLogService),
		Stats:            controllers.NewStatsController(statsService),
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "3001"
	}
	addr := ":" + port

	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("Server listening on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("ListenAndServe(): %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("Shutdown signal received, draining...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("forced shutdown: %v", err)
	}
	log.Println("Server stopped")
}
