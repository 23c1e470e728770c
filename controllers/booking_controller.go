package controllers

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"hoteldesk-backend/services"
	"hoteldesk-backend/utils"
)

type BookingController struct {
	Bookings *services.BookingService
}

func NewBookingController(bookings *services.BookingService) *BookingController {
	return &BookingController{Bookings: bookings}
}

func (bc *BookingController) List(c *gin.Context) {
	filters := services.BookingFilters{
		Status:     c.Query("status"),
		RoomID:     c.Query("roomId"),
		GuestEmail: c.Query("guestEmail"),
	}

	bookings, err := bc.Bookings.List(filters)
	if err != nil {
		log.Printf("list bookings failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch bookings.")
		return
	}
	c.JSON(http.StatusOK, bookings)
}

func (bc *BookingController) GetByID(c *gin.Context) {
	booking, err := bc.Bookings.GetByID(c.Param("id"))
	if err != nil {
		log.Printf("get booking failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch booking.")
		return
	}
	if booking == nil {
		utils.JSONError(c, http.StatusNotFound, "Booking not found.")
		return
	}
	c.JSON(http.StatusOK, booking)
}

type createBookingPayload struct {
	RoomID           *uint   `json:"roomId"`
	HotelID          *uint   `json:"hotelId"`
	GuestID          *uint   `json:"guestId"`
	GuestName        *string `json:"guestName"`
	GuestEmail       *string `json:"guestEmail"`
	CheckIn          string  `json:"checkIn"`
	CheckOut         string  `json:"checkOut"`
	ArrivalDate      string  `json:"arrivalDate"`
	DepartureDate    string  `json:"departureDate"`
	Guests           int     `json:"guests"`
	NumAdults        int     `json:"numAdults"`
	NumChildren      int     `json:"numChildren"`
	BookingDate      *string `json:"bookingDate"`
	BookingTime      *string `json:"bookingTime"`
	EstArrivalTime   *string `json:"estArrivalTime"`
	EstDepartureTime *string `json:"estDepartureTime"`
	SpecialReq       *string `json:"specialReq"`
}

func (p *createBookingPayload) hasGuestIdentity() bool {
	if p.GuestID != nil {
		return true
	}
	if p.GuestName != nil && strings.TrimSpace(*p.GuestName) != "" {
		return true
	}
	if p.GuestEmail != nil && strings.TrimSpace(*p.GuestEmail) != "" {
		return true
	}
	return false
}

func (bc *BookingController) Create(c *gin.Context) {
	var payload createBookingPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload.")
		return
	}

	if payload.RoomID == nil || *payload.RoomID == 0 {
		utils.JSONError(c, http.StatusBadRequest, "Room id is required.")
		return
	}
	if !payload.hasGuestIdentity() {
		utils.JSONError(c, http.StatusBadRequest, "A guest name, guest email or guest id is required.")
		return
	}

	arrival := services.ResolveDatePair(payload.ArrivalDate, payload.CheckIn)
	departure := services.ResolveDatePair(payload.DepartureDate, payload.CheckOut)
	if strings.TrimSpace(arrival) == "" || strings.TrimSpace(departure) == "" {
		utils.JSONError(c, http.StatusBadRequest, "Arrival and departure dates are required.")
		return
	}
	if !services.ValidDate(arrival) || !services.ValidDate(departure) {
		utils.JSONError(c, http.StatusBadRequest, "Invalid arrival or departure date.")
		return
	}

	guests := payload.Guests
	if guests <= 0 {
		guests = 1
	}
	numAdults := payload.NumAdults
	if numAdults <= 0 {
		numAdults = 1
	}

	booking, err := bc.Bookings.Create(services.CreateBookingInput{
		RoomID:           *payload.RoomID,
		HotelID:          payload.HotelID,
		GuestID:          payload.GuestID,
		GuestName:        payload.GuestName,
		GuestEmail:       payload.GuestEmail,
		Arrival:          arrival,
		Departure:        departure,
		Guests:           guests,
		NumAdults:        numAdults,
		NumChildren:      payload.NumChildren,
		BookingDate:      payload.BookingDate,
		BookingTime:      payload.BookingTime,
		EstArrivalTime:   payload.EstArrivalTime,
		EstDepartureTime: payload.EstDepartureTime,
		SpecialReq:       payload.SpecialReq,
	})
	if err != nil {
		if utils.IsMissingReference(err) {
			utils.JSONError(c, http.StatusBadRequest, "Referenced room, hotel or guest does not exist.")
			return
		}
		log.Printf("create booking failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Failed to create booking.")
		return
	}
	c.JSON(http.StatusCreated, booking)
}

type bookingStatusPayload struct {
	Status string `json:"status"`
}

func (bc *BookingController) UpdateStatus(c *gin.Context) {
	var payload bookingStatusPayload
	if err := c.ShouldBindJSON(&payload); err != nil || strings.TrimSpace(payload.Status) == "" {
		utils.JSONError(c, http.StatusBadRequest, "Status is required.")
		return
	}

	booking, err := bc.Bookings.UpdateStatus(c.Param("id"), strings.TrimSpace(payload.Status))
	if err != nil {
		log.Printf("update booking status failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Failed to update booking.")
		return
	}
	if booking == nil {
		utils.JSONError(c, http.StatusNotFound, "Booking not found.")
		return
	}
	c.JSON(http.StatusOK, booking)
}

var bookingKeyAliases = map[string]string{
	"hotelId":          "hotel_id",
	"guestId":          "guest_id",
	"guestName":        "guest_name",
	"guestEmail":       "guest_email",
	"bookingDate":      "booking_date",
	"bookingTime":      "booking_time",
	"arrivalDate":      "arrival_date",
	"departureDate":    "departure_date",
	"estArrivalTime":   "est_arrival_time",
	"estDepartureTime": "est_departure_time",
	"numAdults":        "num_adults",
	"numChildren":      "num_children",
	"specialReq":       "special_req",
	"checkIn":          "check_in",
	"checkOut":         "check_out",
}

func (bc *BookingController) Update(c *gin.Context) {
	fields, ok := bindUpdateMap(c)
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload.")
		return
	}
	fields = remapKeys(fields, bookingKeyAliases)

	booking, err := bc.Bookings.Update(c.Param("id"), fields)
	if err != nil {
		if utils.IsMissingReference(err) {
			utils.JSONError(c, http.StatusBadRequest, "Referenced room, hotel or guest does not exist.")
			return
		}
		log.Printf("update booking failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Failed to update booking.")
		return
	}
	if booking == nil {
		utils.JSONError(c, http.StatusNotFound, "Booking not found.")
		return
	}
	c.JSON(http.StatusOK, booking)
}

func (bc *BookingController) Delete(c *gin.Context) {
	deleted, err := bc.Bookings.Delete(c.Param("id"))
	if err != nil {
		log.Printf("delete booking failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Failed to delete booking.")
		return
	}
	if !deleted {
		utils.JSONError(c, http.StatusNotFound, "Booking not found.")
		return
	}
	c.Status(http.StatusNoContent)
}
