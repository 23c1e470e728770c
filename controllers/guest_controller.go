package controllers

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"hoteldesk-backend/services"
	"hoteldesk-backend/utils"
)

type GuestController struct {
	Guests *services.GuestService
}

func NewGuestController(guests *services.GuestService) *GuestController {
	return &GuestController{Guests: guests}
}

func (gc *GuestController) List(c *gin.Context) {
	filters := services.GuestFilters{
		BookingID: c.Query("bookingId"),
		Email:     c.Query("email"),
	}

	guests, err := gc.Guests.List(filters)
	if err != nil {
		log.Printf("list guests failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch guests.")
		return
	}
	c.JSON(http.StatusOK, guests)
}

func (gc *GuestController) GetByID(c *gin.Context) {
	guest, err := gc.Guests.GetByID(c.Param("id"))
	if err != nil {
		log.Printf("get guest failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch guest.")
		return
	}
	if guest == nil {
		utils.JSONError(c, http.StatusNotFound, "Guest not found.")
		return
	}
	c.JSON(http.StatusOK, guest)
}

type createGuestPayload struct {
	BookingID  *uint   `json:"bookingId"`
	GuestTitle *string `json:"guestTitle"`
	FirstName  string  `json:"firstName"`
	LastName   string  `json:"lastName"`
	DOB        string  `json:"dob"`
	Gender     *string `json:"gender"`
	PhoneNo    *string `json:"phoneNo"`
	Email      *string `json:"email"`
	Password   string  `json:"password"`
	PassportNo *string `json:"passportNo"`
	Address    *string `json:"address"`
	Postcode   *string `json:"postcode"`
	City       *string `json:"city"`
	Country    *string `json:"country"`
}

func (gc *GuestController) Create(c *gin.Context) {
	var payload createGuestPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload.")
		return
	}

	if payload.BookingID == nil || *payload.BookingID == 0 {
		utils.JSONError(c, http.StatusBadRequest, "Booking id is required.")
		return
	}
	if strings.TrimSpace(payload.FirstName) == "" || strings.TrimSpace(payload.LastName) == "" {
		utils.JSONError(c, http.StatusBadRequest, "First name and last name are required.")
		return
	}
	if payload.Password != "" && len(payload.Password) < 6 {
		utils.JSONError(c, http.StatusBadRequest, "Password must be at least 6 characters.")
		return
	}

	guest, err := gc.Guests.Create(services.CreateGuestInput{
		BookingID:  *payload.BookingID,
		GuestTitle: payload.GuestTitle,
		FirstName:  payload.FirstName,
		LastName:   payload.LastName,
		DOB:        payload.DOB,
		Gender:     payload.Gender,
		PhoneNo:    payload.PhoneNo,
		Email:      payload.Email,
		Password:   payload.Password,
		PassportNo: payload.PassportNo,
		Address:    payload.Address,
		Postcode:   payload.Postcode,
		City:       payload.City,
		Country:    payload.Country,
	})
	if err != nil {
		if utils.IsMissingReference(err) {
			utils.JSONError(c, http.StatusBadRequest, "Referenced booking does not exist.")
			return
		}
		log.Printf("create guest failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Failed to create guest.")
		return
	}
	c.JSON(http.StatusCreated, guest)
}

var guestKeyAliases = map[string]string{
	"guestTitle": "guest_title",
	"firstName":  "first_name",
	"lastName":   "last_name",
	"phoneNo":    "phone_no",
	"passportNo": "passport_no",
}

func (gc *GuestController) Update(c *gin.Context) {
	fields, ok := bindUpdateMap(c)
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload.")
		return
	}
	fields = remapKeys(fields, guestKeyAliases)

	// A supplied password takes the dedicated re-hash path; it never flows
	// through the generic column update.
	password, _ := fields["password"].(string)
	delete(fields, "password")

	id := c.Param("id")
	guest, err := gc.Guests.Update(id, fields)
	if err != nil {
		log.Printf("update guest failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Failed to update guest.")
		return
	}
	if guest == nil {
		utils.JSONError(c, http.StatusNotFound, "Guest not found.")
		return
	}

	if password != "" {
		if len(password) < 6 {
			utils.JSONError(c, http.StatusBadRequest, "Password must be at least 6 characters.")
			return
		}
		guest, err = gc.Guests.SetPassword(id, password)
		if err != nil {
			log.Printf("update guest password failed: %v", err)
			utils.JSONError(c, http.StatusInternalServerError, "Failed to update guest.")
			return
		}
	}
	c.JSON(http.StatusOK, guest)
}

func (gc *GuestController) Delete(c *gin.Context) {
	deleted, err := gc.Guests.Delete(c.Param("id"))
	if err != nil {
		log.Printf("delete guest failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Failed to delete guest.")
		return
	}
	if !deleted {
		utils.JSONError(c, http.StatusNotFound, "Guest not found.")
		return
	}
	c.Status(http.StatusNoContent)
}
