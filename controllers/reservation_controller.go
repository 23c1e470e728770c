package controllers

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"hoteldesk-backend/services"
	"hoteldesk-backend/utils"
)

type ReservationController struct {
	Reservations *services.ReservationService
}

func NewReservationController(reservations *services.ReservationService) *ReservationController {
	return &ReservationController{Reservations: reservations}
}

func (rc *ReservationController) List(c *gin.Context) {
	filters := services.ReservationFilters{
		Status:        c.Query("status"),
		CustomerEmail: c.Query("customerEmail"),
	}

	reservations, err := rc.Reservations.List(filters)
	if err != nil {
		log.Printf("list reservations failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch reservations.")
		return
	}
	c.JSON(http.StatusOK, reservations)
}

func (rc *ReservationController) GetByID(c *gin.Context) {
	reservation, err := rc.Reservations.GetByID(c.Param("id"))
	if err != nil {
		log.Printf("get reservation failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch reservation.")
		return
	}
	if reservation == nil {
		utils.JSONError(c, http.StatusNotFound, "Reservation not found.")
		return
	}
	c.JSON(http.StatusOK, reservation)
}

type createReservationPayload struct {
	CustomerID   *uint  `json:"customer_id"`
	CheckInDate  string `json:"check_in_date"`
	CheckOutDate string `json:"check_out_date"`
	Status       string `json:"status"`
}

func (rc *ReservationController) Create(c *gin.Context) {
	var payload createReservationPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload.")
		return
	}
	if payload.CustomerID == nil || *payload.CustomerID == 0 {
		utils.JSONError(c, http.StatusBadRequest, "Customer id is required.")
		return
	}
	if strings.TrimSpace(payload.CheckInDate) == "" || strings.TrimSpace(payload.CheckOutDate) == "" {
		utils.JSONError(c, http.StatusBadRequest, "Check-in and check-out dates are required.")
		return
	}

	reservation, err := rc.Reservations.Create(services.CreateReservationInput{
		CustomerID:   *payload.CustomerID,
		CheckInDate:  payload.CheckInDate,
		CheckOutDate: payload.CheckOutDate,
		Status:       strings.TrimSpace(payload.Status),
	})
	if err != nil {
		if utils.IsMissingReference(err) {
			utils.JSONError(c, http.StatusBadRequest, "Referenced customer does not exist.")
			return
		}
		log.Printf("create reservation failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Failed to create reservation.")
		return
	}
	c.JSON(http.StatusCreated, reservation)
}

func (rc *ReservationController) UpdateStatus(c *gin.Context) {
	var payload bookingStatusPayload
	if err := c.ShouldBindJSON(&payload); err != nil || strings.TrimSpace(payload.Status) == "" {
		utils.JSONError(c, http.StatusBadRequest, "Status is required.")
		return
	}

	reservation, err := rc.Reservations.UpdateStatus(c.Param("id"), strings.TrimSpace(payload.Status))
	if err != nil {
		log.Printf("update reservation status failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Failed to update reservation.")
		return
	}
	if reservation == nil {
		utils.JSONError(c, http.StatusNotFound, "Reservation not found.")
		return
	}
	c.JSON(http.StatusOK, reservation)
}

func (rc *ReservationController) Delete(c *gin.Context) {
	deleted, err := rc.Reservations.Delete(c.Param("id"))
	if err != nil {
		log.Printf("delete reservation failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Failed to delete reservation.")
		return
	}
	if !deleted {
		utils.JSONError(c, http.StatusNotFound, "Reservation not found.")
		return
	}
	c.Status(http.StatusNoContent)
}
