package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"hoteldesk-backend/services"
	"hoteldesk-backend/utils"
)

type ReservationRoomController struct {
	ReservationRooms *services.ReservationRoomService
}

func NewReservationRoomController(rr *services.ReservationRoomService) *ReservationRoomController {
	return &ReservationRoomController{ReservationRooms: rr}
}

func (rc *ReservationRoomController) List(c *gin.Context) {
	rows, err := rc.ReservationRooms.List()
	if err != nil {
		log.Printf("list reservation rooms failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch reservation rooms.")
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (rc *ReservationRoomController) GetByID(c *gin.Context) {
	row, err := rc.ReservationRooms.GetByID(c.Param("id"))
	if err != nil {
		log.Printf("get reservation room failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch reservation room.")
		return
	}
	if row == nil {
		utils.JSONError(c, http.StatusNotFound, "Reservation room not found.")
		return
	}
	c.JSON(http.StatusOK, row)
}

type createReservationRoomPayload struct {
	ReservationID *uint   `json:"reservation_id"`
	RoomID        *uint   `json:"room_id"`
	Price         float64 `json:"price"`
}

func (rc *ReservationRoomController) Create(c *gin.Context) {
	var payload createReservationRoomPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload.")
		return
	}
	if payload.ReservationID == nil || *payload.ReservationID == 0 ||
		payload.RoomID == nil || *payload.RoomID == 0 {
		utils.JSONError(c, http.StatusBadRequest, "Reservation id and room id are required.")
		return
	}

	row, err := rc.ReservationRooms.Create(*payload.ReservationID, *payload.RoomID, payload.Price)
	if err != nil {
		if utils.IsMissingReference(err) {
			utils.JSONError(c, http.StatusBadRequest, "Referenced reservation or room does not exist.")
			return
		}
		log.Printf("create reservation room failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Failed to create reservation room.")
		return
	}
	c.JSON(http.StatusCreated, row)
}

func (rc *ReservationRoomController) Delete(c *gin.Context) {
	deleted, err := rc.ReservationRooms.Delete(c.Param("id"))
	if err != nil {
		log.Printf("delete reservation room failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Failed to delete reservation room.")
		return
	}
	if !deleted {
		utils.JSONError(c, http.StatusNotFound, "Reservation room not found.")
		return
	}
	c.Status(http.StatusNoContent)
}
