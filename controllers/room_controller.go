package controllers

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"hoteldesk-backend/services"
	"hoteldesk-backend/utils"
)

type RoomController struct {
	Rooms *services.RoomService
}

func NewRoomController(rooms *services.RoomService) *RoomController {
	return &RoomController{Rooms: rooms}
}

func (rc *RoomController) List(c *gin.Context) {
	filters := services.RoomFilters{Type: c.Query("type")}
	if raw := c.Query("available"); raw != "" {
		available := raw == "true" || raw == "1"
		filters.Available = &available
	}

	rooms, err := rc.Rooms.List(filters)
	if err != nil {
		log.Printf("list rooms failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch rooms.")
		return
	}
	c.JSON(http.StatusOK, rooms)
}

func (rc *RoomController) GetByID(c *gin.Context) {
	room, err := rc.Rooms.GetByID(c.Param("id"))
	if err != nil {
		log.Printf("get room failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch room.")
		return
	}
	if room == nil {
		utils.JSONError(c, http.StatusNotFound, "Room not found.")
		return
	}
	c.JSON(http.StatusOK, room)
}

type createRoomPayload struct {
	Name      string   `json:"name"`
	Type      *uint    `json:"type"`
	Price     float64  `json:"price"`
	Capacity  int      `json:"capacity"`
	Amenities []string `json:"amenities"`
	Image     *string  `json:"image"`
	Available *bool    `json:"available"`
}

func (rc *RoomController) Create(c *gin.Context) {
	var payload createRoomPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload.")
		return
	}
	if strings.TrimSpace(payload.Name) == "" {
		utils.JSONError(c, http.StatusBadRequest, "Room name is required.")
		return
	}

	available := true
	if payload.Available != nil {
		available = *payload.Available
	}
	room, err := rc.Rooms.Create(services.CreateRoomInput{
		Name:       strings.TrimSpace(payload.Name),
		RoomTypeID: payload.Type,
		Price:      payload.Price,
		Capacity:   payload.Capacity,
		Amenities:  payload.Amenities,
		Image:      payload.Image,
		Available:  available,
	})
	if err != nil {
		log.Printf("create room failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Failed to create room.")
		return
	}
	c.JSON(http.StatusCreated, room)
}

var roomKeyAliases = map[string]string{
	"type":       "room_type_id",
	"roomTypeId": "room_type_id",
}

func (rc *RoomController) Update(c *gin.Context) {
	fields, ok := bindUpdateMap(c)
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload.")
		return
	}
	fields = remapKeys(fields, roomKeyAliases)

	room, err := rc.Rooms.Update(c.Param("id"), fields)
	if err != nil {
		log.Printf("update room failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Failed to update room.")
		return
	}
	if room == nil {
		utils.JSONError(c, http.StatusNotFound, "Room not found.")
		return
	}
	c.JSON(http.StatusOK, room)
}

func (rc *RoomController) Delete(c *gin.Context) {
	deleted, err := rc.Rooms.Delete(c.Param("id"))
	if err != nil {
		log.Printf("delete room failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Failed to delete room.")
		return
	}
	if !deleted {
		utils.JSONError(c, http.StatusNotFound, "Room not found.")
		return
	}
	c.Status(http.StatusNoContent)
}
