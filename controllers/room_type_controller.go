package controllers

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"hoteldesk-backend/services"
	"hoteldesk-backend/utils"
)

type RoomTypeController struct {
	RoomTypes *services.RoomTypeService
}

func NewRoomTypeController(roomTypes *services.RoomTypeService) *RoomTypeController {
	return &RoomTypeController{RoomTypes: roomTypes}
}

func (rc *RoomTypeController) List(c *gin.Context) {
	types, err := rc.RoomTypes.List()
	if err != nil {
		log.Printf("list room types failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch room types.")
		return
	}
	c.JSON(http.StatusOK, types)
}

func (rc *RoomTypeController) GetByID(c *gin.Context) {
	rt, err := rc.RoomTypes.GetByID(c.Param("id"))
	if err != nil {
		log.Printf("get room type failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch room type.")
		return
	}
	if rt == nil {
		utils.JSONError(c, http.StatusNotFound, "Room type not found.")
		return
	}
	c.JSON(http.StatusOK, rt)
}

type createRoomTypePayload struct {
	TypeName    string  `json:"type_name"`
	Description *string `json:"description"`
	Price       float64 `json:"price"`
	MaxPerson   int     `json:"max_person"`
}

func (rc *RoomTypeController) Create(c *gin.Context) {
	var payload createRoomTypePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload.")
		return
	}
	if strings.TrimSpace(payload.TypeName) == "" {
		utils.JSONError(c, http.StatusBadRequest, "Type name is required.")
		return
	}

	rt, err := rc.RoomTypes.Create(services.CreateRoomTypeInput{
		TypeName:    strings.TrimSpace(payload.TypeName),
		Description: payload.Description,
		Price:       payload.Price,
		MaxPerson:   payload.MaxPerson,
	})
	if err != nil {
		log.Printf("create room type failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Failed to create room type.")
		return
	}
	c.JSON(http.StatusCreated, rt)
}

func (rc *RoomTypeController) Update(c *gin.Context) {
	fields, ok := bindUpdateMap(c)
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload.")
		return
	}

	rt, err := rc.RoomTypes.Update(c.Param("id"), fields)
	if err != nil {
		log.Printf("update room type failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Failed to update room type.")
		return
	}
	if rt == nil {
		utils.JSONError(c, http.StatusNotFound, "Room type not found.")
		return
	}
	c.JSON(http.StatusOK, rt)
}

func (rc *RoomTypeController) Delete(c *gin.Context) {
	deleted, err := rc.RoomTypes.Delete(c.Param("id"))
	if err != nil {
		log.Printf("delete room type failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Failed to delete room type.")
		return
	}
	if !deleted {
		utils.JSONError(c, http.StatusNotFound, "Room type not found.")
		return
	}
	c.Status(http.StatusNoContent)
}
