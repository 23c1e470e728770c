package controllers

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"hoteldesk-backend/services"
	"hoteldesk-backend/utils"
)

type HousekeepingController struct {
	Housekeeping *services.HousekeepingService
}

func NewHousekeepingController(hk *services.HousekeepingService) *HousekeepingController {
	return &HousekeepingController{Housekeeping: hk}
}

func (hc *HousekeepingController) List(c *gin.Context) {
	rows, err := hc.Housekeeping.List(services.HousekeepingFilters{
		RoomID: c.Query("roomId"),
		Status: c.Query("status"),
	})
	if err != nil {
		log.Printf("list housekeeping failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch housekeeping tasks.")
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (hc *HousekeepingController) GetByID(c *gin.Context) {
	row, err := hc.Housekeeping.GetByID(c.Param("id"))
	if err != nil {
		log.Printf("get housekeeping failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch housekeeping task.")
		return
	}
	if row == nil {
		utils.JSONError(c, http.StatusNotFound, "Housekeeping task not found.")
		return
	}
	c.JSON(http.StatusOK, row)
}

type createHousekeepingPayload struct {
	RoomID    *uint  `json:"room_id"`
	StaffName string `json:"staff_name"`
	Status    string `json:"status"`
}

func (hc *HousekeepingController) Create(c *gin.Context) {
	var payload createHousekeepingPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload.")
		return
	}
	if payload.RoomID == nil || *payload.RoomID == 0 ||
		strings.TrimSpace(payload.StaffName) == "" || strings.TrimSpace(payload.Status) == "" {
		utils.JSONError(c, http.StatusBadRequest, "Room id, staff name and status are required.")
		return
	}

	row, err := hc.Housekeeping.Create(services.CreateHousekeepingInput{
		RoomID:    *payload.RoomID,
		StaffName: strings.TrimSpace(payload.StaffName),
		Status:    strings.TrimSpace(payload.Status),
	})
	if err != nil {
		if utils.IsMissingReference(err) {
			utils.JSONError(c, http.StatusBadRequest, "Referenced room does not exist.")
			return
		}
		log.Printf("create housekeeping failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Failed to create housekeeping task.")
		return
	}
	c.JSON(http.StatusCreated, row)
}

func (hc *HousekeepingController) Update(c *gin.Context) {
	fields, ok := bindUpdateMap(c)
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload.")
		return
	}

	row, err := hc.Housekeeping.Update(c.Param("id"), fields)
	if err != nil {
		log.Printf("update housekeeping failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Failed to update housekeeping task.")
		return
	}
	if row == nil {
		utils.JSONError(c, http.StatusNotFound, "Housekeeping task not found.")
		return
	}
	c.JSON(http.StatusOK, row)
}

func (hc *HousekeepingController) Delete(c *gin.Context) {
	deleted, err := hc.Housekeeping.Delete(c.Param("id"))
	if err != nil {
		log.Printf("delete housekeeping failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Failed to delete housekeeping task.")
		return
	}
	if !deleted {
		utils.JSONError(c, http.StatusNotFound, "Housekeeping task not found.")
		return
	}
	c.Status(http.StatusNoContent)
}
