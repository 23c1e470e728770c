package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"hoteldesk-backend/services"
	"hoteldesk-backend/utils"
)

type CheckinController struct {
	Checkins *services.CheckinService
}

func NewCheckinController(checkins *services.CheckinService) *CheckinController {
	return &CheckinController{Checkins: checkins}
}

func (cc *CheckinController) List(c *gin.Context) {
	checkins, err := cc.Checkins.List(services.CheckinFilters{Status: c.Query("status")})
	if err != nil {
		log.Printf("list checkins failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch check-ins.")
		return
	}
	c.JSON(http.StatusOK, checkins)
}

func (cc *CheckinController) GetByID(c *gin.Context) {
	ci, err := cc.Checkins.GetByID(c.Param("id"))
	if err != nil {
		log.Printf("get checkin failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch check-in.")
		return
	}
	if ci == nil {
		utils.JSONError(c, http.StatusNotFound, "Check-in not found.")
		return
	}
	c.JSON(http.StatusOK, ci)
}

type createCheckinPayload struct {
	ReservationID   *uint  `json:"reservation_id"`
	CheckinDatetime string `json:"checkin_datetime"`
	Status          string `json:"status"`
}

func (cc *CheckinController) Create(c *gin.Context) {
	var payload createCheckinPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload.")
		return
	}
	if payload.ReservationID == nil || *payload.ReservationID == 0 {
		utils.JSONError(c, http.StatusBadRequest, "Reservation id is required.")
		return
	}

	ci, err := cc.Checkins.Create(services.CreateCheckinInput{
		ReservationID:   *payload.ReservationID,
		CheckinDatetime: payload.CheckinDatetime,
		Status:          payload.Status,
	})
	if err != nil {
		if utils.IsMissingReference(err) {
			utils.JSONError(c, http.StatusBadRequest, "Referenced reservation does not exist.")
			return
		}
		log.Printf("create checkin failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Failed to create check-in.")
		return
	}
	c.JSON(http.StatusCreated, ci)
}

func (cc *CheckinController) Update(c *gin.Context) {
	fields, ok := bindUpdateMap(c)
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload.")
		return
	}

	ci, err := cc.Checkins.Update(c.Param("id"), fields)
	if err != nil {
		log.Printf("update checkin failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Failed to update check-in.")
		return
	}
	if ci == nil {
		utils.JSONError(c, http.StatusNotFound, "Check-in not found.")
		return
	}
	c.JSON(http.StatusOK, ci)
}

func (cc *CheckinController) Delete(c *gin.Context) {
	deleted, err := cc.Checkins.Delete(c.Param("id"))
	if err != nil {
		log.Printf("delete checkin failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Failed to delete check-in.")
		return
	}
	if !deleted {
		utils.JSONError(c, http.StatusNotFound, "Check-in not found.")
		return
	}
	c.Status(http.StatusNoContent)
}
