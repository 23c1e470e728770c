package controllers

import (
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"hoteldesk-backend/services"
	"hoteldesk-backend/utils"
)

type AuditLogController struct {
	Logs *services.AuditLogService
}

func NewAuditLogController(logs *services.AuditLogService) *AuditLogController {
	return &AuditLogController{Logs: logs}
}

func (lc *AuditLogController) List(c *gin.Context) {
	filters := services.AuditLogFilters{UserID: c.Query("userId")}
	if raw := c.Query("limit"); raw != "" {
		if limit, err := strconv.Atoi(raw); err == nil && limit > 0 {
			filters.Limit = limit
		}
	}

	logs, err := lc.Logs.List(filters)
	if err != nil {
		log.Printf("list audit logs failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch audit logs.")
		return
	}
	c.JSON(http.StatusOK, logs)
}

type createAuditLogPayload struct {
	UserID *uint  `json:"user_id"`
	Action string `json:"action"`
}

func (lc *AuditLogController) Create(c *gin.Context) {
	var payload createAuditLogPayload
	if err := c.ShouldBindJSON(&payload); err != nil || strings.TrimSpace(payload.Action) == "" {
		utils.JSONError(c, http.StatusBadRequest, "Action is required.")
		return
	}

	entry, err := lc.Logs.Record(payload.UserID, strings.TrimSpace(payload.Action))
	if err != nil {
		if utils.IsMissingReference(err) {
			utils.JSONError(c, http.StatusBadRequest, "Referenced user does not exist.")
			return
		}
		log.Printf("create audit log failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Failed to record audit log.")
		return
	}
	c.JSON(http.StatusCreated, entry)
}

func (lc *AuditLogController) GetByID(c *gin.Context) {
	entry, err := lc.Logs.GetByID(c.Param("id"))
	if err != nil {
		log.Printf("fetch audit log failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch audit log.")
		return
	}
	if entry == nil {
		utils.JSONError(c, http.StatusNotFound, "Audit log not found.")
		return
	}
	c.JSON(http.StatusOK, entry)
}

func (lc *AuditLogController) Delete(c *gin.Context) {
	deleted, err := lc.Logs.Delete(c.Param("id"))
	if err != nil {
		log.Printf("delete audit log failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Failed to delete audit log.")
		return
	}
	if !deleted {
		utils.JSONError(c, http.StatusNotFound, "Audit log not found.")
		return
	}
	c.Status(http.StatusNoContent)
}
