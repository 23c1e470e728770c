package controllers

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"hoteldesk-backend/services"
	"hoteldesk-backend/utils"
)

type RoleController struct {
	Roles *services.RoleService
}

func NewRoleController(roles *services.RoleService) *RoleController {
	return &RoleController{Roles: roles}
}

func (rc *RoleController) List(c *gin.Context) {
	roles, err := rc.Roles.List()
	if err != nil {
		log.Printf("list roles failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch roles.")
		return
	}
	c.JSON(http.StatusOK, roles)
}

func (rc *RoleController) GetByID(c *gin.Context) {
	role, err := rc.Roles.GetByID(c.Param("id"))
	if err != nil {
		log.Printf("get role failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch role.")
		return
	}
	if role == nil {
		utils.JSONError(c, http.StatusNotFound, "Role not found.")
		return
	}
	c.JSON(http.StatusOK, role)
}

type rolePayload struct {
	Name string `json:"name"`
}

func (rc *RoleController) Create(c *gin.Context) {
	var payload rolePayload
	if err := c.ShouldBindJSON(&payload); err != nil || strings.TrimSpace(payload.Name) == "" {
		utils.JSONError(c, http.StatusBadRequest, "Role name is required.")
		return
	}

	role, err := rc.Roles.Create(payload.Name)
	if err != nil {
		if utils.IsDuplicateEntry(err) {
			utils.JSONError(c, http.StatusConflict, "A role with this name already exists.")
			return
		}
		log.Printf("create role failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Failed to create role.")
		return
	}
	c.JSON(http.StatusCreated, role)
}

func (rc *RoleController) Update(c *gin.Context) {
	var payload rolePayload
	if err := c.ShouldBindJSON(&payload); err != nil || strings.TrimSpace(payload.Name) == "" {
		utils.JSONError(c, http.StatusBadRequest, "Role name is required.")
		return
	}

	role, err := rc.Roles.Update(c.Param("id"), payload.Name)
	if err != nil {
		if utils.IsDuplicateEntry(err) {
			utils.JSONError(c, http.StatusConflict, "A role with this name already exists.")
			return
		}
		log.Printf("update role failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Failed to update role.")
		return
	}
	if role == nil {
		utils.JSONError(c, http.StatusNotFound, "Role not found.")
		return
	}
	c.JSON(http.StatusOK, role)
}

func (rc *RoleController) Delete(c *gin.Context) {
	deleted, err := rc.Roles.Delete(c.Param("id"))
	if err != nil {
		log.Printf("delete role failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Failed to delete role.")
		return
	}
	if !deleted {
		utils.JSONError(c, http.StatusNotFound, "Role not found.")
		return
	}
	c.Status(http.StatusNoContent)
}
