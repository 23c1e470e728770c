package controllers

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"hoteldesk-backend/services"
	"hoteldesk-backend/utils"
)

type ServiceController struct {
	Catalog *services.ServiceCatalogService
}

func NewServiceController(catalog *services.ServiceCatalogService) *ServiceController {
	return &ServiceController{Catalog: catalog}
}

func (sc *ServiceController) List(c *gin.Context) {
	items, err := sc.Catalog.List()
	if err != nil {
		log.Printf("list services failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch services.")
		return
	}
	c.JSON(http.StatusOK, items)
}

func (sc *ServiceController) GetByID(c *gin.Context) {
	svc, err := sc.Catalog.GetByID(c.Param("id"))
	if err != nil {
		log.Printf("get service failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch service.")
		return
	}
	if svc == nil {
		utils.JSONError(c, http.StatusNotFound, "Service not found.")
		return
	}
	c.JSON(http.StatusOK, svc)
}

type createServicePayload struct {
	ServiceName string  `json:"service_name"`
	Price       float64 `json:"price"`
	Status      *bool   `json:"status"`
}

func (sc *ServiceController) Create(c *gin.Context) {
	var payload createServicePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload.")
		return
	}
	if strings.TrimSpace(payload.ServiceName) == "" {
		utils.JSONError(c, http.StatusBadRequest, "Service name is required.")
		return
	}

	svc, err := sc.Catalog.Create(services.CreateServiceInput{
		ServiceName: payload.ServiceName,
		Price:       payload.Price,
		Status:      payload.Status,
	})
	if err != nil {
		log.Printf("create service failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Failed to create service.")
		return
	}
	c.JSON(http.StatusCreated, svc)
}

func (sc *ServiceController) Update(c *gin.Context) {
	fields, ok := bindUpdateMap(c)
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload.")
		return
	}

	svc, err := sc.Catalog.Update(c.Param("id"), fields)
	if err != nil {
		log.Printf("update service failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Failed to update service.")
		return
	}
	if svc == nil {
		utils.JSONError(c, http.StatusNotFound, "Service not found.")
		return
	}
	c.JSON(http.StatusOK, svc)
}

func (sc *ServiceController) Delete(c *gin.Context) {
	deleted, err := sc.Catalog.Delete(c.Param("id"))
	if err != nil {
		log.Printf("delete service failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Failed to delete service.")
		return
	}
	if !deleted {
		utils.JSONError(c, http.StatusNotFound, "Service not found.")
		return
	}
	c.Status(http.StatusNoContent)
}
