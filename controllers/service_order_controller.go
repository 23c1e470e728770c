package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"hoteldesk-backend/services"
	"hoteldesk-backend/utils"
)

type ServiceOrderController struct {
	Orders *services.ServiceOrderService
}

func NewServiceOrderController(orders *services.ServiceOrderService) *ServiceOrderController {
	return &ServiceOrderController{Orders: orders}
}

func (oc *ServiceOrderController) List(c *gin.Context) {
	orders, err := oc.Orders.List(services.ServiceOrderFilters{CheckinID: c.Query("checkinId")})
	if err != nil {
		log.Printf("list service orders failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch service orders.")
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (oc *ServiceOrderController) GetByID(c *gin.Context) {
	order, err := oc.Orders.GetByID(c.Param("id"))
	if err != nil {
		log.Printf("get service order failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch service order.")
		return
	}
	if order == nil {
		utils.JSONError(c, http.StatusNotFound, "Service order not found.")
		return
	}
	c.JSON(http.StatusOK, order)
}

type createServiceOrderPayload struct {
	CheckinID  *uint    `json:"checkin_id"`
	ServiceID  *uint    `json:"service_id"`
	Quantity   int      `json:"quantity"`
	TotalPrice *float64 `json:"total_price"`
}

func (oc *ServiceOrderController) Create(c *gin.Context) {
	var payload createServiceOrderPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload.")
		return
	}
	if payload.CheckinID == nil || *payload.CheckinID == 0 ||
		payload.ServiceID == nil || *payload.ServiceID == 0 {
		utils.JSONError(c, http.StatusBadRequest, "Check-in id and service id are required.")
		return
	}

	order, err := oc.Orders.Create(services.CreateServiceOrderInput{
		CheckinID:  *payload.CheckinID,
		ServiceID:  *payload.ServiceID,
		Quantity:   payload.Quantity,
		TotalPrice: payload.TotalPrice,
	})
	if err != nil {
		if utils.IsMissingReference(err) {
			utils.JSONError(c, http.StatusBadRequest, "Referenced check-in or service does not exist.")
			return
		}
		log.Printf("create service order failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Failed to create service order.")
		return
	}
	c.JSON(http.StatusCreated, order)
}

func (oc *ServiceOrderController) Delete(c *gin.Context) {
	deleted, err := oc.Orders.Delete(c.Param("id"))
	if err != nil {
		log.Printf("delete service order failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Failed to delete service order.")
		return
	}
	if !deleted {
		utils.JSONError(c, http.StatusNotFound, "Service order not found.")
		return
	}
	c.Status(http.StatusNoContent)
}
