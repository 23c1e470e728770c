package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"hoteldesk-backend/services"
	"hoteldesk-backend/utils"
)

type InvoiceController struct {
	Invoices *services.InvoiceService
}

func NewInvoiceController(invoices *services.InvoiceService) *InvoiceController {
	return &InvoiceController{Invoices: invoices}
}

func (ic *InvoiceController) List(c *gin.Context) {
	invoices, err := ic.Invoices.List()
	if err != nil {
		log.Printf("list invoices failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch invoices.")
		return
	}
	c.JSON(http.StatusOK, invoices)
}

func (ic *InvoiceController) GetByID(c *gin.Context) {
	invoice, err := ic.Invoices.GetByID(c.Param("id"))
	if err != nil {
		log.Printf("get invoice failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch invoice.")
		return
	}
	if invoice == nil {
		utils.JSONError(c, http.StatusNotFound, "Invoice not found.")
		return
	}
	c.JSON(http.StatusOK, invoice)
}

type createInvoicePayload struct {
	CheckinID     *uint    `json:"checkin_id"`
	RoomCharge    float64  `json:"room_charge"`
	ServiceCharge float64  `json:"service_charge"`
	TotalAmount   *float64 `json:"total_amount"`
}

func (ic *InvoiceController) Create(c *gin.Context) {
	var payload createInvoicePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload.")
		return
	}
	if payload.CheckinID == nil || *payload.CheckinID == 0 {
		utils.JSONError(c, http.StatusBadRequest, "Check-in id is required.")
		return
	}

	invoice, err := ic.Invoices.Create(services.CreateInvoiceInput{
		CheckinID:     *payload.CheckinID,
		RoomCharge:    payload.RoomCharge,
		ServiceCharge: payload.ServiceCharge,
		TotalAmount:   payload.TotalAmount,
	})
	if err != nil {
		if utils.IsMissingReference(err) {
			utils.JSONError(c, http.StatusBadRequest, "Referenced check-in does not exist.")
			return
		}
		log.Printf("create invoice failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Failed to create invoice.")
		return
	}
	c.JSON(http.StatusCreated, invoice)
}

func (ic *InvoiceController) Update(c *gin.Context) {
	fields, ok := bindUpdateMap(c)
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload.")
		return
	}

	invoice, err := ic.Invoices.Update(c.Param("id"), fields)
	if err != nil {
		log.Printf("update invoice failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Failed to update invoice.")
		return
	}
	if invoice == nil {
		utils.JSONError(c, http.StatusNotFound, "Invoice not found.")
		return
	}
	c.JSON(http.StatusOK, invoice)
}

func (ic *InvoiceController) Delete(c *gin.Context) {
	deleted, err := ic.Invoices.Delete(c.Param("id"))
	if err != nil {
		log.Printf("delete invoice failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Failed to delete invoice.")
		return
	}
	if !deleted {
		utils.JSONError(c, http.StatusNotFound, "Invoice not found.")
		return
	}
	c.Status(http.StatusNoContent)
}
