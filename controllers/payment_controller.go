package controllers

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"hoteldesk-backend/services"
	"hoteldesk-backend/utils"
)

type PaymentController struct {
	Payments *services.PaymentService
}

func NewPaymentController(payments *services.PaymentService) *PaymentController {
	return &PaymentController{Payments: payments}
}

func (pc *PaymentController) List(c *gin.Context) {
	payments, err := pc.Payments.List()
	if err != nil {
		log.Printf("list payments failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch payments.")
		return
	}
	c.JSON(http.StatusOK, payments)
}

func (pc *PaymentController) GetByID(c *gin.Context) {
	payment, err := pc.Payments.GetByID(c.Param("id"))
	if err != nil {
		log.Printf("get payment failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch payment.")
		return
	}
	if payment == nil {
		utils.JSONError(c, http.StatusNotFound, "Payment not found.")
		return
	}
	c.JSON(http.StatusOK, payment)
}

type createPaymentPayload struct {
	InvoiceID     *uint    `json:"invoice_id"`
	PaymentMethod string   `json:"payment_method"`
	Amount        *float64 `json:"amount"`
}

func (pc *PaymentController) Create(c *gin.Context) {
	var payload createPaymentPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload.")
		return
	}
	if payload.InvoiceID == nil || *payload.InvoiceID == 0 ||
		strings.TrimSpace(payload.PaymentMethod) == "" || payload.Amount == nil {
		utils.JSONError(c, http.StatusBadRequest, "Invoice id, payment method and amount are required.")
		return
	}

	payment, err := pc.Payments.Create(services.CreatePaymentInput{
		InvoiceID:     *payload.InvoiceID,
		PaymentMethod: strings.TrimSpace(payload.PaymentMethod),
		Amount:        *payload.Amount,
	})
	if err != nil {
		if utils.IsMissingReference(err) {
			utils.JSONError(c, http.StatusBadRequest, "Referenced invoice does not exist.")
			return
		}
		log.Printf("create payment failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Failed to create payment.")
		return
	}
	c.JSON(http.StatusCreated, payment)
}

func (pc *PaymentController) Delete(c *gin.Context) {
	deleted, err := pc.Payments.Delete(c.Param("id"))
	if err != nil {
		log.Printf("delete payment failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Failed to delete payment.")
		return
	}
	if !deleted {
		utils.JSONError(c, http.StatusNotFound, "Payment not found.")
		return
	}
	c.Status(http.StatusNoContent)
}
