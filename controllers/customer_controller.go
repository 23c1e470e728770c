package controllers

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"hoteldesk-backend/services"
	"hoteldesk-backend/utils"
)

type CustomerController struct {
	Customers *services.CustomerService
}

func NewCustomerController(customers *services.CustomerService) *CustomerController {
	return &CustomerController{Customers: customers}
}

type customerRegisterPayload struct {
	FullName string  `json:"full_name"`
	Gender   *string `json:"gender"`
	Phone    *string `json:"phone"`
	Email    string  `json:"email"`
	IDCard   *string `json:"id_card"`
	Address  *string `json:"address"`
	Password string  `json:"password"`
}

func (cc *CustomerController) Register(c *gin.Context) {
	var payload customerRegisterPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload.")
		return
	}

	if strings.TrimSpace(payload.FullName) == "" || strings.TrimSpace(payload.Email) == "" || payload.Password == "" {
		utils.JSONError(c, http.StatusBadRequest, "Full name, email and password are required.")
		return
	}
	if len(payload.Password) < 6 {
		utils.JSONError(c, http.StatusBadRequest, "Password must be at least 6 characters.")
		return
	}

	customer, err := cc.Customers.Create(services.CreateCustomerInput{
		FullName: payload.FullName,
		Gender:   payload.Gender,
		Phone:    payload.Phone,
		Email:    payload.Email,
		IDCard:   payload.IDCard,
		Address:  payload.Address,
		Password: payload.Password,
	})
	if err != nil {
		if utils.IsDuplicateEntry(err) {
			utils.JSONError(c, http.StatusConflict, "An account with this email already exists.")
			return
		}
		log.Printf("customer register failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Failed to create account.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"customer": customer})
}

func (cc *CustomerController) Login(c *gin.Context) {
	var payload loginPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload.")
		return
	}
	if strings.TrimSpace(payload.Email) == "" || payload.Password == "" {
		utils.JSONError(c, http.StatusBadRequest, "Email and password are required.")
		return
	}

	customer, err := cc.Customers.FindByEmail(payload.Email)
	if err != nil {
		log.Printf("customer login lookup failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Login failed.")
		return
	}
	if customer == nil || !cc.Customers.VerifyPassword(payload.Password, customer.PasswordHash) {
		utils.JSONError(c, http.StatusUnauthorized, "Invalid email or password.")
		return
	}

	resp, err := cc.Customers.GetByID(idParamFromUint(customer.ID))
	if err != nil || resp == nil {
		log.Printf("customer login refetch failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Login failed.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"customer": resp})
}

func (cc *CustomerController) List(c *gin.Context) {
	customers, err := cc.Customers.List()
	if err != nil {
		log.Printf("list customers failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch customers.")
		return
	}
	c.JSON(http.StatusOK, customers)
}

func (cc *CustomerController) GetByID(c *gin.Context) {
	customer, err := cc.Customers.GetByID(c.Param("id"))
	if err != nil {
		log.Printf("get customer failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch customer.")
		return
	}
	if customer == nil {
		utils.JSONError(c, http.StatusNotFound, "Customer not found.")
		return
	}
	c.JSON(http.StatusOK, customer)
}

func (cc *CustomerController) Update(c *gin.Context) {
	fields, ok := bindUpdateMap(c)
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload.")
		return
	}

	customer, err := cc.Customers.Update(c.Param("id"), fields)
	if err != nil {
		if utils.IsDuplicateEntry(err) {
			utils.JSONError(c, http.StatusConflict, "An account with this email already exists.")
			return
		}
		log.Printf("update customer failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Failed to update customer.")
		return
	}
	if customer == nil {
		utils.JSONError(c, http.StatusNotFound, "Customer not found.")
		return
	}
	c.JSON(http.StatusOK, customer)
}

func (cc *CustomerController) Delete(c *gin.Context) {
	deleted, err := cc.Customers.Delete(c.Param("id"))
	if err != nil {
		log.Printf("delete customer failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Failed to delete customer.")
		return
	}
	if !deleted {
		utils.JSONError(c, http.StatusNotFound, "Customer not found.")
		return
	}
	c.Status(http.StatusNoContent)
}
