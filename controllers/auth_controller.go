package controllers

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"hoteldesk-backend/services"
	"hoteldesk-backend/utils"
)

// AuthController handles staff registration and login. Authentication is
// credential verification only; no session or token is issued.
type AuthController struct {
	Users *services.UserService
}

func NewAuthController(users *services.UserService) *AuthController {
	return &AuthController{Users: users}
}

type registerPayload struct {
	Name     string  `json:"name"`
	Email    string  `json:"email"`
	Password string  `json:"password"`
	Username *string `json:"username"`
	FullName *string `json:"full_name"`
	Phone    *string `json:"phone"`
	RoleID   *uint   `json:"role_id"`
	Status   *int    `json:"status"`
}

type loginPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (ac *AuthController) Register(c *gin.Context) {
	var payload registerPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload.")
		return
	}

	if strings.TrimSpace(payload.Name) == "" || strings.TrimSpace(payload.Email) == "" || payload.Password == "" {
		utils.JSONError(c, http.StatusBadRequest, "Name, email and password are required.")
		return
	}
	if len(payload.Password) < 6 {
		utils.JSONError(c, http.StatusBadRequest, "Password must be at least 6 characters.")
		return
	}

	user, err := ac.Users.Create(services.CreateUserInput{
		Name:     payload.Name,
		Email:    payload.Email,
		Password: payload.Password,
		Username: payload.Username,
		FullName: payload.FullName,
		Phone:    payload.Phone,
		RoleID:   payload.RoleID,
		Status:   payload.Status,
	})
	if err != nil {
		if utils.IsDuplicateEntry(err) {
			utils.JSONError(c, http.StatusConflict, "An account with this email already exists.")
			return
		}
		log.Printf("register failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Failed to create account.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"user": user})
}

// Login answers the same 401 for an unknown email and a wrong password,
// so the endpoint cannot be used to probe which accounts exist.
func (ac *AuthController) Login(c *gin.Context) {
	var payload loginPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload.")
		return
	}
	if strings.TrimSpace(payload.Email) == "" || payload.Password == "" {
		utils.JSONError(c, http.StatusBadRequest, "Email and password are required.")
		return
	}

	user, err := ac.Users.FindByEmail(payload.Email)
	if err != nil {
		log.Printf("login lookup failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Login failed.")
		return
	}
	if user == nil || !ac.Users.VerifyPassword(payload.Password, user.PasswordHash) {
		utils.JSONError(c, http.StatusUnauthorized, "Invalid email or password.")
		return
	}

	resp, err := ac.Users.GetByID(idParamFromUint(user.ID))
	if err != nil || resp == nil {
		log.Printf("login refetch failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Login failed.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": resp})
}
