package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"hoteldesk-backend/services"
	"hoteldesk-backend/utils"
)

type UserController struct {
	Users *services.UserService
}

func NewUserController(users *services.UserService) *UserController {
	return &UserController{Users: users}
}

func (uc *UserController) List(c *gin.Context) {
	users, err := uc.Users.List()
	if err != nil {
		log.Printf("list users failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch users.")
		return
	}
	c.JSON(http.StatusOK, users)
}

func (uc *UserController) GetByID(c *gin.Context) {
	user, err := uc.Users.GetByID(c.Param("id"))
	if err != nil {
		log.Printf("get user failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch user.")
		return
	}
	if user == nil {
		utils.JSONError(c, http.StatusNotFound, "User not found.")
		return
	}
	c.JSON(http.StatusOK, user)
}

// Create shares the register payload and validation; the admin screen
// posts here instead of /auth/register.
func (uc *UserController) Create(c *gin.Context) {
	ac := AuthController{Users: uc.Users}
	ac.Register(c)
}

func (uc *UserController) Update(c *gin.Context) {
	fields, ok := bindUpdateMap(c)
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload.")
		return
	}

	user, err := uc.Users.Update(c.Param("id"), fields)
	if err != nil {
		if utils.IsDuplicateEntry(err) {
			utils.JSONError(c, http.StatusConflict, "An account with this email already exists.")
			return
		}
		log.Printf("update user failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Failed to update user.")
		return
	}
	if user == nil {
		utils.JSONError(c, http.StatusNotFound, "User not found.")
		return
	}
	c.JSON(http.StatusOK, user)
}

func (uc *UserController) Delete(c *gin.Context) {
	deleted, err := uc.Users.Delete(c.Param("id"))
	if err != nil {
		log.Printf("delete user failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Failed to delete user.")
		return
	}
	if !deleted {
		utils.JSONError(c, http.StatusNotFound, "User not found.")
		return
	}
	c.Status(http.StatusNoContent)
}
