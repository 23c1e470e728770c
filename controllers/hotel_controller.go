package controllers

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"hoteldesk-backend/models"
	"hoteldesk-backend/services"
	"hoteldesk-backend/utils"
)

type HotelController struct {
	Hotels *services.HotelService
}

func NewHotelController(hotels *services.HotelService) *HotelController {
	return &HotelController{Hotels: hotels}
}

func (hc *HotelController) List(c *gin.Context) {
	hotels, err := hc.Hotels.List()
	if err != nil {
		log.Printf("list hotels failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch hotels.")
		return
	}
	c.JSON(http.StatusOK, hotels)
}

func (hc *HotelController) GetByID(c *gin.Context) {
	hotel, err := hc.Hotels.GetByID(c.Param("id"))
	if err != nil {
		log.Printf("get hotel failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch hotel.")
		return
	}
	if hotel == nil {
		utils.JSONError(c, http.StatusNotFound, "Hotel not found.")
		return
	}
	c.JSON(http.StatusOK, hotel)
}

type createHotelPayload struct {
	HotelCode  string  `json:"hotelCode"`
	HotelName  string  `json:"hotelName"`
	Address    *string `json:"address"`
	Postcode   *string `json:"postcode"`
	City       *string `json:"city"`
	Country    *string `json:"country"`
	NumRooms   *int    `json:"numRooms"`
	PhoneNo    *string `json:"phoneNo"`
	StarRating *int    `json:"starRating"`
}

func (hc *HotelController) Create(c *gin.Context) {
	var payload createHotelPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload.")
		return
	}
	if strings.TrimSpace(payload.HotelCode) == "" || strings.TrimSpace(payload.HotelName) == "" {
		utils.JSONError(c, http.StatusBadRequest, "Hotel code and hotel name are required.")
		return
	}

	hotel, err := hc.Hotels.Create(&models.Hotel{
		HotelCode:  strings.TrimSpace(payload.HotelCode),
		HotelName:  strings.TrimSpace(payload.HotelName),
		Address:    payload.Address,
		Postcode:   payload.Postcode,
		City:       payload.City,
		Country:    payload.Country,
		NumRooms:   payload.NumRooms,
		PhoneNo:    payload.PhoneNo,
		StarRating: payload.StarRating,
	})
	if err != nil {
		if utils.IsDuplicateEntry(err) {
			utils.JSONError(c, http.StatusConflict, "A hotel with this code already exists.")
			return
		}
		log.Printf("create hotel failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Failed to create hotel.")
		return
	}
	c.JSON(http.StatusCreated, hotel)
}

var hotelKeyAliases = map[string]string{
	"hotelCode":  "hotel_code",
	"hotelName":  "hotel_name",
	"numRooms":   "num_rooms",
	"phoneNo":    "phone_no",
	"starRating": "star_rating",
}

func (hc *HotelController) Update(c *gin.Context) {
	fields, ok := bindUpdateMap(c)
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload.")
		return
	}
	fields = remapKeys(fields, hotelKeyAliases)

	hotel, err := hc.Hotels.Update(c.Param("id"), fields)
	if err != nil {
		if utils.IsDuplicateEntry(err) {
			utils.JSONError(c, http.StatusConflict, "A hotel with this code already exists.")
			return
		}
		log.Printf("update hotel failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Failed to update hotel.")
		return
	}
	if hotel == nil {
		utils.JSONError(c, http.StatusNotFound, "Hotel not found.")
		return
	}
	c.JSON(http.StatusOK, hotel)
}

func (hc *HotelController) Delete(c *gin.Context) {
	deleted, err := hc.Hotels.Delete(c.Param("id"))
	if err != nil {
		log.Printf("delete hotel failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Failed to delete hotel.")
		return
	}
	if !deleted {
		utils.JSONError(c, http.StatusNotFound, "Hotel not found.")
		return
	}
	c.Status(http.StatusNoContent)
}
