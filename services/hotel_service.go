package services

import (
	"errors"

	"gorm.io/gorm"

	"hoteldesk-backend/models"
)

type HotelService struct {
	DB *gorm.DB
}

func NewHotelService(db *gorm.DB) *HotelService {
	return &HotelService{DB: db}
}

func hotelToResponse(h *models.Hotel) models.HotelResponse {
	return models.HotelResponse{
		ID:         idStr(h.ID),
		HotelCode:  h.HotelCode,
		HotelName:  h.HotelName,
		Address:    h.Address,
		Postcode:   h.Postcode,
		City:       h.City,
		Country:    h.Country,
		NumRooms:   h.NumRooms,
		PhoneNo:    h.PhoneNo,
		StarRating: h.StarRating,
		CreatedAt:  h.CreatedAt,
	}
}

func (s *HotelService) List() ([]models.HotelResponse, error) {
	var hotels []models.Hotel
	if err := s.DB.Order("hotel_code ASC").Find(&hotels).Error; err != nil {
		return nil, err
	}
	out := make([]models.HotelResponse, 0, len(hotels))
	for i := range hotels {
		out = append(out, hotelToResponse(&hotels[i]))
	}
	return out, nil
}

func (s *HotelService) GetByID(id string) (*models.HotelResponse, error) {
	var hotel models.Hotel
	if err := s.DB.Where("id = ?", id).First(&hotel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	resp := hotelToResponse(&hotel)
	return &resp, nil
}

func (s *HotelService) GetByCode(code string) (*models.HotelResponse, error) {
	var hotel models.Hotel
	if err := s.DB.Where("hotel_code = ?", code).First(&hotel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	resp := hotelToResponse(&hotel)
	return &resp, nil
}

func (s *HotelService) Create(hotel *models.Hotel) (*models.HotelResponse, error) {
	if err := s.DB.Create(hotel).Error; err != nil {
		return nil, err
	}
	return s.GetByID(idStr(hotel.ID))
}

var hotelUpdateAllowed = []string{
	"hotel_code", "hotel_name", "address", "postcode", "city",
	"country", "num_rooms", "phone_no", "star_rating",
}

func (s *HotelService) Update(id string, fields map[string]interface{}) (*models.HotelResponse, error) {
	updates := map[string]interface{}{}
	for _, key := range hotelUpdateAllowed {
		if val, ok := fields[key]; ok {
			updates[key] = blankToNil(val)
		}
	}
	if len(updates) == 0 {
		return s.GetByID(id)
	}
	if err := s.DB.Model(&models.Hotel{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return nil, err
	}
	return s.GetByID(id)
}

func (s *HotelService) Delete(id string) (bool, error) {
	result := s.DB.Where("id = ?", id).Delete(&models.Hotel{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
