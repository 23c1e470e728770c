package services

import (
	"errors"

	"gorm.io/gorm"

	"hoteldesk-backend/models"
)

type RoomTypeService struct {
	DB *gorm.DB
}

func NewRoomTypeService(db *gorm.DB) *RoomTypeService {
	return &RoomTypeService{DB: db}
}

func roomTypeToResponse(rt *models.RoomType) models.RoomTypeResponse {
	return models.RoomTypeResponse{
		ID:          idStr(rt.ID),
		TypeName:    rt.TypeName,
		Description: rt.Description,
		Price:       rt.Price,
		MaxPerson:   rt.MaxPerson,
	}
}

func (s *RoomTypeService) List() ([]models.RoomTypeResponse, error) {
	var types []models.RoomType
	if err := s.DB.Order("id ASC").Find(&types).Error; err != nil {
		return nil, err
	}
	out := make([]models.RoomTypeResponse, 0, len(types))
	for i := range types {
		out = append(out, roomTypeToResponse(&types[i]))
	}
	return out, nil
}

func (s *RoomTypeService) GetByID(id string) (*models.RoomTypeResponse, error) {
	var rt models.RoomType
	if err := s.DB.Where("id = ?", id).First(&rt).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	resp := roomTypeToResponse(&rt)
	return &resp, nil
}

type CreateRoomTypeInput struct {
	TypeName    string
	Description *string
	Price       float64
	MaxPerson   int
}

func (s *RoomTypeService) Create(in CreateRoomTypeInput) (*models.RoomTypeResponse, error) {
	if in.MaxPerson == 0 {
		in.MaxPerson = 2
	}
	rt := models.RoomType{
		TypeName:    in.TypeName,
		Description: in.Description,
		Price:       in.Price,
		MaxPerson:   in.MaxPerson,
	}
	if err := s.DB.Create(&rt).Error; err != nil {
		return nil, err
	}
	return s.GetByID(idStr(rt.ID))
}

var roomTypeUpdateAllowed = []string{"type_name", "description", "price", "max_person"}

// Update answers nil (caller turns that into 404) when the UPDATE touches
// zero rows; an empty field set short-circuits to the current row.
func (s *RoomTypeService) Update(id string, fields map[string]interface{}) (*models.RoomTypeResponse, error) {
	updates := map[string]interface{}{}
	for _, key := range roomTypeUpdateAllowed {
		if val, ok := fields[key]; ok {
			updates[key] = val
		}
	}
	if len(updates) == 0 {
		return s.GetByID(id)
	}
	result := s.DB.Model(&models.RoomType{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}
	return s.GetByID(id)
}

func (s *RoomTypeService) Delete(id string) (bool, error) {
	result := s.DB.Where("id = ?", id).Delete(&models.RoomType{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
