package services

import (
	"errors"

	"gorm.io/gorm"

	"hoteldesk-backend/models"
)

type RoomService struct {
	DB *gorm.DB
}

func NewRoomService(db *gorm.DB) *RoomService {
	return &RoomService{DB: db}
}

// RoomFilters holds the optional equality predicates for the rooms list.
type RoomFilters struct {
	Available *bool
	Type      string
}

func roomToResponse(r *models.Room) models.RoomResponse {
	return models.RoomResponse{
		ID:         idStr(r.ID),
		Name:       r.Name,
		RoomTypeID: r.RoomTypeID,
		Price:      r.Price,
		Capacity:   r.Capacity,
		Amenities:  decodeAmenities(r.Amenities),
		Image:      r.Image,
		Available:  r.Available,
	}
}

func (s *RoomService) List(filters RoomFilters) ([]models.RoomResponse, error) {
	q := s.DB.Model(&models.Room{})
	if filters.Available != nil {
		q = q.Where("available = ?", *filters.Available)
	}
	if filters.Type != "" {
		q = q.Where("room_type_id = ?", filters.Type)
	}

	var rooms []models.Room
	if err := q.Order("id").Find(&rooms).Error; err != nil {
		return nil, err
	}

	out := make([]models.RoomResponse, 0, len(rooms))
	for i := range rooms {
		out = append(out, roomToResponse(&rooms[i]))
	}
	return out, nil
}

func (s *RoomService) GetByID(id string) (*models.RoomResponse, error) {
	var room models.Room
	if err := s.DB.Where("id = ?", id).First(&room).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	resp := roomToResponse(&room)
	return &resp, nil
}

// CreateRoomInput is what the POST handler passes down after validation.
type CreateRoomInput struct {
	Name       string
	RoomTypeID *uint
	Price      float64
	Capacity   int
	Amenities  []string
	Image      *string
	Available  bool
}

func (s *RoomService) Create(in CreateRoomInput) (*models.RoomResponse, error) {
	if in.Capacity == 0 {
		in.Capacity = 2
	}
	room := models.Room{
		Name:       in.Name,
		RoomTypeID: in.RoomTypeID,
		Price:      in.Price,
		Capacity:   in.Capacity,
		Amenities:  encodeAmenities(in.Amenities),
		Image:      in.Image,
		Available:  in.Available,
	}
	if err := s.DB.Create(&room).Error; err != nil {
		return nil, err
	}
	return s.GetByID(idStr(room.ID))
}

var roomUpdateAllowed = []string{"name", "room_type_id", "price", "capacity", "amenities", "image", "available"}

// Update applies only the allow-listed keys present in fields. With no
// recognized fields it is a no-op that returns the current row.
func (s *RoomService) Update(id string, fields map[string]interface{}) (*models.RoomResponse, error) {
	updates := map[string]interface{}{}
	for _, key := range roomUpdateAllowed {
		val, ok := fields[key]
		if !ok {
			continue
		}
		switch key {
		case "amenities":
			val = encodeAmenities(toStringList(val))
		case "available":
			val = truthy(val)
		}
		updates[key] = val
	}
	if len(updates) == 0 {
		return s.GetByID(id)
	}
	if err := s.DB.Model(&models.Room{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return nil, err
	}
	return s.GetByID(id)
}

func (s *RoomService) Delete(id string) (bool, error) {
	result := s.DB.Where("id = ?", id).Delete(&models.Room{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
