package services

import (
	"errors"

	"gorm.io/gorm"

	"hoteldesk-backend/models"
)

type HousekeepingService struct {
	DB *gorm.DB
}

func NewHousekeepingService(db *gorm.DB) *HousekeepingService {
	return &HousekeepingService{DB: db}
}

func housekeepingToResponse(h *models.Housekeeping) models.HousekeepingResponse {
	resp := models.HousekeepingResponse{
		ID:          idStr(h.ID),
		RoomID:      h.RoomID,
		StaffName:   h.StaffName,
		Status:      h.Status,
		CleanedDate: h.CleanedDate,
	}
	if h.Room != nil && h.Room.ID != 0 {
		resp.RoomName = &h.Room.Name
	}
	return resp
}

type HousekeepingFilters struct {
	RoomID string
	Status string
}

func (s *HousekeepingService) List(filters HousekeepingFilters) ([]models.HousekeepingResponse, error) {
	q := s.DB.Model(&models.Housekeeping{}).Preload("Room")
	if filters.RoomID != "" {
		q = q.Where("room_id = ?", filters.RoomID)
	}
	if filters.Status != "" {
		q = q.Where("status = ?", filters.Status)
	}

	var rows []models.Housekeeping
	if err := q.Order("cleaned_date DESC").Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]models.HousekeepingResponse, 0, len(rows))
	for i := range rows {
		out = append(out, housekeepingToResponse(&rows[i]))
	}
	return out, nil
}

func (s *HousekeepingService) GetByID(id string) (*models.HousekeepingResponse, error) {
	var h models.Housekeeping
	err := s.DB.Preload("Room").Where("id = ?", id).First(&h).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	resp := housekeepingToResponse(&h)
	return &resp, nil
}

type CreateHousekeepingInput struct {
	RoomID    uint
	StaffName string
	Status    string
}

func (s *HousekeepingService) Create(in CreateHousekeepingInput) (*models.HousekeepingResponse, error) {
	status := in.Status
	if status == "" {
		status = "Pending"
	}
	h := models.Housekeeping{
		RoomID:    in.RoomID,
		StaffName: in.StaffName,
		Status:    status,
	}
	if err := s.DB.Create(&h).Error; err != nil {
		return nil, err
	}
	return s.GetByID(idStr(h.ID))
}

var housekeepingUpdateAllowed = []string{"staff_name", "status"}

func (s *HousekeepingService) Update(id string, fields map[string]interface{}) (*models.HousekeepingResponse, error) {
	updates := map[string]interface{}{}
	for _, key := range housekeepingUpdateAllowed {
		if val, ok := fields[key]; ok {
			updates[key] = val
		}
	}
	if len(updates) == 0 {
		return s.GetByID(id)
	}
	if err := s.DB.Model(&models.Housekeeping{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return nil, err
	}
	return s.GetByID(id)
}

func (s *HousekeepingService) Delete(id string) (bool, error) {
	result := s.DB.Where("id = ?", id).Delete(&models.Housekeeping{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
