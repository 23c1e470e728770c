package services

import (
	"errors"

	"gorm.io/gorm"

	"hoteldesk-backend/models"
)

type CheckinService struct {
	DB *gorm.DB
}

func NewCheckinService(db *gorm.DB) *CheckinService {
	return &CheckinService{DB: db}
}

type CheckinFilters struct {
	Status string
}

func checkinToResponse(ci *models.Checkin) models.CheckinResponse {
	resp := models.CheckinResponse{
		ID:               idStr(ci.ID),
		ReservationID:    ci.ReservationID,
		CheckinDatetime:  ci.CheckinDatetime,
		CheckoutDatetime: ci.CheckoutDatetime,
		Status:           ci.Status,
	}
	if ci.Reservation != nil && ci.Reservation.Customer != nil && ci.Reservation.Customer.ID != 0 {
		resp.CustomerName = &ci.Reservation.Customer.FullName
		resp.CustomerEmail = &ci.Reservation.Customer.Email
	}
	return resp
}

func (s *CheckinService) List(filters CheckinFilters) ([]models.CheckinResponse, error) {
	q := s.DB.Model(&models.Checkin{}).Preload("Reservation.Customer")
	if filters.Status != "" {
		q = q.Where("status = ?", filters.Status)
	}

	var checkins []models.Checkin
	if err := q.Order("checkin_datetime DESC").Find(&checkins).Error; err != nil {
		return nil, err
	}

	out := make([]models.CheckinResponse, 0, len(checkins))
	for i := range checkins {
		out = append(out, checkinToResponse(&checkins[i]))
	}
	return out, nil
}

func (s *CheckinService) GetByID(id string) (*models.CheckinResponse, error) {
	var ci models.Checkin
	err := s.DB.Preload("Reservation.Customer").Where("id = ?", id).First(&ci).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	resp := checkinToResponse(&ci)
	return &resp, nil
}

type CreateCheckinInput struct {
	ReservationID   uint
	CheckinDatetime string
	Status          string
}

func (s *CheckinService) Create(in CreateCheckinInput) (*models.CheckinResponse, error) {
	status := in.Status
	if status == "" {
		status = "CheckedIn"
	}
	ci := models.Checkin{
		ReservationID: in.ReservationID,
		Status:        status,
	}
	// The check-in timestamp defaults to now unless the desk supplies one.
	if t := parseDatetime(in.CheckinDatetime); t != nil {
		ci.CheckinDatetime = *t
	}
	if err := s.DB.Create(&ci).Error; err != nil {
		return nil, err
	}
	return s.GetByID(idStr(ci.ID))
}

func (s *CheckinService) Update(id string, fields map[string]interface{}) (*models.CheckinResponse, error) {
	updates := map[string]interface{}{}
	if val, ok := fields["checkout_datetime"]; ok {
		updates["checkout_datetime"] = blankToNil(val)
	}
	if val, ok := fields["status"]; ok {
		updates["status"] = val
	}
	if len(updates) == 0 {
		return s.GetByID(id)
	}
	if err := s.DB.Model(&models.Checkin{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return nil, err
	}
	return s.GetByID(id)
}

func (s *CheckinService) Delete(id string) (bool, error) {
	result := s.DB.Where("id = ?", id).Delete(&models.Checkin{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
