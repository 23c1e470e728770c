package services

import (
	"errors"

	"gorm.io/gorm"

	"hoteldesk-backend/models"
)

type ReservationService struct {
	DB *gorm.DB
}

func NewReservationService(db *gorm.DB) *ReservationService {
	return &ReservationService{DB: db}
}

type ReservationFilters struct {
	Status        string
	CustomerEmail string
}

func reservationToResponse(r *models.Reservation) models.ReservationResponse {
	resp := models.ReservationResponse{
		ID:           idStr(r.ID),
		CustomerID:   r.CustomerID,
		CheckInDate:  r.CheckInDate,
		CheckOutDate: r.CheckOutDate,
		Status:       r.Status,
		CreatedAt:    r.CreatedAt,
	}
	if r.Customer != nil && r.Customer.ID != 0 {
		resp.CustomerName = &r.Customer.FullName
		resp.CustomerEmail = &r.Customer.Email
	}
	return resp
}

func (s *ReservationService) List(filters ReservationFilters) ([]models.ReservationResponse, error) {
	q := s.DB.Model(&models.Reservation{}).Preload("Customer")
	if filters.Status != "" {
		q = q.Where("reservations.status = ?", filters.Status)
	}
	if filters.CustomerEmail != "" {
		q = q.Joins("LEFT JOIN customers ON customers.id = reservations.customer_id").
			Where("customers.email = ?", filters.CustomerEmail)
	}

	var reservations []models.Reservation
	if err := q.Order("reservations.created_at DESC").Find(&reservations).Error; err != nil {
		return nil, err
	}

	out := make([]models.ReservationResponse, 0, len(reservations))
	for i := range reservations {
		out = append(out, reservationToResponse(&reservations[i]))
	}
	return out, nil
}

func (s *ReservationService) GetByID(id string) (*models.ReservationResponse, error) {
	var reservation models.Reservation
	err := s.DB.Preload("Customer").Where("id = ?", id).First(&reservation).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	resp := reservationToResponse(&reservation)
	return &resp, nil
}

type CreateReservationInput struct {
	CustomerID   uint
	CheckInDate  string
	CheckOutDate string
	Status       string
}

func (s *ReservationService) Create(in CreateReservationInput) (*models.ReservationResponse, error) {
	status := in.Status
	if status == "" {
		status = "Pending"
	}
	reservation := models.Reservation{
		CustomerID:   in.CustomerID,
		CheckInDate:  parseDate(in.CheckInDate),
		CheckOutDate: parseDate(in.CheckOutDate),
		Status:       status,
	}
	if err := s.DB.Create(&reservation).Error; err != nil {
		return nil, err
	}
	return s.GetByID(idStr(reservation.ID))
}

func (s *ReservationService) UpdateStatus(id, status string) (*models.ReservationResponse, error) {
	err := s.DB.Model(&models.Reservation{}).Where("id = ?", id).Update("status", status).Error
	if err != nil {
		return nil, err
	}
	return s.GetByID(id)
}

func (s *ReservationService) Delete(id string) (bool, error) {
	result := s.DB.Where("id = ?", id).Delete(&models.Reservation{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
