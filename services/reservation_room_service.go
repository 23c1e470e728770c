package services

import (
	"errors"

	"gorm.io/gorm"

	"hoteldesk-backend/models"
)

type ReservationRoomService struct {
	DB *gorm.DB
}

func NewReservationRoomService(db *gorm.DB) *ReservationRoomService {
	return &ReservationRoomService{DB: db}
}

func reservationRoomToResponse(rr *models.ReservationRoom) models.ReservationRoomResponse {
	resp := models.ReservationRoomResponse{
		ID:            idStr(rr.ID),
		ReservationID: rr.ReservationID,
		RoomID:        rr.RoomID,
		Price:         rr.Price,
	}
	if rr.Reservation != nil && rr.Reservation.ID != 0 {
		resp.ReservationStatus = &rr.Reservation.Status
		resp.CheckInDate = rr.Reservation.CheckInDate
		resp.CheckOutDate = rr.Reservation.CheckOutDate
	}
	if rr.Room != nil && rr.Room.ID != 0 {
		resp.RoomName = &rr.Room.Name
	}
	return resp
}

func (s *ReservationRoomService) List() ([]models.ReservationRoomResponse, error) {
	var rows []models.ReservationRoom
	err := s.DB.Preload("Reservation").Preload("Room").Order("id ASC").Find(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make([]models.ReservationRoomResponse, 0, len(rows))
	for i := range rows {
		out = append(out, reservationRoomToResponse(&rows[i]))
	}
	return out, nil
}

func (s *ReservationRoomService) GetByID(id string) (*models.ReservationRoomResponse, error) {
	var rr models.ReservationRoom
	err := s.DB.Preload("Reservation").Preload("Room").Where("id = ?", id).First(&rr).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	resp := reservationRoomToResponse(&rr)
	return &resp, nil
}

func (s *ReservationRoomService) Create(reservationID, roomID uint, price float64) (*models.ReservationRoomResponse, error) {
	rr := models.ReservationRoom{
		ReservationID: reservationID,
		RoomID:        roomID,
		Price:         price,
	}
	if err := s.DB.Create(&rr).Error; err != nil {
		return nil, err
	}
	return s.GetByID(idStr(rr.ID))
}

func (s *ReservationRoomService) Delete(id string) (bool, error) {
	result := s.DB.Where("id = ?", id).Delete(&models.ReservationRoom{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
