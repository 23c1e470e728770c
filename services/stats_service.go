package services

import (
	"gorm.io/gorm"

	"hoteldesk-backend/models"
)

type StatsService struct {
	DB *gorm.DB
}

func NewStatsService(db *gorm.DB) *StatsService {
	return &StatsService{DB: db}
}

// Summary gathers the dashboard counters in a single round trip. Callers
// decide how to handle a missing-table error on a fresh database.
func (s *StatsService) Summary() (*models.StatsResponse, error) {
	var stats models.StatsResponse
	err := s.DB.Raw(`SELECT
		(SELECT COUNT(*) FROM rooms) AS total_rooms,
		(SELECT COUNT(*) FROM rooms WHERE available = true) AS available_rooms,
		(SELECT COUNT(*) FROM bookings) AS total_bookings,
		(SELECT COUNT(*) FROM bookings WHERE status = 'confirmed') AS confirmed_bookings,
		(SELECT COUNT(*) FROM bookings WHERE status = 'pending') AS pending_bookings`).
		Scan(&stats).Error
	if err != nil {
		return nil, err
	}
	return &stats, nil
}
