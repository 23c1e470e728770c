package models

import "time"

// ReservationRoom links a reservation to a room with a price snapshot
// taken at booking time.
type ReservationRoom struct {
	ID            uint    `gorm:"primaryKey" json:"id"`
	ReservationID uint    `gorm:"column:reservation_id;index" json:"reservation_id"`
	RoomID        uint    `gorm:"column:room_id;index" json:"room_id"`
	Price         float64 `gorm:"default:0" json:"price"`

	Reservation *Reservation `gorm:"foreignKey:ReservationID" json:"-"`
	Room        *Room        `gorm:"foreignKey:RoomID" json:"-"`
}

type ReservationRoomResponse struct {
	ID                string     `json:"id"`
	ReservationID     uint       `json:"reservation_id"`
	RoomID            uint       `json:"room_id"`
	Price             float64    `json:"price"`
	ReservationStatus *string    `json:"reservation_status"`
	CheckInDate       *time.Time `json:"check_in_date"`
	CheckOutDate      *time.Time `json:"check_out_date"`
	RoomName          *string    `json:"room_name"`
}
