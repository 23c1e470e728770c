package models

import "time"

type Invoice struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	CheckinID     uint      `gorm:"column:checkin_id;index" json:"checkin_id"`
	RoomCharge    float64   `gorm:"column:room_charge;default:0" json:"room_charge"`
	ServiceCharge float64   `gorm:"column:service_charge;default:0" json:"service_charge"`
	TotalAmount   float64   `gorm:"column:total_amount;default:0" json:"total_amount"`
	CreatedAt     time.Time `json:"created_at"`

	Checkin *Checkin `gorm:"foreignKey:CheckinID" json:"-"`
}

type InvoiceResponse struct {
	ID            string    `json:"id"`
	CheckinID     uint      `json:"checkin_id"`
	RoomCharge    float64   `json:"room_charge"`
	ServiceCharge float64   `json:"service_charge"`
	TotalAmount   float64   `json:"total_amount"`
	CreatedAt     time.Time `json:"created_at"`
	CustomerName  *string   `json:"customer_name"`
	CustomerEmail *string   `json:"customer_email"`
	ReservationID *uint     `json:"reservation_id"`
}
