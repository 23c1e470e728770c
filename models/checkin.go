package models

import "time"

type Checkin struct {
	ID               uint       `gorm:"primaryKey" json:"id"`
	ReservationID    uint       `gorm:"column:reservation_id;index" json:"reservation_id"`
	CheckinDatetime  time.Time  `gorm:"column:checkin_datetime;autoCreateTime" json:"checkin_datetime"`
	CheckoutDatetime *time.Time `gorm:"column:checkout_datetime" json:"checkout_datetime"`
	Status           string     `gorm:"size:32;default:CheckedIn" json:"status"`

	Reservation *Reservation `gorm:"foreignKey:ReservationID" json:"-"`
}

type CheckinResponse struct {
	ID               string     `json:"id"`
	ReservationID    uint       `json:"reservation_id"`
	CheckinDatetime  time.Time  `json:"checkin_datetime"`
	CheckoutDatetime *time.Time `json:"checkout_datetime"`
	Status           string     `json:"status"`
	CustomerName     *string    `json:"customer_name"`
	CustomerEmail    *string    `json:"customer_email"`
}
