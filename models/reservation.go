package models

import "time"

type Reservation struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	CustomerID   uint       `gorm:"column:customer_id;index" json:"customer_id"`
	CheckInDate  *time.Time `gorm:"column:check_in_date;type:date" json:"check_in_date"`
	CheckOutDate *time.Time `gorm:"column:check_out_date;type:date" json:"check_out_date"`
	Status       string     `gorm:"size:32;default:Pending" json:"status"`
	CreatedAt    time.Time  `json:"created_at"`

	Customer *Customer `gorm:"foreignKey:CustomerID" json:"-"`
}

type ReservationResponse struct {
	ID            string     `json:"id"`
	CustomerID    uint       `json:"customer_id"`
	CheckInDate   *time.Time `json:"check_in_date"`
	CheckOutDate  *time.Time `json:"check_out_date"`
	Status        string     `json:"status"`
	CreatedAt     time.Time  `json:"created_at"`
	CustomerName  *string    `json:"customer_name"`
	CustomerEmail *string    `json:"customer_email"`
}
