package models

import "time"

// Customer is the portal account used by the reservation subsystem. It is
// intentionally kept separate from Guest, which belongs to the
// booking-centric model; the two families are not unified.
type Customer struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	FullName     string    `gorm:"column:full_name;size:255" json:"full_name"`
	Gender       *string   `gorm:"size:20" json:"gender"`
	Phone        *string   `gorm:"size:50" json:"phone"`
	Email        string    `gorm:"uniqueIndex;size:150" json:"email"`
	IDCard       *string   `gorm:"column:id_card;size:50" json:"id_card"`
	Address      *string   `gorm:"type:text" json:"address"`
	PasswordHash string    `gorm:"column:password_hash;size:255" json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

type CustomerResponse struct {
	ID        string    `json:"id"`
	FullName  string    `json:"full_name"`
	Gender    *string   `json:"gender"`
	Phone     *string   `json:"phone"`
	Email     string    `json:"email"`
	IDCard    *string   `json:"id_card"`
	Address   *string   `json:"address"`
	CreatedAt time.Time `json:"created_at"`
}
