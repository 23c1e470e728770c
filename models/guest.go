package models

import "time"

type Guest struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	BookingID uint `gorm:"column:booking_id;index" json:"bookingId"`

	GuestTitle   *string    `gorm:"column:guest_title;size:20" json:"guestTitle"`
	FirstName    string     `gorm:"column:first_name;size:100" json:"firstName"`
	LastName     string     `gorm:"column:last_name;size:100" json:"lastName"`
	DOB          *time.Time `gorm:"column:dob;type:date" json:"-"`
	Gender       *string    `gorm:"size:20" json:"gender"`
	PhoneNo      *string    `gorm:"column:phone_no;size:50" json:"phoneNo"`
	Email        *string    `gorm:"size:150;index" json:"email"`
	PasswordHash *string    `gorm:"column:password_hash;size:255" json:"-"`
	PassportNo   *string    `gorm:"column:passport_no;size:50" json:"passportNo"`
	Address      *string    `gorm:"type:text" json:"address"`
	Postcode     *string    `gorm:"size:20" json:"postcode"`
	City         *string    `gorm:"size:100" json:"city"`
	Country      *string    `gorm:"size:100" json:"country"`
	CreatedAt    time.Time  `json:"createdAt"`

	Booking *Booking `gorm:"foreignKey:BookingID" json:"-"`
}

type GuestResponse struct {
	ID         string          `json:"id"`
	BookingID  string          `json:"bookingId"`
	GuestTitle *string         `json:"guestTitle"`
	FirstName  string          `json:"firstName"`
	LastName   string          `json:"lastName"`
	DOB        *string         `json:"dob"`
	Gender     *string         `json:"gender"`
	PhoneNo    *string         `json:"phoneNo"`
	Email      *string         `json:"email"`
	PassportNo *string         `json:"passportNo"`
	Address    *string         `json:"address"`
	Postcode   *string         `json:"postcode"`
	City       *string         `json:"city"`
	Country    *string         `json:"country"`
	CreatedAt  time.Time       `json:"createdAt"`
	Booking    *BookingSummary `json:"booking,omitempty"`
}
