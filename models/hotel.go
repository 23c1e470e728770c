package models

import "time"

type Hotel struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	HotelCode  string    `gorm:"column:hotel_code;uniqueIndex;size:50" json:"hotelCode"`
	HotelName  string    `gorm:"column:hotel_name;size:255" json:"hotelName"`
	Address    *string   `gorm:"type:text" json:"address"`
	Postcode   *string   `gorm:"size:20" json:"postcode"`
	City       *string   `gorm:"size:100" json:"city"`
	Country    *string   `gorm:"size:100" json:"country"`
	NumRooms   *int      `gorm:"column:num_rooms" json:"numRooms"`
	PhoneNo    *string   `gorm:"column:phone_no;size:50" json:"phoneNo"`
	StarRating *int      `gorm:"column:star_rating" json:"starRating"`
	CreatedAt  time.Time `json:"createdAt"`
}

type HotelResponse struct {
	ID         string    `json:"id"`
	HotelCode  string    `json:"hotelCode"`
	HotelName  string    `json:"hotelName"`
	Address    *string   `json:"address"`
	Postcode   *string   `json:"postcode"`
	City       *string   `json:"city"`
	Country    *string   `json:"country"`
	NumRooms   *int      `json:"numRooms"`
	PhoneNo    *string   `json:"phoneNo"`
	StarRating *int      `json:"starRating"`
	CreatedAt  time.Time `json:"createdAt"`
}
