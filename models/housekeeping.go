package models

import "time"

type Housekeeping struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	RoomID      uint      `gorm:"column:room_id;index" json:"room_id"`
	StaffName   string    `gorm:"column:staff_name;size:255" json:"staff_name"`
	Status      string    `gorm:"size:50" json:"status"`
	CleanedDate time.Time `gorm:"column:cleaned_date;autoCreateTime" json:"cleaned_date"`

	Room *Room `gorm:"foreignKey:RoomID" json:"-"`
}

func (Housekeeping) TableName() string { return "housekeeping" }

type HousekeepingResponse struct {
	ID          string    `json:"id"`
	RoomID      uint      `json:"room_id"`
	StaffName   string    `json:"staff_name"`
	Status      string    `json:"status"`
	CleanedDate time.Time `json:"cleaned_date"`
	RoomName    *string   `json:"room_name"`
}
