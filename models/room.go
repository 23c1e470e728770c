package models

import (
	"encoding/json"

	"gorm.io/datatypes"
)

// EncodeAmenityList stores an amenity list in the canonical single-encoded
// form. A nil list is stored as an empty JSON array.
func EncodeAmenityList(list []string) datatypes.JSON {
	if list == nil {
		list = []string{}
	}
	b, _ := json.Marshal(list)
	return datatypes.JSON(b)
}

type Room struct {
	ID         uint           `gorm:"primaryKey" json:"id"`
	Name       string         `gorm:"size:255" json:"name"`
	RoomTypeID *uint          `gorm:"column:room_type_id;index" json:"room_type_id,omitempty"`
	Price      float64        `json:"price"`
	Capacity   int            `gorm:"default:2" json:"capacity"`
	Amenities  datatypes.JSON `gorm:"column:amenities" json:"amenities,omitempty"`
	Image      *string        `gorm:"size:255" json:"image"`
	Available  bool           `json:"available"`

	RoomType *RoomType `gorm:"foreignKey:RoomTypeID" json:"-"`
}

// RoomResponse is the wire shape for /api/rooms. Amenities is always a
// list, never null, regardless of how the column value was stored.
type RoomResponse struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	RoomTypeID *uint    `json:"room_type_id"`
	Price      float64  `json:"price"`
	Capacity   int      `json:"capacity"`
	Amenities  []string `json:"amenities"`
	Image      *string  `json:"image"`
	Available  bool     `json:"available"`
}

// BookingRoomInfo is the room as embedded in a booking response. The
// admin UI reads the type id under "type" here, unlike the rooms list.
type BookingRoomInfo struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Type      *uint    `json:"type"`
	Price     float64  `json:"price"`
	Capacity  int      `json:"capacity"`
	Amenities []string `json:"amenities"`
	Image     *string  `json:"image"`
	Available bool     `json:"available"`
}
