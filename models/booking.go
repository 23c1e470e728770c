package models

import "time"

// Booking carries both the legacy check_in/check_out pair and the newer
// arrival_date/departure_date pair. Whichever pair a client supplies is
// treated as authoritative and mirrored into the other on create; older
// rows missing one pair derive it from the other on read.
type Booking struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	RoomID uint `gorm:"column:room_id;index" json:"roomId"`

	HotelID *uint `gorm:"column:hotel_id;index" json:"hotelId,omitempty"`
	GuestID *uint `gorm:"column:guest_id;index" json:"guestId,omitempty"`

	GuestName  *string `gorm:"column:guest_name;size:255" json:"guestName"`
	GuestEmail *string `gorm:"column:guest_email;size:150;index" json:"guestEmail"`

	CheckIn       *time.Time `gorm:"column:check_in;type:date" json:"-"`
	CheckOut      *time.Time `gorm:"column:check_out;type:date" json:"-"`
	ArrivalDate   *time.Time `gorm:"column:arrival_date;type:date" json:"-"`
	DepartureDate *time.Time `gorm:"column:departure_date;type:date" json:"-"`

	EstArrivalTime   *string `gorm:"column:est_arrival_time;size:16" json:"estArrivalTime"`
	EstDepartureTime *string `gorm:"column:est_departure_time;size:16" json:"estDepartureTime"`
	BookingDate      *string `gorm:"column:booking_date;size:16" json:"bookingDate"`
	BookingTime      *string `gorm:"column:booking_time;size:16" json:"bookingTime"`

	Guests      int     `gorm:"default:1" json:"guests"`
	NumAdults   int     `gorm:"column:num_adults;default:1" json:"numAdults"`
	NumChildren int     `gorm:"column:num_children;default:0" json:"numChildren"`
	SpecialReq  *string `gorm:"column:special_req;type:text" json:"specialReq"`

	Status        string `gorm:"size:32;default:pending" json:"status"`
	ReferenceCode string `gorm:"column:reference_code;size:64" json:"referenceCode,omitempty"`

	CreatedAt time.Time `json:"-"`

	Room  *Room  `gorm:"foreignKey:RoomID" json:"-"`
	Hotel *Hotel `gorm:"foreignKey:HotelID;constraint:OnDelete:SET NULL" json:"-"`
}

type BookingResponse struct {
	ID               string           `json:"id"`
	RoomID           string           `json:"roomId"`
	HotelID          *uint            `json:"hotelId,omitempty"`
	GuestID          *uint            `json:"guestId,omitempty"`
	GuestName        *string          `json:"guestName"`
	GuestEmail       *string          `json:"guestEmail"`
	CheckIn          string           `json:"checkIn"`
	CheckOut         string           `json:"checkOut"`
	ArrivalDate      string           `json:"arrivalDate"`
	DepartureDate    string           `json:"departureDate"`
	EstArrivalTime   *string          `json:"estArrivalTime,omitempty"`
	EstDepartureTime *string          `json:"estDepartureTime,omitempty"`
	BookingDate      *string          `json:"bookingDate,omitempty"`
	BookingTime      *string          `json:"bookingTime,omitempty"`
	Guests           int              `json:"guests"`
	NumAdults        int              `json:"numAdults"`
	NumChildren      int              `json:"numChildren"`
	SpecialReq       *string          `json:"specialReq,omitempty"`
	Status           string           `json:"status"`
	ReferenceCode    string           `json:"referenceCode,omitempty"`
	Room             *BookingRoomInfo `json:"room,omitempty"`
	Hotel            *HotelResponse   `json:"hotel,omitempty"`
}

// BookingSummary is the booking as embedded in a guest response.
type BookingSummary struct {
	ID         string  `json:"id"`
	RoomID     string  `json:"roomId"`
	GuestName  *string `json:"guestName"`
	GuestEmail *string `json:"guestEmail"`
	CheckIn    *string `json:"checkIn"`
	CheckOut   *string `json:"checkOut"`
	Guests     int     `json:"guests"`
	Status     string  `json:"status"`
}
