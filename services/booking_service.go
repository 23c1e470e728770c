package services

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"hoteldesk-backend/models"
)

type BookingService struct {
	DB *gorm.DB
}

func NewBookingService(db *gorm.DB) *BookingService {
	return &BookingService{DB: db}
}

type BookingFilters struct {
	Status     string
	RoomID     string
	GuestEmail string
}

func bookingRoomInfo(r *models.Room) *models.BookingRoomInfo {
	if r == nil || r.ID == 0 {
		return nil
	}
	return &models.BookingRoomInfo{
		ID:        idStr(r.ID),
		Name:      r.Name,
		Type:      r.RoomTypeID,
		Price:     r.Price,
		Capacity:  r.Capacity,
		Amenities: decodeAmenities(r.Amenities),
		Image:     r.Image,
		Available: r.Available,
	}
}

// bookingToResponse derives whichever date pair a row is missing from the
// other pair, so pre-migration rows still surface arrival/departure dates.
func bookingToResponse(b *models.Booking) models.BookingResponse {
	checkIn := b.CheckIn
	if checkIn == nil {
		checkIn = b.ArrivalDate
	}
	checkOut := b.CheckOut
	if checkOut == nil {
		checkOut = b.DepartureDate
	}
	arrival := b.ArrivalDate
	if arrival == nil {
		arrival = b.CheckIn
	}
	departure := b.DepartureDate
	if departure == nil {
		departure = b.CheckOut
	}

	resp := models.BookingResponse{
		ID:               idStr(b.ID),
		RoomID:           idStr(b.RoomID),
		HotelID:          b.HotelID,
		GuestID:          b.GuestID,
		GuestName:        b.GuestName,
		GuestEmail:       b.GuestEmail,
		CheckIn:          dateStr(checkIn),
		CheckOut:         dateStr(checkOut),
		ArrivalDate:      dateStr(arrival),
		DepartureDate:    dateStr(departure),
		EstArrivalTime:   b.EstArrivalTime,
		EstDepartureTime: b.EstDepartureTime,
		BookingDate:      b.BookingDate,
		BookingTime:      b.BookingTime,
		Guests:           b.Guests,
		NumAdults:        b.NumAdults,
		NumChildren:      b.NumChildren,
		SpecialReq:       b.SpecialReq,
		Status:           b.Status,
		ReferenceCode:    b.ReferenceCode,
		Room:             bookingRoomInfo(b.Room),
	}
	if b.Hotel != nil && b.Hotel.ID != 0 {
		hotel := hotelToResponse(b.Hotel)
		resp.Hotel = &hotel
	}
	return resp
}

func (s *BookingService) List(filters BookingFilters) ([]models.BookingResponse, error) {
	q := s.DB.Model(&models.Booking{}).Preload("Room").Preload("Hotel")
	if filters.Status != "" {
		q = q.Where("status = ?", filters.Status)
	}
	if filters.RoomID != "" {
		q = q.Where("room_id = ?", filters.RoomID)
	}
	if filters.GuestEmail != "" {
		q = q.Where("guest_email = ?", filters.GuestEmail)
	}

	var bookings []models.Booking
	if err := q.Order("id").Find(&bookings).Error; err != nil {
		return nil, err
	}

	out := make([]models.BookingResponse, 0, len(bookings))
	for i := range bookings {
		out = append(out, bookingToResponse(&bookings[i]))
	}
	return out, nil
}

func (s *BookingService) GetByID(id string) (*models.BookingResponse, error) {
	var booking models.Booking
	err := s.DB.Preload("Room").Preload("Hotel").Where("id = ?", id).First(&booking).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	resp := bookingToResponse(&booking)
	return &resp, nil
}

// CreateBookingInput arrives with arrival/departure already resolved
// against the legacy checkIn/checkOut names by the handler.
type CreateBookingInput struct {
	RoomID           uint
	HotelID          *uint
	GuestID          *uint
	GuestName        *string
	GuestEmail       *string
	Arrival          string
	Departure        string
	Guests           int
	NumAdults        int
	NumChildren      int
	BookingDate      *string
	BookingTime      *string
	EstArrivalTime   *string
	EstDepartureTime *string
	SpecialReq       *string
}

func newReferenceCode() string {
	return "BK-" + strings.ToUpper(uuid.NewString()[:8])
}

func (s *BookingService) Create(in CreateBookingInput) (*models.BookingResponse, error) {
	arrival := parseDate(in.Arrival)
	departure := parseDate(in.Departure)

	booking := models.Booking{
		RoomID:           in.RoomID,
		HotelID:          in.HotelID,
		GuestID:          in.GuestID,
		GuestName:        in.GuestName,
		GuestEmail:       in.GuestEmail,
		CheckIn:          arrival,
		CheckOut:         departure,
		ArrivalDate:      arrival,
		DepartureDate:    departure,
		EstArrivalTime:   in.EstArrivalTime,
		EstDepartureTime: in.EstDepartureTime,
		BookingDate:      in.BookingDate,
		BookingTime:      in.BookingTime,
		Guests:           in.Guests,
		NumAdults:        in.NumAdults,
		NumChildren:      in.NumChildren,
		SpecialReq:       in.SpecialReq,
		Status:           "pending",
		ReferenceCode:    newReferenceCode(),
	}
	if err := s.DB.Create(&booking).Error; err != nil {
		return nil, err
	}
	return s.GetByID(idStr(booking.ID))
}

func (s *BookingService) UpdateStatus(id, status string) (*models.BookingResponse, error) {
	err := s.DB.Model(&models.Booking{}).Where("id = ?", id).Update("status", status).Error
	if err != nil {
		return nil, err
	}
	return s.GetByID(id)
}

var bookingUpdateAllowed = []string{
	"hotel_id", "guest_id", "guest_name", "guest_email",
	"booking_date", "booking_time", "arrival_date", "departure_date",
	"est_arrival_time", "est_departure_time", "num_adults", "num_children",
	"special_req", "status", "check_in", "check_out", "guests",
}

// Nullable string/date columns that normalize blank input to NULL.
var bookingNullable = map[string]bool{
	"guest_name": true, "guest_email": true, "booking_date": true,
	"booking_time": true, "arrival_date": true, "departure_date": true,
	"est_arrival_time": true, "est_departure_time": true,
	"special_req": true, "check_in": true, "check_out": true,
}

func (s *BookingService) Update(id string, fields map[string]interface{}) (*models.BookingResponse, error) {
	updates := map[string]interface{}{}
	for _, key := range bookingUpdateAllowed {
		val, ok := fields[key]
		if !ok {
			continue
		}
		if bookingNullable[key] {
			val = blankToNil(val)
		}
		updates[key] = val
	}

	// Keep the legacy and current date pairs in sync when only one side
	// is supplied.
	if v, ok := updates["arrival_date"]; ok {
		if _, also := updates["check_in"]; !also {
			updates["check_in"] = v
		}
	} else if v, ok := updates["check_in"]; ok {
		updates["arrival_date"] = v
	}
	if v, ok := updates["departure_date"]; ok {
		if _, also := updates["check_out"]; !also {
			updates["check_out"] = v
		}
	} else if v, ok := updates["check_out"]; ok {
		updates["departure_date"] = v
	}

	if len(updates) == 0 {
		return s.GetByID(id)
	}
	if err := s.DB.Model(&models.Booking{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return nil, err
	}
	return s.GetByID(id)
}

func (s *BookingService) Delete(id string) (bool, error) {
	result := s.DB.Where("id = ?", id).Delete(&models.Booking{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// ResolveDatePair picks the authoritative date from the new-style field,
// falling back to the legacy one.
func ResolveDatePair(primary, legacy string) string {
	if strings.TrimSpace(primary) != "" {
		return primary
	}
	return legacy
}

// ValidDate reports whether a client date string parses to a real date.
func ValidDate(s string) bool {
	return parseDate(s) != nil
}
