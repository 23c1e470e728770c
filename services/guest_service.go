package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"hoteldesk-backend/models"
	"hoteldesk-backend/utils"
)

type GuestService struct {
	DB *gorm.DB
}

func NewGuestService(db *gorm.DB) *GuestService {
	return &GuestService{DB: db}
}

type GuestFilters struct {
	BookingID string
	Email     string
}

func guestBookingSummary(b *models.Booking) *models.BookingSummary {
	if b == nil || b.ID == 0 {
		return nil
	}
	checkIn := b.CheckIn
	if checkIn == nil {
		checkIn = b.ArrivalDate
	}
	checkOut := b.CheckOut
	if checkOut == nil {
		checkOut = b.DepartureDate
	}
	return &models.BookingSummary{
		ID:         idStr(b.ID),
		RoomID:     idStr(b.RoomID),
		GuestName:  b.GuestName,
		GuestEmail: b.GuestEmail,
		CheckIn:    dateStrPtr(checkIn),
		CheckOut:   dateStrPtr(checkOut),
		Guests:     b.Guests,
		Status:     b.Status,
	}
}

func guestToResponse(g *models.Guest) models.GuestResponse {
	return models.GuestResponse{
		ID:         idStr(g.ID),
		BookingID:  idStr(g.BookingID),
		GuestTitle: g.GuestTitle,
		FirstName:  g.FirstName,
		LastName:   g.LastName,
		DOB:        dateStrPtr(g.DOB),
		Gender:     g.Gender,
		PhoneNo:    g.PhoneNo,
		Email:      g.Email,
		PassportNo: g.PassportNo,
		Address:    g.Address,
		Postcode:   g.Postcode,
		City:       g.City,
		Country:    g.Country,
		CreatedAt:  g.CreatedAt,
		Booking:    guestBookingSummary(g.Booking),
	}
}

func (s *GuestService) List(filters GuestFilters) ([]models.GuestResponse, error) {
	q := s.DB.Model(&models.Guest{}).Preload("Booking")
	if filters.BookingID != "" {
		q = q.Where("booking_id = ?", filters.BookingID)
	}
	if filters.Email != "" {
		q = q.Where("email = ?", filters.Email)
	}

	var guests []models.Guest
	if err := q.Order("id").Find(&guests).Error; err != nil {
		return nil, err
	}

	out := make([]models.GuestResponse, 0, len(guests))
	for i := range guests {
		out = append(out, guestToResponse(&guests[i]))
	}
	return out, nil
}

func (s *GuestService) GetByID(id string) (*models.GuestResponse, error) {
	var guest models.Guest
	err := s.DB.Preload("Booking").Where("id = ?", id).First(&guest).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	resp := guestToResponse(&guest)
	return &resp, nil
}

type CreateGuestInput struct {
	BookingID  uint
	GuestTitle *string
	FirstName  string
	LastName   string
	DOB        string
	Gender     *string
	PhoneNo    *string
	Email      *string
	Password   string
	PassportNo *string
	Address    *string
	Postcode   *string
	City       *string
	Country    *string
}

func (s *GuestService) Create(in CreateGuestInput) (*models.GuestResponse, error) {
	var passwordHash *string
	if in.Password != "" {
		hash, err := utils.HashPassword(in.Password)
		if err != nil {
			return nil, err
		}
		passwordHash = &hash
	}
	if in.Email != nil {
		normalized := strings.ToLower(strings.TrimSpace(*in.Email))
		in.Email = &normalized
	}

	guest := models.Guest{
		BookingID:    in.BookingID,
		GuestTitle:   in.GuestTitle,
		FirstName:    strings.TrimSpace(in.FirstName),
		LastName:     strings.TrimSpace(in.LastName),
		DOB:          parseDate(in.DOB),
		Gender:       in.Gender,
		PhoneNo:      in.PhoneNo,
		Email:        in.Email,
		PasswordHash: passwordHash,
		PassportNo:   in.PassportNo,
		Address:      in.Address,
		Postcode:     in.Postcode,
		City:         in.City,
		Country:      in.Country,
	}
	if err := s.DB.Create(&guest).Error; err != nil {
		return nil, err
	}
	return s.GetByID(idStr(guest.ID))
}

var guestUpdateAllowed = []string{
	"guest_title", "first_name", "last_name", "dob", "gender",
	"phone_no", "email", "passport_no", "address", "postcode",
	"city", "country",
}

func (s *GuestService) Update(id string, fields map[string]interface{}) (*models.GuestResponse, error) {
	updates := map[string]interface{}{}
	for _, key := range guestUpdateAllowed {
		if val, ok := fields[key]; ok {
			updates[key] = blankToNil(val)
		}
	}
	if len(updates) == 0 {
		return s.GetByID(id)
	}
	if err := s.DB.Model(&models.Guest{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return nil, err
	}
	return s.GetByID(id)
}

// SetPassword re-hashes and stores a new portal credential; blank input is
// a no-op returning the current row.
func (s *GuestService) SetPassword(id, password string) (*models.GuestResponse, error) {
	if password == "" {
		return s.GetByID(id)
	}
	hash, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}
	err = s.DB.Model(&models.Guest{}).Where("id = ?", id).Update("password_hash", hash).Error
	if err != nil {
		return nil, err
	}
	return s.GetByID(id)
}

func (s *GuestService) Delete(id string) (bool, error) {
	result := s.DB.Where("id = ?", id).Delete(&models.Guest{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
