package services

import (
	"errors"

	"gorm.io/gorm"

	"hoteldesk-backend/models"
)

type InvoiceService struct {
	DB *gorm.DB
}

func NewInvoiceService(db *gorm.DB) *InvoiceService {
	return &InvoiceService{DB: db}
}

func invoiceToResponse(inv *models.Invoice) models.InvoiceResponse {
	resp := models.InvoiceResponse{
		ID:            idStr(inv.ID),
		CheckinID:     inv.CheckinID,
		RoomCharge:    inv.RoomCharge,
		ServiceCharge: inv.ServiceCharge,
		TotalAmount:   inv.TotalAmount,
		CreatedAt:     inv.CreatedAt,
	}
	if inv.Checkin != nil {
		if inv.Checkin.ReservationID != 0 {
			rid := inv.Checkin.ReservationID
			resp.ReservationID = &rid
		}
		if inv.Checkin.Reservation != nil && inv.Checkin.Reservation.Customer != nil &&
			inv.Checkin.Reservation.Customer.ID != 0 {
			resp.CustomerName = &inv.Checkin.Reservation.Customer.FullName
			resp.CustomerEmail = &inv.Checkin.Reservation.Customer.Email
		}
	}
	return resp
}

func (s *InvoiceService) List() ([]models.InvoiceResponse, error) {
	var invoices []models.Invoice
	err := s.DB.Preload("Checkin.Reservation.Customer").
		Order("created_at DESC").Find(&invoices).Error
	if err != nil {
		return nil, err
	}
	out := make([]models.InvoiceResponse, 0, len(invoices))
	for i := range invoices {
		out = append(out, invoiceToResponse(&invoices[i]))
	}
	return out, nil
}

func (s *InvoiceService) GetByID(id string) (*models.InvoiceResponse, error) {
	var inv models.Invoice
	err := s.DB.Preload("Checkin.Reservation.Customer").Where("id = ?", id).First(&inv).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	resp := invoiceToResponse(&inv)
	return &resp, nil
}

type CreateInvoiceInput struct {
	CheckinID     uint
	RoomCharge    float64
	ServiceCharge float64
	TotalAmount   *float64
}

// Create writes an invoice. An omitted total defaults to room charge
// plus service charge.
func (s *InvoiceService) Create(in CreateInvoiceInput) (*models.InvoiceResponse, error) {
	total := in.RoomCharge + in.ServiceCharge
	if in.TotalAmount != nil {
		total = *in.TotalAmount
	}
	inv := models.Invoice{
		CheckinID:     in.CheckinID,
		RoomCharge:    in.RoomCharge,
		ServiceCharge: in.ServiceCharge,
		TotalAmount:   total,
	}
	if err := s.DB.Create(&inv).Error; err != nil {
		return nil, err
	}
	return s.GetByID(idStr(inv.ID))
}

var invoiceUpdateAllowed = []string{"room_charge", "service_charge", "total_amount"}

func (s *InvoiceService) Update(id string, fields map[string]interface{}) (*models.InvoiceResponse, error) {
	updates := map[string]interface{}{}
	for _, key := range invoiceUpdateAllowed {
		if val, ok := fields[key]; ok {
			updates[key] = val
		}
	}
	if len(updates) == 0 {
		return s.GetByID(id)
	}
	if err := s.DB.Model(&models.Invoice{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return nil, err
	}
	return s.GetByID(id)
}

func (s *InvoiceService) Delete(id string) (bool, error) {
	result := s.DB.Where("id = ?", id).Delete(&models.Invoice{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
