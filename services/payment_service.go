package services

import (
	"errors"

	"gorm.io/gorm"

	"hoteldesk-backend/models"
)

type PaymentService struct {
	DB *gorm.DB
}

func NewPaymentService(db *gorm.DB) *PaymentService {
	return &PaymentService{DB: db}
}

func paymentToResponse(p *models.Payment) models.PaymentResponse {
	resp := models.PaymentResponse{
		ID:            idStr(p.ID),
		InvoiceID:     p.InvoiceID,
		PaymentMethod: p.PaymentMethod,
		Amount:        p.Amount,
		PaymentDate:   p.PaymentDate,
	}
	if p.Invoice != nil && p.Invoice.Checkin != nil &&
		p.Invoice.Checkin.Reservation != nil &&
		p.Invoice.Checkin.Reservation.Customer != nil &&
		p.Invoice.Checkin.Reservation.Customer.ID != 0 {
		resp.CustomerName = &p.Invoice.Checkin.Reservation.Customer.FullName
		resp.CustomerEmail = &p.Invoice.Checkin.Reservation.Customer.Email
	}
	return resp
}

func (s *PaymentService) List() ([]models.PaymentResponse, error) {
	var payments []models.Payment
	err := s.DB.Preload("Invoice.Checkin.Reservation.Customer").
		Order("payment_date DESC").Find(&payments).Error
	if err != nil {
		return nil, err
	}
	out := make([]models.PaymentResponse, 0, len(payments))
	for i := range payments {
		out = append(out, paymentToResponse(&payments[i]))
	}
	return out, nil
}

func (s *PaymentService) GetByID(id string) (*models.PaymentResponse, error) {
	var p models.Payment
	err := s.DB.Preload("Invoice.Checkin.Reservation.Customer").
		Where("id = ?", id).First(&p).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	resp := paymentToResponse(&p)
	return &resp, nil
}

type CreatePaymentInput struct {
	InvoiceID     uint
	PaymentMethod string
	Amount        float64
}

func (s *PaymentService) Create(in CreatePaymentInput) (*models.PaymentResponse, error) {
	p := models.Payment{
		InvoiceID:     in.InvoiceID,
		PaymentMethod: in.PaymentMethod,
		Amount:        in.Amount,
	}
	if err := s.DB.Create(&p).Error; err != nil {
		return nil, err
	}
	return s.GetByID(idStr(p.ID))
}

func (s *PaymentService) Delete(id string) (bool, error) {
	result := s.DB.Where("id = ?", id).Delete(&models.Payment{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
