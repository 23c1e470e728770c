package services

import (
	"errors"

	"gorm.io/gorm"

	"hoteldesk-backend/models"
)

type ServiceOrderService struct {
	DB *gorm.DB
}

func NewServiceOrderService(db *gorm.DB) *ServiceOrderService {
	return &ServiceOrderService{DB: db}
}

func serviceOrderToResponse(so *models.ServiceOrder) models.ServiceOrderResponse {
	resp := models.ServiceOrderResponse{
		ID:         idStr(so.ID),
		CheckinID:  so.CheckinID,
		ServiceID:  so.ServiceID,
		Quantity:   so.Quantity,
		TotalPrice: so.TotalPrice,
		OrderDate:  so.OrderDate,
	}
	if so.Service != nil && so.Service.ID != 0 {
		resp.ServiceName = &so.Service.ServiceName
	}
	if so.Checkin != nil && so.Checkin.Reservation != nil &&
		so.Checkin.Reservation.Customer != nil && so.Checkin.Reservation.Customer.ID != 0 {
		resp.CustomerName = &so.Checkin.Reservation.Customer.FullName
	}
	return resp
}

type ServiceOrderFilters struct {
	CheckinID string
}

func (s *ServiceOrderService) List(filters ServiceOrderFilters) ([]models.ServiceOrderResponse, error) {
	q := s.DB.Model(&models.ServiceOrder{}).
		Preload("Service").
		Preload("Checkin.Reservation.Customer")
	if filters.CheckinID != "" {
		q = q.Where("checkin_id = ?", filters.CheckinID)
	}

	var orders []models.ServiceOrder
	if err := q.Order("order_date DESC").Find(&orders).Error; err != nil {
		return nil, err
	}

	out := make([]models.ServiceOrderResponse, 0, len(orders))
	for i := range orders {
		out = append(out, serviceOrderToResponse(&orders[i]))
	}
	return out, nil
}

func (s *ServiceOrderService) GetByID(id string) (*models.ServiceOrderResponse, error) {
	var so models.ServiceOrder
	err := s.DB.Preload("Service").
		Preload("Checkin.Reservation.Customer").
		Where("id = ?", id).First(&so).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	resp := serviceOrderToResponse(&so)
	return &resp, nil
}

type CreateServiceOrderInput struct {
	CheckinID  uint
	ServiceID  uint
	Quantity   int
	TotalPrice *float64
}

// Create records a service order. When the caller omits the total, it is
// derived from the catalog price times the quantity.
func (s *ServiceOrderService) Create(in CreateServiceOrderInput) (*models.ServiceOrderResponse, error) {
	quantity := in.Quantity
	if quantity <= 0 {
		quantity = 1
	}

	var total float64
	if in.TotalPrice != nil {
		total = *in.TotalPrice
	} else {
		var svc models.Service
		err := s.DB.Where("id = ?", in.ServiceID).First(&svc).Error
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		total = svc.Price * float64(quantity)
	}

	so := models.ServiceOrder{
		CheckinID:  in.CheckinID,
		ServiceID:  in.ServiceID,
		Quantity:   quantity,
		TotalPrice: total,
	}
	if err := s.DB.Create(&so).Error; err != nil {
		return nil, err
	}
	return s.GetByID(idStr(so.ID))
}

func (s *ServiceOrderService) Delete(id string) (bool, error) {
	result := s.DB.Where("id = ?", id).Delete(&models.ServiceOrder{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
