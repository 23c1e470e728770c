package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"hoteldesk-backend/models"
)

// ServiceCatalogService manages the orderable service catalog.
type ServiceCatalogService struct {
	DB *gorm.DB
}

func NewServiceCatalogService(db *gorm.DB) *ServiceCatalogService {
	return &ServiceCatalogService{DB: db}
}

func serviceToResponse(svc *models.Service) models.ServiceResponse {
	return models.ServiceResponse{
		ID:          idStr(svc.ID),
		ServiceName: svc.ServiceName,
		Price:       svc.Price,
		Status:      svc.Status,
	}
}

func (s *ServiceCatalogService) List() ([]models.ServiceResponse, error) {
	var services []models.Service
	if err := s.DB.Order("id ASC").Find(&services).Error; err != nil {
		return nil, err
	}
	out := make([]models.ServiceResponse, 0, len(services))
	for i := range services {
		out = append(out, serviceToResponse(&services[i]))
	}
	return out, nil
}

func (s *ServiceCatalogService) GetByID(id string) (*models.ServiceResponse, error) {
	var svc models.Service
	if err := s.DB.Where("id = ?", id).First(&svc).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	resp := serviceToResponse(&svc)
	return &resp, nil
}

type CreateServiceInput struct {
	ServiceName string
	Price       float64
	Status      *bool
}

func (s *ServiceCatalogService) Create(in CreateServiceInput) (*models.ServiceResponse, error) {
	status := true
	if in.Status != nil {
		status = *in.Status
	}
	svc := models.Service{
		ServiceName: strings.TrimSpace(in.ServiceName),
		Price:       in.Price,
		Status:      status,
	}
	if err := s.DB.Create(&svc).Error; err != nil {
		return nil, err
	}
	return s.GetByID(idStr(svc.ID))
}

var serviceUpdateAllowed = []string{"service_name", "price", "status"}

func (s *ServiceCatalogService) Update(id string, fields map[string]interface{}) (*models.ServiceResponse, error) {
	updates := map[string]interface{}{}
	for _, key := range serviceUpdateAllowed {
		if val, ok := fields[key]; ok {
			if key == "status" {
				updates[key] = truthy(val)
				continue
			}
			updates[key] = val
		}
	}
	if len(updates) == 0 {
		return s.GetByID(id)
	}
	result := s.DB.Model(&models.Service{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}
	return s.GetByID(id)
}

func (s *ServiceCatalogService) Delete(id string) (bool, error) {
	result := s.DB.Where("id = ?", id).Delete(&models.Service{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
