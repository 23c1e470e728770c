package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"hoteldesk-backend/models"
	"hoteldesk-backend/utils"
)

type CustomerService struct {
	DB *gorm.DB
}

func NewCustomerService(db *gorm.DB) *CustomerService {
	return &CustomerService{DB: db}
}

func customerToResponse(c *models.Customer) models.CustomerResponse {
	return models.CustomerResponse{
		ID:        idStr(c.ID),
		FullName:  c.FullName,
		Gender:    c.Gender,
		Phone:     c.Phone,
		Email:     c.Email,
		IDCard:    c.IDCard,
		Address:   c.Address,
		CreatedAt: c.CreatedAt,
	}
}

func (s *CustomerService) FindByEmail(email string) (*models.Customer, error) {
	var customer models.Customer
	err := s.DB.Where("email = ?", strings.ToLower(strings.TrimSpace(email))).First(&customer).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &customer, nil
}

func (s *CustomerService) List() ([]models.CustomerResponse, error) {
	var customers []models.Customer
	if err := s.DB.Order("id ASC").Find(&customers).Error; err != nil {
		return nil, err
	}
	out := make([]models.CustomerResponse, 0, len(customers))
	for i := range customers {
		out = append(out, customerToResponse(&customers[i]))
	}
	return out, nil
}

func (s *CustomerService) GetByID(id string) (*models.CustomerResponse, error) {
	var customer models.Customer
	if err := s.DB.Where("id = ?", id).First(&customer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	resp := customerToResponse(&customer)
	return &resp, nil
}

type CreateCustomerInput struct {
	FullName string
	Gender   *string
	Phone    *string
	Email    string
	IDCard   *string
	Address  *string
	Password string
}

func (s *CustomerService) Create(in CreateCustomerInput) (*models.CustomerResponse, error) {
	hash, err := utils.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}
	customer := models.Customer{
		FullName:     strings.TrimSpace(in.FullName),
		Gender:       in.Gender,
		Phone:        in.Phone,
		Email:        strings.ToLower(strings.TrimSpace(in.Email)),
		IDCard:       in.IDCard,
		Address:      in.Address,
		PasswordHash: hash,
	}
	if err := s.DB.Create(&customer).Error; err != nil {
		return nil, err
	}
	return s.GetByID(idStr(customer.ID))
}

func (s *CustomerService) VerifyPassword(plain, hash string) bool {
	return utils.CheckPassword(plain, hash)
}

var customerUpdateAllowed = []string{"full_name", "gender", "phone", "email", "id_card", "address"}

func (s *CustomerService) Update(id string, fields map[string]interface{}) (*models.CustomerResponse, error) {
	updates := map[string]interface{}{}
	for _, key := range customerUpdateAllowed {
		if val, ok := fields[key]; ok {
			updates[key] = val
		}
	}
	if len(updates) == 0 {
		return s.GetByID(id)
	}
	if err := s.DB.Model(&models.Customer{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return nil, err
	}
	return s.GetByID(id)
}

func (s *CustomerService) Delete(id string) (bool, error) {
	result := s.DB.Where("id = ?", id).Delete(&models.Customer{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
