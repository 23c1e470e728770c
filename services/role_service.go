package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"hoteldesk-backend/models"
)

type RoleService struct {
	DB *gorm.DB
}

func NewRoleService(db *gorm.DB) *RoleService {
	return &RoleService{DB: db}
}

func roleToResponse(r *models.Role) models.RoleResponse {
	return models.RoleResponse{ID: idStr(r.ID), Name: r.Name}
}

func (s *RoleService) List() ([]models.RoleResponse, error) {
	var roles []models.Role
	if err := s.DB.Order("id ASC").Find(&roles).Error; err != nil {
		return nil, err
	}
	out := make([]models.RoleResponse, 0, len(roles))
	for i := range roles {
		out = append(out, roleToResponse(&roles[i]))
	}
	return out, nil
}

func (s *RoleService) GetByID(id string) (*models.RoleResponse, error) {
	var role models.Role
	if err := s.DB.Where("id = ?", id).First(&role).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	resp := roleToResponse(&role)
	return &resp, nil
}

func (s *RoleService) Create(name string) (*models.RoleResponse, error) {
	role := models.Role{Name: strings.TrimSpace(name)}
	if err := s.DB.Create(&role).Error; err != nil {
		return nil, err
	}
	return s.GetByID(idStr(role.ID))
}

func (s *RoleService) Update(id, name string) (*models.RoleResponse, error) {
	result := s.DB.Model(&models.Role{}).Where("id = ?", id).Update("name", strings.TrimSpace(name))
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}
	return s.GetByID(id)
}

func (s *RoleService) Delete(id string) (bool, error) {
	result := s.DB.Where("id = ?", id).Delete(&models.Role{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
