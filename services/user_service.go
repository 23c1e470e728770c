package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"hoteldesk-backend/models"
	"hoteldesk-backend/utils"
)

type UserService struct {
	DB *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{DB: db}
}

func userToResponse(u *models.User) models.UserResponse {
	return models.UserResponse{
		ID:        idStr(u.ID),
		Name:      u.Name,
		Username:  u.Username,
		FullName:  u.FullName,
		Email:     u.Email,
		Phone:     u.Phone,
		RoleID:    u.RoleID,
		Status:    u.Status,
		CreatedAt: u.CreatedAt,
	}
}

// FindByEmail returns the full record, hash included, for credential
// checks. The response mappers never expose the hash.
func (s *UserService) FindByEmail(email string) (*models.User, error) {
	var user models.User
	err := s.DB.Where("email = ?", strings.ToLower(strings.TrimSpace(email))).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (s *UserService) List() ([]models.UserResponse, error) {
	var users []models.User
	if err := s.DB.Order("id ASC").Find(&users).Error; err != nil {
		return nil, err
	}
	out := make([]models.UserResponse, 0, len(users))
	for i := range users {
		out = append(out, userToResponse(&users[i]))
	}
	return out, nil
}

func (s *UserService) GetByID(id string) (*models.UserResponse, error) {
	var user models.User
	if err := s.DB.Where("id = ?", id).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	resp := userToResponse(&user)
	return &resp, nil
}

type CreateUserInput struct {
	Name     string
	Email    string
	Password string
	Username *string
	FullName *string
	Phone    *string
	RoleID   *uint
	Status   *int
}

func (s *UserService) Create(in CreateUserInput) (*models.UserResponse, error) {
	hash, err := utils.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}
	status := 1
	if in.Status != nil {
		status = *in.Status
	}
	user := models.User{
		Name:         strings.TrimSpace(in.Name),
		Username:     in.Username,
		FullName:     in.FullName,
		Email:        strings.ToLower(strings.TrimSpace(in.Email)),
		Phone:        in.Phone,
		RoleID:       in.RoleID,
		Status:       status,
		PasswordHash: hash,
	}
	if err := s.DB.Create(&user).Error; err != nil {
		return nil, err
	}
	return s.GetByID(idStr(user.ID))
}

// VerifyPassword compares a plain credential against the stored hash.
func (s *UserService) VerifyPassword(plain, hash string) bool {
	return utils.CheckPassword(plain, hash)
}

var userUpdateAllowed = []string{"name", "username", "full_name", "email", "phone", "role_id", "status"}

func (s *UserService) Update(id string, fields map[string]interface{}) (*models.UserResponse, error) {
	updates := map[string]interface{}{}
	for _, key := range userUpdateAllowed {
		if val, ok := fields[key]; ok {
			updates[key] = val
		}
	}
	if len(updates) == 0 {
		return s.GetByID(id)
	}
	result := s.DB.Model(&models.User{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}
	return s.GetByID(id)
}

func (s *UserService) Delete(id string) (bool, error) {
	result := s.DB.Where("id = ?", id).Delete(&models.User{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
