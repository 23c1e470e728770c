package services

import (
	"errors"

	"gorm.io/gorm"

	"hoteldesk-backend/models"
)

type AuditLogService struct {
	DB *gorm.DB
}

func NewAuditLogService(db *gorm.DB) *AuditLogService {
	return &AuditLogService{DB: db}
}

func auditLogToResponse(l *models.AuditLog) models.AuditLogResponse {
	resp := models.AuditLogResponse{
		ID:      idStr(l.ID),
		UserID:  l.UserID,
		Action:  l.Action,
		LogDate: l.LogDate,
	}
	if l.User != nil && l.User.ID != 0 {
		resp.UserName = &l.User.Name
		resp.UserEmail = &l.User.Email
	}
	return resp
}

type AuditLogFilters struct {
	UserID string
	Limit  int
}

func (s *AuditLogService) List(filters AuditLogFilters) ([]models.AuditLogResponse, error) {
	q := s.DB.Model(&models.AuditLog{}).Preload("User")
	if filters.UserID != "" {
		q = q.Where("user_id = ?", filters.UserID)
	}
	if filters.Limit > 0 {
		q = q.Limit(filters.Limit)
	}

	var logs []models.AuditLog
	if err := q.Order("log_date DESC, id DESC").Find(&logs).Error; err != nil {
		return nil, err
	}

	out := make([]models.AuditLogResponse, 0, len(logs))
	for i := range logs {
		out = append(out, auditLogToResponse(&logs[i]))
	}
	return out, nil
}

func (s *AuditLogService) Record(userID *uint, action string) (*models.AuditLogResponse, error) {
	entry := models.AuditLog{UserID: userID, Action: action}
	if err := s.DB.Create(&entry).Error; err != nil {
		return nil, err
	}
	return s.GetByID(idStr(entry.ID))
}

func (s *AuditLogService) GetByID(id string) (*models.AuditLogResponse, error) {
	var entry models.AuditLog
	err := s.DB.Preload("User").Where("id = ?", id).First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	resp := auditLogToResponse(&entry)
	return &resp, nil
}

func (s *AuditLogService) Delete(id string) (bool, error) {
	result := s.DB.Where("id = ?", id).Delete(&models.AuditLog{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
