package models

import "time"

type AuditLog struct {
	ID      uint      `gorm:"primaryKey" json:"id"`
	UserID  *uint     `gorm:"column:user_id;index" json:"user_id"`
	Action  string    `gorm:"type:text" json:"action"`
	LogDate time.Time `gorm:"column:log_date;autoCreateTime" json:"log_date"`

	User *User `gorm:"foreignKey:UserID" json:"-"`
}

type AuditLogResponse struct {
	ID        string    `json:"id"`
	UserID    *uint     `json:"user_id"`
	Action    string    `json:"action"`
	LogDate   time.Time `json:"log_date"`
	UserName  *string   `json:"user_name"`
	UserEmail *string   `json:"user_email"`
}
