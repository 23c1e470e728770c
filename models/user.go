package models

import "time"

// User is an administrative account; distinct from the portal-facing
// Customer and Guest accounts.
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"size:255" json:"name"`
	Username     *string   `gorm:"size:150" json:"username"`
	FullName     *string   `gorm:"column:full_name;size:255" json:"full_name"`
	Email        string    `gorm:"uniqueIndex;size:150" json:"email"`
	Phone        *string   `gorm:"size:50" json:"phone"`
	RoleID       *uint     `gorm:"column:role_id;index" json:"role_id"`
	Status       int       `gorm:"default:1" json:"status"`
	PasswordHash string    `gorm:"column:password_hash;size:255" json:"-"`
	CreatedAt    time.Time `json:"created_at"`

	Role *Role `gorm:"foreignKey:RoleID" json:"-"`
}

type UserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Username  *string   `json:"username"`
	FullName  *string   `json:"full_name"`
	Email     string    `json:"email"`
	Phone     *string   `json:"phone"`
	RoleID    *uint     `json:"role_id"`
	Status    int       `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}
