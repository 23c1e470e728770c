package models

type Role struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:100;uniqueIndex" json:"name"`
}

type RoleResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
