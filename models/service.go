package models

// Service is a catalog item orderable during a stay (laundry, spa, ...).
type Service struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	ServiceName string  `gorm:"column:service_name;size:255" json:"service_name"`
	Price       float64 `gorm:"default:0" json:"price"`
	Status      bool    `json:"status"`
}

type ServiceResponse struct {
	ID          string  `json:"id"`
	ServiceName string  `json:"service_name"`
	Price       float64 `json:"price"`
	Status      bool    `json:"status"`
}
