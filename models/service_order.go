package models

import "time"

type ServiceOrder struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	CheckinID  uint      `gorm:"column:checkin_id;index" json:"checkin_id"`
	ServiceID  uint      `gorm:"column:service_id;index" json:"service_id"`
	Quantity   int       `gorm:"default:1" json:"quantity"`
	TotalPrice float64   `gorm:"column:total_price;default:0" json:"total_price"`
	OrderDate  time.Time `gorm:"column:order_date;autoCreateTime" json:"order_date"`

	Checkin *Checkin `gorm:"foreignKey:CheckinID" json:"-"`
	Service *Service `gorm:"foreignKey:ServiceID" json:"-"`
}

type ServiceOrderResponse struct {
	ID           string    `json:"id"`
	CheckinID    uint      `json:"checkin_id"`
	ServiceID    uint      `json:"service_id"`
	Quantity     int       `json:"quantity"`
	TotalPrice   float64   `json:"total_price"`
	OrderDate    time.Time `json:"order_date"`
	ServiceName  *string   `json:"service_name"`
	CustomerName *string   `json:"customer_name"`
}
