package models

import "time"

type Payment struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	InvoiceID     uint      `gorm:"column:invoice_id;index" json:"invoice_id"`
	PaymentMethod string    `gorm:"column:payment_method;size:50" json:"payment_method"`
	Amount        float64   `json:"amount"`
	PaymentDate   time.Time `gorm:"column:payment_date;autoCreateTime" json:"payment_date"`

	Invoice *Invoice `gorm:"foreignKey:InvoiceID" json:"-"`
}

type PaymentResponse struct {
	ID            string    `json:"id"`
	InvoiceID     uint      `json:"invoice_id"`
	PaymentMethod string    `json:"payment_method"`
	Amount        float64   `json:"amount"`
	PaymentDate   time.Time `json:"payment_date"`
	CustomerName  *string   `json:"customer_name"`
	CustomerEmail *string   `json:"customer_email"`
}
