package models

import "time"

type Order struct {
	ID           string    `gorm:"primaryKey"       json:"id"`
	EventID      string    `gorm:"uniqueIndex"      json:"event_id"`
	UserName     string    `gorm:"index;not null"   json:"user_name"`
	TotalPrice   float64   `gorm:"not null"         json:"total_price"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	EmailAddress string    `json:"email_address"`
	AddressLine  string    `json:"address_line"`
	Country      string    `json:"country"`
	ZipCode      string    `json:"zip_code"`
	CardNumber   string    `json:"-"`
	Expiration   string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

func (Order) TableName() string {
	return "orders"
}
