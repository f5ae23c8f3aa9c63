package models

type Coupon struct {
	ID          int32   `gorm:"primaryKey"      json:"id"`
	ProductName string  `gorm:"index;not null"  json:"product_name"`
	Description string  `json:"description"`
	Amount      float64 `gorm:"not null"        json:"amount"`
}

func (Coupon) TableName() string {
	return "coupons"
}
