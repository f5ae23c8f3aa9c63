package transport

import "github.com/eshopx/microservices/services/basket/internal/models"

type StoreBasketRequest struct {
	UserName string                    `json:"user_name"`
	Items    []models.ShoppingCartItem `json:"items"`
}

type StoreBasketResponse struct {
	UserName string `json:"user_name"`
}

type CartResponse struct {
	UserName   string                    `json:"user_name"`
	Items      []models.ShoppingCartItem `json:"items"`
	TotalPrice float64                   `json:"total_price"`
}

type DeleteBasketResponse struct {
	Success bool `json:"success"`
}

type CheckoutRequest struct {
	UserName     string `json:"user_name"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	EmailAddress string `json:"email_address"`
	AddressLine  string `json:"address_line"`
	Country      string `json:"country"`
	ZipCode      string `json:"zip_code"`
	CardNumber   string `json:"card_number"`
	Expiration   string `json:"expiration"`
}

// Problem is the body of a server-side failure response.
type Problem struct {
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail"`
}
