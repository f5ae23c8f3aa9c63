package models

type ShoppingCartItem struct {
	ProductID   string  `bson:"product_id"   json:"product_id"`
	ProductName string  `bson:"product_name" json:"product_name"`
	Quantity    int     `bson:"quantity"     json:"quantity"`
	Price       float64 `bson:"price"        json:"price"`
	Color       string  `bson:"color"        json:"color"`
}

// ShoppingCart is keyed by its user name. Stores replace the whole document,
// there is no versioning and concurrent writers race with last write wins.
type ShoppingCart struct {
	UserName string             `bson:"user_name" json:"user_name"`
	Items    []ShoppingCartItem `bson:"items"     json:"items"`
}

func (c *ShoppingCart) TotalPrice() float64 {
	var total float64
	for _, item := range c.Items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}
