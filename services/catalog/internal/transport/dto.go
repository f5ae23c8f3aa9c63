package transport

type CreateProductRequest struct {
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	ImageFile   string  `json:"image_file"`
	Price       float64 `json:"price"`
}

type UpdateProductRequest struct {
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	ImageFile   string  `json:"image_file"`
	Price       float64 `json:"price"`
}

type DeleteProductResponse struct {
	Success bool `json:"success"`
}
