package models

type Product struct {
	ID          string  `bson:"_id"         json:"id"`
	Name        string  `bson:"name"        json:"name"`
	Category    string  `bson:"category"    json:"category"`
	Description string  `bson:"description" json:"description"`
	ImageFile   string  `bson:"image_file"  json:"image_file"`
	Price       float64 `bson:"price"       json:"price"`
}
