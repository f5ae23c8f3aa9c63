package repo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/eshopx/microservices/services/catalog/internal/models"
)

var ErrNotFound = errors.New("product not found")

type ProductRepository interface {
	GetProduct(ctx context.Context, id string) (*models.Product, error)
	GetProducts(ctx context.Context, offset, limit int) (int64, []models.Product, error)
	GetProductsByCategory(ctx context.Context, category string) ([]models.Product, error)
	CreateProduct(ctx context.Context, product *models.Product) error
	UpdateProduct(ctx context.Context, product *models.Product) error
	DeleteProduct(ctx context.Context, id string) (bool, error)
}

type MongoRepo struct {
	Col *mongo.Collection
}

func (r *MongoRepo) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	var product models.Product
	err := r.Col.FindOne(ctx, bson.M{"_id": id}).Decode(&product)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("%q: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *MongoRepo) GetProducts(ctx context.Context, offset, limit int) (int64, []models.Product, error) {
	total, err := r.Col.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, nil, err
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "name", Value: 1}}).
		SetSkip(int64(offset)).
		SetLimit(int64(limit))

	cur, err := r.Col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return 0, nil, err
	}
	defer cur.Close(ctx)

	items := make([]models.Product, 0, limit)
	if err := cur.All(ctx, &items); err != nil {
		return 0, nil, err
	}
	return total, items, nil
}

func (r *MongoRepo) GetProductsByCategory(ctx context.Context, category string) ([]models.Product, error) {
	cur, err := r.Col.Find(ctx, bson.M{"category": category})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var items []models.Product
	if err := cur.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *MongoRepo) CreateProduct(ctx context.Context, product *models.Product) error {
	_, err := r.Col.InsertOne(ctx, product)
	return err
}

func (r *MongoRepo) UpdateProduct(ctx context.Context, product *models.Product) error {
	res, err := r.Col.ReplaceOne(ctx, bson.M{"_id": product.ID}, product)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("%q: %w", product.ID, ErrNotFound)
	}
	return nil
}

func (r *MongoRepo) DeleteProduct(ctx context.Context, id string) (bool, error) {
	res, err := r.Col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}
