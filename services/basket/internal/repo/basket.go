package repo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/eshopx/microservices/services/basket/internal/models"
)

var ErrNotFound = errors.New("basket not found")

type BasketRepository interface {
	GetBasket(ctx context.Context, userName string) (*models.ShoppingCart, error)
	StoreBasket(ctx context.Context, cart *models.ShoppingCart) (*models.ShoppingCart, error)
	DeleteBasket(ctx context.Context, userName string) (bool, error)
}

type MongoRepo struct {
	Col *mongo.Collection
}

func (r *MongoRepo) GetBasket(ctx context.Context, userName string) (*models.ShoppingCart, error) {
	var cart models.ShoppingCart
	err := r.Col.FindOne(ctx, bson.M{"user_name": userName}).Decode(&cart)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("%q: %w", userName, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

// StoreBasket upserts the whole cart document keyed by user name.
func (r *MongoRepo) StoreBasket(ctx context.Context, cart *models.ShoppingCart) (*models.ShoppingCart, error) {
	_, err := r.Col.ReplaceOne(ctx,
		bson.M{"user_name": cart.UserName},
		cart,
		options.Replace().SetUpsert(true),
	)
	if err != nil {
		return nil, err
	}
	return cart, nil
}

func (r *MongoRepo) DeleteBasket(ctx context.Context, userName string) (bool, error) {
	res, err := r.Col.DeleteOne(ctx, bson.M{"user_name": userName})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}
