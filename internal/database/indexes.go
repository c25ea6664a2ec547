package database

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureOrderIndexes creates the orderDate index the list endpoint sorts
// and filters on.
func EnsureOrderIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	orderDateIndex := mongo.IndexModel{
		Keys:    bson.D{{Key: "orderDate", Value: -1}},
		Options: options.Index().SetName("orderDate_desc"),
	}

	_, err := db.Collection("orders").Indexes().CreateOne(ctx, orderDateIndex)
	if err != nil {
		log.Println("EnsureOrderIndexes: orderDate index error:", err)
		return err
	}
	return nil
}

// EnsureUserIndexes enforces email uniqueness for accounts.
func EnsureUserIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	emailIndex := mongo.IndexModel{
		Keys: bson.D{{Key: "email", Value: 1}},
		Options: options.Index().
			SetName("email_unique").
			SetUnique(true),
	}

	_, err := db.Collection("users").Indexes().CreateOne(ctx, emailIndex)
	if err != nil {
		log.Println("EnsureUserIndexes: email index error:", err)
		return err
	}
	return nil
}
