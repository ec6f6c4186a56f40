package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/MuhammadWasif123/hotel-backend/internal/infrastructure/database"
)

// Connectivity check for the document store and Redis before running the
// e2e flows locally
func main() {
	uri := "mongodb://localhost:27017"
	if envURI := os.Getenv("TEST_MONGODB_URI"); envURI != "" {
		uri = envURI
	}

	redisAddr := "localhost:6379"
	if envAddr := os.Getenv("TEST_REDIS_ADDR"); envAddr != "" {
		redisAddr = envAddr
	}

	fmt.Println("Backing-store connection test")
	fmt.Println("=============================")
	fmt.Printf("Mongo: %s\n", uri)

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	db, err := database.OpenMongo(ctx, uri, "hotel_booking_test")
	if err != nil {
		log.Fatalf("Failed to connect to mongo: %v", err)
	}
	defer database.CloseMongo(ctx, db)
	fmt.Println("✓ Mongo connection successful")

	if err := database.EnsureUserIndexes(ctx, db); err != nil {
		log.Fatalf("Failed to create user indexes: %v", err)
	}
	fmt.Println("✓ User indexes ensured")

	count, err := db.Collection("users").CountDocuments(ctx, bson.M{})
	if err != nil {
		log.Fatalf("Failed to count users: %v", err)
	}
	fmt.Printf("✓ users collection reachable (%d documents)\n", count)

	fmt.Printf("Redis: %s\n", redisAddr)
	rdb := database.NewRedis(redisAddr, "", 0)
	if err := rdb.Ping(ctx); err != nil {
		log.Fatalf("Failed to ping redis: %v", err)
	}
	fmt.Println("✓ Redis connection successful")
}
