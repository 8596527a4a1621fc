package database

import (
	"context"
	"log"
	"time"

	"github.com/anishgupta6801/LUMINA-WEBSITE/config"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

var (
	Client *mongo.Client
	DB     *mongo.Database
)

// InitDatabase establishes the MongoDB connection and caches the client and
// database handles for the process lifetime. Every request shares this single
// connection; no per-request connection is opened.
func InitDatabase() {
	if Client != nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(config.C.MongoURI))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		log.Fatalf("Failed to reach MongoDB: %v", err)
	}

	Client = client
	DB = client.Database(config.C.MongoDBName)

	log.Println("Connected to MongoDB successfully")
}

// Close releases the shared connection. Called once during shutdown so no
// request is left holding a dangling handle.
func Close(ctx context.Context) {
	if Client == nil {
		return
	}
	if err := Client.Disconnect(ctx); err != nil {
		log.Printf("Error closing MongoDB connection: %v", err)
		return
	}
	Client = nil
	DB = nil
	log.Println("MongoDB connection closed")
}
