package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection names used by the repositories.
const (
	TreatmentsCollection = "appointmentsCollection"
	BookingsCollection   = "booking"
	UsersCollection      = "users"
	DoctorsCollection    = "doctor"
	PaymentsCollection   = "payments"
)

// DB owns the MongoDB client for the lifetime of the process.
type DB struct {
	Client *mongo.Client
	name   string
}

// Open connects to MongoDB and verifies the connection with a ping.
func Open(ctx context.Context, uri, name string) (*DB, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	clientOptions := options.Client().ApplyURI(uri)
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}
	return &DB{Client: client, name: name}, nil
}

// Collection returns a handle on a collection of the configured database.
func (d *DB) Collection(name string) *mongo.Collection {
	return d.Client.Database(d.name).Collection(name)
}

// Ping reports whether the server is reachable.
func (d *DB) Ping(ctx context.Context) error {
	return d.Client.Ping(ctx, nil)
}

// Close disconnects the client.
func (d *DB) Close(ctx context.Context) error {
	return d.Client.Disconnect(ctx)
}
