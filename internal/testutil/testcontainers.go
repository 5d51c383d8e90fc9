//go:build integration

// Package testutil starts the MongoDB instance used by integration tests.
package testutil

import (
	"context"
	"fmt"
	"os"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/mongodb"
)

// mongoImage is the server version the feeding_targets indexes are tested against.
const mongoImage = "mongo:7.0"

// MongoDBContainer wraps a MongoDB testcontainer. Container is nil when
// TEST_MONGODB_URI points the tests at an existing server.
type MongoDBContainer struct {
	Container testcontainers.Container
	URI       string
}

// SetupMongoDB starts a MongoDB testcontainer, or reuses TEST_MONGODB_URI when set.
func SetupMongoDB(ctx context.Context) (*MongoDBContainer, error) {
	if uri := os.Getenv("TEST_MONGODB_URI"); uri != "" {
		return &MongoDBContainer{URI: uri}, nil
	}

	mongoContainer, err := mongodb.Run(ctx, mongoImage)
	if err != nil {
		return nil, fmt.Errorf("failed to start MongoDB container: %w", err)
	}

	uri, err := mongoContainer.ConnectionString(ctx)
	if err != nil {
		_ = mongoContainer.Terminate(ctx)
		return nil, fmt.Errorf("failed to get connection string: %w", err)
	}

	return &MongoDBContainer{
		Container: mongoContainer,
		URI:       uri,
	}, nil
}

// Cleanup terminates the MongoDB container.
func (m *MongoDBContainer) Cleanup(ctx context.Context) error {
	if m.Container == nil {
		return nil
	}
	if err := m.Container.Terminate(ctx); err != nil {
		return fmt.Errorf("failed to terminate container: %w", err)
	}
	return nil
}
