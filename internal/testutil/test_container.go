//go:build integration

package testutil

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"
	"testing"
	"time"
)

// MongoDB limits database names to 63 bytes; keep room for the suffix.
const maxDBNamePrefix = 50

var (
	sharedContainer     *MongoDBContainer
	sharedContainerErr  error
	sharedContainerOnce sync.Once
)

// GetSharedMongoDB returns the package-wide MongoDB container, starting it on first use.
func GetSharedMongoDB(ctx context.Context) (*MongoDBContainer, error) {
	sharedContainerOnce.Do(func() {
		sharedContainer, sharedContainerErr = SetupMongoDB(ctx)
	})
	return sharedContainer, sharedContainerErr
}

// SetupTestMainWithMongoDB runs m against a shared MongoDB container and tears it down afterwards.
//
//	func TestMain(m *testing.M) {
//		os.Exit(testutil.SetupTestMainWithMongoDB(context.Background(), m))
//	}
func SetupTestMainWithMongoDB(ctx context.Context, m *testing.M) int {
	container, err := GetSharedMongoDB(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to start shared MongoDB: %v\n", err)
		return 1
	}

	code := m.Run()

	if err := container.Cleanup(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to clean up shared MongoDB: %v\n", err)
	}
	return code
}

// GetSharedContainerURI returns the URI of the shared MongoDB container.
// It panics when called outside SetupTestMainWithMongoDB.
func GetSharedContainerURI() string {
	if sharedContainer == nil {
		panic("shared MongoDB container not initialized")
	}
	return sharedContainer.URI
}

// SanitizeDBName turns a test name into a unique MongoDB database name.
func SanitizeDBName(testName string) string {
	var b strings.Builder
	for _, r := range testName {
		switch r {
		case '/', '\\', '.', ' ', '"', '$', '*', '<', '>', ':', '|', '?':
			b.WriteByte('_')
		default:
			b.WriteRune(r)
		}
	}

	name := b.String()
	if len(name) > maxDBNamePrefix {
		name = name[:maxDBNamePrefix]
	}
	return fmt.Sprintf("%s_%d", name, time.Now().UnixNano()%1000000)
}
