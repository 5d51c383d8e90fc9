package nutrition

import (
	"testing"

	"go.uber.org/goleak"
)

// TestMain fails the package if any calculation leaves a goroutine behind.
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}
