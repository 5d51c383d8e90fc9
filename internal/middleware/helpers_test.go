package middleware

import (
	"testing"
	"time"

	"github.com/guttosm/feeding-service/internal/mocks"
	"github.com/stretchr/testify/assert"
)

// quietT lets mock assertions be polled without failing the test.
type quietT struct{}

func (quietT) Logf(string, ...interface{})   {}
func (quietT) Errorf(string, ...interface{}) {}
func (quietT) FailNow()                      {}

func waitForCreateLog(t *testing.T, m *mocks.MockLoggingService, n int) {
	t.Helper()
	assert.Eventually(t, func() bool {
		return m.AssertNumberOfCalls(quietT{}, "CreateLog", n)
	}, time.Second, 10*time.Millisecond)
}
