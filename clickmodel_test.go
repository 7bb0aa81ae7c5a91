// clickmodel_test.go
package neuromotor

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func newTestClicks(seed uint64) *ClickModel {
	return NewClickModel(DefaultClickParams(), newTestSampler(seed))
}

func TestClickModel_ClickDuration(t *testing.T) {
	c := newTestClicks(12345)
	var total time.Duration
	for i := 0; i < 1000; i++ {
		d := c.ClickDuration()
		assert.GreaterOrEqual(t, d, 50*time.Millisecond)
		assert.LessOrEqual(t, d, 350*time.Millisecond)
		total += d
	}
	// Log-normal with mu 4.6 centers the hold near 100 ms.
	mean := total / 1000
	assert.Greater(t, mean, 80*time.Millisecond)
	assert.Less(t, mean, 130*time.Millisecond)
}

func TestClickModel_VerificationDwell(t *testing.T) {
	c := newTestClicks(42)
	var total time.Duration
	for i := 0; i < 1000; i++ {
		d := c.VerificationDwell()
		assert.GreaterOrEqual(t, d, 100*time.Millisecond)
		assert.LessOrEqual(t, d, 800*time.Millisecond)
		total += d
	}
	// Dwell is a distinctly longer pause than the click hold.
	mean := total / 1000
	assert.Greater(t, mean, 200*time.Millisecond)
	assert.Less(t, mean, 350*time.Millisecond)
}

func TestClickModel_Determinism(t *testing.T) {
	c1 := newTestClicks(7)
	c2 := newTestClicks(7)
	for i := 0; i < 50; i++ {
		assert.Equal(t, c1.ClickDuration(), c2.ClickDuration())
		assert.Equal(t, c1.VerificationDwell(), c2.VerificationDwell())
	}
}
