package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestManualFiresEveryPeriod(t *testing.T) {
	c := NewManual()
	fired := 0
	c.Every(5*time.Second, func() { fired++ })

	c.Advance(4 * time.Second)
	assert.Equal(t, 0, fired)

	c.Advance(time.Second)
	assert.Equal(t, 1, fired)

	c.Advance(10 * time.Second)
	assert.Equal(t, 3, fired)
	assert.Equal(t, 15*time.Second, c.Now())
}

func TestManualStopIsIdempotent(t *testing.T) {
	c := NewManual()
	fired := 0
	timer := c.Every(time.Second, func() { fired++ })

	c.Advance(time.Second)
	timer.Stop()
	timer.Stop()
	c.Advance(5 * time.Second)

	assert.Equal(t, 1, fired)
	assert.Equal(t, 0, c.Armed())
}

func TestManualRearmFromFiring(t *testing.T) {
	c := NewManual()
	var order []time.Duration

	var timer Timer
	var arm func()
	arm = func() {
		timer = c.Every(3*time.Second, func() {
			order = append(order, c.Now())
			timer.Stop()
			arm()
		})
	}
	arm()

	c.Advance(10 * time.Second)
	assert.Equal(t, []time.Duration{3 * time.Second, 6 * time.Second, 9 * time.Second}, order)
	assert.Equal(t, 1, c.Armed())
}

func TestManualFiresInDueOrder(t *testing.T) {
	c := NewManual()
	var order []string
	c.Every(2*time.Second, func() { order = append(order, "fast") })
	c.Every(3*time.Second, func() { order = append(order, "slow") })

	c.Advance(6 * time.Second)
	assert.Equal(t, []string{"fast", "slow", "fast", "fast", "slow"}, order)
}
