package ui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTeaClockArmsOnce(t *testing.T) {
	c := newTeaClock()
	fired := 0
	timer := c.Every(time.Second, func() { fired++ })

	require.NotNil(t, c.arm())
	assert.Nil(t, c.arm(), "pending timers are armed only once")
	assert.Equal(t, 1, c.live())

	id := timer.(*teaTimer).id
	assert.NotNil(t, c.fire(timerMsg{id: id}), "a live timer ticks again")
	assert.Equal(t, 1, fired)

	timer.Stop()
	assert.Nil(t, c.fire(timerMsg{id: id}))
	assert.Equal(t, 1, fired)
	assert.Zero(t, c.live())
}

func TestTeaClockStopDuringFire(t *testing.T) {
	c := newTeaClock()
	var timer interface{ Stop() }
	timer = c.Every(time.Second, func() { timer.Stop() })
	c.arm()

	assert.Nil(t, c.fire(timerMsg{id: timer.(*teaTimer).id}))
	assert.Zero(t, c.live())
}

func TestTeaClockSkipsTimersStoppedBeforeArm(t *testing.T) {
	c := newTeaClock()
	c.Every(time.Second, func() {}).Stop()

	assert.Nil(t, c.arm())
	assert.Nil(t, c.fire(timerMsg{id: 99}))
}
