//go:build e2e && unix

package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSlidePager(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	require.NoError(t, tf.StartApp())
	require.True(t, tf.Ready(), "Should show the title bar")

	// Open the current slide in ov
	tf.SendKeys(KeyEnter)
	require.True(t, tf.OutputContainsPlain("Slide 1 of 4", 3*time.Second), "Should show the slide in the pager")

	// Quit pager and ensure TUI again
	tf.Quit()
	require.True(t, tf.SeePlain("hero slider"), "Should return to main TUI after closing pager")
}

func TestHelpPager(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	require.NoError(t, tf.StartApp())
	require.True(t, tf.Ready(), "Should show the title bar")

	tf.SendKeys("H")
	require.True(t, tf.OutputContainsPlain("Hero Slider Help", 3*time.Second), "Should show help in the pager")

	tf.Quit()
	require.True(t, tf.SeePlain("hero slider"), "Should return to main TUI after closing help pager")
}
