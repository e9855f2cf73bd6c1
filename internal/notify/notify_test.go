package notify

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Scaled-down display timings so tests run in milliseconds instead of the
// production 4s + 300ms.
const (
	testTTL  = 200 * time.Millisecond
	testFade = 20 * time.Millisecond
)

func TestLifecycle(t *testing.T) {
	n := New(testTTL, testFade)
	defer n.Close()

	n.Push("deposit complete", Success)

	// Visible well inside the display window.
	time.Sleep(testTTL / 4)
	active := n.Active()
	require.Len(t, active, 1)
	assert.Equal(t, "deposit complete", active[0].Message)
	assert.Equal(t, Success, active[0].Severity)
	assert.False(t, active[0].Expiring)

	// Gone after ttl + fade, with slack for the timers to fire.
	time.Sleep(testTTL + 5*testFade)
	assert.Empty(t, n.Active())
}

func TestFadePeriodStillVisible(t *testing.T) {
	n := New(150*time.Millisecond, 150*time.Millisecond)
	defer n.Close()

	n.Push("going away", Info)

	// Inside the fade window: still listed, marked expiring.
	time.Sleep(225 * time.Millisecond)
	active := n.Active()
	require.Len(t, active, 1)
	assert.True(t, active[0].Expiring)
}

func TestNoDeduplication(t *testing.T) {
	n := New(time.Minute, time.Second)
	defer n.Close()

	n.Push("same message", Error)
	n.Push("same message", Error)

	active := n.Active()
	assert.Len(t, active, 2)
	assert.NotEqual(t, active[0].ID, active[1].ID)
}

func TestIndependentExpiry(t *testing.T) {
	n := New(200*time.Millisecond, 20*time.Millisecond)
	defer n.Close()

	n.Push("first", Info)
	time.Sleep(150 * time.Millisecond)
	n.Push("second", Info)

	// First has expired, second is still in its display window.
	time.Sleep(150 * time.Millisecond)
	active := n.Active()
	require.Len(t, active, 1)
	assert.Equal(t, "second", active[0].Message)
}

func TestOnRaise(t *testing.T) {
	n := New(time.Minute, time.Second)
	defer n.Close()

	var raised []Notification
	n.OnRaise(func(notification Notification) {
		raised = append(raised, notification)
	})

	n.Push("hello", Info)
	require.Len(t, raised, 1)
	assert.Equal(t, "hello", raised[0].Message)
	assert.Equal(t, Info, raised[0].Severity)
	assert.False(t, raised[0].CreatedAt.IsZero())
}

func TestCloseDropsFurtherPushes(t *testing.T) {
	n := New(time.Minute, time.Second)
	n.Close()

	n.Push("after close", Info)
	assert.Empty(t, n.Active())
}
