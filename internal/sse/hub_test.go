package sse

import (
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Homestead_Go/internal/testing/leaktest"
)

func waitForClients(t *testing.T, hub *Hub, n int) {
	t.Helper()
	require.Eventually(t, func() bool { return hub.ClientCount() == n }, time.Second, 5*time.Millisecond)
}

func receive(t *testing.T, c *Client) (Event, bool) {
	t.Helper()
	select {
	case evt, ok := <-c.EventChannel:
		return evt, ok
	case <-time.After(100 * time.Millisecond):
		return Event{}, false
	}
}

func TestHub_RoutesBySession(t *testing.T) {
	hub := NewHub()
	hub.Start()
	defer hub.Stop()

	alice := hub.Register("session-a", nil)
	bob := hub.Register("session-b", nil)
	waitForClients(t, hub, 2)

	hub.Broadcast("session-a", "plot.planted", map[string]int{"plot_id": 1})

	evt, ok := receive(t, alice)
	require.True(t, ok)
	assert.Equal(t, "plot.planted", evt.Type)
	assert.Equal(t, "session-a", evt.SessionID)
	assert.NotEmpty(t, evt.ID)

	_, ok = receive(t, bob)
	assert.False(t, ok)
}

func TestHub_TypeFilter(t *testing.T) {
	hub := NewHub()
	hub.Start()
	defer hub.Stop()

	client := hub.Register("s", []string{"plot.withered"})
	waitForClients(t, hub, 1)

	hub.Broadcast("s", "plot.watered", nil)
	hub.Broadcast("s", "plot.withered", nil)

	evt, ok := receive(t, client)
	require.True(t, ok)
	assert.Equal(t, "plot.withered", evt.Type)
}

func TestHub_UnregisterClosesChannel(t *testing.T) {
	hub := NewHub()
	hub.Start()
	defer hub.Stop()

	client := hub.Register("s", nil)
	waitForClients(t, hub, 1)

	hub.Unregister(client.ID)
	waitForClients(t, hub, 0)

	_, ok := <-client.EventChannel
	assert.False(t, ok)
}

func TestFormatSSEMessage(t *testing.T) {
	msg, err := FormatSSEMessage(Event{ID: "1", Type: "day.advanced", SessionID: "s", Payload: map[string]int{"day": 2}})

	require.NoError(t, err)
	text := string(msg)
	assert.True(t, strings.HasPrefix(text, "id: 1\nevent: day.advanced\ndata: {"))
	assert.True(t, strings.HasSuffix(text, "\n\n"))
	assert.Contains(t, text, `"day":2`)
}

func TestHub_StopReleasesEverything(t *testing.T) {
	leaktest.CheckNoGoroutineLeak(t, func() {
		hub := NewHub()
		hub.Start()
		c := hub.Register("s1", nil)
		waitForClients(t, hub, 1)

		hub.Stop()

		_, ok := <-c.EventChannel
		assert.False(t, ok)
		assert.Equal(t, 0, hub.ClientCount())
	})
}

func TestHub_RegisterAfterStop(t *testing.T) {
	hub := NewHub()
	hub.Start()
	hub.Stop()

	c := hub.Register("s1", nil)

	_, ok := <-c.EventChannel
	assert.False(t, ok, "late clients get a closed stream")
}

func TestHub_RegisterRacingStopAlwaysCloses(t *testing.T) {
	for round := 0; round < 50; round++ {
		hub := NewHub()
		hub.Start()

		clients := make([]*Client, 8)
		var wg sync.WaitGroup
		for i := range clients {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				clients[i] = hub.Register("s1", nil)
			}(i)
		}
		hub.Stop()
		wg.Wait()

		for _, c := range clients {
			select {
			case _, ok := <-c.EventChannel:
				require.False(t, ok, "round %d: client %s left open", round, c.ID)
			case <-time.After(time.Second):
				t.Fatalf("round %d: client %s left open", round, c.ID)
			}
		}
		assert.Equal(t, 0, hub.ClientCount())
	}
}
