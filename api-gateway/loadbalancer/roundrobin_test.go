package loadbalancer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundRobin_Next(t *testing.T) {
	t.Run("cycles through servers in order", func(t *testing.T) {
		rr := NewRoundRobin([]string{"http://a", "http://b", "http://c"})

		assert.Equal(t, "http://a", rr.Next())
		assert.Equal(t, "http://b", rr.Next())
		assert.Equal(t, "http://c", rr.Next())
		assert.Equal(t, "http://a", rr.Next())
	})

	t.Run("empty server list falls back to default", func(t *testing.T) {
		rr := NewRoundRobin(nil)
		assert.Equal(t, "http://localhost:8080", rr.Next())
	})
}

func TestRoundRobin_AddRemoveServer(t *testing.T) {
	rr := NewRoundRobin([]string{"http://a"})

	rr.AddServer("http://b")
	assert.Len(t, rr.GetServers(), 2)

	rr.RemoveServer("http://a")
	servers := rr.GetServers()
	assert.Equal(t, []string{"http://b"}, servers)
	assert.Equal(t, "http://b", rr.Next())

	// Removing an unknown server is a no-op
	rr.RemoveServer("http://nope")
	assert.Len(t, rr.GetServers(), 1)
}
