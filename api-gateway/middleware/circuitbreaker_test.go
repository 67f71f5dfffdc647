package middleware

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCircuitBreaker_Call(t *testing.T) {
	failing := func() error { return errors.New("boom") }
	succeeding := func() error { return nil }

	t.Run("opens after max consecutive failures", func(t *testing.T) {
		cb := NewCircuitBreaker("orders", 3, time.Minute)

		for i := 0; i < 3; i++ {
			assert.Error(t, cb.Call(failing))
		}
		assert.Equal(t, StateOpen, cb.GetState())

		// Open circuit rejects immediately
		err := cb.Call(succeeding)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "circuit breaker is open")
	})

	t.Run("success resets the failure count while closed", func(t *testing.T) {
		cb := NewCircuitBreaker("catalog", 3, time.Minute)

		assert.Error(t, cb.Call(failing))
		assert.Error(t, cb.Call(failing))
		assert.NoError(t, cb.Call(succeeding))
		assert.Error(t, cb.Call(failing))
		assert.Error(t, cb.Call(failing))
		assert.Equal(t, StateClosed, cb.GetState())
	})

	t.Run("recovers through half-open after the timeout", func(t *testing.T) {
		cb := NewCircuitBreaker("custom", 1, 10*time.Millisecond)

		assert.Error(t, cb.Call(failing))
		assert.Equal(t, StateOpen, cb.GetState())

		time.Sleep(20 * time.Millisecond)

		// Three successes in half-open close the circuit
		for i := 0; i < 3; i++ {
			assert.NoError(t, cb.Call(succeeding))
		}
		assert.Equal(t, StateClosed, cb.GetState())
	})

	t.Run("failure in half-open reopens immediately", func(t *testing.T) {
		cb := NewCircuitBreaker("bargains", 1, 10*time.Millisecond)

		assert.Error(t, cb.Call(failing))
		time.Sleep(20 * time.Millisecond)

		assert.Error(t, cb.Call(failing))
		assert.Equal(t, StateOpen, cb.GetState())
	})
}

func TestCircuitBreakerManager(t *testing.T) {
	m := NewCircuitBreakerManager()

	cb1 := m.GetOrCreate("catalog")
	cb2 := m.GetOrCreate("catalog")
	assert.Same(t, cb1, cb2)

	m.GetOrCreate("orders")
	stats := m.GetAllStats()
	assert.Len(t, stats, 2)
	assert.Contains(t, stats, "catalog")
	assert.Contains(t, stats, "orders")
}

func TestDetermineServiceFromPath(t *testing.T) {
	cases := map[string]string{
		"/api/sarees":           "catalog",
		"/api/sarees/abc":       "catalog",
		"/api/regions/varanasi": "catalog",
		"/api/orders/ORD-1234":  "orders",
		"/api/bargains":         "bargains",
		"/api/custom/options":   "custom",
		"/api/users/me":         "users",
		"/api/auth/login":       "users",
		"/api/admin/users":      "users",
		"/metrics":              "",
		"/":                     "",
	}

	for path, want := range cases {
		assert.Equal(t, want, determineServiceFromPath(path), path)
	}
}
