package nonce

import (
	"strconv"
	"sync"
	"testing"
	"time"
)

func TestSecondNonce_GetString(t *testing.T) {
	ng := NewSecondNonce(time.Now())

	nonceStr := ng.GetString()
	if len(nonceStr) == 0 {
		t.Errorf("expected non-empty nonce string, got empty string")
	}

	_, err := strconv.ParseUint(nonceStr, 10, 64)
	if err != nil {
		t.Errorf("expected valid integer nonce string, got error: %v", err)
	}
}

func TestSecondNonce_StrictlyIncreasing(t *testing.T) {
	ng := NewSecondNonce(time.Now())

	// Within a second the counter steps by one, and at the second boundary
	// it jumps forward to the new base. It must never repeat or go back.
	prev := ng.GetUint64()
	for i := 0; i < 1000; i++ {
		cur := ng.GetUint64()
		if cur <= prev {
			t.Fatalf("expected nonce greater than %d, got %d", prev, cur)
		}
		prev = cur
	}
}

func TestSecondNonce_Concurrency(t *testing.T) {
	ng := NewSecondNonce(time.Now())
	var wg sync.WaitGroup
	nonces := sync.Map{}

	// Generate nonces concurrently
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			n := ng.GetUint64()
			nonces.Store(n, true)
		}()
	}

	wg.Wait()

	// Check for duplicate nonces
	uniqueCount := 0
	nonces.Range(func(key, value any) bool {
		uniqueCount++
		return true
	})

	if uniqueCount != 100 {
		t.Errorf("expected 100 unique nonces, got %d", uniqueCount)
	}
}
