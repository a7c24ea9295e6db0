package nonce

import (
	"strconv"
	"sync/atomic"
	"time"
)

// SecondNonce issues unique nonce values derived from second-resolution
// wall-clock time, scaled to milliseconds. It suits exchanges that validate
// nonces against a second-granularity server clock: each second opens a
// fresh window of one thousand values, and bursts within the same second
// stay unique through atomic increments.
type SecondNonce struct {
	current uint64
}

// GetString returns the next nonce in decimal string form.
func (ng *SecondNonce) GetString() string {
	nonce := ng.GetUint64()
	return strconv.FormatUint(nonce, 10)
}

// GetUint64 returns the next nonce. When the wall clock has moved past the
// stored state the value jumps to the start of the current second's window,
// otherwise it increments within the window.
func (ng *SecondNonce) GetUint64() uint64 {
	current := atomic.LoadUint64(&ng.current)
	newNonce := uint64(time.Now().Unix()) * 1000

	if newNonce > current {
		if atomic.CompareAndSwapUint64(&ng.current, current, newNonce) {
			return newNonce
		}
	}

	return atomic.AddUint64(&ng.current, 1)
}

func NewSecondNonce(now time.Time) *SecondNonce {
	return &SecondNonce{
		current: uint64(now.Unix()) * 1000,
	}
}
