package nonce

import (
	"math"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"
)

var log = logrus.WithField("component", "nonce")

const (
	// maxAheadMs is how far the issued sequence may run ahead of the wall
	// clock before a diagnostic is logged. The log is advisory only and
	// never changes the issued value.
	maxAheadMs = 1000

	// rebaseGapMs is how far the issued sequence may lag behind the wall
	// clock before the next value is rebased to the current time instead
	// of incrementing from the stale state.
	rebaseGapMs = 5000
)

// MillisecondNonce issues strictly increasing nonce values that track the
// wall clock in milliseconds. Values are unique across goroutines: the state
// is advanced with a compare-and-swap and the whole read-compute-swap cycle
// is retried on contention. The retry loop spins without backoff, which is
// safe because each attempt is a few atomic operations and contention
// windows are microseconds-scale.
type MillisecondNonce struct {
	current uint64
}

// NewMillisecondNonce creates a nonce source seeded at now, usually
// time.Now(). Tests can seed a skewed time to exercise the rebase behavior.
func NewMillisecondNonce(now time.Time) *MillisecondNonce {
	return &MillisecondNonce{
		current: uint64(now.UnixMilli()),
	}
}

// GetString returns the next nonce in decimal string form.
func (ng *MillisecondNonce) GetString() string {
	nonce := ng.GetUint64()
	return strconv.FormatUint(nonce, 10)
}

// GetUint64 returns the next nonce. Each returned value is strictly greater
// than every previously returned one. Under a burst of calls the values
// increase by exactly 1; after the source has been idle for more than
// rebaseGapMs the next value jumps forward to the current wall clock so the
// exchange's nonce freshness window is not violated.
func (ng *MillisecondNonce) GetUint64() uint64 {
	for {
		nowMs := uint64(time.Now().UnixMilli())
		current := atomic.LoadUint64(&ng.current)

		if current > nowMs+maxAheadMs {
			driftAheadCounter.Inc()
			log.Infof("nonce progressed too far ahead: current=%d now=%d", current, nowMs)
		}

		target := current
		if current < nowMs && nowMs-current > rebaseGapMs {
			rebaseCounter.Inc()
			target = nowMs
		}

		// saturate instead of wrapping around
		next := target + 1
		if next < target {
			next = math.MaxUint64
		}

		if atomic.CompareAndSwapUint64(&ng.current, current, next) {
			return target
		}
	}
}
