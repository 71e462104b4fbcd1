package timer

import (
	"sync/atomic"
	"time"
)

// Time contains the unix-time in milliseconds updated every [Resolution] milliseconds
var Time = new(atomic.Int64)

// Now returns the cached time. It lags behind the wall clock by at most Resolution,
// which is precise enough for I/O deadlines of seconds.
func Now() time.Time {
	return time.UnixMilli(Time.Load())
}

// Resolution is the frequency at which time is updated.
const Resolution = 500 * time.Millisecond

func init() {
	// the first value is stored synchronously, so that the early callers don't get
	// the zero time
	Time.Store(time.Now().UnixMilli())

	go func() {
		for {
			time.Sleep(Resolution)
			Time.Store(time.Now().UnixMilli())
		}
	}()
}
