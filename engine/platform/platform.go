package platform

import (
	"time"
)

var startTime time.Time = time.Now()

/**
 * @brief Returns the time in seconds since the process started. Used for
 * frame timing and for seeding random state.
 */
func GetAbsoluteTime() float64 {
	return time.Since(startTime).Seconds()
}

/**
 * @brief Gives the requested number of milliseconds back to the OS.
 */
func Sleep(ms float64) {
	time.Sleep(time.Duration(ms * float64(time.Millisecond)))
}
