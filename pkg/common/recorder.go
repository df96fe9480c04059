package common

import "time"

// Recorder receives the latency of a single container operation.
type Recorder interface {
	Record(op string, d time.Duration)
}
