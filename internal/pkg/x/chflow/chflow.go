// Package chflow provides small helpers for passing values through Go
// channels without blocking producers.
package chflow

// SendLatest delivers v on ch without blocking. When the buffer is full the
// oldest pending value is discarded to make room, so a slow consumer always
// observes the most recent value. ch must be buffered.
func SendLatest[T any](ch chan T, v T) {
	for {
		select {
		case ch <- v:
			return
		default:
		}

		select {
		case <-ch:
		default:
		}
	}
}
