package session

import (
	"context"
	"time"
)

// WatchBreak delivers the elapsed time of the active break once per tick.
// Each value is recomputed from the stored start time, so it stays correct
// across suspend and resume. The channel is closed when the break stops,
// the engine is closed or ctx is done. It is closed immediately if there is
// no active break.
func (e *Engine) WatchBreak(ctx context.Context, every time.Duration) <-chan time.Duration {
	out := make(chan time.Duration)

	e.mu.Lock()
	breakDone := e.breakDone
	closed := e.closed
	e.mu.Unlock()

	if breakDone == nil || closed {
		close(out)
		return out
	}

	go func() {
		defer close(out)

		ticker := time.NewTicker(every)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-breakDone:
				return
			case <-e.done:
				return
			case <-ticker.C:
			}

			elapsed, ok := e.Elapsed()
			if !ok {
				return
			}

			select {
			case out <- elapsed:
			case <-ctx.Done():
				return
			case <-breakDone:
				return
			case <-e.done:
				return
			}
		}
	}()

	return out
}
