package proc

import (
	"context"
	"time"
)

// DefaultShutdownGrace is the grace window Shutdown uses when called with a
// non-positive grace: the longest it waits for reapers to sweep every child
// before returning (§4.5: "≥100 ms is reasonable").
const DefaultShutdownGrace = 150 * time.Millisecond

// Shutdown drains the registry itself (rather than delegating to KillAll,
// which would leave nothing for this function to observe afterward),
// signals every handle, then waits up to grace for each reaper to sweep its
// handle. Anything still outstanding after the deadline is left behind:
// its reaper keeps running in the background and will still emit an exit
// event when the OS finally reaps it, but Shutdown no longer waits on it.
func (c *Controller) Shutdown(grace time.Duration) {
	if grace <= 0 {
		grace = DefaultShutdownGrace
	}

	handles := c.reg.drain()
	for _, handle := range handles {
		handle.closeStdin()
		if handle.Running() {
			killChild(handle.cmd)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), grace)
	defer cancel()
	for _, handle := range handles {
		select {
		case <-handle.removed:
		case <-ctx.Done():
			return
		}
	}
}
