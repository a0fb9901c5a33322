package proc

// Kill signals name's process to terminate and returns immediately; it does
// not wait for the exit to be observed. The reaper reports the exit
// asynchronously via TopicExit. If exit has already been observed this is a
// no-op success, matching the state machine's "no distinct Killed state"
// (§4.5).
func (c *Controller) Kill(name string) error {
	handle, ok := c.reg.get(name)
	if !ok {
		return newErr(KindNotFound, name, nil)
	}

	// Stdin is dropped before the signal so a writer blocked on a full
	// pipe cannot deadlock this call (§9).
	handle.closeStdin()

	if !handle.Running() {
		return nil
	}
	killChild(handle.cmd)
	return nil
}

// KillAll drains the registry and signals every entry, returning once the
// signals have been issued. Individual exits are reported asynchronously.
// Safe and idempotent on an empty registry.
func (c *Controller) KillAll() error {
	for _, handle := range c.reg.drain() {
		handle.closeStdin()
		if handle.Running() {
			killChild(handle.cmd)
		}
		// The reaper for each handle is still running independently and
		// will call reg.remove itself; drain() only detaches the map
		// entry early so a concurrent spawn of the same name need not
		// wait behind kill_all's fan-out.
	}
	return nil
}
