package proc

// Restart kills the current occupant of name (if any), waits for its
// reaper to sweep it, then spawns anew. If config is nil the SpawnConfig of
// the handle currently registered under name is replayed. If name is not in
// the registry (never spawned, or its exit already swept):
//   - config supplied: this degenerates to a plain Spawn.
//   - config absent: fails NotFound. The config of a process whose exit has
//     been swept is not kept, so it cannot be replayed.
func (c *Controller) Restart(name string, config *SpawnConfig) (*ProcessInfo, error) {
	handle, ok := c.reg.get(name)
	if !ok {
		if config == nil {
			return nil, newErr(KindNotFound, name, nil)
		}
		return c.Spawn(name, *config)
	}

	replay := handle.lastConfig
	if config == nil {
		config = &replay
	}

	// Drop stdin, signal, then wait for the sweep so the follow-on Spawn's
	// AlreadyExists race is avoided by construction rather than by insert's
	// own wait loop (the sweep is exactly what insert would otherwise
	// block on).
	handle.closeStdin()
	if handle.Running() {
		killChild(handle.cmd)
	}
	<-handle.removed

	return c.Spawn(name, *config)
}
