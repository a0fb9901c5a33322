package proc

// ListProcesses returns a ProcessInfo for every process currently in the
// registry, i.e. every name for which spawn succeeded and no exit event
// has yet fired (P6, modulo the sweep race window).
func (c *Controller) ListProcesses() []ProcessInfo {
	return c.reg.snapshot()
}

// GetStatus returns the current ProcessInfo for name.
func (c *Controller) GetStatus(name string) (*ProcessInfo, error) {
	handle, ok := c.reg.get(name)
	if !ok {
		return nil, newErr(KindNotFound, name, nil)
	}
	info := handle.info()
	return &info, nil
}
