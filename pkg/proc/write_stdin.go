package proc

// WriteStdin appends a single record separator iff data does not already
// end with one, then writes the bytes to name's stdin. Concurrent writers
// to the same process are serialized; writers to distinct processes never
// block each other (§4.3).
func (c *Controller) WriteStdin(name, data string) error {
	handle, ok := c.reg.get(name)
	if !ok {
		return newErr(KindNotFound, name, nil)
	}
	if !handle.Running() {
		return newErr(KindNotRunning, name, nil)
	}
	if err := handle.writeStdin(data); err != nil {
		return newErr(KindWriteFailed, name, err)
	}
	return nil
}
