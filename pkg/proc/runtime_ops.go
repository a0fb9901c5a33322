package proc

import "context"

// SetRuntimePath installs or clears (empty path) a user override for rt.
func (c *Controller) SetRuntimePath(rt Runtime, path string) {
	c.resolver.SetOverride(rt, path)
}

// GetRuntimePaths returns the current override map, keyed by runtime name.
func (c *Controller) GetRuntimePaths() map[string]string {
	return c.resolver.Overrides()
}

// DetectRuntimes probes bun, deno, and node and reports availability.
func (c *Controller) DetectRuntimes(ctx context.Context) []RuntimeInfo {
	return c.resolver.Detect(ctx)
}
