package proc

import (
	"os/exec"
	"sync"
)

// Spawn resolves config, launches the child, wires its stdio pumps and
// reaper, and registers the resulting handle under name.
//
//  1. name must be non-empty and not already live in the registry.
//  2. config resolves via the Resolver and Planner; failures surface as
//     InvalidConfig or RuntimeUnavailable.
//  3. the OS spawn itself may fail with SpawnFailed.
func (c *Controller) Spawn(name string, config SpawnConfig) (*ProcessInfo, error) {
	if name == "" {
		return nil, newErr(KindInvalidConfig, name, nil)
	}
	if existing, ok := c.reg.get(name); ok && existing.Running() {
		return nil, newErr(KindAlreadyExists, name, nil)
	}

	p, perr := planSpawn(config, c.resolver)
	if perr != nil {
		return nil, perr
	}

	cmd := exec.Command(p.exe, p.args...)
	if config.Cwd != "" {
		cmd.Dir = config.Cwd
	}
	cmd.Env = p.env
	cmd.SysProcAttr = sysProcAttr()

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, newErr(KindSpawnFailed, name, err)
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, newErr(KindSpawnFailed, name, err)
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return nil, newErr(KindSpawnFailed, name, err)
	}

	logger.Printf("spawning %s: %s %v", name, p.exe, p.args)
	if err := cmd.Start(); err != nil {
		return nil, newErr(KindSpawnFailed, name, err)
	}

	handle := newChildHandle(name, cmd, stdin, config)

	if err := c.reg.insert(name, handle); err != nil {
		// Someone raced us to the name between our pre-check and here.
		// Kill what we just started; it never got pumps or a reaper.
		killChild(cmd)
		_ = cmd.Wait()
		return nil, err
	}

	// The reaper starts only after both pumps reach EOF: cmd.Wait closes
	// the read ends of the pipes, so calling it earlier could drop lines
	// still in flight or let one be emitted after the exit event.
	var pumps sync.WaitGroup
	pumps.Add(2)
	go func() { defer pumps.Done(); runPump(name, stdout, TopicStdout, c.sink) }()
	go func() { defer pumps.Done(); runPump(name, stderr, TopicStderr, c.sink) }()
	go func() { pumps.Wait(); runReaper(c.reg, handle, c.sink) }()

	info := handle.info()
	return &info, nil
}
