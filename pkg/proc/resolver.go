package proc

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// versionFlags gives the conventional version-probe flag per managed
// runtime; all three of bun, deno, and node accept --version.
var versionFlags = map[Runtime]string{
	RuntimeBun:  "--version",
	RuntimeDeno: "--version",
	RuntimeNode: "--version",
}

// Resolver maps logical runtime tags and sidecar names to absolute
// executable paths, honoring user overrides. It holds no process state
// beyond the override map, which is process-wide and lives only as long as
// the core does.
type Resolver struct {
	mu        sync.RWMutex
	overrides map[Runtime]string
}

// NewResolver returns an empty resolver: no overrides, PATH-based lookup
// for every known runtime.
func NewResolver() *Resolver {
	return &Resolver{overrides: make(map[Runtime]string)}
}

// SetOverride installs path as the resolution target for rt. An empty path
// clears any existing override, reverting to PATH-based lookup.
func (r *Resolver) SetOverride(rt Runtime, path string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if path == "" {
		delete(r.overrides, rt)
		return
	}
	r.overrides[rt] = path
}

// Overrides returns a snapshot of the current override map, keyed by
// runtime name string as the command surface expects.
func (r *Resolver) Overrides() map[string]string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make(map[string]string, len(r.overrides))
	for rt, p := range r.overrides {
		out[string(rt)] = p
	}
	return out
}

func (r *Resolver) override(rt Runtime) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.overrides[rt]
	return p, ok
}

// resolveRuntime locates rt's executable: override first, else PATH lookup
// for a binary named identically to the runtime tag.
func (r *Resolver) resolveRuntime(rt Runtime) (string, error) {
	if p, ok := r.override(rt); ok {
		return p, nil
	}
	p, err := exec.LookPath(string(rt))
	if err != nil {
		return "", newErr(KindRuntimeUnavailable, string(rt), err)
	}
	return p, nil
}

// resolveSidecar looks for an executable next to the host's own binary,
// trying <sidecar> then <sidecar>-<targetTriple>, in that order. Either
// name winning is accepted; picking a release-vs-development preference
// between them is left as an integration policy call (§9 open question).
func (r *Resolver) resolveSidecar(name string) (string, error) {
	self, err := os.Executable()
	if err != nil {
		return "", newErr(KindRuntimeUnavailable, name, err)
	}
	return resolveSidecarNextTo(self, name)
}

// resolveSidecarNextTo is resolveSidecar's precedence logic with the host
// binary's own path taken as a parameter, so tests can exercise the actual
// candidate search without needing to fake os.Executable.
func resolveSidecarNextTo(self, name string) (string, error) {
	dir := filepath.Dir(self)

	candidates := []string{
		filepath.Join(dir, name),
		filepath.Join(dir, name+"-"+targetTriple()),
	}
	for _, c := range candidates {
		if isExecutableFile(c) {
			return c, nil
		}
	}
	return "", newErr(KindRuntimeUnavailable, name, os.ErrNotExist)
}

func isExecutableFile(path string) bool {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return false
	}
	return isExecutableMode(info)
}

// Detect probes every known runtime and reports availability. Per-runtime
// failures are non-fatal: they surface only as Available == false.
func (r *Resolver) Detect(ctx context.Context) []RuntimeInfo {
	out := make([]RuntimeInfo, 0, len(KnownRuntimes))
	for _, rt := range KnownRuntimes {
		out = append(out, r.detectOne(ctx, rt))
	}
	return out
}

func (r *Resolver) detectOne(ctx context.Context, rt Runtime) RuntimeInfo {
	path, err := r.resolveRuntime(rt)
	if err != nil {
		return RuntimeInfo{Name: rt, Available: false}
	}

	info := RuntimeInfo{Name: rt, Path: strPtr(path)}

	probeCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	flag := versionFlags[rt]
	out, err := exec.CommandContext(probeCtx, path, flag).Output()
	if err != nil {
		info.Available = false
		return info
	}

	version := strings.TrimSpace(string(out))
	info.Version = strPtr(version)
	info.Available = true
	return info
}
