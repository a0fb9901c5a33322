package proc

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestSetOverrideAndOverrides(t *testing.T) {
	r := NewResolver()
	if len(r.Overrides()) != 0 {
		t.Fatalf("expected no overrides initially")
	}

	r.SetOverride(RuntimeBun, "/opt/bun/bin/bun")
	got := r.Overrides()
	if got["bun"] != "/opt/bun/bin/bun" {
		t.Fatalf("unexpected overrides: %v", got)
	}

	r.SetOverride(RuntimeBun, "")
	if len(r.Overrides()) != 0 {
		t.Fatalf("expected override cleared, got %v", r.Overrides())
	}
}

func TestResolveRuntimeUsesOverrideBeforePath(t *testing.T) {
	r := NewResolver()
	r.SetOverride(RuntimeDeno, "/does/not/matter")
	path, err := r.resolveRuntime(RuntimeDeno)
	if err != nil || path != "/does/not/matter" {
		t.Fatalf("expected override path with no lookup, got %q err=%v", path, err)
	}
}

func TestResolveRuntimeMissingIsRuntimeUnavailable(t *testing.T) {
	r := NewResolver()
	_, err := r.resolveRuntime(Runtime("definitely-not-a-real-runtime-binary"))
	if KindOf(err) != KindRuntimeUnavailable {
		t.Fatalf("expected RuntimeUnavailable, got %v", err)
	}
}

func TestResolveSidecarTriesPlainThenTripleSuffixed(t *testing.T) {
	dir := t.TempDir()
	self := filepath.Join(dir, "host-binary")
	if err := os.WriteFile(self, []byte("x"), 0o755); err != nil {
		t.Fatal(err)
	}

	suffixed := filepath.Join(dir, "worker-"+targetTriple())
	if err := os.WriteFile(suffixed, []byte("x"), 0o755); err != nil {
		t.Fatal(err)
	}

	// Only the triple-suffixed candidate exists: resolveSidecarNextTo must
	// fall through to it.
	got, err := resolveSidecarNextTo(self, "worker")
	if err != nil {
		t.Fatalf("expected triple-suffixed candidate to resolve, got err=%v", err)
	}
	if got != suffixed {
		t.Fatalf("expected %q, got %q", suffixed, got)
	}

	// Once the plain name also exists, it must win.
	plain := filepath.Join(dir, "worker")
	if err := os.WriteFile(plain, []byte("x"), 0o755); err != nil {
		t.Fatal(err)
	}
	got, err = resolveSidecarNextTo(self, "worker")
	if err != nil {
		t.Fatalf("expected plain candidate to resolve, got err=%v", err)
	}
	if got != plain {
		t.Fatalf("expected plain name %q to win over triple-suffixed, got %q", plain, got)
	}
}

func TestResolveSidecarNeitherCandidatePresent(t *testing.T) {
	dir := t.TempDir()
	self := filepath.Join(dir, "host-binary")
	if err := os.WriteFile(self, []byte("x"), 0o755); err != nil {
		t.Fatal(err)
	}

	_, err := resolveSidecarNextTo(self, "missing-sidecar")
	if KindOf(err) != KindRuntimeUnavailable {
		t.Fatalf("expected RuntimeUnavailable, got %v", err)
	}
}

func TestIsExecutableFile(t *testing.T) {
	dir := t.TempDir()
	notExec := filepath.Join(dir, "plain.txt")
	if err := os.WriteFile(notExec, []byte("hi"), 0o644); err != nil {
		t.Fatal(err)
	}
	if runtime.GOOS != "windows" && isExecutableFile(notExec) {
		t.Fatalf("expected non-executable file to report false")
	}

	if isExecutableFile(filepath.Join(dir, "missing")) {
		t.Fatalf("expected missing file to report false")
	}
}

func TestDetectReportsAllKnownRuntimes(t *testing.T) {
	r := NewResolver()
	infos := r.Detect(context.Background())
	if len(infos) != len(KnownRuntimes) {
		t.Fatalf("expected %d entries, got %d", len(KnownRuntimes), len(infos))
	}
	seen := map[Runtime]bool{}
	for _, info := range infos {
		seen[info.Name] = true
	}
	for _, rt := range KnownRuntimes {
		if !seen[rt] {
			t.Fatalf("missing detection entry for %s", rt)
		}
	}
}
