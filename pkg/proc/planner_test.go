package proc

import "testing"

func TestAssembleArgsWithScript(t *testing.T) {
	cfg := SpawnConfig{Script: "main.ts", Args: []string{"--flag", "v"}}
	got := assembleArgs(cfg)
	want := []string{"main.ts", "--flag", "v"}
	if len(got) != len(want) {
		t.Fatalf("got %v want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v want %v", got, want)
		}
	}
}

func TestAssembleArgsWithoutScript(t *testing.T) {
	cfg := SpawnConfig{Args: []string{"one", "two"}}
	got := assembleArgs(cfg)
	if len(got) != 2 || got[0] != "one" || got[1] != "two" {
		t.Fatalf("unexpected args: %v", got)
	}
}

func TestMergeEnvOverridesInherited(t *testing.T) {
	env := mergeEnv(map[string]string{"PATH": "/custom/bin", "EXTRA": "1"})
	found := map[string]bool{}
	for _, kv := range env {
		if kv == "PATH=/custom/bin" {
			found["PATH"] = true
		}
		if kv == "EXTRA=1" {
			found["EXTRA"] = true
		}
	}
	if !found["PATH"] || !found["EXTRA"] {
		t.Fatalf("expected overrides present, got %v", env)
	}
}

func TestMergeEnvEmptyMeansInheritOnly(t *testing.T) {
	if env := mergeEnv(nil); env != nil {
		t.Fatalf("expected nil (inherit exec.Cmd default), got %v", env)
	}
}

func TestResolveExecutablePrecedence(t *testing.T) {
	resolver := NewResolver()

	// Command wins over runtime when both are set.
	exe, err := resolveExecutable(SpawnConfig{Command: "/bin/echo", Runtime: RuntimeNode}, resolver)
	if err != nil || exe != "/bin/echo" {
		t.Fatalf("expected command to win, got %q err=%v", exe, err)
	}

	// Sidecar wins over command when both are set, even if sidecar
	// resolution ultimately fails (precedence is checked before lookup).
	_, serr := resolveExecutable(SpawnConfig{Sidecar: "nonexistent-sidecar-xyz", Command: "/bin/echo"}, resolver)
	if KindOf(serr) != KindRuntimeUnavailable {
		t.Fatalf("expected sidecar attempt to take precedence and fail RuntimeUnavailable, got %v", serr)
	}
}

func TestResolveExecutableInvalidConfig(t *testing.T) {
	resolver := NewResolver()
	_, err := resolveExecutable(SpawnConfig{}, resolver)
	if KindOf(err) != KindInvalidConfig {
		t.Fatalf("expected InvalidConfig, got %v", err)
	}
}

func TestResolveExecutableRuntimeOverride(t *testing.T) {
	resolver := NewResolver()
	resolver.SetOverride(RuntimeNode, "/opt/custom/node")
	exe, err := resolveExecutable(SpawnConfig{Runtime: RuntimeNode}, resolver)
	if err != nil || exe != "/opt/custom/node" {
		t.Fatalf("expected override path, got %q err=%v", exe, err)
	}
}
