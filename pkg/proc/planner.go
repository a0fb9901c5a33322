package proc

import "os"

// plan is the concrete result of turning a SpawnConfig into an invocation:
// an executable path, an argument vector, and the environment to run it
// with. Working directory is left to the caller (exec.Cmd.Dir keyed
// directly off SpawnConfig.Cwd, since "" already means "inherit").
type plan struct {
	exe  string
	args []string
	env  []string
}

// planSpawn resolves cfg into a plan following the precedence in §4.2:
// sidecar, then command, then runtime, then InvalidConfig.
func planSpawn(cfg SpawnConfig, resolver *Resolver) (*plan, *Error) {
	exe, err := resolveExecutable(cfg, resolver)
	if err != nil {
		return nil, err
	}
	return &plan{
		exe:  exe,
		args: assembleArgs(cfg),
		env:  mergeEnv(cfg.Env),
	}, nil
}

func resolveExecutable(cfg SpawnConfig, resolver *Resolver) (string, *Error) {
	switch {
	case cfg.Sidecar != "":
		path, err := resolver.resolveSidecar(cfg.Sidecar)
		if err != nil {
			return "", err.(*Error)
		}
		return path, nil
	case cfg.Command != "":
		return cfg.Command, nil
	case cfg.Runtime != "":
		path, err := resolver.resolveRuntime(cfg.Runtime)
		if err != nil {
			return "", err.(*Error)
		}
		return path, nil
	default:
		return "", newErr(KindInvalidConfig, "", nil)
	}
}

// assembleArgs builds [<script>] + <args> when a script is set, or just
// <args> otherwise, regardless of which of sidecar/command/runtime
// resolved the executable: script insertion is a property of the config,
// not of the resolution path (§4.2).
func assembleArgs(cfg SpawnConfig) []string {
	if cfg.Script == "" {
		return append([]string(nil), cfg.Args...)
	}
	args := make([]string, 0, len(cfg.Args)+1)
	args = append(args, cfg.Script)
	args = append(args, cfg.Args...)
	return args
}

// mergeEnv layers extra on top of the core's own environment; keys in
// extra override inherited values, everything else passes through.
func mergeEnv(extra map[string]string) []string {
	if len(extra) == 0 {
		return nil
	}
	base := os.Environ()
	merged := make(map[string]string, len(base)+len(extra))
	for _, kv := range base {
		for i := 0; i < len(kv); i++ {
			if kv[i] == '=' {
				merged[kv[:i]] = kv[i+1:]
				break
			}
		}
	}
	for k, v := range extra {
		merged[k] = v
	}
	out := make([]string, 0, len(merged))
	for k, v := range merged {
		out = append(out, k+"="+v)
	}
	return out
}
