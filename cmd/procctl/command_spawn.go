package main

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/quillrun/procyon/pkg/transport"
)

func newSpawnCmd() *cobra.Command {
	var runtimeTag, sidecar, script, cwd string
	var env map[string]string

	cmd := &cobra.Command{
		Use:   "spawn <name> -- <command> [args...]",
		Short: "Spawn a named process",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			rest := args[1:]

			ctx, cancel := context.WithTimeout(cmd.Context(), 15*time.Second)
			defer cancel()

			client, closeConn, err := dial(ctx)
			if err != nil {
				return err
			}
			defer closeConn()

			req := &transport.SpawnRequest{
				Name:    name,
				Runtime: runtimeTag,
				Sidecar: sidecar,
				Script:  script,
				Cwd:     cwd,
				Env:     env,
			}
			if len(rest) > 0 {
				req.Command = rest[0]
				req.Args = rest[1:]
			}

			resp, err := client.Spawn(ctx, req)
			if err != nil {
				return err
			}
			printStatusTable(resp.Status)
			return nil
		},
	}

	cmd.Flags().StringVar(&runtimeTag, "runtime", "", "managed runtime tag (bun, deno, node)")
	cmd.Flags().StringVar(&sidecar, "sidecar", "", "sidecar binary name to resolve next to this host")
	cmd.Flags().StringVar(&script, "script", "", "script path passed as the first argument")
	cmd.Flags().StringVar(&cwd, "cwd", "", "working directory")
	cmd.Flags().StringToStringVar(&env, "env", nil, "extra environment variables, key=value")

	return cmd
}
