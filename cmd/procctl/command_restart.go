package main

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/quillrun/procyon/pkg/transport"
)

func newRestartCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "restart <name>",
		Short: "Restart a named process, replaying its last spawn config",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), 15*time.Second)
			defer cancel()

			client, closeConn, err := dial(ctx)
			if err != nil {
				return err
			}
			defer closeConn()

			resp, err := client.Restart(ctx, &transport.RestartRequest{Name: args[0]})
			if err != nil {
				return err
			}
			printStatusTable(resp.Status)
			return nil
		},
	}
}
