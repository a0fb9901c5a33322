package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/quillrun/procyon/pkg/transport"
)

func newKillCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "kill <name>",
		Short: "Kill a named process",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
			defer cancel()

			client, closeConn, err := dial(ctx)
			if err != nil {
				return err
			}
			defer closeConn()

			if _, err := client.Kill(ctx, &transport.KillRequest{Name: args[0]}); err != nil {
				return err
			}
			fmt.Println("killed")
			return nil
		},
	}
}

func newKillAllCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "kill-all",
		Short: "Kill every tracked process",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
			defer cancel()

			client, closeConn, err := dial(ctx)
			if err != nil {
				return err
			}
			defer closeConn()

			if _, err := client.KillAll(ctx, &transport.KillAllRequest{}); err != nil {
				return err
			}
			fmt.Println("killed all")
			return nil
		},
	}
}
