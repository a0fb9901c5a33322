package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/quillrun/procyon/pkg/transport"
)

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status <name>",
		Short: "Get status of a named process",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
			defer cancel()

			client, closeConn, err := dial(ctx)
			if err != nil {
				return err
			}
			defer closeConn()

			resp, err := client.GetStatus(ctx, &transport.GetStatusRequest{Name: args[0]})
			if err != nil {
				return err
			}
			printStatusTable(resp.Status)
			return nil
		},
	}
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List every tracked process",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
			defer cancel()

			client, closeConn, err := dial(ctx)
			if err != nil {
				return err
			}
			defer closeConn()

			resp, err := client.ListProcesses(ctx, &transport.ListProcessesRequest{})
			if err != nil {
				return err
			}
			if len(resp.Processes) == 0 {
				fmt.Println("no tracked processes")
				return nil
			}
			for _, st := range resp.Processes {
				printStatusTable(st)
			}
			return nil
		},
	}
}
