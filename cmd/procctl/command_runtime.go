package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/quillrun/procyon/pkg/transport"
)

func newRuntimeCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "runtime",
		Short: "Inspect and override managed runtime resolution",
	}
	root.AddCommand(newRuntimeSetCmd())
	root.AddCommand(newRuntimeGetCmd())
	root.AddCommand(newRuntimeDetectCmd())
	return root
}

func newRuntimeSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <runtime> <path>",
		Short: "Install a user override for a managed runtime (empty path clears it)",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var path string
			if len(args) == 2 {
				path = args[1]
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
			defer cancel()

			client, closeConn, err := dial(ctx)
			if err != nil {
				return err
			}
			defer closeConn()

			_, err = client.SetRuntimePath(ctx, &transport.SetRuntimePathRequest{Runtime: args[0], Path: path})
			return err
		},
	}
}

func newRuntimeGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get",
		Short: "Print current runtime path overrides",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
			defer cancel()

			client, closeConn, err := dial(ctx)
			if err != nil {
				return err
			}
			defer closeConn()

			resp, err := client.GetRuntimePaths(ctx, &transport.GetRuntimePathsRequest{})
			if err != nil {
				return err
			}
			if len(resp.Paths) == 0 {
				fmt.Println("no overrides set")
				return nil
			}
			for rt, path := range resp.Paths {
				fmt.Printf("%s\t%s\n", rt, path)
			}
			return nil
		},
	}
}

func newRuntimeDetectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "detect",
		Short: "Probe bun, deno, and node for availability",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), 20*time.Second)
			defer cancel()

			client, closeConn, err := dial(ctx)
			if err != nil {
				return err
			}
			defer closeConn()

			resp, err := client.DetectRuntimes(ctx, &transport.DetectRuntimesRequest{})
			if err != nil {
				return err
			}
			for _, rt := range resp.Runtimes {
				version := "-"
				if rt.Version != nil {
					version = *rt.Version
				}
				fmt.Printf("%-6s available=%-5v version=%s\n", rt.Name, rt.Available, version)
			}
			return nil
		},
	}
}
