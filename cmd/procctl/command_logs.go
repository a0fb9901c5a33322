package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/quillrun/procyon/pkg/transport"
)

func newLogsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logs [name]",
		Short: "Stream stdout/stderr/exit events, optionally scoped to one process",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var name string
			if len(args) == 1 {
				name = args[0]
			}

			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()

			client, closeConn, err := dial(ctx)
			if err != nil {
				return err
			}
			defer closeConn()

			stream, err := client.StreamLogs(ctx, &transport.StreamLogsRequest{Name: name})
			if err != nil {
				return err
			}
			for {
				ev, err := stream.Recv()
				if err == io.EOF {
					return nil
				}
				if err != nil {
					return err
				}

				switch ev.Topic {
				case "js-process-stdout":
					fmt.Fprintf(os.Stdout, "%s: %s\n", ev.Name, ev.Data)
				case "js-process-stderr":
					fmt.Fprintf(os.Stderr, "%s: %s\n", ev.Name, ev.Data)
				case "js-process-exit":
					code := "null"
					if ev.Code != nil {
						code = fmt.Sprintf("%d", *ev.Code)
					}
					fmt.Fprintf(os.Stdout, "%s: exited with code %s\n", ev.Name, code)
				}
			}
		},
	}
}
