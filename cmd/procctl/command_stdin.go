package main

import (
	"bufio"
	"context"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/quillrun/procyon/pkg/transport"
)

func newStdinCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stdin <name> <data>",
		Short: "Write a line to a named process's stdin",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			var data string
			if len(args) == 2 {
				data = args[1]
			} else {
				scanner := bufio.NewScanner(os.Stdin)
				if scanner.Scan() {
					data = scanner.Text()
				}
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
			defer cancel()

			client, closeConn, err := dial(ctx)
			if err != nil {
				return err
			}
			defer closeConn()

			_, err = client.WriteStdin(ctx, &transport.WriteStdinRequest{Name: name, Data: data})
			return err
		},
	}
}
