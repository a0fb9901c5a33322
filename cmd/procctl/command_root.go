package main

import "github.com/spf13/cobra"

func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "procctl",
		Short:         "Process supervision core CLI",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newSpawnCmd())
	root.AddCommand(newKillCmd())
	root.AddCommand(newKillAllCmd())
	root.AddCommand(newRestartCmd())
	root.AddCommand(newStatusCmd())
	root.AddCommand(newListCmd())
	root.AddCommand(newStdinCmd())
	root.AddCommand(newLogsCmd())
	root.AddCommand(newRuntimeCmd())

	return root
}
