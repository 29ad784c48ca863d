package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var version = "dev"

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "librarydemo",
		Short:        "Run the in-memory library lending demo",
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newRunCmd(), newConfigCmd(), newVersionCmd())

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "librarydemo version %s\n", version)

			return err
		},
	}
}
