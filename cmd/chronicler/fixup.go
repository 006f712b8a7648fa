package main

import (
	"github.com/spf13/cobra"
)

var fixupCmd = &cobra.Command{
	Use:   "fixup",
	Short: "Rewrite the last commit's message",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := buildApp()
		if err != nil {
			return err
		}
		return a.Fixup(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(fixupCmd)
}
