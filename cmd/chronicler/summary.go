package main

import (
	"github.com/spf13/cobra"
)

var summaryCmd = &cobra.Command{
	Use:   "summary <base>",
	Short: "Summarize a commit range as a pull-request description",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := buildApp()
		if err != nil {
			return err
		}
		return a.Summary(cmd.Context(), args[0])
	},
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}
