package main

import (
	"github.com/chroniclerhq/chronicler/internal/app"

	"github.com/spf13/cobra"
)

var writeCmd = &cobra.Command{
	Use:   "write",
	Short: "Create a commit with a generated message",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := buildApp()
		if err != nil {
			return err
		}

		cached, _ := cmd.Flags().GetBool("cached")
		signoff, _ := cmd.Flags().GetBool("signoff")
		interactive, _ := cmd.Flags().GetBool("interactive")

		return a.Write(cmd.Context(), app.WriteOptions{
			Cached:      cached,
			Signoff:     signoff,
			Interactive: interactive,
		})
	},
}

func init() {
	rootCmd.AddCommand(writeCmd)
	writeCmd.Flags().Bool("cached", false, "commit only the staged changes")
	writeCmd.Flags().BoolP("signoff", "s", false, "add a Signed-off-by trailer")
	writeCmd.Flags().BoolP("interactive", "i", false, "edit the generated message before committing")
}
