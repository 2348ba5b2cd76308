package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dasunNimantha/reel/internal/log"
)

var undoCmd = &cobra.Command{
	Use:   "undo",
	Short: "Reverse the renames from the most recent session",
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := log.UndoLastSession()
		if err != nil {
			return err
		}

		fmt.Printf("Session %s: %d rename(s) reversed, %d skipped\n",
			result.SessionID, result.Reversed, result.Skipped)
		for _, e := range result.Errors {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", e)
		}
		if len(result.Errors) > 0 {
			return fmt.Errorf("%d file(s) could not be restored", len(result.Errors))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(undoCmd)
}
