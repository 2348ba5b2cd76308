package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dasunNimantha/reel/internal/rename"
)

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "List the built-in naming templates",
	Run: func(cmd *cobra.Command, args []string) {
		for _, t := range rename.BuiltinTemplates() {
			fmt.Printf("%s\n", t.Name)
			fmt.Printf("  movie: %s\n", t.MoviePattern)
			fmt.Printf("  tv:    %s\n", t.TVPattern)
		}
	},
}

func init() {
	rootCmd.AddCommand(templatesCmd)
}
