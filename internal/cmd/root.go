package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "reel",
	Short: "A tool for matching and renaming media files",
	Long: `reel scans folders for video files, parses season/episode or title/year
information out of their filenames, looks up canonical metadata on TMDB, and
renames the files according to a chosen template.

Movie lookups run one at a time; episodes of the same show share a single
show lookup and fetch episode details in small concurrent batches.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
