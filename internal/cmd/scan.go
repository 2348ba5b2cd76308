package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/dasunNimantha/reel/internal/media"
	"github.com/dasunNimantha/reel/internal/scan"
)

var scanCmd = &cobra.Command{
	Use:   "scan [directory]",
	Short: "List video files with their parsed metadata",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		root := "."
		if len(args) > 0 {
			root = args[0]
		}

		files, err := scan.Directory(root)
		if err != nil {
			return fmt.Errorf("scan failed: %w", err)
		}

		for _, path := range files {
			name := filepath.Base(path)
			kind, info := media.Parse(name)

			switch kind {
			case media.TypeTV:
				fmt.Printf("%-3s %-40s S%02dE%02d  %s\n", kind.ShortName(), info.Title, info.Season, info.Episode, name)
			case media.TypeMovie:
				fmt.Printf("%-3s %-40s (%d)   %s\n", kind.ShortName(), info.Title, info.Year, name)
			default:
				fmt.Printf("%-3s %-40s        %s\n", kind.ShortName(), info.Title, name)
			}
		}
		fmt.Printf("\n%d video file(s)\n", len(files))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(scanCmd)
}
