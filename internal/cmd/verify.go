package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dasunNimantha/reel/internal/config"
	"github.com/dasunNimantha/reel/internal/provider/tmdb"
)

var verifyCmd = &cobra.Command{
	Use:   "verify-key [key]",
	Short: "Check whether a TMDB API key is valid",
	Long: `verify-key tests the given TMDB API key against the API. With no argument
it checks the configured key (or the built-in default, if one was compiled in).`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var key string
		if len(args) > 0 {
			key = args[0]
		} else {
			settings, err := config.Load()
			if err != nil {
				return fmt.Errorf("error loading config: %w", err)
			}
			key = settings.EffectiveAPIKey()
		}

		if key == "" {
			return fmt.Errorf("no API key to verify")
		}
		if tmdb.VerifyAPIKey(cmd.Context(), key) {
			fmt.Println("API key is valid")
			return nil
		}
		return fmt.Errorf("API key is invalid or TMDB is unreachable")
	},
}

func init() {
	rootCmd.AddCommand(verifyCmd)
}
