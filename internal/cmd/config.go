package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dasunNimantha/reel/internal/config"
	"github.com/dasunNimantha/reel/internal/rename"
)

var (
	setAPIKey   string
	setTemplate string
	setLanguage string
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or update persisted settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := config.Load()
		if err != nil {
			return fmt.Errorf("error loading config: %w", err)
		}

		changed := false
		if cmd.Flags().Changed("set-key") {
			settings.TMDBAPIKey = setAPIKey
			changed = true
		}
		if setTemplate != "" {
			if _, ok := rename.TemplateByName(setTemplate); !ok {
				return fmt.Errorf("unknown template %q", setTemplate)
			}
			settings.Template = setTemplate
			changed = true
		}
		if setLanguage != "" {
			settings.TMDBLanguage = setLanguage
			changed = true
		}

		if changed {
			if err := settings.Save(); err != nil {
				return err
			}
			fmt.Println("Settings saved")
		}

		path, _ := config.Path()
		fmt.Printf("Config file:   %s\n", path)
		fmt.Printf("TMDB API key:  %s\n", maskKey(settings.TMDBAPIKey))
		fmt.Printf("Default key:   %v\n", config.HasDefaultAPIKey())
		fmt.Printf("Language:      %s\n", settings.TMDBLanguage)
		fmt.Printf("Template:      %s\n", settings.Template)
		fmt.Printf("Logging:       %v (%d day retention)\n", settings.EnableLogging, settings.LogRetentionDays)
		return nil
	},
}

func maskKey(key string) string {
	if key == "" {
		return "(not set)"
	}
	if len(key) <= 4 {
		return strings.Repeat("*", len(key))
	}
	return strings.Repeat("*", len(key)-4) + key[len(key)-4:]
}

func init() {
	configCmd.Flags().StringVar(&setAPIKey, "set-key", "", "Set the TMDB API key")
	configCmd.Flags().StringVar(&setTemplate, "set-template", "", "Set the default naming template")
	configCmd.Flags().StringVar(&setLanguage, "set-language", "", "Set the TMDB language")
	rootCmd.AddCommand(configCmd)
}
