package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/dasunNimantha/reel/internal/config"
	"github.com/dasunNimantha/reel/internal/log"
	"github.com/dasunNimantha/reel/internal/match"
	"github.com/dasunNimantha/reel/internal/media"
	"github.com/dasunNimantha/reel/internal/provider"
	"github.com/dasunNimantha/reel/internal/provider/tmdb"
	"github.com/dasunNimantha/reel/internal/rename"
	"github.com/dasunNimantha/reel/internal/scan"
)

var (
	renameTemplate string
	renameOutput   string
	renameDryRun   bool
	renameNoLookup bool
	renameAPIKey   string
)

var renameCmd = &cobra.Command{
	Use:   "rename [directory]",
	Short: "Match files against TMDB and rename them",
	Long: `rename scans a directory for video files, parses their filenames, resolves
canonical titles and episode names on TMDB, and renames each file according
to the selected template. Use --dry-run to preview without touching disk and
--no-lookup to rename from parsed filename data alone.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRename,
}

func init() {
	renameCmd.Flags().StringVarP(&renameTemplate, "template", "t", "", "Naming template preset (Default, Plex, Jellyfin)")
	renameCmd.Flags().StringVarP(&renameOutput, "output", "o", "", "Move renamed files into this directory")
	renameCmd.Flags().BoolVarP(&renameDryRun, "dry-run", "n", false, "Preview renames without applying them")
	renameCmd.Flags().BoolVar(&renameNoLookup, "no-lookup", false, "Skip TMDB lookup and rename from parsed data only")
	renameCmd.Flags().StringVar(&renameAPIKey, "api-key", "", "TMDB API key (overrides configured key)")
	rootCmd.AddCommand(renameCmd)
}

// fileEntry carries one file through the scan -> match -> rename pipeline.
type fileEntry struct {
	path   string
	ext    string
	kind   media.Type
	parsed media.ParsedInfo
	meta   *provider.Metadata
	err    error
}

func runRename(cmd *cobra.Command, args []string) error {
	root := "."
	if len(args) > 0 {
		root = args[0]
	}

	settings, err := config.Load()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	tplName := renameTemplate
	if tplName == "" {
		tplName = settings.Template
	}
	tpl, ok := rename.TemplateByName(tplName)
	if !ok {
		return fmt.Errorf("unknown template %q", tplName)
	}

	paths, err := scan.Directory(root)
	if err != nil {
		return fmt.Errorf("scan failed: %w", err)
	}
	if len(paths) == 0 {
		fmt.Println("No video files found")
		return nil
	}

	entries := make([]fileEntry, len(paths))
	for i, path := range paths {
		name := filepath.Base(path)
		kind, parsed := media.Parse(name)
		_, ext := media.SplitStem(name)
		entries[i] = fileEntry{path: path, ext: ext, kind: kind, parsed: parsed}
	}

	if !renameNoLookup {
		if err := lookupEntries(cmd.Context(), settings, entries); err != nil {
			return err
		}
	}

	var pairs []rename.Pair
	for i := range entries {
		e := &entries[i]
		if e.err != nil {
			fmt.Fprintf(os.Stderr, "skip %s: %v\n", filepath.Base(e.path), e.err)
			continue
		}
		newName := rename.Render(e.kind, e.parsed, e.meta, tpl, e.ext)
		pairs = append(pairs, rename.Pair{OldPath: e.path, NewName: newName})
	}

	if renameDryRun {
		for _, p := range pairs {
			fmt.Printf("%s -> %s\n", filepath.Base(p.OldPath), p.NewName)
		}
		fmt.Printf("\n%d file(s) would be renamed\n", len(pairs))
		return nil
	}

	log.Initialize(settings.EnableLogging, settings.LogRetentionDays)
	if err := log.StartSession("rename", args); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	records, renameErr := rename.Execute(pairs, renameOutput)
	if err := log.EndSession(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}

	for _, r := range records {
		fmt.Printf("%s -> %s\n", r.OldName, r.NewName)
	}
	if renameErr != nil {
		return fmt.Errorf("rename aborted after %d file(s): %w", len(records), renameErr)
	}

	settings.LastInputDir = root
	if renameOutput != "" {
		settings.LastOutputDir = renameOutput
	}
	if err := settings.Save(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}

	fmt.Printf("\n%d file(s) renamed\n", len(records))
	return nil
}

// lookupEntries resolves remote metadata for all entries in one batch.
func lookupEntries(ctx context.Context, settings *config.Settings, entries []fileEntry) error {
	apiKey := renameAPIKey
	if apiKey == "" {
		apiKey = settings.EffectiveAPIKey()
	}
	if apiKey == "" {
		return fmt.Errorf("%w (set one with 'reel config --set-key' or pass --no-lookup)", match.ErrNoCredential)
	}

	gateway, err := tmdb.New(apiKey, settings.TMDBLanguage)
	if err != nil {
		return err
	}

	requests := make([]match.Request, len(entries))
	for i, e := range entries {
		requests[i] = match.Request{
			Index:   i,
			Title:   e.parsed.Title,
			Year:    e.parsed.Year,
			Season:  e.parsed.Season,
			Episode: e.parsed.Episode,
			Kind:    e.kind,
		}
	}

	if ctx == nil {
		ctx = context.Background()
	}
	engine := match.NewEngine(gateway, apiKey)
	for _, res := range engine.MatchAll(ctx, requests) {
		entries[res.Index].meta = res.Meta
		entries[res.Index].err = res.Err
	}
	return nil
}
