package rename

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/dasunNimantha/reel/internal/log"
)

// Pair maps an existing file to its new name.
type Pair struct {
	OldPath string
	NewName string
}

// Record notes one completed rename, by filename only.
type Record struct {
	OldName string `json:"old_name"`
	NewName string `json:"new_name"`
}

// Execute renames each pair in order. When outputDir is non-empty files move
// there, otherwise they stay beside the original. A pair whose destination
// equals its source is skipped. If a destination already exists the batch
// aborts with an error naming the colliding path; renames performed before
// the collision are not rolled back, and the records for them are returned
// alongside the error.
func Execute(pairs []Pair, outputDir string) ([]Record, error) {
	records := make([]Record, 0, len(pairs))

	for _, pair := range pairs {
		var newPath string
		if outputDir != "" {
			newPath = filepath.Join(outputDir, pair.NewName)
		} else {
			newPath = filepath.Join(filepath.Dir(pair.OldPath), pair.NewName)
		}

		if pair.OldPath == newPath {
			continue
		}

		if _, err := os.Stat(newPath); err == nil {
			err := fmt.Errorf("destination already exists: %s", newPath)
			log.LogRename(pair.OldPath, newPath, false, err)
			return records, err
		}

		if parent := filepath.Dir(newPath); parent != "" {
			if err := os.MkdirAll(parent, 0755); err != nil {
				err := fmt.Errorf("failed to create directory %s: %w", parent, err)
				log.LogRename(pair.OldPath, newPath, false, err)
				return records, err
			}
		}

		if err := os.Rename(pair.OldPath, newPath); err != nil {
			err := fmt.Errorf("failed to rename %s: %w", pair.OldPath, err)
			log.LogRename(pair.OldPath, newPath, false, err)
			return records, err
		}

		log.LogRename(pair.OldPath, newPath, true, nil)
		records = append(records, Record{
			OldName: filepath.Base(pair.OldPath),
			NewName: pair.NewName,
		})
	}

	return records, nil
}
