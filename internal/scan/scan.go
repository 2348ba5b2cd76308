// Package scan discovers video files for the rename pipeline.
package scan

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
)

// videoExtensions is the fixed allow-list of recognized video containers.
var videoExtensions = map[string]bool{
	"mkv": true, "mp4": true, "avi": true, "mov": true,
	"wmv": true, "flv": true, "webm": true, "m4v": true,
	"mpg": true, "mpeg": true, "ts": true, "m2ts": true,
}

// IsVideoFile reports whether the path has a recognized video extension.
func IsVideoFile(path string) bool {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	return videoExtensions[strings.ToLower(ext)]
}

// Directory walks root recursively and returns the video files beneath it,
// deduplicated and sorted case-insensitively by filename.
func Directory(root string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && IsVideoFile(path) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return finalize(files), nil
}

// Files filters an explicit path list (e.g. from a file picker) down to
// video files, deduplicated and sorted case-insensitively by filename.
func Files(paths []string) []string {
	var files []string
	for _, path := range paths {
		if IsVideoFile(path) {
			files = append(files, path)
		}
	}
	return finalize(files)
}

func finalize(files []string) []string {
	seen := make(map[string]bool, len(files))
	unique := files[:0]
	for _, f := range files {
		if seen[f] {
			continue
		}
		seen[f] = true
		unique = append(unique, f)
	}

	sort.SliceStable(unique, func(i, j int) bool {
		return strings.ToLower(filepath.Base(unique[i])) < strings.ToLower(filepath.Base(unique[j]))
	})
	return unique
}
