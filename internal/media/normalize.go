package media

import "strings"

// SplitStem splits a filename on its final dot, returning the stem and the
// extension without the dot. A filename with no dot is returned unchanged
// with an empty extension.
func SplitStem(filename string) (stem, ext string) {
	if i := strings.LastIndex(filename, "."); i != -1 {
		return filename[:i], filename[i+1:]
	}
	return filename, ""
}

// Normalize replaces the separator characters '.', '_' and '-' with single
// spaces. Runs of whitespace are left alone here; the title cleaner collapses
// them once tag removal is done.
func Normalize(stem string) string {
	r := strings.NewReplacer(".", " ", "_", " ", "-", " ")
	return r.Replace(stem)
}
