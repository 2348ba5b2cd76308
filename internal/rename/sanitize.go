package rename

import "strings"

const invalidFilenameChars = `/\:*?"<>|`

// Sanitize strips characters that are unsafe in filenames on at least one
// major OS, then collapses repeated spaces and trims.
func Sanitize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if strings.ContainsRune(invalidFilenameChars, r) {
			continue
		}
		b.WriteRune(r)
	}

	result := b.String()
	for strings.Contains(result, "  ") {
		result = strings.ReplaceAll(result, "  ", " ")
	}
	return strings.TrimSpace(result)
}
