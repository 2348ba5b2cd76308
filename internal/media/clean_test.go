package media

import "testing"

func TestCleanTitle(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"QualityWords", "Breaking Bad 1080p BluRay", "Breaking Bad"},
		{"Brackets", "Show [rartv] Title", "Show Title"},
		{"Parens", "Movie (extended) Cut", "Movie Cut"},
		{"EditionWords", "Film Extended Repack", "Film"},
		{"CollapseSpaces", "A    B     C", "A B C"},
		{"AlreadyClean", "The Wire", "The Wire"},
		{"Empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CleanTitle(tt.input); got != tt.want {
				t.Errorf("CleanTitle(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestCleanTitleIdempotent(t *testing.T) {
	inputs := []string{
		"Breaking Bad 1080p BluRay x264",
		"Show [group] (2010) WEBRip",
		"Plain Title",
	}
	for _, in := range inputs {
		once := CleanTitle(in)
		twice := CleanTitle(once)
		if once != twice {
			t.Errorf("CleanTitle not idempotent for %q: %q != %q", in, once, twice)
		}
	}
}
