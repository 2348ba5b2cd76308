package media

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSplitStem(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantStem string
		wantExt  string
	}{
		{"Simple", "movie.mkv", "movie", "mkv"},
		{"MultipleDots", "The.Matrix.1999.mkv", "The.Matrix.1999", "mkv"},
		{"NoDot", "README", "README", ""},
		{"TrailingDot", "file.", "file", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stem, ext := SplitStem(tt.input)
			if stem != tt.wantStem || ext != tt.wantExt {
				t.Errorf("SplitStem(%q) = (%q, %q), want (%q, %q)", tt.input, stem, ext, tt.wantStem, tt.wantExt)
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	got := Normalize("Breaking.Bad_S01-E01")
	want := "Breaking Bad S01 E01"
	if got != want {
		t.Errorf("Normalize = %q, want %q", got, want)
	}
}

func TestParseTVShow(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		wantInfo ParsedInfo
	}{
		{
			name:     "SeasonEpisodeMarker",
			filename: "Breaking.Bad.S01E01.Pilot.720p.BluRay.x264.mkv",
			wantInfo: ParsedInfo{
				Title:        "Breaking Bad",
				Season:       1,
				Episode:      1,
				EpisodeTitle: "Pilot",
				Quality:      "720p",
				Source:       "BluRay",
				Codec:        "x264",
			},
		},
		{
			name:     "LowercaseMarker",
			filename: "breaking.bad.s02e05.mkv",
			wantInfo: ParsedInfo{Title: "breaking bad", Season: 2, Episode: 5},
		},
		{
			name:     "CrossFormat",
			filename: "Firefly.1x11.Trash.mkv",
			wantInfo: ParsedInfo{Title: "Firefly", Season: 1, Episode: 11, EpisodeTitle: "Trash"},
		},
		{
			name:     "WordySeasonEpisode",
			filename: "The Wire Season 3 Episode 8.mkv",
			wantInfo: ParsedInfo{Title: "The Wire", Season: 3, Episode: 8},
		},
		{
			name:     "EpisodeOnlySynthesizesSeasonOne",
			filename: "Cowboy.Bebop.Episode.13.mkv",
			wantInfo: ParsedInfo{Title: "Cowboy Bebop", Season: 1, Episode: 13},
		},
		{
			name:     "EpAbbreviation",
			filename: "One.Piece.Ep.204.1080p.mkv",
			wantInfo: ParsedInfo{Title: "One Piece", Season: 1, Episode: 204, Quality: "1080p"},
		},
		{
			name:     "StandaloneEToken",
			filename: "Show.E07.mkv",
			wantInfo: ParsedInfo{Title: "Show", Season: 1, Episode: 7},
		},
		{
			// The episode capture stops at three digits; the rest of
			// the number is treated as episode title text.
			name:     "FourDigitEpisodeTruncates",
			filename: "Endless.Show.Ep.1234.mkv",
			wantInfo: ParsedInfo{Title: "Endless Show", Season: 1, Episode: 123, EpisodeTitle: "4"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kind, info := Parse(tt.filename)
			if kind != TypeTV {
				t.Errorf("Parse(%q) kind = %v, want %v", tt.filename, kind, TypeTV)
			}
			if diff := cmp.Diff(tt.wantInfo, info); diff != "" {
				t.Errorf("Parse(%q) info mismatch (-want +got):\n%s", tt.filename, diff)
			}
		})
	}
}

func TestParseMovie(t *testing.T) {
	tests := []struct {
		name      string
		filename  string
		wantTitle string
		wantYear  int
	}{
		{"DotSeparated", "The.Matrix.1999.1080p.BluRay.x264.mkv", "The Matrix", 1999},
		{"Parenthesized", "Inception (2010).mkv", "Inception", 2010},
		{"BoundaryYearLow", "Metropolis.1900.mkv", "Metropolis", 1900},
		{"BoundaryYearHigh", "Future.Film.2030.mkv", "Future Film", 2030},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kind, info := Parse(tt.filename)
			if kind != TypeMovie {
				t.Errorf("Parse(%q) kind = %v, want %v", tt.filename, kind, TypeMovie)
			}
			if info.Title != tt.wantTitle {
				t.Errorf("Parse(%q) title = %q, want %q", tt.filename, info.Title, tt.wantTitle)
			}
			if info.Year != tt.wantYear {
				t.Errorf("Parse(%q) year = %d, want %d", tt.filename, info.Year, tt.wantYear)
			}
		})
	}
}

func TestParseUnknown(t *testing.T) {
	tests := []struct {
		name      string
		filename  string
		wantTitle string
	}{
		{"NoMarkers", "Some.Random.Video.mkv", "Some Random Video"},
		{"YearTooOld", "Ancient.Film.1850.mkv", "Ancient Film 1850"},
		{"YearTooNew", "Far.Future.2077.mkv", "Far Future 2077"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kind, info := Parse(tt.filename)
			if kind != TypeUnknown {
				t.Errorf("Parse(%q) kind = %v, want %v", tt.filename, kind, TypeUnknown)
			}
			if info.Title != tt.wantTitle {
				t.Errorf("Parse(%q) title = %q, want %q", tt.filename, info.Title, tt.wantTitle)
			}
			if info.Year != 0 || info.Season != 0 || info.Episode != 0 {
				t.Errorf("Parse(%q) = %+v, want no year/season/episode", tt.filename, info)
			}
		})
	}
}

func TestParseQualityFromWholeStem(t *testing.T) {
	// Tags after the episode marker must still be extracted even though
	// the title stops at the marker.
	_, info := Parse("Show.S01E02.Title.2160p.WEBRip.HEVC.Atmos.mkv")
	want := ParsedInfo{
		Title:        "Show",
		Season:       1,
		Episode:      2,
		EpisodeTitle: "Title",
		Quality:      "2160p",
		Source:       "WEBRip",
		Codec:        "HEVC",
		Audio:        "Atmos",
	}
	if diff := cmp.Diff(want, info); diff != "" {
		t.Errorf("Parse info mismatch (-want +got):\n%s", diff)
	}
}

func TestParseDeterminism(t *testing.T) {
	const filename = "Breaking.Bad.S01E01.Pilot.720p.BluRay.x264.mkv"
	kind1, info1 := Parse(filename)
	kind2, info2 := Parse(filename)
	if kind1 != kind2 {
		t.Errorf("Parse kind differs between runs: %v vs %v", kind1, kind2)
	}
	if diff := cmp.Diff(info1, info2); diff != "" {
		t.Errorf("Parse info differs between runs (-first +second):\n%s", diff)
	}
}
