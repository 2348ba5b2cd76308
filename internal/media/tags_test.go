package media

import "testing"

func TestExtractTagsListOrderWins(t *testing.T) {
	// 720p appears first in the text, but 2160p comes first in the rule
	// list, so it wins.
	var info ParsedInfo
	ExtractTags("Show 720p 2160p BluRay", &info)
	if info.Quality != "2160p" {
		t.Errorf("Quality = %q, want %q", info.Quality, "2160p")
	}
}

func TestExtractTagsCategories(t *testing.T) {
	tests := []struct {
		name string
		text string
		want ParsedInfo
	}{
		{
			name: "AllCategories",
			text: "Movie 1080p BluRay x264 DTS",
			want: ParsedInfo{Quality: "1080p", Source: "BluRay", Codec: "x264", Audio: "DTS"},
		},
		{
			name: "CodecPrecedence",
			text: "Movie x264 x265",
			want: ParsedInfo{Codec: "x265"},
		},
		{
			name: "NoTags",
			text: "Plain Title",
			want: ParsedInfo{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var info ParsedInfo
			ExtractTags(tt.text, &info)
			if info != tt.want {
				t.Errorf("ExtractTags(%q) = %+v, want %+v", tt.text, info, tt.want)
			}
		})
	}
}

func TestExtractTagsReleaseGroup(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		// Group detection requires a literal trailing dash, which only
		// survives when the caller skips separator normalization.
		{"LiteralDash", "Movie 1080p-SPARKS", "SPARKS"},
		{"CodecExcluded", "Movie 1080p-x264", ""},
		{"QualityExcluded", "Movie BluRay-720p", ""},
		{"SpaceNormalized", "Movie 1080p SPARKS", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var info ParsedInfo
			ExtractTags(tt.text, &info)
			if info.Group != tt.want {
				t.Errorf("ExtractTags(%q) group = %q, want %q", tt.text, info.Group, tt.want)
			}
		})
	}
}
