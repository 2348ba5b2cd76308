package media

// Type classifies a media file based on its filename.
type Type string

const (
	TypeUnknown Type = "unknown"
	TypeMovie   Type = "movie"
	TypeTV      Type = "tv"
)

// DisplayName returns a human readable label for the type.
func (t Type) DisplayName() string {
	switch t {
	case TypeMovie:
		return "Movie"
	case TypeTV:
		return "TV Show"
	default:
		return "Unknown"
	}
}

// ShortName returns a compact label suitable for table output.
func (t Type) ShortName() string {
	switch t {
	case TypeMovie:
		return "M"
	case TypeTV:
		return "TV"
	default:
		return "?"
	}
}

// ParsedInfo holds the structured fields extracted from a single filename.
// Numeric fields use zero to mean "not present in the filename".
type ParsedInfo struct {
	Title        string
	Year         int
	Season       int
	Episode      int
	EpisodeTitle string

	Quality string // e.g. "1080p", "720p", "4K"
	Source  string // e.g. "BluRay", "WEB-DL", "HDTV"
	Codec   string // e.g. "x264", "x265", "HEVC"
	Audio   string // e.g. "DTS", "AAC", "AC3"
	Group   string // release group
}
