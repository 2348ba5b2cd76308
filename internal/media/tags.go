package media

import (
	"regexp"
	"strings"
)

// tagRule pairs a detection pattern with the canonical label it yields.
type tagRule struct {
	re    *regexp.Regexp
	label string
}

// Per-category rule lists. Within a category the first rule in list order
// that matches anywhere in the text wins, regardless of where competing
// markers appear in the string.
var (
	qualityRules = []tagRule{
		{regexp.MustCompile(`(?i)\b2160p\b`), "2160p"},
		{regexp.MustCompile(`(?i)\b4k\b`), "4K"},
		{regexp.MustCompile(`(?i)\buhd\b`), "UHD"},
		{regexp.MustCompile(`(?i)\b1080p\b`), "1080p"},
		{regexp.MustCompile(`(?i)\b720p\b`), "720p"},
		{regexp.MustCompile(`(?i)\b480p\b`), "480p"},
	}

	sourceRules = []tagRule{
		{regexp.MustCompile(`(?i)\bbluray\b`), "BluRay"},
		{regexp.MustCompile(`(?i)\bbdrip\b`), "BDRip"},
		{regexp.MustCompile(`(?i)\bweb-?dl\b`), "WEB-DL"},
		{regexp.MustCompile(`(?i)\bwebrip\b`), "WEBRip"},
		{regexp.MustCompile(`(?i)\bhdtv\b`), "HDTV"},
		{regexp.MustCompile(`(?i)\bdvdrip\b`), "DVDRip"},
	}

	codecRules = []tagRule{
		{regexp.MustCompile(`(?i)\bx265\b`), "x265"},
		{regexp.MustCompile(`(?i)\bhevc\b`), "HEVC"},
		{regexp.MustCompile(`(?i)\bh\.?265\b`), "H.265"},
		{regexp.MustCompile(`(?i)\bx264\b`), "x264"},
		{regexp.MustCompile(`(?i)\bh\.?264\b`), "H.264"},
		{regexp.MustCompile(`(?i)\bavc\b`), "AVC"},
	}

	audioRules = []tagRule{
		{regexp.MustCompile(`(?i)\bdts-?hd\b`), "DTS-HD"},
		{regexp.MustCompile(`(?i)\batmos\b`), "Atmos"},
		{regexp.MustCompile(`(?i)\btruehd\b`), "TrueHD"},
		{regexp.MustCompile(`(?i)\bdts\b`), "DTS"},
		{regexp.MustCompile(`(?i)\bac3\b`), "AC3"},
		{regexp.MustCompile(`(?i)\baac\b`), "AAC"},
		{regexp.MustCompile(`(?i)\bflac\b`), "FLAC"},
	}

	releaseGroupRe = regexp.MustCompile(`-([A-Za-z0-9]+)$`)

	// Tokens that look like a trailing release group but are encoding tags.
	groupFalsePositives = []string{"720p", "1080p", "2160p", "x264", "x265", "HEVC", "AAC", "DTS"}
)

func firstTagMatch(text string, rules []tagRule) string {
	for _, rule := range rules {
		if rule.re.MatchString(text) {
			return rule.label
		}
	}
	return ""
}

// ExtractTags scans text for quality, source, codec and audio markers and
// fills the corresponding fields of info. Each category is independent and
// yields at most one label.
//
// Release-group detection looks for a trailing "-<token>". The normalizer
// has already turned dashes into spaces by the time parsing calls this, so
// in that flow the rule never fires; it only matters for callers passing
// text that still contains literal dashes.
func ExtractTags(text string, info *ParsedInfo) {
	info.Quality = firstTagMatch(text, qualityRules)
	info.Source = firstTagMatch(text, sourceRules)
	info.Codec = firstTagMatch(text, codecRules)
	info.Audio = firstTagMatch(text, audioRules)

	if m := releaseGroupRe.FindStringSubmatch(strings.TrimSpace(text)); m != nil {
		group := m[1]
		excluded := false
		for _, fp := range groupFalsePositives {
			if strings.EqualFold(fp, group) {
				excluded = true
				break
			}
		}
		if !excluded {
			info.Group = group
		}
	}
}
