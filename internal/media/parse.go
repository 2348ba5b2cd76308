package media

import (
	"regexp"
	"strconv"
	"strings"
)

// Pattern families for the classification cascade. Each list is tried in
// order and the first pattern that matches anywhere in the normalized stem
// wins; later, more permissive patterns never override an earlier match.
var (
	// Season plus episode markers, most specific first.
	seasonEpisodeRes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)s(\d{1,2})e(\d{1,2})`),          // S01E01
		regexp.MustCompile(`(?i)(\d{1,2})x(\d{1,2})`),           // 1x01
		regexp.MustCompile(`(?i)season\s*(\d+).*?episode\s*(\d+)`), // Season 1 Episode 1
	}

	// Episode marker without a season; season is assumed to be 1.
	// The capture caps at three digits, so an episode number of 1000 or
	// more is read as its first three digits.
	episodeOnlyRes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)episode\s*(\d{1,3})`), // Episode 1, Episode 01
		regexp.MustCompile(`(?i)\bep\.?\s*(\d{1,3})`), // Ep 1, Ep.1, Ep01
		regexp.MustCompile(`(?i)\be(\d{1,3})\b`),      // E01 (standalone)
	}

	movieYearRe = regexp.MustCompile(`(.+?)[\s.\-_]+\(?(\d{4})\)?`)
)

const (
	minMovieYear = 1900
	maxMovieYear = 2030
)

// Parse extracts structured media information from a filename. It strips
// the extension, normalizes separators, then classifies the name as a TV
// episode, a movie with a release year, or unknown.
func Parse(filename string) (Type, ParsedInfo) {
	stem, _ := SplitStem(filename)
	cleaned := Normalize(stem)

	var info ParsedInfo

	// TV with explicit season and episode.
	for _, re := range seasonEpisodeRes {
		loc := re.FindStringSubmatchIndex(cleaned)
		if loc == nil {
			continue
		}
		info.Season = atoiGroup(cleaned, loc, 1)
		info.Episode = atoiGroup(cleaned, loc, 2)
		info.Title = CleanTitle(strings.TrimSpace(cleaned[:loc[0]]))
		if after := strings.TrimSpace(cleaned[loc[1]:]); after != "" {
			info.EpisodeTitle = CleanTitle(after)
		}
		ExtractTags(cleaned, &info)
		return TypeTV, info
	}

	// Episode number only; season defaults to 1.
	for _, re := range episodeOnlyRes {
		loc := re.FindStringSubmatchIndex(cleaned)
		if loc == nil {
			continue
		}
		info.Season = 1
		info.Episode = atoiGroup(cleaned, loc, 1)
		info.Title = CleanTitle(strings.TrimSpace(cleaned[:loc[0]]))
		if after := strings.TrimSpace(cleaned[loc[1]:]); after != "" {
			info.EpisodeTitle = CleanTitle(after)
		}
		ExtractTags(cleaned, &info)
		return TypeTV, info
	}

	// Movie with a plausible release year.
	if m := movieYearRe.FindStringSubmatch(cleaned); m != nil {
		if year, err := strconv.Atoi(m[2]); err == nil && year >= minMovieYear && year <= maxMovieYear {
			info.Title = CleanTitle(m[1])
			info.Year = year
			ExtractTags(cleaned, &info)
			return TypeMovie, info
		}
	}

	// Fallback: whole name becomes the title.
	info.Title = CleanTitle(cleaned)
	ExtractTags(cleaned, &info)
	return TypeUnknown, info
}

// atoiGroup parses capture group n from a submatch index slice. The cascade
// patterns only capture digit runs, so parsing cannot fail in practice.
func atoiGroup(s string, loc []int, n int) int {
	start, end := loc[2*n], loc[2*n+1]
	if start < 0 {
		return 0
	}
	v, _ := strconv.Atoi(s[start:end])
	return v
}
