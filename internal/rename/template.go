package rename

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dasunNimantha/reel/internal/media"
	"github.com/dasunNimantha/reel/internal/provider"
)

// Render produces the final filename for a file. Movie and unknown files use
// the movie pattern, TV files the TV pattern. Remote metadata wins over
// locally parsed fields; a placeholder with neither is removed. The original
// extension is appended unchanged.
//
// meta may be nil when rendering an offline preview, in which case {title}
// falls back to the parsed title. {show} never falls back to parsed data.
func Render(kind media.Type, parsed media.ParsedInfo, meta *provider.Metadata, tpl Template, ext string) string {
	if meta == nil {
		meta = &provider.Metadata{}
	}

	pattern := tpl.MoviePattern
	if kind == media.TypeTV {
		pattern = tpl.TVPattern
	}
	result := pattern

	title := meta.Title
	if title == "" {
		title = parsed.Title
	}
	result = strings.ReplaceAll(result, "{title}", Sanitize(title))

	year := meta.Year
	if year == 0 {
		year = parsed.Year
	}
	if year > 0 {
		result = strings.ReplaceAll(result, "{year}", strconv.Itoa(year))
	} else {
		result = strings.ReplaceAll(result, "{year}", "")
		result = strings.ReplaceAll(result, " ()", "")
	}

	show := meta.ShowName
	if show == "" {
		show = meta.Title
	}
	result = strings.ReplaceAll(result, "{show}", Sanitize(show))

	season := meta.SeasonNum
	if season == 0 {
		season = parsed.Season
	}
	if season > 0 {
		result = strings.ReplaceAll(result, "{season:02}", fmt.Sprintf("%02d", season))
		result = strings.ReplaceAll(result, "{season}", strconv.Itoa(season))
	} else {
		result = strings.ReplaceAll(result, "{season:02}", "")
		result = strings.ReplaceAll(result, "{season}", "")
	}

	episode := meta.EpisodeNum
	if episode == 0 {
		episode = parsed.Episode
	}
	if episode > 0 {
		result = strings.ReplaceAll(result, "{episode:02}", fmt.Sprintf("%02d", episode))
		result = strings.ReplaceAll(result, "{episode}", strconv.Itoa(episode))
	} else {
		result = strings.ReplaceAll(result, "{episode:02}", "")
		result = strings.ReplaceAll(result, "{episode}", "")
	}

	episodeTitle := meta.EpisodeName
	if episodeTitle == "" {
		episodeTitle = parsed.EpisodeTitle
	}
	result = strings.ReplaceAll(result, "{episode_title}", Sanitize(episodeTitle))

	return cleanupRendered(result) + "." + ext
}

// cleanupRendered removes separator artifacts left behind by elided
// placeholders. The replacement order matters: space collapsing must run
// before the trailing-dash check so "X -  " reduces to "X -" first.
func cleanupRendered(result string) string {
	result = strings.TrimSpace(result)
	result = strings.ReplaceAll(result, " - .", ".")
	result = strings.ReplaceAll(result, " -.", ".")
	result = strings.ReplaceAll(result, "  - ", " ")
	result = strings.ReplaceAll(result, " -  ", " ")
	for strings.Contains(result, "  ") {
		result = strings.ReplaceAll(result, "  ", " ")
	}
	result = strings.TrimSuffix(result, " -")
	return strings.TrimSpace(result)
}
