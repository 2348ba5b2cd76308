package rename

import "strings"

// Template holds one named pair of naming patterns. MoviePattern understands
// {title} and {year}; TVPattern understands {show}, {season}, {season:02},
// {episode}, {episode:02} and {episode_title}, where :02 renders the number
// zero-padded to two digits.
type Template struct {
	Name         string
	MoviePattern string
	TVPattern    string
}

// DefaultTemplate returns the standard naming scheme.
func DefaultTemplate() Template {
	return Template{
		Name:         "Default",
		MoviePattern: "{title} ({year})",
		TVPattern:    "{show} - S{season:02}E{episode:02} - {episode_title}",
	}
}

// BuiltinTemplates returns the read-only set of named presets.
func BuiltinTemplates() []Template {
	return []Template{
		DefaultTemplate(),
		{
			Name:         "Plex",
			MoviePattern: "{title} ({year})",
			TVPattern:    "{show} - s{season:02}e{episode:02} - {episode_title}",
		},
		{
			Name:         "Jellyfin",
			MoviePattern: "{title} ({year})",
			TVPattern:    "{show} S{season:02}E{episode:02} {episode_title}",
		},
	}
}

// TemplateByName looks up a built-in preset case-insensitively.
func TemplateByName(name string) (Template, bool) {
	for _, t := range BuiltinTemplates() {
		if strings.EqualFold(t.Name, name) {
			return t, true
		}
	}
	return Template{}, false
}
