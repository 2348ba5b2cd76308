package media

import (
	"regexp"
	"strings"
)

// titleNoiseRes are removed from title candidates in this exact order.
// Bracketed and parenthesized spans go last so tag words inside them are
// already gone by the time the span itself is dropped.
var titleNoiseRes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(720p|1080p|2160p|4k|uhd)\b`),
	regexp.MustCompile(`(?i)\b(bluray|bdrip|brrip|webrip|web-dl|hdtv|dvdrip|hdrip)\b`),
	regexp.MustCompile(`(?i)\b(x264|x265|h264|h265|hevc|avc|xvid)\b`),
	regexp.MustCompile(`(?i)\b(aac|ac3|dts|dts-hd|atmos|truehd|flac|mp3)\b`),
	regexp.MustCompile(`(?i)\b(proper|repack|extended|unrated|directors cut)\b`),
	regexp.MustCompile(`(?i)\b(multi|dual|5\.1|7\.1)\b`),
	regexp.MustCompile(`\[.*?\]`),
	regexp.MustCompile(`\(.*?\)`),
}

// CleanTitle strips recognized quality, source, codec, audio and edition
// tags plus any bracketed or parenthesized span from a title candidate,
// then collapses whitespace. Idempotent.
func CleanTitle(title string) string {
	cleaned := title
	for _, re := range titleNoiseRes {
		cleaned = re.ReplaceAllString(cleaned, " ")
	}
	return strings.Join(strings.Fields(cleaned), " ")
}
