package provider

import (
	"context"
	"errors"

	"github.com/dasunNimantha/reel/internal/media"
)

var (
	ErrNoResults      = errors.New("no results found")
	ErrInvalidAPIKey  = errors.New("invalid API key")
	ErrRateLimited    = errors.New("rate limited")
	ErrAPIUnavailable = errors.New("API unavailable")
)

// SearchResult is one ranked entry returned by a Gateway search.
type SearchResult struct {
	ID         int
	Title      string
	Year       int
	Type       media.Type
	Overview   string
	PosterPath string
	Rating     float32
}

// Metadata is canonical media metadata sourced from the lookup gateway.
// String fields are empty and numeric fields zero when the remote source
// lacks them.
type Metadata struct {
	ID            int
	Title         string
	OriginalTitle string
	Year          int
	Overview      string
	PosterPath    string
	BackdropPath  string
	Rating        float32
	Genres        []string

	// TV fields. EpisodeDetails returns these scoped to the episode; the
	// matching engine merges them with show-level metadata.
	ShowName    string
	SeasonNum   int
	EpisodeNum  int
	EpisodeName string
	AirDate     string
}

// Gateway is the remote lookup boundary the matching engine depends on.
// Implementations may fail with network or parse errors; callers treat the
// error text as an opaque human-readable reason.
type Gateway interface {
	// Search returns ranked results for a title. Year zero means no year
	// filter. media.TypeUnknown is searched as a movie.
	Search(ctx context.Context, kind media.Type, title string, year int) ([]SearchResult, error)

	// MovieDetails fetches full metadata for a movie by id.
	MovieDetails(ctx context.Context, id int) (*Metadata, error)

	// ShowDetails fetches show-level metadata for a series by id.
	ShowDetails(ctx context.Context, id int) (*Metadata, error)

	// EpisodeDetails fetches metadata for a single episode. The result
	// carries only episode-scoped fields; it is not merged with show
	// metadata here.
	EpisodeDetails(ctx context.Context, showID, season, episode int) (*Metadata, error)
}
