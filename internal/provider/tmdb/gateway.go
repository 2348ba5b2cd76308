package tmdb

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"
	tmdb "github.com/ryanbradynd05/go-tmdb"

	"github.com/dasunNimantha/reel/internal/media"
	"github.com/dasunNimantha/reel/internal/provider"
)

const baseURL = "https://api.themoviedb.org/3"

// TMDBClient is the subset of *tmdb.TMDb the gateway uses, extracted so
// tests can substitute a mock.
type TMDBClient interface {
	SearchMovie(name string, options map[string]string) (*tmdb.MovieSearchResults, error)
	SearchTv(name string, options map[string]string) (*tmdb.TvSearchResults, error)
	GetMovieInfo(id int, options map[string]string) (*tmdb.Movie, error)
	GetTvInfo(id int, options map[string]string) (*tmdb.TV, error)
	GetTvEpisodeInfo(showID, seasonNum, episodeNum int, options map[string]string) (*tmdb.TvEpisode, error)
}

// Gateway implements provider.Gateway against The Movie Database.
type Gateway struct {
	client   TMDBClient
	cache    *cache.Cache
	limiter  *rateLimiter
	language string
}

// New creates a TMDB gateway. The key must be non-empty; language defaults
// to en-US.
func New(apiKey, language string) (*Gateway, error) {
	if apiKey == "" {
		return nil, provider.ErrInvalidAPIKey
	}
	if language == "" {
		language = "en-US"
	}

	client := tmdb.Init(tmdb.Config{APIKey: apiKey})

	return &Gateway{
		client:   client,
		cache:    cache.New(time.Hour, 10*time.Minute),
		limiter:  newRateLimiter(35, 10*time.Second),
		language: language,
	}, nil
}

// SetClient replaces the underlying TMDB client (for testing).
func (g *Gateway) SetClient(client TMDBClient) {
	g.client = client
}

// VerifyAPIKey reports whether the key authorizes TMDB calls by hitting the
// lightweight configuration endpoint.
func VerifyAPIKey(ctx context.Context, apiKey string) bool {
	if apiKey == "" {
		return false
	}
	url := fmt.Sprintf("%s/configuration?api_key=%s", baseURL, apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return false
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}

func (g *Gateway) options() map[string]string {
	return map[string]string{"language": g.language}
}

// Search returns ranked results for a title. Unknown media is searched as a
// movie, mirroring how unmatched files are treated downstream.
func (g *Gateway) Search(ctx context.Context, kind media.Type, title string, year int) ([]provider.SearchResult, error) {
	if kind == media.TypeTV {
		return g.searchShow(ctx, title, year)
	}
	return g.searchMovie(ctx, title, year)
}

func (g *Gateway) searchMovie(_ context.Context, title string, year int) ([]provider.SearchResult, error) {
	cacheKey := fmt.Sprintf("search:movie:%s:%d:%s", title, year, g.language)
	if cached, found := g.cache.Get(cacheKey); found {
		return cached.([]provider.SearchResult), nil
	}

	options := g.options()
	if year > 0 {
		options["year"] = strconv.Itoa(year)
	}

	g.limiter.wait()
	results, err := g.client.SearchMovie(title, options)
	if err != nil {
		return nil, mapError(err)
	}
	if results == nil {
		return nil, provider.ErrNoResults
	}

	out := make([]provider.SearchResult, 0, len(results.Results))
	for _, m := range results.Results {
		out = append(out, provider.SearchResult{
			ID:         m.ID,
			Title:      m.Title,
			Year:       yearOf(m.ReleaseDate),
			Type:       media.TypeMovie,
			Overview:   m.Overview,
			PosterPath: m.PosterPath,
			Rating:     m.VoteAverage,
		})
	}
	g.cache.Set(cacheKey, out, cache.DefaultExpiration)
	return out, nil
}

func (g *Gateway) searchShow(_ context.Context, title string, year int) ([]provider.SearchResult, error) {
	cacheKey := fmt.Sprintf("search:tv:%s:%d:%s", title, year, g.language)
	if cached, found := g.cache.Get(cacheKey); found {
		return cached.([]provider.SearchResult), nil
	}

	options := g.options()
	if year > 0 {
		options["first_air_date_year"] = strconv.Itoa(year)
	}

	g.limiter.wait()
	results, err := g.client.SearchTv(title, options)
	if err != nil {
		return nil, mapError(err)
	}
	if results == nil {
		return nil, provider.ErrNoResults
	}

	out := make([]provider.SearchResult, 0, len(results.Results))
	for _, s := range results.Results {
		out = append(out, provider.SearchResult{
			ID:         s.ID,
			Title:      s.Name,
			Year:       yearOf(s.FirstAirDate),
			Type:       media.TypeTV,
			Overview:   "",
			PosterPath: s.PosterPath,
			Rating:     s.VoteAverage,
		})
	}
	g.cache.Set(cacheKey, out, cache.DefaultExpiration)
	return out, nil
}

// MovieDetails fetches full metadata for a movie.
func (g *Gateway) MovieDetails(_ context.Context, id int) (*provider.Metadata, error) {
	cacheKey := fmt.Sprintf("movie:%d:%s", id, g.language)
	if cached, found := g.cache.Get(cacheKey); found {
		return cached.(*provider.Metadata), nil
	}

	g.limiter.wait()
	movie, err := g.client.GetMovieInfo(id, g.options())
	if err != nil {
		return nil, mapError(err)
	}
	if movie == nil {
		return nil, provider.ErrNoResults
	}

	genres := make([]string, 0, len(movie.Genres))
	for _, genre := range movie.Genres {
		genres = append(genres, genre.Name)
	}

	meta := &provider.Metadata{
		ID:            movie.ID,
		Title:         movie.Title,
		OriginalTitle: movie.OriginalTitle,
		Year:          yearOf(movie.ReleaseDate),
		Overview:      movie.Overview,
		PosterPath:    movie.PosterPath,
		BackdropPath:  movie.BackdropPath,
		Rating:        movie.VoteAverage,
		Genres:        genres,
	}
	g.cache.Set(cacheKey, meta, cache.DefaultExpiration)
	return meta, nil
}

// ShowDetails fetches show-level metadata for a series.
func (g *Gateway) ShowDetails(_ context.Context, id int) (*provider.Metadata, error) {
	cacheKey := fmt.Sprintf("show:%d:%s", id, g.language)
	if cached, found := g.cache.Get(cacheKey); found {
		return cached.(*provider.Metadata), nil
	}

	g.limiter.wait()
	show, err := g.client.GetTvInfo(id, g.options())
	if err != nil {
		return nil, mapError(err)
	}
	if show == nil {
		return nil, provider.ErrNoResults
	}

	genres := make([]string, 0, len(show.Genres))
	for _, genre := range show.Genres {
		genres = append(genres, genre.Name)
	}

	meta := &provider.Metadata{
		ID:            show.ID,
		Title:         show.Name,
		OriginalTitle: show.OriginalName,
		Year:          yearOf(show.FirstAirDate),
		Overview:      show.Overview,
		PosterPath:    show.PosterPath,
		BackdropPath:  show.BackdropPath,
		Rating:        show.VoteAverage,
		Genres:        genres,
		ShowName:      show.Name,
	}
	g.cache.Set(cacheKey, meta, cache.DefaultExpiration)
	return meta, nil
}

// EpisodeDetails fetches episode-scoped metadata. Show-level fields are left
// empty; the matching engine overlays them from already-fetched show details
// so a long season does not refetch the show once per episode.
func (g *Gateway) EpisodeDetails(_ context.Context, showID, season, episode int) (*provider.Metadata, error) {
	cacheKey := fmt.Sprintf("episode:%d:%d:%d:%s", showID, season, episode, g.language)
	if cached, found := g.cache.Get(cacheKey); found {
		return cached.(*provider.Metadata), nil
	}

	g.limiter.wait()
	ep, err := g.client.GetTvEpisodeInfo(showID, season, episode, g.options())
	if err != nil {
		return nil, mapError(err)
	}
	if ep == nil {
		return nil, provider.ErrNoResults
	}

	meta := &provider.Metadata{
		ID:          showID,
		Overview:    ep.Overview,
		PosterPath:  ep.StillPath,
		Rating:      ep.VoteAverage,
		SeasonNum:   ep.SeasonNumber,
		EpisodeNum:  ep.EpisodeNumber,
		EpisodeName: ep.Name,
		AirDate:     ep.AirDate,
	}
	g.cache.Set(cacheKey, meta, cache.DefaultExpiration)
	return meta, nil
}

// yearOf extracts the year from a yyyy-mm-dd date string, zero if absent.
func yearOf(date string) int {
	if len(date) < 4 {
		return 0
	}
	y, err := strconv.Atoi(date[:4])
	if err != nil {
		return 0
	}
	return y
}

// mapError converts raw client failures to the gateway's sentinel errors
// where the cause is recognizable.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "401") || strings.Contains(msg, "unauthorized"):
		return provider.ErrInvalidAPIKey
	case strings.Contains(msg, "429") || strings.Contains(msg, "rate limit"):
		return provider.ErrRateLimited
	case strings.Contains(msg, "503") || strings.Contains(msg, "unavailable"):
		return provider.ErrAPIUnavailable
	}
	return fmt.Errorf("TMDB API error: %w", err)
}
