// Package match coordinates remote metadata lookups for a batch of parsed
// files. Movies resolve one at a time; TV episodes are grouped by show so
// the show search and show details are fetched once per series, with the
// per-episode calls running in small concurrent batches.
package match

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	csmap "github.com/mhmtszr/concurrent-swiss-map"

	"github.com/dasunNimantha/reel/internal/media"
	"github.com/dasunNimantha/reel/internal/provider"
)

var (
	ErrNoCredential = errors.New("TMDB API key not set")
	ErrNoTitle      = errors.New("no title parsed")
)

// Request asks for metadata on behalf of one file. Index is an opaque
// correlation key back to the caller's file list.
type Request struct {
	Index   int
	Title   string
	Year    int
	Season  int
	Episode int
	Kind    media.Type
}

// Result pairs a request index with either resolved metadata or the reason
// lookup failed. Every input request yields exactly one Result.
type Result struct {
	Index int
	Meta  *provider.Metadata
	Err   error
}

const (
	defaultBatchSize = 5
	defaultDelay     = 100 * time.Millisecond
)

// Engine runs batch lookups against a Gateway.
type Engine struct {
	gateway   provider.Gateway
	apiKey    string
	batchSize int
	delay     time.Duration
}

// Option adjusts engine behavior.
type Option func(*Engine)

// WithBatchSize sets how many episode fetches run concurrently.
func WithBatchSize(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.batchSize = n
		}
	}
}

// WithDelay sets the courtesy pause inserted between movie lookups and
// between episode batches.
func WithDelay(d time.Duration) Option {
	return func(e *Engine) {
		e.delay = d
	}
}

// NewEngine creates an engine. The caller resolves the credential (user
// supplied or build-time default) before constructing the engine; an empty
// key fails every request without touching the network.
func NewEngine(gateway provider.Gateway, apiKey string, opts ...Option) *Engine {
	e := &Engine{
		gateway:   gateway,
		apiKey:    apiKey,
		batchSize: defaultBatchSize,
		delay:     defaultDelay,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// MatchAll resolves metadata for every request. The returned slice contains
// exactly one entry per input index, in no particular order. It blocks until
// the whole batch completes; dispatched batches run to completion.
func (e *Engine) MatchAll(ctx context.Context, requests []Request) []Result {
	results := make([]Result, 0, len(requests))

	if e.apiKey == "" {
		for _, req := range requests {
			results = append(results, Result{Index: req.Index, Err: ErrNoCredential})
		}
		return results
	}

	var movies []Request
	showGroups := make(map[string][]Request)

	for _, req := range requests {
		if req.Title == "" {
			results = append(results, Result{Index: req.Index, Err: ErrNoTitle})
			continue
		}
		switch req.Kind {
		case media.TypeTV:
			key := strings.ToLower(req.Title)
			showGroups[key] = append(showGroups[key], req)
		default:
			movies = append(movies, req)
		}
	}

	results = append(results, e.matchMovies(ctx, movies)...)
	results = append(results, e.matchShowGroups(ctx, showGroups)...)
	return results
}

// matchMovies resolves each movie individually: search, then fetch details
// for the top result. Lookups run strictly sequentially with a courtesy
// delay after each one.
func (e *Engine) matchMovies(ctx context.Context, movies []Request) []Result {
	results := make([]Result, 0, len(movies))
	for _, movie := range movies {
		results = append(results, e.matchMovie(ctx, movie))
		e.pause()
	}
	return results
}

func (e *Engine) matchMovie(ctx context.Context, req Request) Result {
	found, err := e.gateway.Search(ctx, media.TypeMovie, req.Title, req.Year)
	if err != nil {
		return Result{Index: req.Index, Err: err}
	}
	if len(found) == 0 {
		return Result{Index: req.Index, Err: provider.ErrNoResults}
	}
	meta, err := e.gateway.MovieDetails(ctx, found[0].ID)
	if err != nil {
		return Result{Index: req.Index, Err: err}
	}
	return Result{Index: req.Index, Meta: meta}
}

// matchShowGroups amortizes show-level lookups: one search and one details
// call per distinct show title, then concurrent episode fetches in batches.
func (e *Engine) matchShowGroups(ctx context.Context, groups map[string][]Request) []Result {
	results := make([]Result, 0)

	for _, episodes := range groups {
		if len(episodes) == 0 {
			continue
		}
		first := episodes[0]

		found, err := e.gateway.Search(ctx, media.TypeTV, first.Title, first.Year)
		if err == nil && len(found) == 0 {
			err = provider.ErrNoResults
		}
		if err != nil {
			for _, ep := range episodes {
				results = append(results, Result{Index: ep.Index, Err: err})
			}
			continue
		}

		show, err := e.gateway.ShowDetails(ctx, found[0].ID)
		if err != nil {
			for _, ep := range episodes {
				results = append(results, Result{Index: ep.Index, Err: err})
			}
			continue
		}

		results = append(results, e.fetchEpisodes(ctx, found[0].ID, show, episodes)...)
	}

	return results
}

// fetchEpisodes runs episode detail lookups in concurrent batches, pausing
// between batches. A failed or missing episode falls back to the show-level
// metadata with the requested season/episode overlaid.
func (e *Engine) fetchEpisodes(ctx context.Context, showID int, show *provider.Metadata, episodes []Request) []Result {
	collected := csmap.Create[int, Result]()

	for start := 0; start < len(episodes); start += e.batchSize {
		end := min(start+e.batchSize, len(episodes))

		var wg sync.WaitGroup
		for _, ep := range episodes[start:end] {
			wg.Add(1)
			go func(ep Request) {
				defer wg.Done()
				collected.Store(ep.Index, e.fetchEpisode(ctx, showID, show, ep))
			}(ep)
		}
		wg.Wait()

		if end < len(episodes) {
			e.pause()
		}
	}

	results := make([]Result, 0, len(episodes))
	collected.Range(func(_ int, res Result) bool {
		results = append(results, res)
		return false
	})
	return results
}

func (e *Engine) fetchEpisode(ctx context.Context, showID int, show *provider.Metadata, req Request) Result {
	if req.Season == 0 || req.Episode == 0 {
		meta := *show
		return Result{Index: req.Index, Meta: &meta}
	}

	ep, err := e.gateway.EpisodeDetails(ctx, showID, req.Season, req.Episode)
	if err != nil || ep == nil {
		// Episode not known remotely; keep the show metadata and the
		// parsed numbers rather than failing the whole group.
		meta := *show
		meta.SeasonNum = req.Season
		meta.EpisodeNum = req.Episode
		return Result{Index: req.Index, Meta: &meta}
	}

	return Result{Index: req.Index, Meta: mergeEpisode(show, ep)}
}

// mergeEpisode overlays episode-scoped fields onto a copy of the show
// metadata. Empty episode fields keep the show's values.
func mergeEpisode(show, ep *provider.Metadata) *provider.Metadata {
	meta := *show
	meta.SeasonNum = ep.SeasonNum
	meta.EpisodeNum = ep.EpisodeNum
	meta.EpisodeName = ep.EpisodeName
	meta.AirDate = ep.AirDate
	if ep.Overview != "" {
		meta.Overview = ep.Overview
	}
	if ep.PosterPath != "" {
		meta.PosterPath = ep.PosterPath
	}
	if ep.Rating != 0 {
		meta.Rating = ep.Rating
	}
	return &meta
}

func (e *Engine) pause() {
	if e.delay > 0 {
		time.Sleep(e.delay)
	}
}
