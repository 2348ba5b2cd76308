package match

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"testing"

	"github.com/dasunNimantha/reel/internal/media"
	"github.com/dasunNimantha/reel/internal/provider"
)

// fakeGateway implements provider.Gateway with pluggable behavior and
// call counters. Counters are mutex guarded because episode fetches run
// concurrently.
type fakeGateway struct {
	mu           sync.Mutex
	searchCalls  int
	movieCalls   int
	showCalls    int
	episodeCalls int
	searchFunc   func(kind media.Type, title string, year int) ([]provider.SearchResult, error)
	movieFunc    func(id int) (*provider.Metadata, error)
	showFunc     func(id int) (*provider.Metadata, error)
	episodeFunc  func(showID, season, episode int) (*provider.Metadata, error)
}

func (f *fakeGateway) Search(_ context.Context, kind media.Type, title string, year int) ([]provider.SearchResult, error) {
	f.mu.Lock()
	f.searchCalls++
	f.mu.Unlock()
	return f.searchFunc(kind, title, year)
}

func (f *fakeGateway) MovieDetails(_ context.Context, id int) (*provider.Metadata, error) {
	f.mu.Lock()
	f.movieCalls++
	f.mu.Unlock()
	return f.movieFunc(id)
}

func (f *fakeGateway) ShowDetails(_ context.Context, id int) (*provider.Metadata, error) {
	f.mu.Lock()
	f.showCalls++
	f.mu.Unlock()
	return f.showFunc(id)
}

func (f *fakeGateway) EpisodeDetails(_ context.Context, showID, season, episode int) (*provider.Metadata, error) {
	f.mu.Lock()
	f.episodeCalls++
	f.mu.Unlock()
	return f.episodeFunc(showID, season, episode)
}

func (f *fakeGateway) calls() (search, movie, show, episode int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.searchCalls, f.movieCalls, f.showCalls, f.episodeCalls
}

func happyGateway() *fakeGateway {
	return &fakeGateway{
		searchFunc: func(kind media.Type, title string, year int) ([]provider.SearchResult, error) {
			return []provider.SearchResult{{ID: 42, Title: title, Year: year, Type: kind}}, nil
		},
		movieFunc: func(id int) (*provider.Metadata, error) {
			return &provider.Metadata{ID: id, Title: "Resolved Movie", Year: 1999}, nil
		},
		showFunc: func(id int) (*provider.Metadata, error) {
			return &provider.Metadata{ID: id, Title: "Resolved Show", ShowName: "Resolved Show"}, nil
		},
		episodeFunc: func(showID, season, episode int) (*provider.Metadata, error) {
			return &provider.Metadata{
				SeasonNum:   season,
				EpisodeNum:  episode,
				EpisodeName: fmt.Sprintf("Episode %d", episode),
			}, nil
		},
	}
}

func indexSet(results []Result) []int {
	indexes := make([]int, 0, len(results))
	for _, res := range results {
		indexes = append(indexes, res.Index)
	}
	sort.Ints(indexes)
	return indexes
}

func TestMatchAllEmptyKeyFailsWithoutNetwork(t *testing.T) {
	gw := happyGateway()
	engine := NewEngine(gw, "", WithDelay(0))

	results := engine.MatchAll(context.Background(), []Request{
		{Index: 0, Title: "The Matrix", Kind: media.TypeMovie},
		{Index: 1, Title: "Breaking Bad", Season: 1, Episode: 1, Kind: media.TypeTV},
	})

	if len(results) != 2 {
		t.Fatalf("MatchAll() returned %d results, want 2", len(results))
	}
	for _, res := range results {
		if !errors.Is(res.Err, ErrNoCredential) {
			t.Errorf("result %d error = %v, want ErrNoCredential", res.Index, res.Err)
		}
	}
	if s, m, sh, e := gw.calls(); s+m+sh+e != 0 {
		t.Errorf("gateway was called %d times, want 0", s+m+sh+e)
	}
}

func TestMatchAllEmptyTitle(t *testing.T) {
	engine := NewEngine(happyGateway(), "key", WithDelay(0))

	results := engine.MatchAll(context.Background(), []Request{
		{Index: 7, Title: "", Kind: media.TypeMovie},
	})

	if len(results) != 1 {
		t.Fatalf("MatchAll() returned %d results, want 1", len(results))
	}
	if !errors.Is(results[0].Err, ErrNoTitle) {
		t.Errorf("error = %v, want ErrNoTitle", results[0].Err)
	}
}

func TestMatchAllCompleteness(t *testing.T) {
	engine := NewEngine(happyGateway(), "key", WithDelay(0), WithBatchSize(2))

	requests := []Request{
		{Index: 0, Title: "The Matrix", Year: 1999, Kind: media.TypeMovie},
		{Index: 1, Title: "Breaking Bad", Season: 1, Episode: 1, Kind: media.TypeTV},
		{Index: 2, Title: "breaking bad", Season: 1, Episode: 2, Kind: media.TypeTV},
		{Index: 3, Title: "Breaking Bad", Season: 2, Episode: 1, Kind: media.TypeTV},
		{Index: 4, Title: "", Kind: media.TypeTV},
		{Index: 5, Title: "Mystery File", Kind: media.TypeUnknown},
	}

	results := engine.MatchAll(context.Background(), requests)

	want := []int{0, 1, 2, 3, 4, 5}
	got := indexSet(results)
	if len(got) != len(want) {
		t.Fatalf("MatchAll() returned indexes %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("MatchAll() returned indexes %v, want %v", got, want)
		}
	}
}

func TestMatchAllGroupsShowLookups(t *testing.T) {
	gw := happyGateway()
	engine := NewEngine(gw, "key", WithDelay(0))

	results := engine.MatchAll(context.Background(), []Request{
		{Index: 0, Title: "Breaking Bad", Season: 1, Episode: 1, Kind: media.TypeTV},
		{Index: 1, Title: "breaking bad", Season: 1, Episode: 2, Kind: media.TypeTV},
		{Index: 2, Title: "BREAKING BAD", Season: 1, Episode: 3, Kind: media.TypeTV},
	})

	search, _, show, episode := gw.calls()
	if search != 1 {
		t.Errorf("search calls = %d, want 1", search)
	}
	if show != 1 {
		t.Errorf("show detail calls = %d, want 1", show)
	}
	if episode != 3 {
		t.Errorf("episode detail calls = %d, want 3", episode)
	}

	for _, res := range results {
		if res.Err != nil {
			t.Fatalf("result %d error = %v", res.Index, res.Err)
		}
		if res.Meta.ShowName != "Resolved Show" {
			t.Errorf("result %d show = %q, want %q", res.Index, res.Meta.ShowName, "Resolved Show")
		}
	}
}

func TestMatchAllShowSearchFailureFansOut(t *testing.T) {
	gw := happyGateway()
	gw.searchFunc = func(media.Type, string, int) ([]provider.SearchResult, error) {
		return nil, provider.ErrRateLimited
	}
	engine := NewEngine(gw, "key", WithDelay(0))

	results := engine.MatchAll(context.Background(), []Request{
		{Index: 0, Title: "Lost", Season: 1, Episode: 1, Kind: media.TypeTV},
		{Index: 1, Title: "Lost", Season: 1, Episode: 2, Kind: media.TypeTV},
	})

	if len(results) != 2 {
		t.Fatalf("MatchAll() returned %d results, want 2", len(results))
	}
	for _, res := range results {
		if !errors.Is(res.Err, provider.ErrRateLimited) {
			t.Errorf("result %d error = %v, want ErrRateLimited", res.Index, res.Err)
		}
	}
}

func TestMatchAllNoSearchResults(t *testing.T) {
	gw := happyGateway()
	gw.searchFunc = func(media.Type, string, int) ([]provider.SearchResult, error) {
		return []provider.SearchResult{}, nil
	}
	engine := NewEngine(gw, "key", WithDelay(0))

	results := engine.MatchAll(context.Background(), []Request{
		{Index: 0, Title: "Nonexistent Movie", Kind: media.TypeMovie},
	})

	if !errors.Is(results[0].Err, provider.ErrNoResults) {
		t.Errorf("error = %v, want ErrNoResults", results[0].Err)
	}
}

func TestMatchAllEpisodeFailureFallsBackToShow(t *testing.T) {
	gw := happyGateway()
	gw.episodeFunc = func(showID, season, episode int) (*provider.Metadata, error) {
		return nil, provider.ErrNoResults
	}
	engine := NewEngine(gw, "key", WithDelay(0))

	results := engine.MatchAll(context.Background(), []Request{
		{Index: 0, Title: "Firefly", Season: 1, Episode: 11, Kind: media.TypeTV},
	})

	res := results[0]
	if res.Err != nil {
		t.Fatalf("result error = %v, want nil (show fallback)", res.Err)
	}
	if res.Meta.ShowName != "Resolved Show" {
		t.Errorf("show = %q, want %q", res.Meta.ShowName, "Resolved Show")
	}
	if res.Meta.SeasonNum != 1 || res.Meta.EpisodeNum != 11 {
		t.Errorf("season/episode = %d/%d, want 1/11", res.Meta.SeasonNum, res.Meta.EpisodeNum)
	}
	if res.Meta.EpisodeName != "" {
		t.Errorf("episode name = %q, want empty on fallback", res.Meta.EpisodeName)
	}
}

func TestMatchAllMissingEpisodeNumbersUseShowMetadata(t *testing.T) {
	gw := happyGateway()
	engine := NewEngine(gw, "key", WithDelay(0))

	results := engine.MatchAll(context.Background(), []Request{
		{Index: 0, Title: "Firefly", Kind: media.TypeTV},
	})

	if _, _, _, episode := gw.calls(); episode != 0 {
		t.Errorf("episode detail calls = %d, want 0", episode)
	}
	res := results[0]
	if res.Err != nil {
		t.Fatalf("result error = %v", res.Err)
	}
	if res.Meta.ShowName != "Resolved Show" {
		t.Errorf("show = %q, want %q", res.Meta.ShowName, "Resolved Show")
	}
}

func TestMatchAllMergesEpisodeOntoShow(t *testing.T) {
	gw := happyGateway()
	gw.showFunc = func(id int) (*provider.Metadata, error) {
		return &provider.Metadata{
			ID:       id,
			Title:    "Breaking Bad",
			ShowName: "Breaking Bad",
			Overview: "Show overview",
			Rating:   8.9,
		}, nil
	}
	gw.episodeFunc = func(showID, season, episode int) (*provider.Metadata, error) {
		return &provider.Metadata{
			SeasonNum:   season,
			EpisodeNum:  episode,
			EpisodeName: "Pilot",
			Overview:    "Episode overview",
			AirDate:     "2008-01-20",
		}, nil
	}
	engine := NewEngine(gw, "key", WithDelay(0))

	results := engine.MatchAll(context.Background(), []Request{
		{Index: 0, Title: "Breaking Bad", Season: 1, Episode: 1, Kind: media.TypeTV},
	})

	meta := results[0].Meta
	if meta.ShowName != "Breaking Bad" || meta.EpisodeName != "Pilot" {
		t.Errorf("merge produced show %q episode %q", meta.ShowName, meta.EpisodeName)
	}
	if meta.Overview != "Episode overview" {
		t.Errorf("overview = %q, want episode overview", meta.Overview)
	}
	if meta.Rating != 8.9 {
		t.Errorf("rating = %v, want show rating kept when episode rating absent", meta.Rating)
	}
	if meta.AirDate != "2008-01-20" {
		t.Errorf("air date = %q, want %q", meta.AirDate, "2008-01-20")
	}
}
