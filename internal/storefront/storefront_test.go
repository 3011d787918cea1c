package storefront

import (
	"context"
	"errors"
	"net/url"
	"sync"
	"testing"
	"time"

	"github.com/01moynul/taptosell-console/internal/resource"
)

func TestBuildNavigationNestsAndBuildsPaths(t *testing.T) {
	tree := BuildNavigation([]map[string]any{
		{"id": 1, "name": "Women", "slug": "women", "parent_id": nil},
		{"id": 2, "name": "Dresses", "parent_id": 1},
		{"id": 3, "name": "Evening Gowns", "parent_id": "2"},
		{"id": 4, "name": "Beauty & Care", "parent_id": 0},
		{"id": 5, "name": "Lost", "parent_id": 99},
		{"id": 2, "name": "Duplicate", "parent_id": 1},
	})

	if len(tree) != 3 {
		t.Fatalf("expected 3 roots, got %+v", tree)
	}
	if tree[0].Name != "Beauty & Care" || tree[0].Path != "/category/beauty-and-care" {
		t.Fatalf("unexpected first root %+v", tree[0])
	}
	if tree[1].Name != "Lost" || tree[1].ParentID != "" {
		t.Fatalf("orphan must be promoted to root, got %+v", tree[1])
	}
	women := tree[2]
	if len(women.Children) != 1 || women.Children[0].Path != "/category/women/dresses" {
		t.Fatalf("unexpected children %+v", women.Children)
	}
	gowns := women.Children[0].Children
	if len(gowns) != 1 || gowns[0].Path != "/category/women/dresses/evening-gowns" {
		t.Fatalf("grandchildren lost: %+v", gowns)
	}
	if got, ok := FindByPath(tree, "/category/women/dresses/evening-gowns"); !ok || got.ID != "3" {
		t.Fatalf("FindByPath = %+v, %v", got, ok)
	}
	if tree[0].Children == nil {
		t.Fatalf("leaf children must be an empty list")
	}
}

func TestBuildNavigationCutsCycles(t *testing.T) {
	tree := BuildNavigation([]map[string]any{
		{"id": 1, "name": "A", "parent_id": 2},
		{"id": 2, "name": "B", "parent_id": 1},
		{"id": 3, "name": "Root"},
	})
	if len(tree) != 2 || tree[0].Name != "A" || tree[1].Name != "Root" {
		t.Fatalf("unexpected roots %+v", tree)
	}
	a := tree[0]
	if a.ParentID != "" || a.Path != "/category/a" {
		t.Fatalf("cycle entry not promoted to a root: %+v", a)
	}
	if len(a.Children) != 1 || a.Children[0].Name != "B" || a.Children[0].Path != "/category/a/b" {
		t.Fatalf("unexpected children %+v", a.Children)
	}
	if len(a.Children[0].Children) != 0 {
		t.Fatalf("A must appear once, got %+v", a.Children[0].Children)
	}

	// A cycle with no root at all still shows every category.
	only := BuildNavigation([]map[string]any{
		{"id": 1, "name": "A", "parent_id": 2},
		{"id": 2, "name": "B", "parent_id": 1},
	})
	if len(only) != 1 || len(only[0].Children) != 1 {
		t.Fatalf("two-node cycle lost categories: %+v", only)
	}
}

func TestProfileViewKeepsLiveStoriesNewestFirst(t *testing.T) {
	now := time.Date(2025, 11, 14, 12, 0, 0, 0, time.UTC)
	raw := map[string]any{"id": 8, "display_name": "Ayesha Rahman", "followers": "1200"}
	stories := []map[string]any{
		{"id": 1, "type": "image", "media_url": "https://x/1.jpg", "created_at": now.Add(-3 * time.Hour).Format(time.RFC3339)},
		{"id": 2, "type": "text", "text_content": "hi", "created_at": now.Add(-time.Hour).Format(time.RFC3339)},
		{"id": 3, "type": "video", "media_url": "https://x/3.mp4", "created_at": now.Add(-30 * time.Hour).Format(time.RFC3339)},
	}

	p := ProfileView(raw, stories, now)
	if p.Handle != "@ayesha-rahman" || p.Followers != 1200 {
		t.Fatalf("unexpected profile %+v", p)
	}
	if len(p.Stories) != 2 || p.Stories[0].ID != "2" || p.Stories[1].ID != "1" {
		t.Fatalf("unexpected stories %+v", p.Stories)
	}

	anon := ProfileView(map[string]any{"id": 9}, nil, now)
	if anon.Handle != "@model-9" || anon.Stories == nil {
		t.Fatalf("unexpected fallback profile %+v", anon)
	}
}

type fakeProfileSource struct {
	profile map[string]any
	stories []map[string]any
	query   url.Values
}

func (f *fakeProfileSource) Get(context.Context, string, string) (map[string]any, error) {
	return f.profile, nil
}

func (f *fakeProfileSource) ListQuery(_ context.Context, _ string, q url.Values) ([]map[string]any, error) {
	f.query = q
	return f.stories, nil
}

func TestLoadProfileFetchesStoriesSeparately(t *testing.T) {
	now := time.Now()
	src := &fakeProfileSource{
		profile: map[string]any{"id": 4, "name": "Nadia"},
		stories: []map[string]any{{"id": 1, "type": "text", "text_content": "new drop", "created_at": now.Add(-time.Minute).Unix()}},
	}
	p, err := LoadProfile(context.Background(), src, "4", now)
	if err != nil {
		t.Fatalf("LoadProfile: %v", err)
	}
	if src.query.Get("author_id") != "4" || len(p.Stories) != 1 {
		t.Fatalf("unexpected profile %+v (query %v)", p, src.query)
	}
}

type fakeCatalog struct {
	mu    sync.Mutex
	terms []string
}

func (f *fakeCatalog) ListQuery(_ context.Context, _ string, q url.Values) ([]map[string]any, error) {
	f.mu.Lock()
	f.terms = append(f.terms, q.Get("search"))
	f.mu.Unlock()
	return []map[string]any{
		{"id": 1, "name": "Rose Lipstick", "status": "active"},
		{"id": 2, "name": "Rose Draft", "status": "draft"},
	}, nil
}

func TestProductSearchOnlyShowsLiveProducts(t *testing.T) {
	catalog := &fakeCatalog{}
	search := ProductSearch(catalog)

	res, err := search(context.Background(), "  rose ")
	if err != nil || len(res.Products) != 1 || res.Query != "rose" {
		t.Fatalf("unexpected results %+v, %v", res, err)
	}
	if blank, _ := search(context.Background(), " "); len(blank.Products) != 0 || len(catalog.terms) != 1 {
		t.Fatalf("blank query must not reach upstream")
	}
}

func TestSearchSessionsAreIndependentAndExpire(t *testing.T) {
	catalog := &fakeCatalog{}
	sessions := NewSearchSessions(0, time.Minute, ProductSearch(catalog))
	clock := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	sessions.now = func() time.Time { return clock }

	if _, err := sessions.Search(context.Background(), "a", "rose"); err != nil {
		t.Fatalf("search a: %v", err)
	}
	if _, err := sessions.Search(context.Background(), "b", "lip"); err != nil {
		t.Fatalf("search b: %v", err)
	}
	if sessions.Len() != 2 {
		t.Fatalf("expected 2 sessions, got %d", sessions.Len())
	}

	clock = clock.Add(2 * time.Minute)
	if _, err := sessions.Search(context.Background(), "c", "gloss"); err != nil {
		t.Fatalf("search c: %v", err)
	}
	if sessions.Len() != 1 {
		t.Fatalf("idle sessions must be dropped, got %d", sessions.Len())
	}
}

func TestSearchSessionsAreCapped(t *testing.T) {
	sessions := NewSearchSessions(0, time.Hour, ProductSearch(&fakeCatalog{}))
	sessions.max = 2
	clock := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	sessions.now = func() time.Time { return clock }

	for _, id := range []string{"a", "b", "c", "d"} {
		clock = clock.Add(time.Second)
		if _, err := sessions.Search(context.Background(), id, "rose"); err != nil {
			t.Fatalf("search %s: %v", id, err)
		}
		if sessions.Len() > 2 {
			t.Fatalf("session cap exceeded: %d", sessions.Len())
		}
	}

	sessions.mu.Lock()
	_, hasC := sessions.sessions["c"]
	_, hasD := sessions.sessions["d"]
	_, hasA := sessions.sessions["a"]
	sessions.mu.Unlock()
	if !hasC || !hasD || hasA {
		t.Fatalf("expected the two most recent sessions to survive")
	}
}

func TestSearchSessionsLatestWins(t *testing.T) {
	sessions := NewSearchSessions(50*time.Millisecond, 0, func(_ context.Context, term string) (Results, error) {
		return Results{Query: term}, nil
	})

	var wg sync.WaitGroup
	var firstErr error
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, firstErr = sessions.Search(context.Background(), "s1", "r")
	}()
	deadline := time.Now().Add(time.Second)
	for sessions.Len() == 0 && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}
	time.Sleep(5 * time.Millisecond)

	res, err := sessions.Search(context.Background(), "s1", "rose")
	wg.Wait()
	if err != nil || res.Query != "rose" {
		t.Fatalf("unexpected latest result %+v, %v", res, err)
	}
	if !errors.Is(firstErr, resource.ErrSuperseded) {
		t.Fatalf("expected first search superseded, got %v", firstErr)
	}
}
