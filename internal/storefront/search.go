package storefront

import (
	"context"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/01moynul/taptosell-console/internal/models"
	"github.com/01moynul/taptosell-console/internal/resource"
)

// Results is one answer of the storefront search box.
type Results struct {
	Query    string           `json:"query"`
	Products []models.Product `json:"products"`
}

// QueryLister runs a filtered list against the platform.
type QueryLister interface {
	ListQuery(ctx context.Context, resource string, query url.Values) ([]map[string]any, error)
}

// ProductSearch searches live products. A blank term answers with no results
// and no upstream call.
func ProductSearch(l QueryLister) resource.SearchFunc[Results] {
	return func(ctx context.Context, term string) (Results, error) {
		term = strings.TrimSpace(term)
		res := Results{Query: term, Products: []models.Product{}}
		if term == "" {
			return res, nil
		}
		raw, err := l.ListQuery(ctx, "products", url.Values{"search": {term}})
		if err != nil {
			return Results{}, err
		}
		for _, r := range raw {
			p := models.NormalizeProduct(r)
			if p.Status == models.ProductActive {
				res.Products = append(res.Products, p)
			}
		}
		return res, nil
	}
}

type session struct {
	searcher *resource.Searcher[Results]
	lastUsed time.Time
}

// SearchSessions keeps one debounced searcher per browser session, so each
// visitor's typing only ever yields their latest query's results.
type SearchSessions struct {
	delay time.Duration
	idle  time.Duration
	fn    resource.SearchFunc[Results]
	now   func() time.Time

	// max caps live sessions; the least recently used one makes room.
	max int

	mu        sync.Mutex
	sessions  map[string]*session
	lastSweep time.Time
}

// maxSearchSessions bounds the registry, since session ids come from clients.
const maxSearchSessions = 10000

// NewSearchSessions builds the registry. Sessions unused for idle are dropped.
func NewSearchSessions(delay, idle time.Duration, fn resource.SearchFunc[Results]) *SearchSessions {
	if idle <= 0 {
		idle = 30 * time.Minute
	}
	return &SearchSessions{
		delay:    delay,
		idle:     idle,
		fn:       fn,
		now:      time.Now,
		max:      maxSearchSessions,
		sessions: make(map[string]*session),
	}
}

// Search runs term for sessionID. A call overtaken by a newer one from the same
// session returns resource.ErrSuperseded.
func (s *SearchSessions) Search(ctx context.Context, sessionID, term string) (Results, error) {
	return s.searcher(sessionID).Search(ctx, term)
}

func (s *SearchSessions) searcher(sessionID string) *resource.Searcher[Results] {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	// Idle sessions are swept at most twice per idle period.
	if now.Sub(s.lastSweep) >= s.idle/2 {
		s.sweep(now)
	}

	sess, ok := s.sessions[sessionID]
	if !ok {
		if len(s.sessions) >= s.max {
			s.sweep(now)
		}
		if len(s.sessions) >= s.max {
			s.evictOldest()
		}
		sess = &session{searcher: resource.NewSearcher(s.delay, s.fn)}
		s.sessions[sessionID] = sess
	}
	sess.lastUsed = now
	return sess.searcher
}

// sweep drops sessions idle for longer than s.idle. Callers hold s.mu.
func (s *SearchSessions) sweep(now time.Time) {
	s.lastSweep = now
	for id, sess := range s.sessions {
		if now.Sub(sess.lastUsed) > s.idle {
			delete(s.sessions, id)
		}
	}
}

// evictOldest drops the least recently used session. Callers hold s.mu.
func (s *SearchSessions) evictOldest() {
	var oldestID string
	var oldest time.Time
	for id, sess := range s.sessions {
		if oldestID == "" || sess.lastUsed.Before(oldest) {
			oldestID, oldest = id, sess.lastUsed
		}
	}
	delete(s.sessions, oldestID)
}

// Len returns the number of live sessions.
func (s *SearchSessions) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}
