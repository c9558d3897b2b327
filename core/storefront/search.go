package storefront

import (
	"strings"
	"sync"

	"github.com/jjyf27/redpro/core/cart"
	"github.com/jjyf27/redpro/core/course"
)

// SearchSurface backs the search widget. The catalog arrives
// asynchronously; until it does, searches return nothing and adds fail
// softly with a notification instead of crashing on missing data.
type SearchSurface struct {
	surface

	mu      sync.RWMutex
	catalog []course.Course
}

func NewSearchSurface(mgr *cart.Manager, notify Notifier) *SearchSurface {
	return &SearchSurface{surface: surface{cart: mgr, notify: notify}}
}

// SetCatalog installs the fetched course list, replacing any previous one.
func (s *SearchSurface) SetCatalog(courses []course.Course) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.catalog = courses
}

// Search matches course titles case-insensitively; empty query matches nothing.
func (s *SearchSurface) Search(query string) []course.Course {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return nil
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	var found []course.Course
	for _, c := range s.catalog {
		if strings.Contains(strings.ToLower(c.Title), query) {
			found = append(found, c)
		}
	}
	return found
}

// AddResult puts the clicked search result into the cart. Reports
// whether the cart changed.
func (s *SearchSurface) AddResult(courseID int) bool {
	s.mu.RLock()
	var hit *course.Course
	for i := range s.catalog {
		if s.catalog[i].ID == courseID {
			hit = &s.catalog[i]
			break
		}
	}
	s.mu.RUnlock()

	if hit == nil {
		// catalog not loaded yet, or a stale result was clicked
		s.notify.Notify(LevelError, "El curso aún no está disponible")
		return false
	}
	return s.addCourse(*hit)
}
