// Package state keeps the client's rendered-entity stores. The feed store
// is the single source of truth for which posts are on screen; renderers
// project it instead of re-scanning their output.
package state

import (
	"sync"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/Gagannannurichandrashekar/globridge-mvp/internal/models"
)

// FeedStore is an id-keyed, ordered collection of feed posts.
type FeedStore struct {
	mu    sync.RWMutex
	byID  map[int64]models.Post
	order []int64
	seen  mapset.Set[int64]
}

// NewFeedStore creates an empty store.
func NewFeedStore() *FeedStore {
	return &FeedStore{
		byID: make(map[int64]models.Post),
		seen: mapset.NewSet[int64](),
	}
}

// Append adds a page of posts to the end, skipping ids already present,
// and returns how many were actually added.
func (s *FeedStore) Append(posts []models.Post) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	added := 0
	for _, p := range posts {
		if s.seen.Contains(p.ID) {
			continue
		}
		s.seen.Add(p.ID)
		s.byID[p.ID] = p
		s.order = append(s.order, p.ID)
		added++
	}
	return added
}

// PrependUnseen inserts only the posts whose ids are not yet in the
// store, preserving their given order at the front, and returns them.
// This is the polling dedup: an id can never appear twice.
func (s *FeedStore) PrependUnseen(posts []models.Post) []models.Post {
	s.mu.Lock()
	defer s.mu.Unlock()
	var fresh []models.Post
	var freshIDs []int64
	for _, p := range posts {
		if s.seen.Contains(p.ID) {
			continue
		}
		s.seen.Add(p.ID)
		s.byID[p.ID] = p
		fresh = append(fresh, p)
		freshIDs = append(freshIDs, p.ID)
	}
	if len(freshIDs) > 0 {
		s.order = append(freshIDs, s.order...)
	}
	return fresh
}

// Replace swaps the stored post with the same id, returning false when
// the id is not present.
func (s *FeedStore) Replace(post models.Post) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.seen.Contains(post.ID) {
		return false
	}
	s.byID[post.ID] = post
	return true
}

// Get returns the post with the given id.
func (s *FeedStore) Get(id int64) (models.Post, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.byID[id]
	return p, ok
}

// Contains reports whether the id is in the store.
func (s *FeedStore) Contains(id int64) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.seen.Contains(id)
}

// Posts returns the posts in display order.
func (s *FeedStore) Posts() []models.Post {
	s.mu.RLock()
	defer s.mu.RUnlock()
	posts := make([]models.Post, 0, len(s.order))
	for _, id := range s.order {
		posts = append(posts, s.byID[id])
	}
	return posts
}

// Len returns the number of stored posts.
func (s *FeedStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.order)
}

// Reset empties the store for a full reload.
func (s *FeedStore) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.byID = make(map[int64]models.Post)
	s.order = nil
	s.seen = mapset.NewSet[int64]()
}
