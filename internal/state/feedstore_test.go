package state

import (
	"testing"

	"github.com/Gagannannurichandrashekar/globridge-mvp/internal/models"
)

func makePosts(ids ...int64) []models.Post {
	posts := make([]models.Post, 0, len(ids))
	for _, id := range ids {
		posts = append(posts, models.Post{ID: id, Content: "post"})
	}
	return posts
}

func orderOf(s *FeedStore) []int64 {
	posts := s.Posts()
	ids := make([]int64, 0, len(posts))
	for _, p := range posts {
		ids = append(ids, p.ID)
	}
	return ids
}

func TestAppendSkipsDuplicates(t *testing.T) {
	s := NewFeedStore()

	if added := s.Append(makePosts(1, 2, 3)); added != 3 {
		t.Fatalf("first append added %d, want 3", added)
	}
	// An overlapping second page must not duplicate ids.
	if added := s.Append(makePosts(3, 4)); added != 1 {
		t.Fatalf("overlapping append added %d, want 1", added)
	}

	got := orderOf(s)
	want := []int64{1, 2, 3, 4}
	if len(got) != len(want) {
		t.Fatalf("got order %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got order %v, want %v", got, want)
		}
	}
}

func TestPrependUnseenDedups(t *testing.T) {
	s := NewFeedStore()
	s.Append(makePosts(10, 11, 12))

	// Poll result overlaps the existing page; only 13 and 14 are new.
	fresh := s.PrependUnseen(makePosts(14, 13, 12, 11))
	if len(fresh) != 2 {
		t.Fatalf("got %d fresh posts, want 2", len(fresh))
	}
	if fresh[0].ID != 14 || fresh[1].ID != 13 {
		t.Fatalf("fresh order %v, want [14 13]", fresh)
	}

	got := orderOf(s)
	want := []int64{14, 13, 10, 11, 12}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got order %v, want %v", got, want)
		}
	}

	// Re-polling the same page adds nothing.
	if fresh := s.PrependUnseen(makePosts(14, 13, 12)); len(fresh) != 0 {
		t.Fatalf("repeat poll added %d posts, want 0", len(fresh))
	}
	if s.Len() != 5 {
		t.Fatalf("store has %d posts, want 5", s.Len())
	}
}

func TestReplace(t *testing.T) {
	s := NewFeedStore()
	s.Append(makePosts(1, 2))

	updated := models.Post{ID: 2, Content: "updated", CommentsCount: 7}
	if !s.Replace(updated) {
		t.Fatal("Replace returned false for a stored id")
	}
	got, ok := s.Get(2)
	if !ok || got.Content != "updated" || got.CommentsCount != 7 {
		t.Fatalf("stored post not replaced: %+v", got)
	}

	if s.Replace(models.Post{ID: 99}) {
		t.Fatal("Replace returned true for an unknown id")
	}
}

func TestReset(t *testing.T) {
	s := NewFeedStore()
	s.Append(makePosts(1, 2, 3))
	s.Reset()

	if s.Len() != 0 {
		t.Fatalf("store has %d posts after reset, want 0", s.Len())
	}
	// Ids from before the reset count as unseen again.
	if added := s.Append(makePosts(1)); added != 1 {
		t.Fatalf("append after reset added %d, want 1", added)
	}
}
