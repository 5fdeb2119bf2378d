package store

import (
	"sort"
	"time"

	"github.com/aanjanaji/physio-api/internal/models"
)

func (s *Store) CreateBlogPost(p models.BlogPost) models.BlogPost {
	s.blogPostsMu.Lock()
	defer s.blogPostsMu.Unlock()

	p.ID = s.nextBlogPostID
	s.nextBlogPostID++
	if p.PublishedAt.IsZero() {
		p.PublishedAt = time.Now()
	}

	s.blogPosts[p.ID] = p
	return p
}

// ListBlogPosts returns posts newest first.
func (s *Store) ListBlogPosts() []models.BlogPost {
	s.blogPostsMu.RLock()
	defer s.blogPostsMu.RUnlock()

	out := make([]models.BlogPost, 0, len(s.blogPosts))
	for _, p := range s.blogPosts {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].PublishedAt.After(out[j].PublishedAt)
	})
	return out
}

func (s *Store) GetBlogPost(id int) (models.BlogPost, error) {
	s.blogPostsMu.RLock()
	defer s.blogPostsMu.RUnlock()

	p, ok := s.blogPosts[id]
	if !ok {
		return models.BlogPost{}, ErrNotFound
	}
	return p, nil
}
