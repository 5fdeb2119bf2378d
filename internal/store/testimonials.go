package store

import (
	"sort"
	"time"

	"github.com/aanjanaji/physio-api/internal/models"
)

// CreateTestimonial auto-approves every submission.
func (s *Store) CreateTestimonial(t models.Testimonial) models.Testimonial {
	s.testimonialsMu.Lock()
	defer s.testimonialsMu.Unlock()

	t.ID = s.nextTestimonialID
	s.nextTestimonialID++
	t.IsApproved = true
	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now()
	}

	s.testimonials[t.ID] = t
	return t
}

func (s *Store) ListApprovedTestimonials() []models.Testimonial {
	s.testimonialsMu.RLock()
	defer s.testimonialsMu.RUnlock()

	out := make([]models.Testimonial, 0, len(s.testimonials))
	for _, t := range s.testimonials {
		if t.IsApproved {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (s *Store) ListTestimonials() []models.Testimonial {
	s.testimonialsMu.RLock()
	defer s.testimonialsMu.RUnlock()

	out := make([]models.Testimonial, 0, len(s.testimonials))
	for _, t := range s.testimonials {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
