package store

import (
	"sort"
	"time"

	"github.com/aanjanaji/physio-api/internal/models"
)

func (s *Store) CreateContactMessage(m models.ContactMessage) models.ContactMessage {
	s.contactMessagesMu.Lock()
	defer s.contactMessagesMu.Unlock()

	m.ID = s.nextContactMessageID
	s.nextContactMessageID++
	m.IsRead = false
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now()
	}

	s.contactMessages[m.ID] = m
	return m
}

func (s *Store) ListContactMessages() []models.ContactMessage {
	s.contactMessagesMu.RLock()
	defer s.contactMessagesMu.RUnlock()

	out := make([]models.ContactMessage, 0, len(s.contactMessages))
	for _, m := range s.contactMessages {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (s *Store) MarkContactMessageRead(id int) (models.ContactMessage, error) {
	s.contactMessagesMu.Lock()
	defer s.contactMessagesMu.Unlock()

	m, ok := s.contactMessages[id]
	if !ok {
		return models.ContactMessage{}, ErrNotFound
	}

	m.IsRead = true
	s.contactMessages[id] = m
	return m, nil
}
