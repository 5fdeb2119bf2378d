package store

import (
	"time"

	"github.com/aanjanaji/physio-api/internal/models"
)

// CreateUser assigns the next user id and inserts the record. The email
// uniqueness check runs inside the same critical section as the insert,
// so two concurrent signups with the same email cannot both succeed.
// Email matching is exact and case-sensitive.
func (s *Store) CreateUser(u models.User) (models.User, error) {
	s.usersMu.Lock()
	defer s.usersMu.Unlock()

	for _, existing := range s.users {
		if existing.Email == u.Email {
			return models.User{}, ErrEmailTaken
		}
	}

	u.ID = s.nextUserID
	s.nextUserID++
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now()
	}

	s.users[u.ID] = u
	return u, nil
}

func (s *Store) GetUser(id int) (models.User, error) {
	s.usersMu.RLock()
	defer s.usersMu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return models.User{}, ErrNotFound
	}
	return u, nil
}

func (s *Store) GetUserByEmail(email string) (models.User, error) {
	s.usersMu.RLock()
	defer s.usersMu.RUnlock()

	for _, u := range s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return models.User{}, ErrNotFound
}
