package store

import (
	"sort"
	"time"

	domain "github.com/aanjanaji/physio-api/internal/domain/appointment"
	"github.com/aanjanaji/physio-api/internal/models"
)

// CreateAppointment assigns the next id and the initial status.
func (s *Store) CreateAppointment(a models.Appointment) models.Appointment {
	s.appointmentsMu.Lock()
	defer s.appointmentsMu.Unlock()

	a.ID = s.nextAppointmentID
	s.nextAppointmentID++
	a.Status = string(domain.InitialStatus())
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now()
	}

	s.appointments[a.ID] = a
	return a
}

func (s *Store) ListAppointments() []models.Appointment {
	s.appointmentsMu.RLock()
	defer s.appointmentsMu.RUnlock()

	out := make([]models.Appointment, 0, len(s.appointments))
	for _, a := range s.appointments {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (s *Store) GetAppointment(id int) (models.Appointment, error) {
	s.appointmentsMu.RLock()
	defer s.appointmentsMu.RUnlock()

	a, ok := s.appointments[id]
	if !ok {
		return models.Appointment{}, ErrNotFound
	}
	return a, nil
}

func (s *Store) UpdateAppointmentStatus(id int, status domain.Status) (models.Appointment, error) {
	s.appointmentsMu.Lock()
	defer s.appointmentsMu.Unlock()

	a, ok := s.appointments[id]
	if !ok {
		return models.Appointment{}, ErrNotFound
	}

	if err := domain.CanSetStatus(domain.Status(a.Status), status); err != nil {
		return models.Appointment{}, err
	}

	a.Status = string(status)
	s.appointments[id] = a
	return a, nil
}
