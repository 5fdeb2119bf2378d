package store

import (
	"errors"
	"sync"

	"github.com/aanjanaji/physio-api/internal/models"
)

var (
	ErrNotFound   = errors.New("record not found")
	ErrEmailTaken = errors.New("email already registered")
)

// Store holds one table per entity. Each table has its own lock and
// id counter so a create on one table never serializes another.
// Ids start at 1 and are never reused.
type Store struct {
	usersMu    sync.RWMutex
	users      map[int]models.User
	nextUserID int

	appointmentsMu    sync.RWMutex
	appointments      map[int]models.Appointment
	nextAppointmentID int

	testimonialsMu    sync.RWMutex
	testimonials      map[int]models.Testimonial
	nextTestimonialID int

	blogPostsMu    sync.RWMutex
	blogPosts      map[int]models.BlogPost
	nextBlogPostID int

	contactMessagesMu    sync.RWMutex
	contactMessages      map[int]models.ContactMessage
	nextContactMessageID int
}

func New() *Store {
	return &Store{
		users:                make(map[int]models.User),
		nextUserID:           1,
		appointments:         make(map[int]models.Appointment),
		nextAppointmentID:    1,
		testimonials:         make(map[int]models.Testimonial),
		nextTestimonialID:    1,
		blogPosts:            make(map[int]models.BlogPost),
		nextBlogPostID:       1,
		contactMessages:      make(map[int]models.ContactMessage),
		nextContactMessageID: 1,
	}
}
