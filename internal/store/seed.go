package store

import (
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/aanjanaji/physio-api/internal/models"
)

// Seed populates a fresh store with the demo fixtures: the admin account,
// a sample patient, five testimonials and three blog posts.
func Seed(s *Store, adminEmail, adminPassword string) error {
	adminHash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("seed admin password: %w", err)
	}
	patientHash, err := bcrypt.GenerateFromPassword([]byte("patient123"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("seed patient password: %w", err)
	}

	if _, err := s.CreateUser(models.User{
		FirstName:    "Admin",
		LastName:     "User",
		Email:        adminEmail,
		Phone:        "+1234567890",
		PasswordHash: string(adminHash),
		Role:         models.RoleAdmin,
		IsActive:     true,
	}); err != nil {
		return fmt.Errorf("seed admin user: %w", err)
	}

	if _, err := s.CreateUser(models.User{
		FirstName:    "John",
		LastName:     "Patient",
		Email:        "patient@example.com",
		Phone:        "+1234567891",
		PasswordHash: string(patientHash),
		Role:         models.RolePatient,
		IsActive:     true,
	}); err != nil {
		return fmt.Errorf("seed patient user: %w", err)
	}

	now := time.Now()

	testimonials := []models.Testimonial{
		{
			Name:       "Sarah Mitchell",
			Occupation: "Marathon Runner",
			Rating:     5,
			Review:     "After my knee surgery, I was worried I'd never run again. Dr. Johnson and her team created a personalized rehabilitation plan that not only got me back to running but made me stronger than before. I'm forever grateful!",
			CreatedAt:  now.Add(-2 * 24 * time.Hour),
		},
		{
			Name:       "Robert Chen",
			Occupation: "Office Manager",
			Rating:     5,
			Review:     "I've been dealing with chronic back pain for years. The team at Aanjanaji Physio Care didn't just treat my symptoms - they addressed the root cause. I'm now pain-free and have the tools to stay that way.",
			CreatedAt:  now.Add(-24 * time.Hour),
		},
		{
			Name:       "Maria Rodriguez",
			Occupation: "Tennis Player",
			Rating:     5,
			Review:     "Professional, caring, and incredibly knowledgeable. The dry needling treatment was a game-changer for my shoulder pain. I can't recommend Aanjanaji Physio Care highly enough!",
			CreatedAt:  now.Add(-3 * time.Hour),
		},
		{
			Name:       "David Kumar",
			Occupation: "Software Engineer",
			Rating:     5,
			Review:     "Working from home led to terrible posture and neck pain. The ergonomic assessment and treatment plan from Aanjanaji Physio Care completely transformed my work setup and eliminated my pain.",
			CreatedAt:  now.Add(-30 * time.Minute),
		},
		{
			Name:       "Lisa Thompson",
			Occupation: "Yoga Instructor",
			Rating:     4,
			Review:     "Excellent physiotherapy services! The staff is very professional and the treatment was effective. I appreciate the detailed explanation of exercises and the follow-up care.",
			CreatedAt:  now.Add(-7 * 24 * time.Hour),
		},
	}
	for _, t := range testimonials {
		s.CreateTestimonial(t)
	}

	posts := []models.BlogPost{
		{
			Title:       "5 Essential Exercises for Lower Back Pain Relief",
			Excerpt:     "Learn simple yet effective exercises you can do at home to strengthen your core and alleviate lower back pain...",
			Content:     "Lower back pain is one of the most common complaints we see at Aanjanaji Physio Care. Here are 5 exercises that can help...",
			Category:    "Exercise Tips",
			ImageURL:    "https://images.unsplash.com/photo-1571019613454-1cb2f99b2d8b?auto=format&fit=crop&w=400&h=250",
			PublishedAt: time.Date(2024, 12, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			Title:       "Creating an Ergonomic Workspace for Better Posture",
			Excerpt:     "Discover how to set up your workspace to prevent neck and back pain while working from home or the office...",
			Content:     "With more people working from home, proper ergonomics has become crucial for preventing musculoskeletal issues...",
			Category:    "Ergonomics",
			ImageURL:    "https://images.unsplash.com/photo-1586281380349-632531db7ed4?auto=format&fit=crop&w=400&h=250",
			PublishedAt: time.Date(2024, 12, 10, 0, 0, 0, 0, time.UTC),
		},
		{
			Title:       "Preventing Sports Injuries: Pre-Exercise Preparation",
			Excerpt:     "Learn the essential warm-up routines and preparation techniques to keep you injury-free during sports and exercise...",
			Content:     "Sports injuries can be devastating, but many are preventable with proper preparation and warm-up techniques...",
			Category:    "Sports Medicine",
			ImageURL:    "https://images.unsplash.com/photo-1551698618-1dfe5d97d256?auto=format&fit=crop&w=400&h=250",
			PublishedAt: time.Date(2024, 12, 5, 0, 0, 0, 0, time.UTC),
		},
	}
	for _, p := range posts {
		s.CreateBlogPost(p)
	}

	return nil
}
