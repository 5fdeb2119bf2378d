package auth

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/aanjanaji/physio-api/internal/audit"
	domain "github.com/aanjanaji/physio-api/internal/domain/user"
	"github.com/aanjanaji/physio-api/internal/httperr"
	"github.com/aanjanaji/physio-api/internal/models"
	"github.com/aanjanaji/physio-api/internal/store"
)

// ======================================================
// INPUT
// ======================================================

type SignupInput struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Password  string
}

// ======================================================
// USE CASE
// ======================================================

type Signup struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewSignup(repo domain.Repository, audit *audit.Dispatcher) *Signup {
	return &Signup{
		repo:  repo,
		audit: audit,
	}
}

// Execute hashes the password and inserts the user. Self-signup always
// produces an active patient account; the email uniqueness check happens
// inside the store insert, not as a separate lookup.
func (uc *Signup) Execute(ctx context.Context, in SignupInput) (models.User, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, err
	}

	user, err := uc.repo.CreateUser(models.User{
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Email:        in.Email,
		Phone:        in.Phone,
		PasswordHash: string(hashed),
		Role:         models.RolePatient,
		IsActive:     true,
	})
	if err != nil {
		if errors.Is(err, store.ErrEmailTaken) {
			return models.User{}, httperr.ErrBusiness("email_already_exists")
		}
		return models.User{}, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &user.ID,
		Action:   "user_registered",
		Entity:   "user",
		EntityID: &user.ID,
	})

	return user, nil
}
