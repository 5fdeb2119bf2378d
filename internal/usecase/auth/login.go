package auth

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/aanjanaji/physio-api/internal/audit"
	domain "github.com/aanjanaji/physio-api/internal/domain/user"
	"github.com/aanjanaji/physio-api/internal/httperr"
	"github.com/aanjanaji/physio-api/internal/models"
	"github.com/aanjanaji/physio-api/internal/validators"
)

const tokenTTL = 24 * time.Hour

// ======================================================
// INPUT / RESULT
// ======================================================

type LoginInput struct {
	Email    string
	Password string
}

type LoginResult struct {
	Token string
	User  models.User
}

// ======================================================
// USE CASE
// ======================================================

type Login struct {
	repo       domain.Repository
	audit      *audit.Dispatcher
	jwtSecret  string
	adminEmail string
}

func NewLogin(repo domain.Repository, audit *audit.Dispatcher, jwtSecret, adminEmail string) *Login {
	return &Login{
		repo:       repo,
		audit:      audit,
		jwtSecret:  jwtSecret,
		adminEmail: adminEmail,
	}
}

// Execute authenticates by email and password. The literal email "admin"
// is an alias for the seeded admin account. Unknown email, inactive
// account and wrong password all produce the same invalid_credentials
// error so callers cannot enumerate accounts.
func (uc *Login) Execute(ctx context.Context, in LoginInput) (LoginResult, error) {
	email := in.Email
	if email == "admin" {
		email = uc.adminEmail
	}

	if !validators.IsEmailValid(email) {
		return LoginResult{}, httperr.ErrBusiness("invalid_email")
	}

	user, err := uc.repo.GetUserByEmail(email)
	if err != nil || !user.IsActive {
		uc.audit.Dispatch(audit.Event{Action: "login_failed", Entity: "user"})
		return LoginResult{}, httperr.ErrBusiness("invalid_credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		uc.audit.Dispatch(audit.Event{Action: "login_failed", Entity: "user"})
		return LoginResult{}, httperr.ErrBusiness("invalid_credentials")
	}

	token, err := uc.generateToken(&user)
	if err != nil {
		return LoginResult{}, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &user.ID,
		Action:   "login_succeeded",
		Entity:   "user",
		EntityID: &user.ID,
	})

	return LoginResult{Token: token, User: user}, nil
}

// ======================================================
// JWT
// ======================================================

func (uc *Login) generateToken(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":   user.ID,
		"email": user.Email,
		"role":  user.Role,
		"exp":   time.Now().Add(tokenTTL).Unix(),
		"iat":   time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(uc.jwtSecret))
}
