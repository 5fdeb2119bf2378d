package user

import "github.com/aanjanaji/physio-api/internal/models"

// Repository is the user-table surface the auth use cases need.
// *store.Store satisfies it; tests may substitute their own.
type Repository interface {
	CreateUser(u models.User) (models.User, error)
	GetUserByEmail(email string) (models.User, error)
}
