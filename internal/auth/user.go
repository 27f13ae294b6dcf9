// Package auth is the identity collaborator. It registers and logs in customers and
// resolves a bearer token to the Principal that owns an order. Requests without a
// token are guests.
package auth

import (
	"context"
	"errors"
	"strings"
	"sync"

	"ordering/internal/pkg/errs"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid token")
)

type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
}

// Principal is the current caller as seen by order handlers.
type Principal struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func (u User) Principal() Principal {
	return Principal{ID: u.ID, Name: u.Name}
}

type UserRepository interface {
	Add(ctx context.Context, user User) error
	FindByEmail(ctx context.Context, email string) (User, error)
}

var _ UserRepository = &MemoryUserRepository{}

// MemoryUserRepository keys users by case-folded email.
type MemoryUserRepository struct {
	mu    sync.RWMutex
	users map[string]User
}

func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{users: make(map[string]User)}
}

func (r *MemoryUserRepository) Add(_ context.Context, user User) error {
	key := emailKey(user.Email)

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[key]; ok {
		return errs.NewObjectAlreadyExistsError("email", user.Email)
	}
	r.users[key] = user
	return nil
}

func (r *MemoryUserRepository) FindByEmail(_ context.Context, email string) (User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[emailKey(email)]
	if !ok {
		return User{}, errs.NewObjectNotFoundError("email", email)
	}
	return user, nil
}

func emailKey(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
