package auth

import (
	"context"
	"errors"
	"strings"

	"ordering/internal/pkg/errs"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type Service struct {
	users  UserRepository
	tokens *TokenIssuer
	cost   int
}

// NewService hashes passwords with bcrypt.DefaultCost.
func NewService(users UserRepository, tokens *TokenIssuer) *Service {
	return &Service{users: users, tokens: tokens, cost: bcrypt.DefaultCost}
}

// WithCost returns a copy of the service using another bcrypt cost.
func (s *Service) WithCost(cost int) *Service {
	clone := *s
	clone.cost = cost
	return &clone
}

func (s *Service) Register(ctx context.Context, name, email, password string) (User, string, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)

	var nameErr, emailErr, passwordErr error
	if name == "" {
		nameErr = errs.NewValueIsRequiredError("name")
	}
	if email == "" {
		emailErr = errs.NewValueIsRequiredError("email")
	}
	if password == "" {
		passwordErr = errs.NewValueIsRequiredError("password")
	}
	if err := errors.Join(nameErr, emailErr, passwordErr); err != nil {
		return User{}, "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return User{}, "", errs.NewValueIsInvalidErrorWithCause("password", err)
	}

	user := User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
	}
	if err = s.users.Add(ctx, user); err != nil {
		return User{}, "", err
	}

	token, err := s.tokens.Issue(user.Principal())
	if err != nil {
		return User{}, "", err
	}
	return user, token, nil
}

// Login fails with ErrInvalidCredentials for an unknown email or a wrong password alike.
func (s *Service) Login(ctx context.Context, email, password string) (User, string, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return User{}, "", ErrInvalidCredentials
	}
	if err != nil {
		return User{}, "", err
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return User{}, "", ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.Principal())
	if err != nil {
		return User{}, "", err
	}
	return user, token, nil
}

// Authenticate resolves a bearer token to its principal.
func (s *Service) Authenticate(token string) (Principal, error) {
	return s.tokens.Parse(token)
}
