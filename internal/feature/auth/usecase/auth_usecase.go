package usecase

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"broker_backend/internal/feature/auth/domain/entity"
)

const (
	// minPasswordLength defines the minimum password length.
	minPasswordLength = 8
)

// UserRepository abstracts the persistence layer for user entities.
// Following Go convention: interfaces are defined by the consumer (usecase),
// not the provider (adapters).
type UserRepository interface {
	// Create persists a new user. Returns ErrUsernameAlreadyExists when the
	// username is taken.
	Create(ctx context.Context, user *entity.User) error

	// FindByUsername returns the user with the given username, or
	// ErrUserNotFound.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)
}

// JWTGenerator defines the interface for JWT token generation.
// Following Go convention: interfaces are defined by the consumer (usecase),
// not the provider (platform/jwt).
type JWTGenerator interface {
	// GenerateToken creates a signed JWT token carrying the user's
	// username and role.
	GenerateToken(username, role string) (string, error)
}

// authUsecase implements the authentication business logic.
type authUsecase struct {
	users        UserRepository
	jwtGenerator JWTGenerator
}

// NewAuthUsecase creates a new authUsecase instance.
func NewAuthUsecase(users UserRepository, jwtGenerator JWTGenerator) *authUsecase {
	return &authUsecase{
		users:        users,
		jwtGenerator: jwtGenerator,
	}
}

// validatePassword checks that the password meets the security requirements.
func validatePassword(password string) error {
	if len(password) < minPasswordLength {
		return fmt.Errorf("password must be at least %d characters long", minPasswordLength)
	}
	return nil
}

// Signup registers a new user with a hashed password and the default role.
// The account starts with a zero balance; only an administrative override
// can fund it.
func (u *authUsecase) Signup(ctx context.Context, username, email, password string) error {
	if err := validatePassword(password); err != nil {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	user := &entity.User{
		Username: username,
		Email:    email,
		Password: string(hashed),
		Role:     entity.RoleUser,
	}
	return u.users.Create(ctx, user)
}

// Login authenticates a user and returns a JWT token on success.
// To mitigate timing attacks, the bcrypt comparison runs even when the user
// does not exist.
func (u *authUsecase) Login(ctx context.Context, username, password string) (string, error) {
	user, err := u.users.FindByUsername(ctx, username)

	// Dummy hash keeps the comparison cost constant for unknown users.
	passwordHash := "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"
	if err == nil {
		passwordHash = user.Password
	}

	compareErr := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password))

	// One generic error for both unknown user and wrong password.
	if err != nil || compareErr != nil {
		return "", ErrInvalidCredentials
	}

	token, tokenErr := u.jwtGenerator.GenerateToken(user.Username, user.Role)
	if tokenErr != nil {
		return "", fmt.Errorf("failed to generate token: %w", tokenErr)
	}

	return token, nil
}
