package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"taskdesk/internal/apperr"
	"taskdesk/internal/model"
	"taskdesk/internal/repository"
)

const (
	bcryptCost        = 12
	minPasswordLength = 8
)

// defaultCategories are seeded for every new account, content and slug
// stored verbatim (the title-case hook is bypassed during seeding).
var defaultCategories = []model.Category{
	{Content: "Personal", Slug: "personal"},
	{Content: "Free time", Slug: "free-time"},
	{Content: "Project", Slug: "project"},
	{Content: "School", Slug: "school"},
}

// RegisterInput carries the registration form fields.
type RegisterInput struct {
	Email                string
	Password             string
	PasswordConfirmation string
	Age                  *int
}

// AuthService owns registration and credential checks.
type AuthService struct {
	userRepo *repository.UserRepository
}

func NewAuthService(userRepo *repository.UserRepository) *AuthService {
	return &AuthService{userRepo: userRepo}
}

// Register creates an account and its four default categories in one
// transaction. Validation failures come back as apperr.FieldErrors keyed
// by the offending field.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*model.User, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, apperr.NewField("email", "Enter a valid email address")
	}
	if len(input.Password) < minPasswordLength {
		return nil, apperr.NewField("password", fmt.Sprintf("Password must be at least %d characters", minPasswordLength))
	}
	if input.Password != input.PasswordConfirmation {
		return nil, apperr.NewField("password_confirmation", "Passwords do not match")
	}
	if input.Age != nil && *input.Age < 0 {
		return nil, apperr.NewField("age", "Age cannot be negative")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Email:        email,
		PasswordHash: string(hash),
		Age:          input.Age,
		IsActive:     true,
	}

	seeds := make([]model.Category, len(defaultCategories))
	copy(seeds, defaultCategories)

	if err := s.userRepo.CreateWithCategories(ctx, user, seeds); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.NewField("email", "An account with this email already exists")
		}
		return nil, err
	}
	return user, nil
}

// Authenticate checks email and password. Unknown email, wrong password
// and deactivated accounts all return the same ErrInvalidCredentials.
func (s *AuthService) Authenticate(ctx context.Context, email, password string) (*model.User, error) {
	user, err := s.userRepo.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if !user.IsActive {
		return nil, apperr.ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, apperr.ErrInvalidCredentials
	}
	return user, nil
}
