package service

import (
	"context"
	"errors"
	"testing"

	"taskdesk/internal/apperr"
	"taskdesk/internal/repository"
)

func TestRegisterSeedsDefaultCategories(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(repository.NewUserRepository(db))
	ctx := context.Background()

	user, err := svc.Register(ctx, RegisterInput{
		Email:                "alice@example.com",
		Password:             "correct horse",
		PasswordConfirmation: "correct horse",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	categories, err := repository.NewCategoryRepository(db).ListByUser(ctx, user.ID)
	if err != nil {
		t.Fatalf("list categories: %v", err)
	}
	if len(categories) != 4 {
		t.Fatalf("expected 4 seeded categories, got %d", len(categories))
	}

	want := map[string]string{
		"free-time": "Free time",
		"personal":  "Personal",
		"project":   "Project",
		"school":    "School",
	}
	for _, cat := range categories {
		content, ok := want[cat.Slug]
		if !ok {
			t.Errorf("unexpected seeded slug %q", cat.Slug)
			continue
		}
		// Seeding bypasses normalization: "Free time" stays verbatim.
		if cat.Content != content {
			t.Errorf("slug %q: content = %q, want %q", cat.Slug, cat.Content, content)
		}
		delete(want, cat.Slug)
	}
	if len(want) != 0 {
		t.Errorf("missing seeded slugs: %v", want)
	}
}

func TestRegisterValidation(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(repository.NewUserRepository(db))
	ctx := context.Background()

	tests := []struct {
		name  string
		input RegisterInput
		field string
	}{
		{
			name:  "password mismatch",
			input: RegisterInput{Email: "bob@example.com", Password: "long enough", PasswordConfirmation: "different pw"},
			field: "password_confirmation",
		},
		{
			name:  "short password",
			input: RegisterInput{Email: "bob@example.com", Password: "short", PasswordConfirmation: "short"},
			field: "password",
		},
		{
			name:  "missing email",
			input: RegisterInput{Password: "long enough", PasswordConfirmation: "long enough"},
			field: "email",
		},
		{
			name:  "malformed email",
			input: RegisterInput{Email: "not-an-email", Password: "long enough", PasswordConfirmation: "long enough"},
			field: "email",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Register(ctx, tt.input)
			var fields apperr.FieldErrors
			if !errors.As(err, &fields) {
				t.Fatalf("expected FieldErrors, got %v", err)
			}
			if _, ok := fields[tt.field]; !ok {
				t.Fatalf("expected error on field %q, got %v", tt.field, fields)
			}
		})
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(repository.NewUserRepository(db))
	ctx := context.Background()

	input := RegisterInput{Email: "carol@example.com", Password: "long enough", PasswordConfirmation: "long enough"}
	if _, err := svc.Register(ctx, input); err != nil {
		t.Fatalf("first register: %v", err)
	}
	_, err := svc.Register(ctx, input)
	var fields apperr.FieldErrors
	if !errors.As(err, &fields) {
		t.Fatalf("expected FieldErrors, got %v", err)
	}
	if _, ok := fields["email"]; !ok {
		t.Fatalf("expected error on email field, got %v", fields)
	}
}

func TestAuthenticate(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(repository.NewUserRepository(db))
	ctx := context.Background()

	if _, err := svc.Register(ctx, RegisterInput{
		Email:                "dave@example.com",
		Password:             "long enough",
		PasswordConfirmation: "long enough",
	}); err != nil {
		t.Fatalf("register: %v", err)
	}

	user, err := svc.Authenticate(ctx, "dave@example.com", "long enough")
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if user.Email != "dave@example.com" {
		t.Fatalf("authenticated wrong user: %s", user.Email)
	}

	// Wrong password and unknown email fail identically.
	if _, err := svc.Authenticate(ctx, "dave@example.com", "wrong password"); !errors.Is(err, apperr.ErrInvalidCredentials) {
		t.Fatalf("wrong password: expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := svc.Authenticate(ctx, "nobody@example.com", "long enough"); !errors.Is(err, apperr.ErrInvalidCredentials) {
		t.Fatalf("unknown email: expected ErrInvalidCredentials, got %v", err)
	}
}
