package service

import (
	"context"
	"path/filepath"
	"testing"

	"gorm.io/gorm"

	"taskdesk/internal/model"
	"taskdesk/internal/repository"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := repository.NewDB(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	return db
}

// newUser inserts a bare account without seeded categories; tests that
// exercise seeding go through AuthService.Register instead.
func newUser(t *testing.T, db *gorm.DB, email string) *model.User {
	t.Helper()
	user := &model.User{Email: email, PasswordHash: "x", IsActive: true}
	if err := repository.NewUserRepository(db).CreateWithCategories(context.Background(), user, nil); err != nil {
		t.Fatalf("create user %s: %v", email, err)
	}
	return user
}

func newTaskService(db *gorm.DB) *TaskService {
	return NewTaskService(repository.NewTaskRepository(db), repository.NewCategoryRepository(db))
}
