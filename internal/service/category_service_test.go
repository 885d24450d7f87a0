package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"taskdesk/internal/apperr"
	"taskdesk/internal/repository"
)

func TestCreateCategoryNormalizesAndSlugs(t *testing.T) {
	db := newTestDB(t)
	user := newUser(t, db, "a@example.com")
	svc := NewCategoryService(repository.NewCategoryRepository(db))

	category, err := svc.Create(context.Background(), user, "weekend plans")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if category.Content != "Weekend Plans" {
		t.Errorf("content = %q, want %q", category.Content, "Weekend Plans")
	}
	if category.Slug != "weekend-plans" {
		t.Errorf("slug = %q, want %q", category.Slug, "weekend-plans")
	}
}

func TestCreateCategoryDuplicateSlugPerUser(t *testing.T) {
	db := newTestDB(t)
	user := newUser(t, db, "a@example.com")
	other := newUser(t, db, "b@example.com")
	svc := NewCategoryService(repository.NewCategoryRepository(db))
	ctx := context.Background()

	if _, err := svc.Create(ctx, user, "work"); err != nil {
		t.Fatalf("create: %v", err)
	}

	// "Work" normalizes to the same content and slug as "work".
	_, err := svc.Create(ctx, user, "Work")
	var fields apperr.FieldErrors
	if !errors.As(err, &fields) {
		t.Fatalf("expected FieldErrors, got %v", err)
	}
	if _, ok := fields["content"]; !ok {
		t.Fatalf("expected error on content field, got %v", fields)
	}

	// A different user may own the same slug.
	if _, err := svc.Create(ctx, other, "work"); err != nil {
		t.Fatalf("other user create: %v", err)
	}
}

func TestRenameKeepsSlug(t *testing.T) {
	db := newTestDB(t)
	user := newUser(t, db, "a@example.com")
	svc := NewCategoryService(repository.NewCategoryRepository(db))
	ctx := context.Background()

	category, err := svc.Create(ctx, user, "side projects")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	renamed, err := svc.Rename(ctx, user, category.ID, "abandoned ideas")
	if err != nil {
		t.Fatalf("rename: %v", err)
	}
	if renamed.Content != "Abandoned Ideas" {
		t.Errorf("content = %q, want %q", renamed.Content, "Abandoned Ideas")
	}
	if renamed.Slug != "side-projects" {
		t.Errorf("slug changed on rename: %q", renamed.Slug)
	}
}

func TestDeleteCategoryClearsTaskReferences(t *testing.T) {
	db := newTestDB(t)
	user := newUser(t, db, "a@example.com")
	categorySvc := NewCategoryService(repository.NewCategoryRepository(db))
	taskSvc := newTaskService(db)
	ctx := context.Background()

	category, err := categorySvc.Create(ctx, user, "chores")
	if err != nil {
		t.Fatalf("create category: %v", err)
	}
	task, err := taskSvc.Create(ctx, user, TaskInput{Content: "mow the lawn", CategoryID: &category.ID, Due: time.Now()})
	if err != nil {
		t.Fatalf("create task: %v", err)
	}

	if err := categorySvc.Delete(ctx, user, category.ID); err != nil {
		t.Fatalf("delete category: %v", err)
	}

	got, err := taskSvc.Get(ctx, user, task.ID)
	if err != nil {
		t.Fatalf("task should survive category deletion: %v", err)
	}
	if got.CategoryID != nil {
		t.Fatalf("category reference not cleared: %v", *got.CategoryID)
	}
}

func TestDeleteCategoryScoped(t *testing.T) {
	db := newTestDB(t)
	owner := newUser(t, db, "a@example.com")
	intruder := newUser(t, db, "b@example.com")
	svc := NewCategoryService(repository.NewCategoryRepository(db))
	ctx := context.Background()

	category, err := svc.Create(ctx, owner, "private")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := svc.Delete(ctx, intruder, category.ID); !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("foreign delete: expected ErrNotFound, got %v", err)
	}
	if _, err := svc.GetBySlug(ctx, owner, "private"); err != nil {
		t.Fatalf("category should still exist: %v", err)
	}
}

func TestGetBySlugScoped(t *testing.T) {
	db := newTestDB(t)
	owner := newUser(t, db, "a@example.com")
	intruder := newUser(t, db, "b@example.com")
	svc := NewCategoryService(repository.NewCategoryRepository(db))
	ctx := context.Background()

	if _, err := svc.Create(ctx, owner, "secrets"); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := svc.GetBySlug(ctx, intruder, "secrets"); !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for foreign slug, got %v", err)
	}
}
