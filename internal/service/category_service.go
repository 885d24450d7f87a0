package service

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"taskdesk/internal/apperr"
	"taskdesk/internal/model"
	"taskdesk/internal/repository"
)

// CategoryService owns category creation, lookup and removal.
type CategoryService struct {
	categoryRepo *repository.CategoryRepository
}

func NewCategoryService(categoryRepo *repository.CategoryRepository) *CategoryService {
	return &CategoryService{categoryRepo: categoryRepo}
}

// Create stores a new category for the user. Content is normalized to
// title case and the slug derived from it, so "work" and "Work" collapse
// to the same category; a duplicate surfaces as a field-level validation
// error, never as a raw constraint violation.
func (s *CategoryService) Create(ctx context.Context, user *model.User, content string) (*model.Category, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, apperr.NewField("content", "Category name is required")
	}
	if len(content) > maxContentLength {
		return nil, apperr.NewField("content", "Category name is too long")
	}

	category := &model.Category{UserID: user.ID, Content: content}
	if err := s.categoryRepo.Create(ctx, category); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.NewField("content", "The category you create shouldn't already exist in your category list")
		}
		return nil, err
	}
	return category, nil
}

// Rename updates a category's display content. The slug is intentionally
// left as first assigned, so links to the category keep working.
func (s *CategoryService) Rename(ctx context.Context, user *model.User, id uint, content string) (*model.Category, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, apperr.NewField("content", "Category name is required")
	}
	if len(content) > maxContentLength {
		return nil, apperr.NewField("content", "Category name is too long")
	}

	category, err := s.categoryRepo.FindByID(ctx, user.ID, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	category.Content = content
	if err := s.categoryRepo.Save(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

// List returns the user's categories in stable slug order.
func (s *CategoryService) List(ctx context.Context, user *model.User) ([]model.Category, error) {
	return s.categoryRepo.ListByUser(ctx, user.ID)
}

// GetBySlug resolves one of the user's categories; foreign or unknown
// slugs are indistinguishable in the returned error.
func (s *CategoryService) GetBySlug(ctx context.Context, user *model.User, slug string) (*model.Category, error) {
	category, err := s.categoryRepo.FindBySlug(ctx, user.ID, slug)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return category, nil
}

// Delete removes a category; tasks that referenced it survive with the
// reference cleared.
func (s *CategoryService) Delete(ctx context.Context, user *model.User, id uint) error {
	affected, err := s.categoryRepo.Delete(ctx, user.ID, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return apperr.ErrNotFound
	}
	return nil
}
