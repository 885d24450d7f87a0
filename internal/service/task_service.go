package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"taskdesk/internal/apperr"
	"taskdesk/internal/model"
	"taskdesk/internal/repository"
)

const maxContentLength = 150

// BulkAction selects which mutation a bulk selection applies.
type BulkAction string

const (
	// ActionReschedule pushes the selected tasks' due time to now.
	ActionReschedule BulkAction = "reschedule"
	// ActionComplete marks the selected tasks complete.
	ActionComplete BulkAction = "complete"
)

// BulkResult reports the outcome of a bulk mutation. A non-empty Notice
// with zero updates is a user-visible warning, not an error.
type BulkResult struct {
	Updated int64  `json:"updated"`
	Notice  string `json:"notice,omitempty"`
}

const noticeNothingChecked = "No task was checked"

// TaskInput carries the user-editable task fields.
type TaskInput struct {
	Content    string
	CategoryID *uint
	Due        time.Time
	IsComplete bool
}

// TaskService wraps the task query layer, CRUD and bulk mutations.
type TaskService struct {
	taskRepo     *repository.TaskRepository
	categoryRepo *repository.CategoryRepository
}

func NewTaskService(taskRepo *repository.TaskRepository, categoryRepo *repository.CategoryRepository) *TaskService {
	return &TaskService{taskRepo: taskRepo, categoryRepo: categoryRepo}
}

// validateInput checks the task form fields. The category choice is
// validated against the requesting user's own category set — the valid
// choices are scoped per request, never a global list.
func (s *TaskService) validateInput(ctx context.Context, user *model.User, input TaskInput) error {
	content := strings.TrimSpace(input.Content)
	if content == "" {
		return apperr.NewField("content", "Task content is required")
	}
	if len(content) > maxContentLength {
		return apperr.NewField("content", "Task content is too long")
	}
	if input.CategoryID != nil {
		if _, err := s.categoryRepo.FindByID(ctx, user.ID, *input.CategoryID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NewField("category", "Select a valid choice from your own categories")
			}
			return err
		}
	}
	return nil
}

// Create stores a new task. New tasks are always incomplete; the
// completion flag is only settable on edit. A zero due time defaults to
// the creation moment.
func (s *TaskService) Create(ctx context.Context, user *model.User, input TaskInput) (*model.Task, error) {
	if err := s.validateInput(ctx, user, input); err != nil {
		return nil, err
	}
	task := &model.Task{
		UserID:     user.ID,
		CategoryID: input.CategoryID,
		Content:    strings.TrimSpace(input.Content),
		TaskDue:    input.Due,
	}
	if err := s.taskRepo.Create(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

// Get fetches one of the user's tasks. Foreign and unknown ids return the
// same ErrNotFound.
func (s *TaskService) Get(ctx context.Context, user *model.User, taskID uint) (*model.Task, error) {
	task, err := s.taskRepo.FindByID(ctx, user.ID, taskID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return task, nil
}

// Update rewrites a task's editable fields, including the completion flag.
func (s *TaskService) Update(ctx context.Context, user *model.User, taskID uint, input TaskInput) (*model.Task, error) {
	task, err := s.Get(ctx, user, taskID)
	if err != nil {
		return nil, err
	}
	if err := s.validateInput(ctx, user, input); err != nil {
		return nil, err
	}
	task.Content = strings.TrimSpace(input.Content)
	task.CategoryID = input.CategoryID
	if !input.Due.IsZero() {
		task.TaskDue = input.Due
	}
	task.IsComplete = input.IsComplete
	if err := s.taskRepo.Save(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

// Delete removes one of the user's tasks.
func (s *TaskService) Delete(ctx context.Context, user *model.User, taskID uint) error {
	affected, err := s.taskRepo.Delete(ctx, user.ID, taskID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return apperr.ErrNotFound
	}
	return nil
}

// Overdue lists incomplete tasks due before today's date, earliest first.
func (s *TaskService) Overdue(ctx context.Context, user *model.User, now time.Time) ([]model.Task, error) {
	return s.taskRepo.ListOverdue(ctx, user.ID, now)
}

// DueToday lists incomplete tasks due on today's date.
func (s *TaskService) DueToday(ctx context.Context, user *model.User, now time.Time) ([]model.Task, error) {
	return s.taskRepo.ListDueToday(ctx, user.ID, now)
}

// Upcoming lists incomplete tasks due after today's date.
func (s *TaskService) Upcoming(ctx context.Context, user *model.User, now time.Time) ([]model.Task, error) {
	return s.taskRepo.ListUpcoming(ctx, user.ID, now)
}

// History lists completed tasks regardless of due date.
func (s *TaskService) History(ctx context.Context, user *model.User) ([]model.Task, error) {
	return s.taskRepo.ListCompleted(ctx, user.ID)
}

// ByCategory lists the user's incomplete tasks in one category.
func (s *TaskService) ByCategory(ctx context.Context, user *model.User, category *model.Category) ([]model.Task, error) {
	return s.taskRepo.ListByCategory(ctx, user.ID, category.ID)
}

// ApplyToSchedule handles a bulk selection from the dashboard, where the
// checkboxes mix overdue and due-today tasks. The selection is partitioned
// by current bucket and the action applies to the first non-empty
// partition only, in fixed precedence [overdue, due-today]. An empty
// selection yields a warning notice and no mutation.
func (s *TaskService) ApplyToSchedule(ctx context.Context, user *model.User, ids []uint, action BulkAction, now time.Time) (BulkResult, error) {
	if len(ids) == 0 {
		return BulkResult{Notice: noticeNothingChecked}, nil
	}

	overdue, err := s.taskRepo.OverdueIDs(ctx, user.ID, now, ids)
	if err != nil {
		return BulkResult{}, err
	}
	today, err := s.taskRepo.DueTodayIDs(ctx, user.ID, now, ids)
	if err != nil {
		return BulkResult{}, err
	}

	for _, partition := range [][]uint{overdue, today} {
		if len(partition) == 0 {
			continue
		}
		return s.apply(ctx, user, partition, action, now)
	}
	return BulkResult{}, nil
}

// ApplyToCategory handles a bulk selection made inside a single category
// view: the action applies to the selected incomplete tasks of that
// category, with no bucket partitioning.
func (s *TaskService) ApplyToCategory(ctx context.Context, user *model.User, category *model.Category, ids []uint, action BulkAction, now time.Time) (BulkResult, error) {
	if len(ids) == 0 {
		return BulkResult{Notice: noticeNothingChecked}, nil
	}
	members, err := s.taskRepo.CategoryMemberIDs(ctx, user.ID, category.ID, ids)
	if err != nil {
		return BulkResult{}, err
	}
	if len(members) == 0 {
		return BulkResult{}, nil
	}
	return s.apply(ctx, user, members, action, now)
}

func (s *TaskService) apply(ctx context.Context, user *model.User, ids []uint, action BulkAction, now time.Time) (BulkResult, error) {
	switch action {
	case ActionReschedule:
		updated, err := s.taskRepo.RescheduleAll(ctx, user.ID, ids, now)
		if err != nil {
			return BulkResult{}, err
		}
		return BulkResult{Updated: updated, Notice: "Rescheduled task(s) for today"}, nil
	case ActionComplete:
		updated, err := s.taskRepo.CompleteAll(ctx, user.ID, ids)
		if err != nil {
			return BulkResult{}, err
		}
		return BulkResult{Updated: updated, Notice: "Completed task(s)"}, nil
	default:
		return BulkResult{}, apperr.NewField("action", "Unknown bulk action")
	}
}
