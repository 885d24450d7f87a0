package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"taskdesk/internal/model"
)

// TaskRepository handles CRUD and the due-status queries for tasks. Every
// method is scoped to one user; nothing here can see another user's rows.
type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// dayBounds returns the start of now's calendar day and the start of the
// next one, in now's location. Bucketing compares full timestamps against
// these bounds, so a task due 23:59 today stays "due today" until rollover.
func dayBounds(now time.Time) (start, end time.Time) {
	year, month, day := now.Date()
	start = time.Date(year, month, day, 0, 0, 0, 0, now.Location())
	return start, start.AddDate(0, 0, 1)
}

func (r *TaskRepository) Create(ctx context.Context, task *model.Task) error {
	if err := r.db.WithContext(ctx).Create(task).Error; err != nil {
		return fmt.Errorf("create task: %w", err)
	}
	return nil
}

func (r *TaskRepository) Save(ctx context.Context, task *model.Task) error {
	if err := r.db.WithContext(ctx).Save(task).Error; err != nil {
		return fmt.Errorf("save task: %w", err)
	}
	return nil
}

func (r *TaskRepository) FindByID(ctx context.Context, userID, taskID uint) (*model.Task, error) {
	var task model.Task
	if err := r.db.WithContext(ctx).Where("user_id = ? AND id = ?", userID, taskID).First(&task).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

// Delete removes a task for the given user. Returns rows affected so the
// caller can distinguish a missing or foreign id.
func (r *TaskRepository) Delete(ctx context.Context, userID, taskID uint) (int64, error) {
	res := r.db.WithContext(ctx).Where("user_id = ? AND id = ?", userID, taskID).Delete(&model.Task{})
	if res.Error != nil {
		return 0, fmt.Errorf("delete task: %w", res.Error)
	}
	return res.RowsAffected, nil
}

// ListOverdue returns incomplete tasks due before today, earliest first.
func (r *TaskRepository) ListOverdue(ctx context.Context, userID uint, now time.Time) ([]model.Task, error) {
	start, _ := dayBounds(now)
	var tasks []model.Task
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND is_complete = ? AND task_due < ?", userID, false, start).
		Order("task_due ASC").
		Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

// ListDueToday returns incomplete tasks due on today's calendar date.
func (r *TaskRepository) ListDueToday(ctx context.Context, userID uint, now time.Time) ([]model.Task, error) {
	start, end := dayBounds(now)
	var tasks []model.Task
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND is_complete = ? AND task_due >= ? AND task_due < ?", userID, false, start, end).
		Order("task_due ASC").
		Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

// ListUpcoming returns incomplete tasks due after today.
func (r *TaskRepository) ListUpcoming(ctx context.Context, userID uint, now time.Time) ([]model.Task, error) {
	_, end := dayBounds(now)
	var tasks []model.Task
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND is_complete = ? AND task_due >= ?", userID, false, end).
		Order("task_due ASC").
		Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

// ListCompleted returns all completed tasks regardless of due date.
func (r *TaskRepository) ListCompleted(ctx context.Context, userID uint) ([]model.Task, error) {
	var tasks []model.Task
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND is_complete = ?", userID, true).
		Order("task_due ASC").
		Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

// ListByCategory returns incomplete tasks in one category regardless of
// due date.
func (r *TaskRepository) ListByCategory(ctx context.Context, userID, categoryID uint) ([]model.Task, error) {
	var tasks []model.Task
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND is_complete = ? AND category_id = ?", userID, false, categoryID).
		Order("task_due ASC").
		Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

// OverdueIDs narrows a selection to the ids currently in the overdue
// bucket.
func (r *TaskRepository) OverdueIDs(ctx context.Context, userID uint, now time.Time, ids []uint) ([]uint, error) {
	start, _ := dayBounds(now)
	var matched []uint
	if err := r.db.WithContext(ctx).Model(&model.Task{}).
		Where("user_id = ? AND is_complete = ? AND task_due < ? AND id IN ?", userID, false, start, ids).
		Pluck("id", &matched).Error; err != nil {
		return nil, fmt.Errorf("filter overdue ids: %w", err)
	}
	return matched, nil
}

// DueTodayIDs narrows a selection to the ids currently due today.
func (r *TaskRepository) DueTodayIDs(ctx context.Context, userID uint, now time.Time, ids []uint) ([]uint, error) {
	start, end := dayBounds(now)
	var matched []uint
	if err := r.db.WithContext(ctx).Model(&model.Task{}).
		Where("user_id = ? AND is_complete = ? AND task_due >= ? AND task_due < ? AND id IN ?", userID, false, start, end, ids).
		Pluck("id", &matched).Error; err != nil {
		return nil, fmt.Errorf("filter due-today ids: %w", err)
	}
	return matched, nil
}

// CategoryMemberIDs narrows a selection to incomplete tasks of one
// category.
func (r *TaskRepository) CategoryMemberIDs(ctx context.Context, userID, categoryID uint, ids []uint) ([]uint, error) {
	var matched []uint
	if err := r.db.WithContext(ctx).Model(&model.Task{}).
		Where("user_id = ? AND is_complete = ? AND category_id = ? AND id IN ?", userID, false, categoryID, ids).
		Pluck("id", &matched).Error; err != nil {
		return nil, fmt.Errorf("filter category ids: %w", err)
	}
	return matched, nil
}

// RescheduleAll moves the due time of the selected tasks to now in one
// transactional update: all selected rows change or none do.
func (r *TaskRepository) RescheduleAll(ctx context.Context, userID uint, ids []uint, now time.Time) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	var affected int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&model.Task{}).
			Where("user_id = ? AND id IN ?", userID, ids).
			Update("task_due", now)
		if res.Error != nil {
			return fmt.Errorf("reschedule tasks: %w", res.Error)
		}
		affected = res.RowsAffected
		return nil
	})
	return affected, err
}

// CompleteAll marks the selected tasks complete in one transactional
// update.
func (r *TaskRepository) CompleteAll(ctx context.Context, userID uint, ids []uint) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	var affected int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&model.Task{}).
			Where("user_id = ? AND id IN ?", userID, ids).
			Update("is_complete", true)
		if res.Error != nil {
			return fmt.Errorf("complete tasks: %w", res.Error)
		}
		affected = res.RowsAffected
		return nil
	})
	return affected, err
}
