package model

import (
	"time"

	"gorm.io/gorm"
)

// Task is a single todo item. It always belongs to one user and may sit in
// one of that user's categories; deleting the category orphans the task
// (category reference cleared) rather than deleting it.
type Task struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	UserID       uint      `gorm:"index" json:"user_id"`
	CategoryID   *uint     `gorm:"index" json:"category_id,omitempty"`
	Content      string    `gorm:"size:150" json:"content"`
	IsComplete   bool      `gorm:"default:false" json:"is_complete"`
	TaskDue      time.Time `json:"task_due"`
	TaskModified time.Time `gorm:"autoUpdateTime" json:"task_modified"`
	CreatedAt    time.Time `json:"created_at"`
}

// BeforeCreate defaults the due time to the moment of creation when the
// caller left it unset.
func (t *Task) BeforeCreate(*gorm.DB) error {
	if t.TaskDue.IsZero() {
		t.TaskDue = time.Now()
	}
	return nil
}
