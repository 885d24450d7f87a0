package model

import (
	"time"

	"github.com/gosimple/slug"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gorm.io/gorm"
)

// Category groups a user's tasks under a named area (work, school, etc.).
// The (user, slug) pair is unique: two categories of one user can never
// collapse to the same slug.
type Category struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	UserID    uint   `gorm:"index:idx_user_slug,unique" json:"user_id"`
	Content   string `gorm:"size:150" json:"content"`
	Slug      string `gorm:"index:idx_user_slug,unique;size:80" json:"slug"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Tasks []Task `gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL" json:"-"`
}

// BeforeSave normalizes the display content to title case and derives the
// slug from it when none is set yet. A slug never regenerates afterwards;
// renaming a category keeps its original slug.
func (c *Category) BeforeSave(*gorm.DB) error {
	c.Content = cases.Title(language.English).String(c.Content)
	if c.Slug == "" {
		c.Slug = slug.Make(c.Content)
	}
	return nil
}
