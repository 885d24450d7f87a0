package model

import "time"

// User is an account identified by email. Categories, tasks and sessions
// all hang off it and are removed together with it.
type User struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Email        string `gorm:"uniqueIndex;size:254" json:"email"`
	PasswordHash string `json:"-"`
	Age          *int   `json:"age,omitempty"`
	IsActive     bool   `gorm:"default:true" json:"is_active"`
	IsStaff      bool   `gorm:"default:false" json:"is_staff"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	Categories []Category `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Tasks      []Task     `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Sessions   []Session  `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}
