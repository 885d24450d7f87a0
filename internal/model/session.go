package model

import "time"

// Session is a server-side login session addressed by an opaque token
// carried in a cookie. Expired rows are swept periodically.
type Session struct {
	Token     string    `gorm:"primaryKey;size:36" json:"-"`
	UserID    uint      `gorm:"index" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `gorm:"index" json:"expires_at"`
}
