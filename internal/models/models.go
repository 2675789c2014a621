package models

import (
	"fmt"
	"time"
)

// User is the single entity managed by this tool.
//
// Password is stored as plain text. This is an acknowledged weakness kept so
// that records round-trip verbatim through the admin commands; do not point
// this tool at a database holding real credentials.
type User struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Username  string    `gorm:"uniqueIndex;not null" json:"username"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"not null" json:"-"`
}

func (u *User) String() string {
	return fmt.Sprintf("User(id=%d, username=%s, email=%s)", u.ID, u.Username, u.Email)
}
