package models

import (
	"time"
)

// Account is a registered user of the site. The username doubles as the
// primary key and is immutable after registration.
type Account struct {
	Username  string    `json:"username" gorm:"primaryKey;size:100"`
	Email     string    `json:"email" gorm:"uniqueIndex;not null"`
	Password  string    `json:"-" gorm:"not null"` // bcrypt hash, never the plaintext
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
