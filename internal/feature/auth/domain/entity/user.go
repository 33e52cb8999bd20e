// Package entity defines the domain entities for the auth feature.
package entity

import "time"

// User is a registered account. The Password field always holds a bcrypt
// hash; plaintext never reaches the persistence layer.
type User struct {
	ID        uint   `gorm:"primaryKey"`
	Email     string `gorm:"uniqueIndex;size:255;not null"`
	Password  string `gorm:"size:255;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
