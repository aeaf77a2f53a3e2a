package models

import "time"

// User represents the canonical identity entity. Credential signups get a
// random UUID id; OAuth identities use "<provider>-<providerAccountID>" so the
// same external identity always resolves to the same row.
type User struct {
	ID        string    `gorm:"column:id;primaryKey"`
	Email     string    `gorm:"column:email;not null;uniqueIndex:users_email_key"`
	Password  *string   `gorm:"column:password"`
	Name      string    `gorm:"column:name"`
	Image     string    `gorm:"column:image"`
	Provider  string    `gorm:"column:provider;not null;default:credentials"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}

// IsOAuth reports whether the row came from an OAuth provider. OAuth users
// never store a password.
func (u User) IsOAuth() bool {
	return u.Provider != "credentials"
}
