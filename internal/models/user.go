package models

import (
	"time"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	FirstName string    `gorm:"size:100;not null" json:"first_name"`
	LastName  string    `gorm:"size:100;not null" json:"last_name"`
	Contact   string    `gorm:"size:50" json:"contact"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	Bio       string    `gorm:"size:200" json:"bio"`
	UserName  string    `gorm:"uniqueIndex;not null" json:"user_name"`
	Role      string    `gorm:"size:20;default:'user';not null" json:"role"` // user, admin
	CreatedAt time.Time `json:"created_at"`
	// No UpdatedAt: profile fields are written once at registration in this
	// client, role changes go through the admin path only.
}

func (User) TableName() string {
	return "user_info"
}

// DisplayName is what the shell shows next to posts and comments.
func (u *User) DisplayName() string {
	if u.FirstName == "" && u.LastName == "" {
		return u.UserName
	}
	return u.FirstName + " " + u.LastName
}
