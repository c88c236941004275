package models

import "time"

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type User struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Username  string    `gorm:"unique;not null" json:"username"`
	Password  string    `gorm:"not null" json:"-"` // bcrypt hash, never serialized
	Email     string    `gorm:"unique;not null" json:"email"`
	Role      string    `gorm:"type:VARCHAR(10);default:'user';not null" json:"role"`
	CreatedAt time.Time `json:"-"`
}

func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
