package models

import "time"

// Review is read-only after creation; there is no edit or delete path.
type Review struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductID uint      `gorm:"not null;index" json:"productId"`
	UserID    uint      `gorm:"not null" json:"userId"`
	UserName  string    `gorm:"not null" json:"userName"` // Display name cached at creation time
	Rating    int       `gorm:"not null" json:"rating"`   // 1..5
	Comment   string    `gorm:"not null" json:"comment"`
	CreatedAt time.Time `json:"createdAt"`
}
