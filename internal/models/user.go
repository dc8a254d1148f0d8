package models

import "time"

// User is the owner reference for estimate records. Registration, login and
// OTP verification live in a separate service; this table only anchors
// ownership and the token subject.
type User struct {
	ID        string    `gorm:"primaryKey;type:text"`
	Name      string    `gorm:"type:text;not null"`
	Email     string    `gorm:"type:text;not null;uniqueIndex"`
	Status    string    `gorm:"type:varchar(20);not null;default:Active;index"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (User) TableName() string {
	return "users"
}
