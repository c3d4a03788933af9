package models

import "time"

// UserModel represents the database model for User
type UserModel struct {
	ID            uint      `gorm:"primaryKey;autoIncrement"`
	Name          string    `gorm:"type:varchar(255);not null"`
	ContactNumber string    `gorm:"type:varchar(20);not null"`
	Email         string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	PasswordHash  string    `gorm:"type:varchar(255);not null"`
	Status        string    `gorm:"type:varchar(20);not null;default:'pending';index"`
	Role          string    `gorm:"type:varchar(20);not null;default:'user';index"`
	CreatedAt     time.Time `gorm:"not null"`
	UpdatedAt     time.Time `gorm:"not null"`
}

func (UserModel) TableName() string {
	return "users"
}
