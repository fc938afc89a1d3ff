package models

import "time"

type Faculty struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Name         string    `json:"name" gorm:"size:120;not null"`
	Email        string    `json:"email" gorm:"size:50;uniqueIndex;not null"`
	Phone        string    `json:"phone" gorm:"size:15"`
	PasswordHash string    `json:"-" gorm:"not null"`
	Department   string    `json:"department" gorm:"size:10"` // CSE | ECE | CSY | CD
	IsHOD        bool      `json:"is_hod" gorm:"default:false"`
	IsDEAN       bool      `json:"is_dean" gorm:"default:false"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
