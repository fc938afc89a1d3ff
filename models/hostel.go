package models

import "time"

// A hostel has one chief warden plus any number of additional wardens,
// all of them Faculty rows (join table hostel_wardens).
type Hostel struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	Name          string    `json:"name" gorm:"size:60;uniqueIndex;not null"`
	ChiefWardenID uint      `json:"chief_warden_id" gorm:"index"`
	Wardens       []Faculty `json:"wardens,omitempty" gorm:"many2many:hostel_wardens"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
