package models

import "time"

type Student struct {
	ID               uint      `json:"id" gorm:"primaryKey"`
	RollNo           string    `json:"roll_no" gorm:"size:20;uniqueIndex;not null"` // e.g. 2022BCS0041
	Name             string    `json:"name" gorm:"size:120;not null"`
	Email            string    `json:"email" gorm:"size:50"`
	Phone            string    `json:"phone" gorm:"size:15"`
	FacultyAdvisorID uint      `json:"faculty_advisor_id" gorm:"index"` // back-reference to Faculty
	HostelID         uint      `json:"hostel_id" gorm:"index"`
	Room             string    `json:"room" gorm:"size:10"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}
