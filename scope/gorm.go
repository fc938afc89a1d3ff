package scope

import (
	"gorm.io/gorm"

	"github.com/satyam1298/LeaveUs/models"
)

// GormStudentDirectory answers student lookups against the database.
type GormStudentDirectory struct {
	DB *gorm.DB
}

func (d GormStudentDirectory) AdviseeIDs(facultyID uint) ([]uint, error) {
	var ids []uint
	err := d.DB.Model(&models.Student{}).
		Where("faculty_advisor_id = ?", facultyID).
		Pluck("id", &ids).Error
	return ids, err
}

func (d GormStudentDirectory) IDsByRollPattern(pattern string) ([]uint, error) {
	var ids []uint
	// Postgres regex match; the pattern comes from RollPattern and is
	// anchored on both ends.
	err := d.DB.Model(&models.Student{}).
		Where("roll_no ~ ?", pattern).
		Pluck("id", &ids).Error
	return ids, err
}

// GormHostelDirectory answers hostel lookups against the database.
type GormHostelDirectory struct {
	DB *gorm.DB
}

func (d GormHostelDirectory) WardenedHostelIDs(facultyID uint) ([]uint, error) {
	var ids []uint
	err := d.DB.Model(&models.Hostel{}).
		Joins("LEFT JOIN hostel_wardens hw ON hw.hostel_id = hostels.id").
		Where("hostels.chief_warden_id = ? OR hw.faculty_id = ?", facultyID, facultyID).
		Distinct().
		Pluck("hostels.id", &ids).Error
	return ids, err
}
