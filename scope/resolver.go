package scope

import "github.com/satyam1298/LeaveUs/models"

// StudentDirectory is the read-only student lookup the resolver needs.
type StudentDirectory interface {
	AdviseeIDs(facultyID uint) ([]uint, error)
	IDsByRollPattern(pattern string) ([]uint, error)
}

// HostelDirectory is the read-only hostel lookup the resolver needs.
type HostelDirectory interface {
	// WardenedHostelIDs returns hostels where the faculty is chief warden
	// or appears in the warden set.
	WardenedHostelIDs(facultyID uint) ([]uint, error)
}

// Scope is the authority of one faculty member: the students they advise,
// the hostels they warden, the students of their department if they are
// HOD, and whether they see everything as dean.
type Scope struct {
	AdviseeIDs           []uint
	HostelIDs            []uint
	DepartmentStudentIDs []uint
	DeanAll              bool
}

type Resolver struct {
	Students StudentDirectory
	Hostels  HostelDirectory
}

func NewResolver(students StudentDirectory, hostels HostelDirectory) *Resolver {
	return &Resolver{Students: students, Hostels: hostels}
}

// Resolve recomputes the faculty's scope from the relationship data. An
// HOD whose department is missing from the code table is an error: a
// silent empty match would quietly empty their queue.
func (r *Resolver) Resolve(f *models.Faculty) (Scope, error) {
	var s Scope

	advisees, err := r.Students.AdviseeIDs(f.ID)
	if err != nil {
		return Scope{}, err
	}
	s.AdviseeIDs = advisees

	hostels, err := r.Hostels.WardenedHostelIDs(f.ID)
	if err != nil {
		return Scope{}, err
	}
	s.HostelIDs = hostels

	if f.IsHOD {
		pattern, err := RollPattern(f.Department)
		if err != nil {
			return Scope{}, err
		}
		ids, err := r.Students.IDsByRollPattern(pattern)
		if err != nil {
			return Scope{}, err
		}
		s.DepartmentStudentIDs = ids
	}

	s.DeanAll = f.IsDEAN
	return s, nil
}
