package scope

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/satyam1298/LeaveUs/models"
)

type fakeStudents struct {
	advisees  map[uint][]uint
	byPattern map[string][]uint
}

func (f fakeStudents) AdviseeIDs(facultyID uint) ([]uint, error) {
	return f.advisees[facultyID], nil
}

func (f fakeStudents) IDsByRollPattern(pattern string) ([]uint, error) {
	return f.byPattern[pattern], nil
}

type fakeHostels struct {
	wardened map[uint][]uint
}

func (f fakeHostels) WardenedHostelIDs(facultyID uint) ([]uint, error) {
	return f.wardened[facultyID], nil
}

func TestResolveAdvisorAndWarden(t *testing.T) {
	r := NewResolver(
		fakeStudents{advisees: map[uint][]uint{7: {1, 2, 3}}},
		fakeHostels{wardened: map[uint][]uint{7: {40}}},
	)

	s, err := r.Resolve(&models.Faculty{ID: 7})
	require.NoError(t, err)
	assert.Equal(t, []uint{1, 2, 3}, s.AdviseeIDs)
	assert.Equal(t, []uint{40}, s.HostelIDs)
	assert.Empty(t, s.DepartmentStudentIDs)
	assert.False(t, s.DeanAll)
}

func TestResolveHODDepartmentStudents(t *testing.T) {
	csePattern, err := RollPattern("CSE")
	require.NoError(t, err)

	r := NewResolver(
		fakeStudents{byPattern: map[string][]uint{csePattern: {11, 12}}},
		fakeHostels{},
	)

	s, err := r.Resolve(&models.Faculty{ID: 8, IsHOD: true, Department: "CSE"})
	require.NoError(t, err)
	assert.Equal(t, []uint{11, 12}, s.DepartmentStudentIDs)
}

func TestResolveHODUnknownDepartmentFails(t *testing.T) {
	r := NewResolver(fakeStudents{}, fakeHostels{})

	_, err := r.Resolve(&models.Faculty{ID: 9, IsHOD: true, Department: "MBA"})
	assert.ErrorIs(t, err, ErrUnknownDepartment)
}

func TestResolveUnmappedDepartmentHarmlessForNonHOD(t *testing.T) {
	// the code table only matters for HODs
	r := NewResolver(fakeStudents{}, fakeHostels{})

	s, err := r.Resolve(&models.Faculty{ID: 10, Department: "MBA"})
	require.NoError(t, err)
	assert.Empty(t, s.DepartmentStudentIDs)
}

func TestResolveDeanFlag(t *testing.T) {
	r := NewResolver(fakeStudents{}, fakeHostels{})

	s, err := r.Resolve(&models.Faculty{ID: 11, IsDEAN: true})
	require.NoError(t, err)
	assert.True(t, s.DeanAll)
	assert.Empty(t, s.AdviseeIDs)
	assert.Empty(t, s.HostelIDs)
}
