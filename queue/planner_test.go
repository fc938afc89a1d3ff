package queue

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/satyam1298/LeaveUs/models"
	"github.com/satyam1298/LeaveUs/scope"
)

func TestBuildAdvisorOnly(t *testing.T) {
	f := &models.Faculty{ID: 1}
	preds := Build(f, scope.Scope{AdviseeIDs: []uint{1, 2}})

	require.Len(t, preds, 1)
	assert.Equal(t, models.StatusPending, preds[0].Status)
	assert.Equal(t, []uint{1, 2}, preds[0].StudentIDs)
	assert.Empty(t, preds[0].HostelIDs)
	assert.False(t, preds[0].LongLeaveOnly)
}

func TestBuildWardenOnly(t *testing.T) {
	f := &models.Faculty{ID: 2}
	preds := Build(f, scope.Scope{HostelIDs: []uint{40, 41}})

	require.Len(t, preds, 1)
	assert.Equal(t, models.StatusAdvisorApproved, preds[0].Status)
	assert.Equal(t, []uint{40, 41}, preds[0].HostelIDs)
}

func TestBuildMultiRolePrincipal(t *testing.T) {
	// advisor + warden + HOD + dean on one principal: one predicate per
	// role, combined with OR by Where
	f := &models.Faculty{ID: 3, IsHOD: true, IsDEAN: true, Department: "CSE"}
	s := scope.Scope{
		AdviseeIDs:           []uint{1},
		HostelIDs:            []uint{40},
		DepartmentStudentIDs: []uint{1, 5, 6},
		DeanAll:              true,
	}
	preds := Build(f, s)
	require.Len(t, preds, 4)

	assert.Equal(t, models.StatusPending, preds[0].Status)
	assert.Equal(t, models.StatusAdvisorApproved, preds[1].Status)

	assert.Equal(t, models.StatusWardenApproved, preds[2].Status)
	assert.Equal(t, []uint{1, 5, 6}, preds[2].StudentIDs)
	assert.True(t, preds[2].LongLeaveOnly)

	assert.Equal(t, models.StatusHODApproved, preds[3].Status)
	assert.Empty(t, preds[3].StudentIDs)
	assert.Empty(t, preds[3].HostelIDs)
	assert.True(t, preds[3].LongLeaveOnly)
}

func TestBuildSkipsEmptySets(t *testing.T) {
	// no advisees, no hostels, HOD flag but an empty department: no
	// predicate should be emitted, so the caller can short-circuit to an
	// empty queue
	f := &models.Faculty{ID: 4, IsHOD: true, Department: "CSE"}
	preds := Build(f, scope.Scope{})
	assert.Empty(t, preds)
}

func TestBuildDeanNeedsNoIDFilter(t *testing.T) {
	f := &models.Faculty{ID: 5, IsDEAN: true}
	preds := Build(f, scope.Scope{DeanAll: true})

	require.Len(t, preds, 1)
	assert.Equal(t, models.StatusHODApproved, preds[0].Status)
	assert.Nil(t, preds[0].StudentIDs)
	assert.Nil(t, preds[0].HostelIDs)
	assert.True(t, preds[0].LongLeaveOnly)
}

func TestBuildDepartmentIsolation(t *testing.T) {
	// the HOD predicate carries only that department's student IDs, so a
	// different department's HOD can never select the request
	cseHOD := &models.Faculty{ID: 6, IsHOD: true, Department: "CSE"}
	eceHOD := &models.Faculty{ID: 7, IsHOD: true, Department: "ECE"}

	csePreds := Build(cseHOD, scope.Scope{DepartmentStudentIDs: []uint{100}})
	ecePreds := Build(eceHOD, scope.Scope{DepartmentStudentIDs: []uint{200}})

	require.Len(t, csePreds, 1)
	require.Len(t, ecePreds, 1)
	assert.NotContains(t, ecePreds[0].StudentIDs, uint(100))
	assert.Contains(t, csePreds[0].StudentIDs, uint(100))
}
