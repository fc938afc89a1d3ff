// Package queue plans the work-queue read: which leave requests are
// currently actionable by a given faculty member.
package queue

import (
	"gorm.io/gorm/clause"

	"github.com/satyam1298/LeaveUs/models"
	"github.com/satyam1298/LeaveUs/scope"
	"github.com/satyam1298/LeaveUs/workflow"
)

// Predicate selects the requests one of the principal's roles can act on.
// A nil ID slice means the role applies no ID filter (dean); an empty
// predicate is never emitted.
type Predicate struct {
	Status        models.LeaveStatus
	StudentIDs    []uint
	HostelIDs     []uint
	LongLeaveOnly bool // working days beyond the short-leave cutoff
}

// Build derives the role predicates for a faculty member from their
// resolved scope. Predicates are combined with OR so a multi-role
// principal sees the union of their queues in one read.
func Build(f *models.Faculty, s scope.Scope) []Predicate {
	var preds []Predicate

	if len(s.AdviseeIDs) > 0 {
		preds = append(preds, Predicate{
			Status:     models.StatusPending,
			StudentIDs: s.AdviseeIDs,
		})
	}
	if len(s.HostelIDs) > 0 {
		preds = append(preds, Predicate{
			Status:    models.StatusAdvisorApproved,
			HostelIDs: s.HostelIDs,
		})
	}
	if f.IsHOD && len(s.DepartmentStudentIDs) > 0 {
		preds = append(preds, Predicate{
			Status:        models.StatusWardenApproved,
			StudentIDs:    s.DepartmentStudentIDs,
			LongLeaveOnly: true,
		})
	}
	if s.DeanAll {
		preds = append(preds, Predicate{
			Status:        models.StatusHODApproved,
			LongLeaveOnly: true,
		})
	}
	return preds
}

// Where renders the predicates as one OR-of-ANDs condition. Columns are
// table qualified because the queue read joins students and hostels.
func Where(preds []Predicate) clause.Expression {
	groups := make([]clause.Expression, 0, len(preds))
	for _, p := range preds {
		groups = append(groups, p.expr())
	}
	return clause.Or(groups...)
}

func (p Predicate) expr() clause.Expression {
	exprs := []clause.Expression{
		clause.Eq{Column: "leave_requests.status", Value: p.Status},
	}
	if len(p.StudentIDs) > 0 {
		exprs = append(exprs, clause.IN{Column: "leave_requests.student_id", Values: toAny(p.StudentIDs)})
	}
	if len(p.HostelIDs) > 0 {
		exprs = append(exprs, clause.IN{Column: "leave_requests.hostel_id", Values: toAny(p.HostelIDs)})
	}
	if p.LongLeaveOnly {
		exprs = append(exprs, clause.Gt{Column: "leave_requests.working_days", Value: workflow.ShortLeaveMaxDays})
	}
	return clause.And(exprs...)
}

func toAny(ids []uint) []interface{} {
	out := make([]interface{}, len(ids))
	for i, id := range ids {
		out[i] = id
	}
	return out
}
