// Package workflow implements the escalation chain for leave requests.
//
// The chain is duration-gated: short leaves (working days <= 2) end at the
// warden, long leaves escalate through HOD and dean. Status, final approval
// and the next approver are always a pure function of the approval ledger
// plus the request's working days; Decide only appends to the ledger and
// re-projects.
package workflow

import (
	"errors"
	"time"

	"github.com/satyam1298/LeaveUs/models"
)

// ShortLeaveMaxDays is the largest number of working days for which the
// chain stops at the warden.
const ShortLeaveMaxDays = 2

var (
	ErrNotCurrentApprover = errors.New("role is not the current approver")
	ErrAlreadyFinalized   = errors.New("request already has a final decision")
)

var statusByRole = map[models.ApprovalRole]models.LeaveStatus{
	models.RoleAdvisor: models.StatusAdvisorApproved,
	models.RoleWarden:  models.StatusWardenApproved,
	models.RoleHOD:     models.StatusHODApproved,
	models.RoleDean:    models.StatusDeanApproved,
}

// RequiredChain returns the ordered roles a request with the given number
// of working days must pass through.
func RequiredChain(workingDays int) []models.ApprovalRole {
	if workingDays > ShortLeaveMaxDays {
		return []models.ApprovalRole{models.RoleAdvisor, models.RoleWarden, models.RoleHOD, models.RoleDean}
	}
	return []models.ApprovalRole{models.RoleAdvisor, models.RoleWarden}
}

// Projection is the derived workflow state of a request.
type Projection struct {
	Status        models.LeaveStatus
	NextApprover  models.ApprovalRole
	FinalApproval models.FinalApproval
}

// Reduce folds the approval ledger into the derived workflow fields.
// A rejection anywhere is absorbing; an approval by the last required role
// completes the chain.
func Reduce(ledger models.ApprovalLedger, workingDays int) Projection {
	chain := RequiredChain(workingDays)

	approved := 0
	for _, rec := range ledger {
		if rec.Decision == models.DecisionRejected {
			return Projection{
				Status:        models.StatusRejected,
				NextApprover:  models.RoleNone,
				FinalApproval: models.FinalRejected,
			}
		}
		approved++
	}

	if approved == 0 {
		return Projection{
			Status:        models.StatusPending,
			NextApprover:  chain[0],
			FinalApproval: models.FinalPending,
		}
	}

	last := ledger[approved-1].Role
	if approved >= len(chain) {
		return Projection{
			Status:        statusByRole[last],
			NextApprover:  models.RoleNone,
			FinalApproval: models.FinalApproved,
		}
	}
	return Projection{
		Status:        statusByRole[last],
		NextApprover:  chain[approved],
		FinalApproval: models.FinalPending,
	}
}

// Decide applies a single decision to the request in memory. It fails
// without touching the request when the request is already terminal or the
// acting role is not the one whose turn it is. On success the decision is
// appended to the ledger and the derived fields are re-projected.
func Decide(req *models.LeaveRequest, role models.ApprovalRole, approverID uint, decision models.Decision, now time.Time) error {
	if req.FinalApproval != models.FinalPending {
		return ErrAlreadyFinalized
	}
	if role != req.NextApproverRole {
		return ErrNotCurrentApprover
	}

	req.Approvals = append(req.Approvals, models.ApprovalRecord{
		ApproverID: approverID,
		Role:       role,
		Decision:   decision,
		Timestamp:  now,
	})

	proj := Reduce(req.Approvals, req.WorkingDays)
	req.Status = proj.Status
	req.NextApproverRole = proj.NextApprover
	req.FinalApproval = proj.FinalApproval
	return nil
}

// NewRequestState returns the workflow fields of a freshly submitted
// request.
func NewRequestState() Projection {
	return Projection{
		Status:        models.StatusPending,
		NextApprover:  models.RoleAdvisor,
		FinalApproval: models.FinalPending,
	}
}

// ValidRole reports whether s names one of the approving roles.
func ValidRole(s models.ApprovalRole) bool {
	_, ok := statusByRole[s]
	return ok
}
