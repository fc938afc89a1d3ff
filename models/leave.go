package models

import "time"

type LeaveType string

const (
	LeaveMedical LeaveType = "medical"
	LeaveGeneral LeaveType = "general"
	LeaveDuty    LeaveType = "duty"
)

type LeaveStatus string

const (
	StatusPending         LeaveStatus = "Pending"
	StatusAdvisorApproved LeaveStatus = "AdvisorApproved"
	StatusWardenApproved  LeaveStatus = "WardenApproved"
	StatusHODApproved     LeaveStatus = "HODApproved"
	StatusDeanApproved    LeaveStatus = "DeanApproved"
	StatusRejected        LeaveStatus = "Rejected"
)

type ApprovalRole string

const (
	RoleAdvisor ApprovalRole = "Advisor"
	RoleWarden  ApprovalRole = "Warden"
	RoleHOD     ApprovalRole = "HOD"
	RoleDean    ApprovalRole = "Dean"
	RoleNone    ApprovalRole = "" // terminal, nobody's turn
)

type Decision string

const (
	DecisionApproved Decision = "Approved"
	DecisionRejected Decision = "Rejected"
)

type FinalApproval string

const (
	FinalPending  FinalApproval = "Pending"
	FinalApproved FinalApproval = "Approved"
	FinalRejected FinalApproval = "Rejected"
)

// ApprovalRecord is one entry of the append-only decision ledger.
// Insertion order is escalation order.
type ApprovalRecord struct {
	ApproverID uint         `json:"approver_id"`
	Role       ApprovalRole `json:"role"`
	Decision   Decision     `json:"decision"`
	Timestamp  time.Time    `json:"timestamp"`
}

type ApprovalLedger []ApprovalRecord

type LeaveRequest struct {
	ID        uint   `json:"id" gorm:"primaryKey"`
	RefCode   string `json:"ref_code" gorm:"size:36;uniqueIndex;not null"`
	StudentID uint   `json:"student_id" gorm:"index;not null"`
	HostelID  uint   `json:"hostel_id" gorm:"index;not null"`
	RollNo    string `json:"roll_no" gorm:"size:20"`

	StartDate   string    `json:"start_date" gorm:"size:10;not null"` // YYYY-MM-DD
	EndDate     string    `json:"end_date" gorm:"size:10;not null"`   // YYYY-MM-DD
	Reason      string    `json:"reason" gorm:"type:text"`
	LeaveType   LeaveType `json:"leave_type" gorm:"size:20;not null"`
	WorkingDays int       `json:"working_days" gorm:"not null"` // supplied by the requester, not derived

	// Derived workflow fields. Recomputed from Approvals by the workflow
	// package on every transition, never hand-edited.
	Status           LeaveStatus   `json:"status" gorm:"size:20;not null;index"`
	FinalApproval    FinalApproval `json:"final_approval" gorm:"size:10;not null"`
	NextApproverRole ApprovalRole  `json:"next_approver_role" gorm:"size:10"`

	Approvals ApprovalLedger `json:"approvals" gorm:"type:jsonb;serializer:json"`

	Student *Student `json:"student,omitempty" gorm:"foreignKey:StudentID"`
	Hostel  *Hostel  `json:"hostel,omitempty" gorm:"foreignKey:HostelID"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
