package handlers

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/satyam1298/LeaveUs/models"
	"github.com/satyam1298/LeaveUs/queue"
	"github.com/satyam1298/LeaveUs/scope"
	"github.com/satyam1298/LeaveUs/workflow"
)

// newDryRunDB builds a postgres-dialect gorm handle that renders SQL
// without ever touching a server.
func newDryRunDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(
		postgres.Open("host=localhost user=test dbname=test port=5432 sslmode=disable"),
		&gorm.Config{
			DryRun:                 true,
			DisableAutomaticPing:   true,
			SkipDefaultTransaction: true,
		},
	)
	require.NoError(t, err)
	return db
}

func TestDecisionErrorCode(t *testing.T) {
	status, code := decisionErrorCode(workflow.ErrAlreadyFinalized)
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "ALREADY_DECIDED", code)

	status, code = decisionErrorCode(workflow.ErrNotCurrentApprover)
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "NOT_YOUR_TURN", code)

	status, code = decisionErrorCode(errors.New("boom"))
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "boom", code)
}

func TestDecisionUpdateIsGuarded(t *testing.T) {
	db := newDryRunDB(t)

	req := &models.LeaveRequest{
		ID:               1,
		WorkingDays:      1,
		Status:           models.StatusAdvisorApproved,
		FinalApproval:    models.FinalPending,
		NextApproverRole: models.RoleWarden,
		Approvals: models.ApprovalLedger{
			{ApproverID: 101, Role: models.RoleAdvisor, Decision: models.DecisionApproved},
		},
	}

	stmt := decisionUpdate(db, req, models.StatusPending).Statement
	sql := stmt.SQL.String()

	// the write must only land when the row is still in its
	// pre-transition, undecided state
	assert.Contains(t, sql, "WHERE id = $")
	assert.Contains(t, sql, "AND status = $")
	assert.Contains(t, sql, "AND final_approval = $")
	assert.Contains(t, stmt.Vars, models.StatusPending)
	assert.Contains(t, stmt.Vars, models.FinalPending)
	// and it carries the re-projected status
	assert.Contains(t, stmt.Vars, models.StatusAdvisorApproved)
}

func TestDecisionWriteCode(t *testing.T) {
	// zero matched rows means another decision got there first
	status, code := decisionWriteCode(nil, 0)
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "CONCURRENT_MODIFICATION", code)

	status, code = decisionWriteCode(nil, 1)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "", code)

	status, code = decisionWriteCode(errors.New("connection reset"), 0)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "connection reset", code)
}

func TestQueueQueryUsesInnerJoins(t *testing.T) {
	db := newDryRunDB(t)

	f := &models.Faculty{ID: 1, IsDEAN: true}
	preds := queue.Build(f, scope.Scope{AdviseeIDs: []uint{1}, DeanAll: true})
	require.NotEmpty(t, preds)

	var rows []models.LeaveRequest
	stmt := queueQuery(db, preds).Find(&rows).Statement
	sql := stmt.SQL.String()

	// requests whose student or hostel is gone must drop out of the
	// result, so both joins have to be inner
	assert.Contains(t, sql, `INNER JOIN "students" "Student"`)
	assert.Contains(t, sql, `INNER JOIN "hostels" "Hostel"`)
	assert.NotContains(t, sql, "LEFT JOIN")
	assert.Contains(t, sql, "working_days")
}
