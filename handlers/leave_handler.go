package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/satyam1298/LeaveUs/database"
	"github.com/satyam1298/LeaveUs/models"
	"github.com/satyam1298/LeaveUs/queue"
	"github.com/satyam1298/LeaveUs/scope"
	"github.com/satyam1298/LeaveUs/workflow"
)

type LeaveHandler struct{}

func NewLeaveHandler() *LeaveHandler { return &LeaveHandler{} }

type leaveCreatePayload struct {
	StudentID   uint   `json:"student_id" validate:"required"`
	HostelID    uint   `json:"hostel_id" validate:"required"`
	StartDate   string `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate     string `json:"end_date" validate:"required,datetime=2006-01-02"`
	Reason      string `json:"reason" validate:"required,min=3,max=500"`
	LeaveType   string `json:"leave_type" validate:"required,oneof=medical general duty"`
	WorkingDays int    `json:"working_days" validate:"required,min=1"`
}

type decisionPayload struct {
	Role     string `json:"role" validate:"required,oneof=Advisor Warden HOD Dean"`
	Decision string `json:"decision" validate:"required,oneof=Approved Rejected"`
}

// POST /leaves
func (h *LeaveHandler) Create(c echo.Context) error {
	var p leaveCreatePayload
	if err := c.Bind(&p); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "INVALID_PAYLOAD"})
	}
	if err := validate.Struct(&p); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "VALIDATION_FAILED", "detail": err.Error()})
	}
	// ISO dates compare lexically
	if p.EndDate < p.StartDate {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "DATE_RANGE_INVALID"})
	}

	var student models.Student
	if err := database.DB.First(&student, p.StudentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, map[string]any{"error": "STUDENT_NOT_FOUND"})
		}
		return c.JSON(http.StatusBadRequest, map[string]any{"error": err.Error()})
	}
	var hostel models.Hostel
	if err := database.DB.First(&hostel, p.HostelID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, map[string]any{"error": "HOSTEL_NOT_FOUND"})
		}
		return c.JSON(http.StatusBadRequest, map[string]any{"error": err.Error()})
	}

	state := workflow.NewRequestState()
	req := models.LeaveRequest{
		RefCode:          uuid.NewString(),
		StudentID:        student.ID,
		HostelID:         hostel.ID,
		RollNo:           student.RollNo,
		StartDate:        p.StartDate,
		EndDate:          p.EndDate,
		Reason:           p.Reason,
		LeaveType:        models.LeaveType(p.LeaveType),
		WorkingDays:      p.WorkingDays,
		Status:           state.Status,
		FinalApproval:    state.FinalApproval,
		NextApproverRole: state.NextApprover,
		Approvals:        models.ApprovalLedger{},
	}
	if err := database.DB.Create(&req).Error; err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, req)
}

// GET /leaves/:id
func (h *LeaveHandler) GetByID(c echo.Context) error {
	var req models.LeaveRequest
	if err := database.DB.First(&req, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, map[string]any{"error": "NOT_FOUND"})
		}
		return c.JSON(http.StatusBadRequest, map[string]any{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, req)
}

// POST /leaves/:id/decision
func (h *LeaveHandler) Decide(c echo.Context) error {
	var p decisionPayload
	if err := c.Bind(&p); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "INVALID_PAYLOAD"})
	}
	if err := validate.Struct(&p); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "VALIDATION_FAILED", "detail": err.Error()})
	}
	approverID, ok := getFacultyID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, map[string]any{"error": "MISSING_IDENTITY"})
	}

	var req models.LeaveRequest
	if err := database.DB.First(&req, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, map[string]any{"error": "NOT_FOUND"})
		}
		return c.JSON(http.StatusBadRequest, map[string]any{"error": err.Error()})
	}

	prevStatus := req.Status
	err := workflow.Decide(&req, models.ApprovalRole(p.Role), approverID, models.Decision(p.Decision), time.Now().UTC())
	if err != nil {
		status, code := decisionErrorCode(err)
		return c.JSON(status, map[string]any{"error": code})
	}

	res := decisionUpdate(database.DB, &req, prevStatus)
	if status, code := decisionWriteCode(res.Error, res.RowsAffected); code != "" {
		return c.JSON(status, map[string]any{"error": code})
	}
	return c.JSON(http.StatusOK, req)
}

// decisionUpdate writes the re-projected workflow fields, keyed on the
// pre-transition status: a decision that raced us leaves zero rows
// matched.
func decisionUpdate(db *gorm.DB, req *models.LeaveRequest, prevStatus models.LeaveStatus) *gorm.DB {
	return db.Model(&models.LeaveRequest{}).
		Where("id = ? AND status = ? AND final_approval = ?", req.ID, prevStatus, models.FinalPending).
		Select("status", "final_approval", "next_approver_role", "approvals").
		Updates(req)
}

// decisionWriteCode maps the guarded update outcome; an empty code means
// the write landed.
func decisionWriteCode(err error, rowsAffected int64) (int, string) {
	if err != nil {
		return http.StatusBadRequest, err.Error()
	}
	if rowsAffected == 0 {
		return http.StatusConflict, "CONCURRENT_MODIFICATION"
	}
	return http.StatusOK, ""
}

// decisionErrorCode maps workflow failures to an HTTP status and an error
// code the client can branch on.
func decisionErrorCode(err error) (int, string) {
	switch {
	case errors.Is(err, workflow.ErrAlreadyFinalized):
		return http.StatusConflict, "ALREADY_DECIDED"
	case errors.Is(err, workflow.ErrNotCurrentApprover):
		return http.StatusConflict, "NOT_YOUR_TURN"
	default:
		return http.StatusBadRequest, err.Error()
	}
}

// GET /faculty/:id/leaveforms
func (h *LeaveHandler) Queue(c echo.Context) error {
	var fac models.Faculty
	if err := database.DB.First(&fac, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, map[string]any{"error": "FACULTY_NOT_FOUND"})
		}
		return c.JSON(http.StatusBadRequest, map[string]any{"error": err.Error()})
	}

	resolver := scope.NewResolver(
		scope.GormStudentDirectory{DB: database.DB},
		scope.GormHostelDirectory{DB: database.DB},
	)
	sc, err := resolver.Resolve(&fac)
	if err != nil {
		if errors.Is(err, scope.ErrUnknownDepartment) {
			return c.JSON(http.StatusBadRequest, map[string]any{"error": "UNKNOWN_DEPARTMENT"})
		}
		return c.JSON(http.StatusBadRequest, map[string]any{"error": err.Error()})
	}

	preds := queue.Build(&fac, sc)
	if len(preds) == 0 {
		return c.JSON(http.StatusOK, map[string]any{"leaves": []models.LeaveRequest{}})
	}

	var rows []models.LeaveRequest
	if err := queueQuery(database.DB, preds).Find(&rows).Error; err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]any{"leaves": rows})
}

// queueQuery builds the work-queue read. The joins are inner on purpose:
// a request whose student or hostel record is gone is dropped, not
// errored.
func queueQuery(db *gorm.DB, preds []queue.Predicate) *gorm.DB {
	return db.Model(&models.LeaveRequest{}).
		InnerJoins("Student").
		InnerJoins("Hostel").
		Where(queue.Where(preds)).
		Order("leave_requests.created_at ASC")
}
