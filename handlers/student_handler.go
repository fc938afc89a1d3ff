package handlers

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/satyam1298/LeaveUs/database"
	"github.com/satyam1298/LeaveUs/models"
	"github.com/satyam1298/LeaveUs/scope"
)

type StudentHandler struct{}

func NewStudentHandler() *StudentHandler { return &StudentHandler{} }

type studentPayload struct {
	RollNo           string `json:"roll_no" validate:"required"`
	Name             string `json:"name" validate:"required,min=2,max=120"`
	Email            string `json:"email" validate:"omitempty,email"`
	Phone            string `json:"phone" validate:"omitempty,max=15"`
	FacultyAdvisorID uint   `json:"faculty_advisor_id" validate:"required"`
	HostelID         uint   `json:"hostel_id" validate:"required"`
	Room             string `json:"room" validate:"omitempty,max=10"`
}

// GET /students?advisor=&hostel=
func (h *StudentHandler) List(c echo.Context) error {
	tx := database.DB.Model(&models.Student{})
	if adv := atoiOr(c.QueryParam("advisor"), 0); adv > 0 {
		tx = tx.Where("faculty_advisor_id = ?", adv)
	}
	if hst := atoiOr(c.QueryParam("hostel"), 0); hst > 0 {
		tx = tx.Where("hostel_id = ?", hst)
	}
	var rows []models.Student
	if err := tx.Order("roll_no ASC").Find(&rows).Error; err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, rows)
}

// POST /students
func (h *StudentHandler) Create(c echo.Context) error {
	var p studentPayload
	if err := c.Bind(&p); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "INVALID_PAYLOAD"})
	}
	p.RollNo = strings.ToUpper(strings.TrimSpace(p.RollNo))
	if err := validate.Struct(&p); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "VALIDATION_FAILED", "detail": err.Error()})
	}
	// intake year + B + department code + sequence, e.g. 2022BCS0041
	if !scope.ValidRollNo(p.RollNo) {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "INVALID_ROLL_NO"})
	}

	var dup models.Student
	if err := database.DB.Where("roll_no = ?", p.RollNo).First(&dup).Error; err == nil {
		return c.JSON(http.StatusConflict, map[string]any{"error": "ROLL_NO_EXISTS"})
	}

	s := models.Student{
		RollNo:           p.RollNo,
		Name:             p.Name,
		Email:            strings.TrimSpace(strings.ToLower(p.Email)),
		Phone:            p.Phone,
		FacultyAdvisorID: p.FacultyAdvisorID,
		HostelID:         p.HostelID,
		Room:             p.Room,
	}
	if err := database.DB.Create(&s).Error; err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, s)
}
