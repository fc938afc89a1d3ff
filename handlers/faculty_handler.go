package handlers

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/satyam1298/LeaveUs/database"
	"github.com/satyam1298/LeaveUs/models"
)

type FacultyHandler struct{}

func NewFacultyHandler() *FacultyHandler { return &FacultyHandler{} }

type facultyPayload struct {
	Name       string `json:"name" validate:"required,min=2,max=120"`
	Email      string `json:"email" validate:"required,email"`
	Phone      string `json:"phone" validate:"omitempty,max=15"`
	Password   string `json:"password" validate:"required,min=6"`
	Department string `json:"department" validate:"omitempty,oneof=CSE ECE CSY CD"`
	IsHOD      bool   `json:"is_hod"`
	IsDEAN     bool   `json:"is_dean"`
}

// GET /faculty/all
func (h *FacultyHandler) List(c echo.Context) error {
	var rows []models.Faculty
	if err := database.DB.Order("id ASC").Find(&rows).Error; err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, rows)
}

// GET /faculty/:id
func (h *FacultyHandler) GetByID(c echo.Context) error {
	var f models.Faculty
	if err := database.DB.First(&f, "id = ?", c.Param("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.JSON(http.StatusNotFound, map[string]any{"error": "FACULTY_NOT_FOUND"})
		}
		return c.JSON(http.StatusBadRequest, map[string]any{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, f)
}

// POST /faculty/new
func (h *FacultyHandler) Create(c echo.Context) error {
	var p facultyPayload
	if err := c.Bind(&p); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "INVALID_PAYLOAD"})
	}
	p.Email = strings.TrimSpace(strings.ToLower(p.Email))
	if err := validate.Struct(&p); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "VALIDATION_FAILED", "detail": err.Error()})
	}
	// an HOD needs a mapped department for scope resolution
	if p.IsHOD && p.Department == "" {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "HOD_NEEDS_DEPARTMENT"})
	}

	var dup models.Faculty
	if err := database.DB.Where("email = ?", p.Email).First(&dup).Error; err == nil {
		return c.JSON(http.StatusConflict, map[string]any{"error": "EMAIL_EXISTS"})
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(p.Password), bcrypt.DefaultCost)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": "HASH_FAILED"})
	}

	f := models.Faculty{
		Name:         p.Name,
		Email:        p.Email,
		Phone:        p.Phone,
		PasswordHash: string(hash),
		Department:   p.Department,
		IsHOD:        p.IsHOD,
		IsDEAN:       p.IsDEAN,
	}
	if err := database.DB.Create(&f).Error; err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, f)
}
