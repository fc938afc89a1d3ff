package handlers

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/satyam1298/LeaveUs/database"
	"github.com/satyam1298/LeaveUs/models"
)

type HostelHandler struct{}

func NewHostelHandler() *HostelHandler { return &HostelHandler{} }

type hostelPayload struct {
	Name          string `json:"name" validate:"required,min=2,max=60"`
	ChiefWardenID uint   `json:"chief_warden_id" validate:"required"`
	WardenIDs     []uint `json:"warden_ids"`
}

// GET /hostels
func (h *HostelHandler) List(c echo.Context) error {
	var rows []models.Hostel
	if err := database.DB.Preload("Wardens").Order("name ASC").Find(&rows).Error; err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, rows)
}

// POST /hostels
func (h *HostelHandler) Create(c echo.Context) error {
	var p hostelPayload
	if err := c.Bind(&p); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "INVALID_PAYLOAD"})
	}
	p.Name = strings.TrimSpace(p.Name)
	if err := validate.Struct(&p); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "VALIDATION_FAILED", "detail": err.Error()})
	}

	var chief models.Faculty
	if err := database.DB.First(&chief, p.ChiefWardenID).Error; err != nil {
		return c.JSON(http.StatusNotFound, map[string]any{"error": "CHIEF_WARDEN_NOT_FOUND"})
	}

	var wardens []models.Faculty
	if len(p.WardenIDs) > 0 {
		if err := database.DB.Find(&wardens, p.WardenIDs).Error; err != nil {
			return c.JSON(http.StatusBadRequest, map[string]any{"error": err.Error()})
		}
		if len(wardens) != len(p.WardenIDs) {
			return c.JSON(http.StatusNotFound, map[string]any{"error": "WARDEN_NOT_FOUND"})
		}
	}

	hst := models.Hostel{
		Name:          p.Name,
		ChiefWardenID: chief.ID,
		Wardens:       wardens,
	}
	if err := database.DB.Create(&hst).Error; err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, hst)
}
