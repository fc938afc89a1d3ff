package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/satyam1298/LeaveUs/config"
	"github.com/satyam1298/LeaveUs/handlers"
	"github.com/satyam1298/LeaveUs/middlewares"
)

// Register wires all HTTP routes.
func Register(e *echo.Echo, cfg *config.Config) {
	auth := handlers.NewAuthHandler(cfg.JWTSecret)
	fac := handlers.NewFacultyHandler()
	std := handlers.NewStudentHandler()
	hst := handlers.NewHostelHandler()
	lv := handlers.NewLeaveHandler()

	e.GET("/health", handlers.Health)

	// ===== Public =====
	e.POST("/auth/faculty/login", auth.FacultyLogin)

	e.GET("/faculty/all", fac.List)
	e.POST("/faculty/new", fac.Create)

	e.GET("/students", std.List)
	e.POST("/students", std.Create)

	e.GET("/hostels", hst.List)
	e.POST("/hostels", hst.Create)

	// leave submission comes from the student app, which carries no
	// faculty token
	e.POST("/leaves", lv.Create)
	e.GET("/leaves/:id", lv.GetByID)

	// ===== Faculty (token required) =====
	authMW := middlewares.RequireAuth(cfg.JWTSecret)
	facultyMW := middlewares.RequireRole("faculty")

	f := e.Group("/faculty", authMW, facultyMW)
	f.GET("/:id", fac.GetByID)
	f.GET("/:id/leaveforms", lv.Queue)

	l := e.Group("/leaves", authMW, facultyMW)
	l.POST("/:id/decision", lv.Decide)
}
