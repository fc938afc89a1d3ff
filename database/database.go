package database

import (
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/satyam1298/LeaveUs/config"
	"github.com/satyam1298/LeaveUs/models"
)

var DB *gorm.DB

func Connect(cfg *config.Config) {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}
	DB = db

	if err := DB.AutoMigrate(
		&models.Faculty{},
		&models.Student{},
		&models.Hostel{},
		&models.LeaveRequest{},
	); err != nil {
		log.Fatalf("auto migrate failed: %v", err)
	}
}
