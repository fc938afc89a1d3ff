// scripts/create_dean.go
package main

import (
	"fmt"
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/satyam1298/LeaveUs/config"
	"github.com/satyam1298/LeaveUs/database"
	"github.com/satyam1298/LeaveUs/models"
)

func main() {
	cfg := config.Load()
	database.Connect(cfg)

	email := "dean@campus.edu"
	password := "changeme"

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	var existing models.Faculty
	if err := database.DB.Where("email = ?", email).First(&existing).Error; err != nil {
		if err != gorm.ErrRecordNotFound {
			log.Fatalf("failed to query faculty: %v", err)
		}
	} else {
		fmt.Println("dean account already exists:", email)
		os.Exit(0)
	}

	f := models.Faculty{
		Name:         "Dean of Students",
		Email:        email,
		PasswordHash: string(hashed),
		IsDEAN:       true,
	}
	if err := database.DB.Create(&f).Error; err != nil {
		log.Fatalf("failed to insert dean: %v", err)
	}

	fmt.Println("dean account created")
	fmt.Println("  email:", email)
	fmt.Println("  password:", password, "(change it after first login)")
}
