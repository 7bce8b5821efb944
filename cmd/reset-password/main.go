package main

import (
	"flag"
	"log"

	"golang.org/x/crypto/bcrypt"

	"github.com/gems2004/Stocky-sub001/internal/model"
	"github.com/gems2004/Stocky-sub001/pkg/config"
	"github.com/gems2004/Stocky-sub001/pkg/database"
)

// Ops tool: reset a user's password directly against the database.
func main() {
	username := flag.String("username", "admin", "username of the account to reset")
	password := flag.String("password", "", "new password (required)")
	flag.Parse()

	if *password == "" {
		log.Fatal("-password is required")
	}

	cfg := config.Load()
	db, err := database.Connect(cfg.DB)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	var user model.User
	if err := db.Where("username = ?", *username).First(&user).Error; err != nil {
		log.Fatalf("user %q not found: %v", *username, err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	if err := db.Model(&user).Update("password", string(hashed)).Error; err != nil {
		log.Fatalf("failed to update password: %v", err)
	}

	log.Printf("password for %q has been reset", *username)
}
