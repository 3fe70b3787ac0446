package main

import (
	"context"
	"errors"
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"roastery/internal/config"
	"roastery/internal/db"
	"roastery/internal/model"
	"roastery/internal/repository"
)

// demo users for local development; passwords are hashed before insert
var seedUsers = []struct {
	Username string
	Email    string
	Password string
}{
	{Username: "alice", Email: "alice@example.com", Password: "espresso1"},
	{Username: "bob", Email: "bob@example.com", Password: "flatwhite2"},
	{Username: "carol", Email: "carol@example.com", Password: "pourover3"},
}

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(&model.User{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	repo := repository.NewUserRepository(gormDB)
	ctx := context.Background()

	created, skipped := 0, 0
	for _, su := range seedUsers {
		if _, err := repo.FindByEmail(ctx, su.Email); err == nil {
			skipped++
			continue
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Fatalf("Failed to check %s: %v", su.Email, err)
		}

		hashed, err := bcrypt.GenerateFromPassword([]byte(su.Password), bcrypt.DefaultCost)
		if err != nil {
			log.Fatalf("Failed to hash password for %s: %v", su.Email, err)
		}

		user := &model.User{
			Username:     su.Username,
			Email:        su.Email,
			PasswordHash: string(hashed),
		}
		if err := repo.Create(ctx, user); err != nil {
			log.Fatalf("Failed to create %s: %v", su.Email, err)
		}
		created++
	}

	log.Printf("Seed complete: %d created, %d already present", created, skipped)
}
