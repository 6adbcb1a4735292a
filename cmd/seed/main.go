package main

import (
	"context"
	"errors"
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"fitstack/internal/config"
	"fitstack/internal/db"
	"fitstack/internal/model"
	"fitstack/internal/repository"
)

// conditionCatalog is the default medical-condition catalog. Registration
// links users against these rows by id.
var conditionCatalog = []string{
	"Asthma",
	"Diabetes",
	"Heart disease",
	"High blood pressure",
	"High cholesterol",
	"Joint problems",
	"Obesity",
	"Osteoporosis",
	"Pregnancy",
	"Thyroid disorder",
}

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(&model.User{}, &model.MedicalCondition{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	ctx := context.Background()

	conditionRepo := repository.NewMedicalConditionRepository(gormDB)
	created, err := seedConditions(ctx, conditionRepo)
	if err != nil {
		log.Fatalf("Failed to seed medical conditions: %v", err)
	}
	log.Printf("Medical conditions seeded (%d new, %d already present)", created, len(conditionCatalog)-created)

	userRepo := repository.NewUserRepository(gormDB)
	if err := seedAdmin(ctx, userRepo); err != nil {
		log.Fatalf("Failed to seed admin user: %v", err)
	}

	log.Println("Seed completed successfully!")
}

// seedConditions inserts missing catalog entries, leaving existing ones alone.
func seedConditions(ctx context.Context, repo repository.MedicalConditionRepository) (int, error) {
	created := 0
	for _, name := range conditionCatalog {
		_, err := repo.FindByName(ctx, name)
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return created, err
		}
		if err := repo.Create(ctx, &model.MedicalCondition{Name: name}); err != nil {
			return created, err
		}
		created++
	}
	return created, nil
}

// seedAdmin creates the bootstrap admin account when ADMIN_EMAIL and
// ADMIN_PASSWORD are set and no user with that email exists yet.
func seedAdmin(ctx context.Context, repo repository.UserRepository) error {
	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		log.Println("ADMIN_EMAIL/ADMIN_PASSWORD not set, skipping admin seed")
		return nil
	}

	if _, err := repo.FindByEmail(ctx, email); err == nil {
		log.Printf("Admin user %s already exists, skipping", email)
		return nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := &model.User{
		Email:        email,
		PasswordHash: string(hashedPassword),
		Name:         "Administrator",
		Role:         model.RoleAdmin,
	}
	if err := repo.Create(ctx, admin); err != nil {
		return err
	}
	log.Printf("Admin user %s created", email)
	return nil
}
