package main

import (
	"context"
	"log"
	"os"

	"gorm.io/gorm"

	"fitbook/internal/auth"
	"fitbook/internal/config"
	"fitbook/internal/db"
	"fitbook/internal/model"
	"fitbook/internal/repository"
)

// Seeds an admin account and a handful of sample classes so a fresh
// deployment has something to log into and book.
func main() {
	log.Println("Starting seed script...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(&model.User{}, &model.Class{}, &model.Booking{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	ctx := context.Background()
	userRepo := repository.NewUserRepository(gormDB)
	classRepo := repository.NewClassRepository(gormDB)

	if _, err := seedUser(ctx, userRepo,
		getEnv("ADMIN_EMAIL", "admin@fitbook.local"),
		getEnv("ADMIN_PASSWORD", "admin-password"),
		"Admin", model.RoleAdmin); err != nil {
		log.Fatalf("Failed to seed admin: %v", err)
	}

	trainer, err := seedUser(ctx, userRepo,
		getEnv("TRAINER_EMAIL", "trainer@fitbook.local"),
		getEnv("TRAINER_PASSWORD", "trainer-password"),
		"Trainer", model.RoleTrainer)
	if err != nil {
		log.Fatalf("Failed to seed trainer: %v", err)
	}

	classes := []model.Class{
		{Name: "Morning Yoga", TrainerID: trainer.ID, Capacity: 20, DurationMinutes: 60},
		{Name: "HIIT Blast", TrainerID: trainer.ID, Capacity: 15, DurationMinutes: 45},
		{Name: "Spin Class", TrainerID: trainer.ID, Capacity: 10, DurationMinutes: 50},
	}
	for i := range classes {
		if err := classRepo.Create(ctx, &classes[i]); err != nil {
			log.Fatalf("Failed to seed class %q: %v", classes[i].Name, err)
		}
		log.Printf("Seeded class %q (capacity %d)", classes[i].Name, classes[i].Capacity)
	}

	log.Println("Seed complete")
}

// seedUser creates the user unless the email is already present.
func seedUser(ctx context.Context, repo repository.UserRepository, email, password, name string, role model.Role) (*model.User, error) {
	existing, err := repo.FindByEmail(ctx, email)
	if err == nil {
		log.Printf("User %s already exists, skipping", email)
		return existing, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	hashed, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Email:        email,
		Name:         name,
		PasswordHash: hashed,
		Role:         role,
		Active:       true,
	}
	if err := repo.Create(ctx, user); err != nil {
		return nil, err
	}
	log.Printf("Seeded %s user %s", role, email)
	return user, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
