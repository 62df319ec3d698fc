package main

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/SumukhPhulari10/Interactivequizplatform/internal/config"
	"github.com/SumukhPhulari10/Interactivequizplatform/internal/database"
	"github.com/SumukhPhulari10/Interactivequizplatform/internal/logger"
	"github.com/SumukhPhulari10/Interactivequizplatform/internal/model"
	"github.com/SumukhPhulari10/Interactivequizplatform/internal/quiz"
	"github.com/SumukhPhulari10/Interactivequizplatform/internal/repository"
)

// seedPassword is shared by every demo account.
const seedPassword = "Demo#123"

func main() {
	cfg := config.Load()
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	userRepo := repository.NewUserRepository(pool)
	attemptRepo := repository.NewAttemptRepository(pool)

	fmt.Println("=== Seeding Demo Students ===")

	samples := []struct {
		Name   string
		Branch string
	}{
		{"Aarav Mehta", "computer"},
		{"Ishika Sharma", "electrical"},
		{"Rohan Patel", "mechanical"},
		{"Sneha Iyer", "ai-ml"},
		{"Vikram Singh", "civil"},
		{"Ananya Desai", "chemical"},
		{"Rahul Nair", "industrial"},
		{"Meera Kapoor", "materials"},
		{"Kunal Joshi", "computer"},
		{"Priya Gupta", "electrical"},
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(seedPassword), cfg.BcryptCost)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to hash seed password")
	}

	banks := []quiz.BankID{
		quiz.BankSimple, quiz.BankMedium, quiz.BankHard,
		quiz.BankEngEasy, quiz.BankEngMedium, quiz.BankEngHard,
	}

	successCount := 0
	for i, sample := range samples {
		email := fmt.Sprintf("demo%d@quizplatform.dev", i+1)

		taken, err := userRepo.EmailExists(ctx, email)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to check email")
		}
		if taken {
			fmt.Printf("Skipping %s (%s): already exists\n", sample.Name, email)
			continue
		}

		user := &model.User{
			Email:        email,
			FullName:     sample.Name,
			Role:         model.RoleStudent,
			AvatarKey:    model.DefaultAvatarKey,
			Branch:       sample.Branch,
			PasswordHash: string(hash),
		}
		if err := userRepo.Create(ctx, user); err != nil {
			log.Fatal().Err(err).Str("email", email).Msg("Failed to create demo user")
		}

		// One to four attempts each, scores in the 6-10 range so the
		// leaderboard lands around 60-100 percent like real usage.
		attemptCount := 1 + rand.Intn(4)
		attempts := make([]model.Attempt, 0, attemptCount)
		for a := 0; a < attemptCount; a++ {
			attempts = append(attempts, model.Attempt{
				UserID:         user.ID,
				BankID:         string(banks[rand.Intn(len(banks))]),
				Score:          6 + rand.Intn(5),
				TotalQuestions: 10,
				CompletedAt:    time.Now().Add(-time.Duration(rand.Intn(72)) * time.Hour),
			})
		}
		if err := attemptRepo.BatchInsert(ctx, attempts); err != nil {
			log.Fatal().Err(err).Str("email", email).Msg("Failed to seed attempts")
		}

		successCount++
		fmt.Printf("Created %s (%s) with %d attempts\n", sample.Name, email, attemptCount)
	}

	fmt.Printf("\nDone. Seeded %d demo students (password: %s)\n", successCount, seedPassword)
}
