package main

import (
	"log"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"fitplanhub/internal/config"
	"fitplanhub/internal/db"
	"fitplanhub/internal/model"
)

const seedPassword = "password123"

type seedTrainer struct {
	name  string
	email string
	plans []seedPlan
}

type seedPlan struct {
	title        string
	description  string
	price        string
	durationDays int
}

var trainers = []seedTrainer{
	{
		name:  "Alice Strong",
		email: "alice@fitplanhub.dev",
		plans: []seedPlan{
			{"12-Week Strength Builder", "Progressive barbell program with weekly video check-ins.", "49.99", 84},
			{"Kettlebell Foundations", "Four weeks of kettlebell basics for home training.", "19.99", 28},
		},
	},
	{
		name:  "Bruno Cardio",
		email: "bruno@fitplanhub.dev",
		plans: []seedPlan{
			{"Couch to 10K", "Running plan that takes you from zero to 10K in ten weeks.", "29.99", 70},
		},
	},
}

var users = []struct {
	name  string
	email string
}{
	{"Carla Runner", "carla@fitplanhub.dev"},
	{"Dan Lifter", "dan@fitplanhub.dev"},
}

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Plan{},
		&model.Subscription{},
		&model.Follow{},
	); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	hash, err := bcrypt.GenerateFromPassword([]byte(seedPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash seed password: %v", err)
	}

	var trainerIDs []uint
	var firstPlanID uint
	for _, t := range trainers {
		trainer := model.User{
			Name:         t.name,
			Email:        t.email,
			PasswordHash: string(hash),
			Role:         model.RoleTrainer,
		}
		if err := upsertUser(gormDB, &trainer); err != nil {
			log.Fatalf("Failed to seed trainer %s: %v", t.email, err)
		}
		trainerIDs = append(trainerIDs, trainer.ID)

		for _, p := range t.plans {
			price, err := decimal.NewFromString(p.price)
			if err != nil {
				log.Fatalf("Invalid seed price %q: %v", p.price, err)
			}
			plan := model.Plan{
				Title:        p.title,
				Description:  p.description,
				Price:        price,
				DurationDays: p.durationDays,
				TrainerID:    trainer.ID,
			}
			if err := gormDB.
				Where("title = ? AND trainer_id = ?", p.title, trainer.ID).
				FirstOrCreate(&plan).Error; err != nil {
				log.Fatalf("Failed to seed plan %q: %v", p.title, err)
			}
			if firstPlanID == 0 {
				firstPlanID = plan.ID
			}
		}
	}

	var userIDs []uint
	for _, u := range users {
		user := model.User{
			Name:         u.name,
			Email:        u.email,
			PasswordHash: string(hash),
			Role:         model.RoleUser,
		}
		if err := upsertUser(gormDB, &user); err != nil {
			log.Fatalf("Failed to seed user %s: %v", u.email, err)
		}
		userIDs = append(userIDs, user.ID)
	}

	// Demo social graph: the first user follows every trainer and owns the
	// first plan, so a fresh install has a non-empty feed to look at.
	for _, trainerID := range trainerIDs {
		follow := model.Follow{UserID: userIDs[0], TrainerID: trainerID}
		if err := gormDB.
			Where("user_id = ? AND trainer_id = ?", userIDs[0], trainerID).
			FirstOrCreate(&follow).Error; err != nil {
			log.Fatalf("Failed to seed follow of trainer %d: %v", trainerID, err)
		}
	}
	subscription := model.Subscription{UserID: userIDs[0], PlanID: firstPlanID}
	if err := gormDB.
		Where("user_id = ? AND plan_id = ?", userIDs[0], firstPlanID).
		FirstOrCreate(&subscription).Error; err != nil {
		log.Fatalf("Failed to seed subscription to plan %d: %v", firstPlanID, err)
	}

	log.Printf("Seeded %d trainers, %d users, %d follows, and 1 subscription (password %q)",
		len(trainers), len(users), len(trainerIDs), seedPassword)
}

func upsertUser(gormDB *gorm.DB, user *model.User) error {
	return gormDB.Where("email = ?", user.Email).FirstOrCreate(user).Error
}
