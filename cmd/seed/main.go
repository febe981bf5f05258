package main

import (
	"log"
	"os"
	"time"

	"mentora-be/internal/constant"
	"mentora-be/internal/entity"
	"mentora-be/internal/mapper"
	"mentora-be/internal/model"
	"mentora-be/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Seeds the minimum data the chatbot needs to run: the shared student
// credential, one admin account, the default synonym table and a small
// demo corpus. Safe to re-run; existing rows are left alone.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	seedCredential(db)
	seedAdmin(db)
	seedSynonyms(db)
	seedDemoCorpus(db)

	log.Println("Success: Seed completed.")
}

func seedCredential(db *gorm.DB) {
	var count int64
	db.Model(&model.ChatbotCredential{}).Count(&count)
	if count > 0 {
		log.Println("Skip: chatbot credential already present")
		return
	}

	password := getenv("CHATBOT_PASSWORD", "mentora123")
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Error: failed to hash chatbot password: %v", err)
	}

	cred := &model.ChatbotCredential{
		Id:           uuid.New(),
		PasswordHash: string(hash),
		LastChanged:  time.Now().UTC().Format(time.RFC3339),
	}
	if err := db.Create(cred).Error; err != nil {
		log.Fatalf("Error: failed to seed chatbot credential: %v", err)
	}
	log.Println("Seeded: chatbot credential")
}

func seedAdmin(db *gorm.DB) {
	username := getenv("ADMIN_USERNAME", "admin")

	var count int64
	db.Model(&model.AdminUser{}).Where("username = ?", username).Count(&count)
	if count > 0 {
		log.Println("Skip: admin user already present")
		return
	}

	password := getenv("ADMIN_PASSWORD", "admin123")
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Error: failed to hash admin password: %v", err)
	}

	admin := &model.AdminUser{
		Id:           uuid.New(),
		Username:     username,
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
	}
	if err := db.Create(admin).Error; err != nil {
		log.Fatalf("Error: failed to seed admin user: %v", err)
	}
	log.Printf("Seeded: admin user %q", username)
}

func seedSynonyms(db *gorm.DB) {
	var count int64
	db.Model(&model.Synonym{}).Count(&count)
	if count > 0 {
		log.Println("Skip: synonyms already present")
		return
	}

	m := mapper.NewSynonymMapper()
	for canonical, alternates := range constant.DefaultSynonyms {
		row := m.ToModel(&entity.Synonym{
			Id:         uuid.New(),
			Canonical:  canonical,
			Alternates: alternates,
		})
		if err := db.Create(row).Error; err != nil {
			log.Fatalf("Error: failed to seed synonym %q: %v", canonical, err)
		}
	}
	log.Printf("Seeded: %d synonym entries", len(constant.DefaultSynonyms))
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func seedDemoCorpus(db *gorm.DB) {
	var count int64
	db.Model(&model.Subject{}).Count(&count)
	if count > 0 {
		log.Println("Skip: content corpus already present")
		return
	}

	now := time.Now()
	maths := &model.Subject{Id: uuid.New(), Name: "Mathematics", CreatedAt: now}
	physics := &model.Subject{Id: uuid.New(), Name: "Physics", CreatedAt: now}
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create([]*model.Subject{maths, physics}).Error; err != nil {
		log.Fatalf("Error: failed to seed subjects: %v", err)
	}

	units := []*model.Unit{
		{Id: uuid.New(), SubjectId: maths.Id, Name: "Unit 1 - Algebra", Filename: "algebra.pdf", UploadedAt: now},
		{Id: uuid.New(), SubjectId: maths.Id, Name: "Unit 2 - Calculus", Filename: "calculus.pdf", UploadedAt: now},
		{Id: uuid.New(), SubjectId: physics.Id, Name: "Unit 1 - Mechanics", Filename: "mechanics.pdf", UploadedAt: now},
	}
	if err := db.Create(units).Error; err != nil {
		log.Fatalf("Error: failed to seed units: %v", err)
	}

	docs := []*model.ArchiveDocument{
		{Id: uuid.New(), Name: "Maths PYQ 2024", Type: "PYQ", Filename: "maths-pyq-2024.pdf", UploadedAt: now},
		{Id: uuid.New(), Name: "Semester Timetable", Type: "Timetable", Filename: "timetable.pdf", UploadedAt: now},
	}
	if err := db.Create(docs).Error; err != nil {
		log.Fatalf("Error: failed to seed archive documents: %v", err)
	}

	log.Println("Seeded: demo corpus")
}
