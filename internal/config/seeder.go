package config

import (
	"log"

	"nobateasy/internal/adapters/persistence/models"
	"nobateasy/internal/pkg/password"

	"gorm.io/gorm"
)

// Seeder handles database seeding
type Seeder struct {
	db *gorm.DB
}

// NewSeeder creates a new seeder instance
func NewSeeder(db *gorm.DB) *Seeder {
	return &Seeder{db: db}
}

// Run executes all seeders
func (s *Seeder) Run() error {
	log.Println("🌱 Running database seeders...")

	if err := s.seedStaffUser(); err != nil {
		log.Printf("⚠️ Staff seeder skipped: %v", err)
	}

	log.Println("✅ Database seeding completed")
	return nil
}

// seedStaffUser seeds the default staff credential row. The users table is
// part of the persisted layout but no request path reads it yet.
// Development default only; change the password before going live.
func (s *Seeder) seedStaffUser() error {
	var count int64
	s.db.Model(&models.User{}).Count(&count)
	if count > 0 {
		return nil
	}

	hashedPassword, err := password.Hash("staff123456")
	if err != nil {
		return err
	}

	staff := &models.User{
		Username: "staff",
		Password: hashedPassword,
	}

	if err := s.db.Create(staff).Error; err != nil {
		return err
	}

	log.Println("🌱 Seeded default staff user")
	return nil
}
