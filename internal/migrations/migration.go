package migrations

import (
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"estate_crm/internal/models"
)

// RunMigrations creates all tables and seeds default data.
func RunMigrations(db *gorm.DB) error {
	log.Println("Running database migrations...")

	err := db.AutoMigrate(
		&models.User{},
		&models.Lead{},
		&models.Customer{},
		&models.Contractor{},
		&models.Invoice{},
		&models.InvoiceItem{},
		&models.InvoiceAudit{},
		&models.PlotListing{},
		&models.KanbanTask{},
		&models.TaskActivity{},
		&models.Schedule{},
		&models.TeamMember{},
	)
	if err != nil {
		return err
	}

	if err := createDefaultData(db); err != nil {
		log.Printf("Warning: Failed to create default data: %v", err)
	}

	log.Println("Database migrations completed successfully!")
	return nil
}

func createDefaultData(db *gorm.DB) error {
	// Seed the admin account once
	var count int64
	db.Model(&models.User{}).Where("role = ?", string(models.RoleAdmin)).Count(&count)
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("changeme"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := &models.User{
		Username:     "admin",
		Email:        "admin@example.com",
		PasswordHash: string(hash),
		FullName:     "Administrator",
		Role:         string(models.RoleAdmin),
		IsActive:     true,
	}
	if err := db.Create(admin).Error; err != nil {
		return err
	}

	log.Println("Created default admin user (username: admin)")
	return nil
}
