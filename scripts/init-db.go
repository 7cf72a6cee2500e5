package main

import (
	"fmt"
	"log"

	"estate_crm/internal/config"
	"estate_crm/internal/database"
	"estate_crm/internal/models"
	"estate_crm/internal/repository"
	"estate_crm/internal/services"
)

func main() {
	fmt.Println("Initializing database...")

	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Force recreate all tables
	fmt.Println("Dropping existing tables...")
	err = db.Migrator().DropTable(
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
		log.Printf("Warning: Error dropping tables: %v", err)
	}

	// Create tables with proper schema
	fmt.Println("Creating tables...")
	err = db.AutoMigrate(
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
		log.Fatal("Failed to migrate database:", err)
	}

	// Create default admin user
	fmt.Println("Creating default admin user...")
	userRepo := repository.NewUserRepository(db)
	userService := services.NewUserService(userRepo)

	existingUser, err := userService.GetUserByUsername("admin")
	if err == nil && existingUser != nil {
		fmt.Println("Admin user already exists")
		return
	}

	admin := &models.User{
		Username: "admin",
		Email:    "admin@estatecrm.local",
		FullName: "Administrator",
		Role:     string(models.RoleAdmin),
		IsActive: true,
	}

	err = userService.CreateUser(admin, "admin123")
	if err != nil {
		log.Printf("Warning: Failed to create admin user: %v", err)
	} else {
		fmt.Println("Admin user created successfully")
		fmt.Println("Username: admin")
		fmt.Println("Password: admin123")
	}

	fmt.Println("Database initialization completed successfully!")
}
