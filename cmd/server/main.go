package main

import (
	"log"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"estate_crm/internal/config"
	"estate_crm/internal/database"
	"estate_crm/internal/handlers"
	"estate_crm/internal/migrations"
	"estate_crm/internal/models"
	"estate_crm/internal/redis"
	"estate_crm/internal/repository"
	"estate_crm/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err := migrations.RunMigrations(db); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Initialize Redis
	redisClient, err := redis.Initialize(cfg.RedisURL)
	if err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}
	defer redisClient.Close()

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	leadRepo := repository.NewLeadRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	contractorRepo := repository.NewContractorRepository(db)
	invoiceRepo := repository.NewInvoiceRepository(db)
	plotRepo := repository.NewPlotRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	scheduleRepo := repository.NewScheduleRepository(db)
	teamRepo := repository.NewTeamRepository(db)

	// Initialize services
	authService := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.TokenExpiryHours)
	userService := services.NewUserService(userRepo)
	leadService := services.NewLeadService(leadRepo, customerRepo)
	customerService := services.NewCustomerService(customerRepo)
	contractorService := services.NewContractorService(contractorRepo)
	invoiceService := services.NewInvoiceService(invoiceRepo, redisClient, time.Duration(cfg.DraftTTL)*time.Second)
	plotService := services.NewPlotService(plotRepo)
	taskService := services.NewTaskService(taskRepo)
	scheduleService := services.NewScheduleService(scheduleRepo)
	teamService := services.NewTeamService(teamRepo)
	dashboardService := services.NewDashboardService(leadRepo, plotRepo, invoiceRepo, redisClient, time.Duration(cfg.DashboardTTL)*time.Second)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService, userService)
	userHandler := handlers.NewUserHandler(userService)
	leadHandler := handlers.NewLeadHandler(leadService, dashboardService)
	crmHandler := handlers.NewCRMHandler(customerService, contractorService)
	invoiceHandler := handlers.NewInvoiceHandler(invoiceService, dashboardService)
	plotHandler := handlers.NewPlotHandler(plotService, dashboardService)
	taskHandler := handlers.NewTaskHandler(taskService)
	scheduleHandler := handlers.NewScheduleHandler(scheduleService)
	teamHandler := handlers.NewTeamHandler(teamService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)

	// Flag due site visits every minute
	go func() {
		ticker := time.NewTicker(time.Minute)
		defer ticker.Stop()
		for range ticker.C {
			if n, err := scheduleService.ProcessDue(24 * time.Hour); err != nil {
				log.Printf("Warning: schedule sweep failed: %v", err)
			} else if n > 0 {
				log.Printf("Flagged %d due schedules", n)
			}
		}
	}()

	// Setup routes
	router := gin.Default()
	router.Use(cors.New(cors.Config{
		AllowOrigins:     strings.Split(cfg.AllowedOrigins, ","),
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.POST("/api/auth/login", authHandler.Login)

	api := router.Group("/api")
	api.Use(handlers.AuthMiddleware(authService))
	{
		api.GET("/auth/me", authHandler.Me)
		api.PUT("/auth/password", authHandler.ChangePassword)

		// User administration
		admin := api.Group("/users")
		admin.Use(handlers.RequireRole(string(models.RoleAdmin)))
		{
			admin.POST("", userHandler.CreateUser)
			admin.GET("", userHandler.ListUsers)
			admin.GET("/:id", userHandler.GetUser)
			admin.PUT("/:id", userHandler.UpdateUser)
			admin.DELETE("/:id", userHandler.DeleteUser)
		}

		// Leads
		api.POST("/leads", leadHandler.CreateLead)
		api.GET("/leads", leadHandler.ListLeads)
		api.GET("/leads/mine", leadHandler.GetMyLeads)
		api.GET("/leads/:id", leadHandler.GetLead)
		api.PUT("/leads/:id/status", leadHandler.UpdateStatus)
		api.PUT("/leads/:id/assign", leadHandler.AssignLead)
		api.POST("/leads/:id/convert", leadHandler.ConvertLead)
		api.DELETE("/leads/:id", leadHandler.DeleteLead)

		// Customers and contractors
		api.POST("/customers", crmHandler.CreateCustomer)
		api.GET("/customers", crmHandler.ListCustomers)
		api.GET("/customers/:id", crmHandler.GetCustomer)
		api.PUT("/customers/:id", crmHandler.UpdateCustomer)
		api.DELETE("/customers/:id", crmHandler.DeleteCustomer)

		api.POST("/contractors", crmHandler.CreateContractor)
		api.GET("/contractors", crmHandler.ListContractors)
		api.GET("/contractors/:id", crmHandler.GetContractor)
		api.PUT("/contractors/:id", crmHandler.UpdateContractor)
		api.DELETE("/contractors/:id", crmHandler.DeleteContractor)
		api.GET("/contractors/:id/invoices", invoiceHandler.ListByContractor)

		// Invoice drafts (dialog sessions)
		api.POST("/invoices/drafts", invoiceHandler.OpenDraft)
		api.GET("/invoices/drafts/:session_id", invoiceHandler.GetDraft)
		api.PUT("/invoices/drafts/:session_id/meta", invoiceHandler.SetMeta)
		api.POST("/invoices/drafts/:session_id/items", invoiceHandler.AddItem)
		api.DELETE("/invoices/drafts/:session_id/items/:item_id", invoiceHandler.RemoveItem)
		api.POST("/invoices/drafts/:session_id/submit", invoiceHandler.Submit)
		api.DELETE("/invoices/drafts/:session_id", invoiceHandler.CancelDraft)

		// Invoices
		api.GET("/invoices", invoiceHandler.ListInvoices)
		api.GET("/invoices/:id", invoiceHandler.GetInvoice)
		api.GET("/invoices/:id/audits", invoiceHandler.GetAudits)
		api.PUT("/invoices/:id/status",
			handlers.RequireRole(string(models.RoleAdmin), string(models.RoleSalesManager)),
			invoiceHandler.UpdateStatus)
		api.DELETE("/invoices/:id",
			handlers.RequireRole(string(models.RoleAdmin)),
			invoiceHandler.DeleteInvoice)

		// Plot listings
		api.POST("/plots", plotHandler.CreatePlot)
		api.GET("/plots", plotHandler.ListPlots)
		api.GET("/plots/:id", plotHandler.GetPlot)
		api.PUT("/plots/:id/financials", plotHandler.UpdateFinancials)
		api.POST("/plots/:id/payments", plotHandler.RecordPayment)
		api.PUT("/plots/:id/status", plotHandler.UpdateStatus)
		api.DELETE("/plots/:id",
			handlers.RequireRole(string(models.RoleAdmin)),
			plotHandler.DeletePlot)

		// Kanban board
		api.POST("/tasks", taskHandler.CreateTask)
		api.GET("/tasks/board", taskHandler.GetBoard)
		api.GET("/tasks/mine", taskHandler.GetMyTasks)
		api.GET("/tasks/:id", taskHandler.GetTask)
		api.PUT("/tasks/:id/move", taskHandler.MoveTask)
		api.GET("/tasks/:id/activity", taskHandler.GetActivity)
		api.DELETE("/tasks/:id", taskHandler.DeleteTask)

		// Schedules
		api.POST("/schedules", scheduleHandler.CreateSchedule)
		api.GET("/schedules/mine", scheduleHandler.GetMySchedules)
		api.GET("/schedules/upcoming", scheduleHandler.GetUpcoming)
		api.GET("/schedules/:id", scheduleHandler.GetSchedule)
		api.PUT("/schedules/:id/notified", scheduleHandler.MarkNotified)
		api.DELETE("/schedules/:id", scheduleHandler.DeleteSchedule)

		// Team performance
		team := api.Group("/team")
		team.Use(handlers.RequireRole(string(models.RoleAdmin), string(models.RoleSalesManager)))
		{
			team.POST("/performance", teamHandler.UpsertPerformance)
			team.GET("/performance", teamHandler.GetBoard)
			team.GET("/performance/:id", teamHandler.GetMember)
			team.DELETE("/performance/:id", teamHandler.DeleteMember)
		}

		// Dashboard
		api.GET("/dashboard/summary", dashboardHandler.GetSummary)
	}

	// Start server
	log.Printf("Server starting on port %s", cfg.ServerPort)
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
