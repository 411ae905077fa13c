package app

import (
	"database/sql"
	"fmt"
	"log"

	"shopdesk/internal/apiclient"
	"shopdesk/internal/config"
	"shopdesk/internal/handlers"
	"shopdesk/internal/middleware"
	"shopdesk/internal/pdf"
	"shopdesk/internal/repositories"
	"shopdesk/internal/routes"
	"shopdesk/internal/services"
	"shopdesk/internal/view"

	"github.com/gin-gonic/gin"
	_ "github.com/lib/pq"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	_ "shopdesk/docs"
)

func Run() {
	cfg := config.LoadConfig()

	// === DB ===
	db, err := sql.Open("postgres", cfg.Database.DSN)
	if err != nil {
		log.Fatal("failed to open database: ", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("failed to close database: %v", err)
		}
	}()

	// === Repos ===
	shopRepo := repositories.NewShopRepository(db)
	paymentRepo := repositories.NewPaymentRepository(db)
	clientRepo := repositories.NewClientRepository(db)

	// === Services ===
	var mailer services.Mailer
	if cfg.Email.SMTPHost != "" {
		mailer = services.NewEmailService(
			cfg.Email.SMTPHost,
			cfg.Email.SMTPPort,
			cfg.Email.SMTPUser,
			cfg.Email.SMTPPassword,
			cfg.Email.FromEmail,
		)
	}

	var notifier services.Notifier
	if cfg.Telegram.BotToken != "" {
		tg, err := services.NewTelegramNotifier(cfg.Telegram.BotToken, cfg.Telegram.ChatID)
		if err != nil {
			log.Printf("telegram notifier disabled: %v", err)
		} else {
			notifier = tg
		}
	}

	clientService := services.NewClientService(clientRepo, shopRepo, mailer, notifier)
	paymentService := services.NewPaymentService(paymentRepo)

	pdfGen := pdf.NewListGenerator("Clients")
	views := view.New("templates")
	api := apiclient.New(cfg.Server.BaseURL)

	// === Handlers ===
	clientHandler := handlers.NewClientHandler(clientService)
	paymentHandler := handlers.NewPaymentHandler(paymentService)
	exportHandler := handlers.NewExportHandler(clientService, pdfGen)
	pageHandler := handlers.NewPageHandler(clientService, paymentService, api, views)

	// === Gin ===
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS())

	// Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.Static("/static", "./static")

	routes.SetupRoutes(router, clientHandler, paymentHandler, exportHandler, pageHandler)

	// === Run ===
	listenAddr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Printf("server listening on %s", listenAddr)
	if err := router.Run(listenAddr); err != nil {
		log.Fatal("server stopped: ", err)
	}
}
