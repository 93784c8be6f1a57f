package main

import (
	"jbp/config"
	"jbp/database"
	authRoutes "jbp/routers/authRoutes"
	leadRoutes "jbp/routers/leadRoutes"
	"jbp/utils"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	// Wire the email gateway and lead fan-out from explicit config
	mailer := utils.NewMailer(utils.MailerConfig{
		ApiKey:      config.AppConfig.BrevoApiKey,
		ApiURL:      config.AppConfig.BrevoApiURL,
		SenderEmail: config.AppConfig.EmailSender,
		SenderName:  config.AppConfig.SenderName,
	})
	notifier := utils.NewLeadNotifier(mailer, utils.NotifierConfig{
		AdminEmail: config.AppConfig.AdminEmail,
		AdminUsers: config.AppConfig.AdminUsers,
	})

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,PATCH,DELETE",  // Allowed HTTP methods
		AllowHeaders: "Content-Type,Authorization", // Allowed headers
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	authRoutes.SetupAuthRoutes(app, mailer)
	leadRoutes.SetupLeadRoutes(app, notifier)

	// Daily purge of stale OTP records
	utils.InitializeOTPCleanupScheduler()

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
