package authRoutes

import (
	"jbp/config"
	authControllers "jbp/controllers/auth"
	"jbp/middleware"
	"jbp/utils"
	authValidators "jbp/validators/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App, mailer *utils.Mailer) {
	authGroup := app.Group("/auth")

	authGroup.Post("/register", authValidators.Register(), authControllers.Register)
	authGroup.Post("/login", authValidators.Login(), authControllers.Login)
	authGroup.Get("/profile", middleware.JWTMiddleware, authControllers.Profile)
	authGroup.Patch("/profile", authValidators.UpdateProfile(), middleware.JWTMiddleware, authControllers.UpdateProfile)
	authGroup.Get("/users", middleware.JWTMiddleware, middleware.AdminOnly(config.AppConfig.AdminUsers), authControllers.AllResidents)

	authGroup.Post("/password/reset", authValidators.PasswordResetRequest(), authControllers.PasswordResetRequest(mailer))
	authGroup.Post("/password/verify-otp", authValidators.VerifyOTP(), authControllers.VerifyResetOTP)
	authGroup.Post("/password/reset/confirm", authValidators.PasswordResetConfirm(), authControllers.PasswordResetConfirm)

	authGroup.Post("/otp/cleanup", middleware.JWTMiddleware, middleware.AdminOnly(config.AppConfig.AdminUsers), authControllers.CleanupOTPs)
}
