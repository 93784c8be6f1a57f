package leadRoutes

import (
	"jbp/config"
	leadControllers "jbp/controllers/lead"
	"jbp/middleware"
	"jbp/utils"
	leadValidators "jbp/validators/lead"

	"github.com/gofiber/fiber/v2"
)

func SetupLeadRoutes(app *fiber.App, notifier *utils.LeadNotifier) {
	leadGroup := app.Group("/leads")

	leadGroup.Post("/create", leadValidators.CreateLead(), leadControllers.CreateLead(notifier))
	leadGroup.Get("/all", middleware.JWTMiddleware, middleware.AdminOnly(config.AppConfig.AdminUsers), leadControllers.LeadList)
}
