package leadController

import (
	"jbp/database"
	"jbp/middleware"
	"jbp/models"
	"jbp/utils"
	"log"

	"github.com/gofiber/fiber/v2"
)

// CreateLead persists a public inquiry and notifies the admin set. Lead
// persistence and notification dispatch are decoupled: the lead is saved and
// the request succeeds regardless of how many notification sends fail.
func CreateLead(notifier *utils.LeadNotifier) fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Name   string `json:"name"`
			Mobile string `json:"mobile"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		lead := models.Lead{
			Name:   reqData.Name,
			Mobile: reqData.Mobile,
		}

		if err := database.Database.Db.Create(&lead).Error; err != nil {
			log.Printf("Error saving lead to database: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to submit inquiry!", nil)
		}

		// One send per recipient, sequential; results are only logged
		results := notifier.NotifyNewLead(&lead)
		for _, result := range results {
			if result.Success {
				log.Printf("Lead notification sent to %s", result.Recipient)
			} else {
				log.Printf("Failed to send lead notification to %s: %s", result.Recipient, result.Message)
			}
		}

		return middleware.JsonResponse(c, fiber.StatusCreated, true, "Inquiry submitted successfully.", lead)
	}
}

// LeadList returns all leads, newest first. Admin only.
func LeadList(c *fiber.Ctx) error {
	var leads []models.Lead
	if err := database.Database.Db.Order("created_at DESC").Find(&leads).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch leads!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lead list.", leads)
}
