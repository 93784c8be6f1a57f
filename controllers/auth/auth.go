package authController

import (
	"jbp/config"
	"jbp/database"
	"jbp/middleware"
	"jbp/models"
	"jbp/utils"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

func Register(c *fiber.Ctx) error {
	reqData := new(struct {
		Name           string `json:"name"`
		Email          string `json:"email"`
		Mobile         string `json:"mobile"`
		Password       string `json:"password"`
		FatherName     string `json:"father_name"`
		Aadhar         string `json:"aadhar"`
		Address        string `json:"address"`
		PhotoURL       string `json:"photo_url"`
		AadharPhotoURL string `json:"aadhar_photo_url"`
	})

	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	db := database.Database.Db

	// Check if email already exists
	if err := db.Where("email = ?", reqData.Email).First(&models.User{}).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Email is already registered!", nil)
	}

	// Check if mobile already exists
	if err := db.Where("mobile = ?", reqData.Mobile).First(&models.User{}).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Mobile number is already registered!", nil)
	}

	// Hash Password
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reqData.Password), config.AppConfig.SaltRound)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
	}

	newUser := models.User{
		Name:           reqData.Name,
		Email:          reqData.Email,
		Mobile:         reqData.Mobile,
		Password:       string(hashedPassword),
		FatherName:     reqData.FatherName,
		Aadhar:         reqData.Aadhar,
		Address:        reqData.Address,
		PhotoURL:       reqData.PhotoURL,
		AadharPhotoURL: reqData.AadharPhotoURL,
		IsResident:     true,
		IsActive:       true,
	}

	if err := db.Create(&newUser).Error; err != nil {
		log.Printf("Error saving user to database: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to register user!", nil)
	}

	// Generate JWT token
	token, err := middleware.GenerateJWT(newUser.ID, newUser.Name, newUser.Email)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to generate token", nil)
	}

	// Clean Response
	newUser.Password = ""

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "User registered successfully.", fiber.Map{
		"user":  newUser,
		"token": token,
	})
}

func Login(c *fiber.Ctx) error {
	reqData := new(struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	})

	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Failed to parse request body!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("email = ?", reqData.Email).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid email or password", nil)
	}

	// Validate password
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(reqData.Password)); err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid email or password", nil)
	}

	if !user.IsActive {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Account is disabled", nil)
	}

	// Generate JWT token
	token, err := middleware.GenerateJWT(user.ID, user.Name, user.Email)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to generate token", nil)
	}

	// Sanitize user data
	user.Password = ""

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Login successful.", fiber.Map{
		"user":  user,
		"token": token,
	})
}

func Profile(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.First(&user, userId).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	user.Password = ""

	return middleware.JsonResponse(c, fiber.StatusOK, true, "User profile.", fiber.Map{
		"user":    user,
		"isAdmin": middleware.IsAdminEmail(user.Email, config.AppConfig.AdminUsers),
	})
}

func UpdateProfile(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData := new(struct {
		PhotoURL       *string `json:"photo_url"`
		AadharPhotoURL *string `json:"aadhar_photo_url"`
		Address        *string `json:"address"`
		Mobile         *string `json:"mobile"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Failed to parse request body!", nil)
	}

	var user models.User
	if err := database.Database.Db.First(&user, userId).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	// Only these fields are updatable through the profile endpoint
	if reqData.PhotoURL != nil {
		user.PhotoURL = *reqData.PhotoURL
	}
	if reqData.AadharPhotoURL != nil {
		user.AadharPhotoURL = *reqData.AadharPhotoURL
	}
	if reqData.Address != nil {
		user.Address = *reqData.Address
	}
	if reqData.Mobile != nil {
		user.Mobile = *reqData.Mobile
	}

	if err := database.Database.Db.Save(&user).Error; err != nil {
		log.Printf("Error updating user profile: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update profile!", nil)
	}

	user.Password = ""

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Profile updated successfully.", user)
}

// AllResidents lists every resident account. Admin only.
func AllResidents(c *fiber.Ctx) error {
	var users []models.User
	if err := database.Database.Db.Where("is_resident = ?", true).Find(&users).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch users!", nil)
	}

	for i := range users {
		users[i].Password = ""
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Resident list.", users)
}

// PasswordResetRequest sends an OTP to the user's email. An unknown email gets
// the same generic success response so the endpoint cannot be used to probe
// which accounts exist.
func PasswordResetRequest(mailer *utils.Mailer) fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Email string `json:"email"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Failed to parse request body!", nil)
		}

		db := database.Database.Db

		var user models.User
		if err := db.Where("email = ?", reqData.Email).First(&user).Error; err != nil {
			// Don't reveal if user exists or not
			return middleware.JsonResponse(c, fiber.StatusOK, true, "If this email exists, an OTP has been sent", nil)
		}

		record, err := models.CreateOTP(db, reqData.Email, models.PurposePasswordReset)
		if err != nil {
			log.Printf("Error creating OTP record: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
		}

		name := strings.TrimSpace(user.Name)
		if name == "" {
			name = user.Email
		}

		// The OTP record persists even when the send fails
		success, message := mailer.SendOTPEmail(reqData.Email, record.Code, name)
		if !success {
			log.Printf("Failed to send OTP email to %s: %s", reqData.Email, message)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to send OTP", nil)
		}

		return middleware.JsonResponse(c, fiber.StatusOK, true, "OTP sent to your email", fiber.Map{
			"email": reqData.Email,
		})
	}
}

// VerifyResetOTP checks the submitted code and marks it verified. Exists so a
// client can confirm code correctness before prompting for a new password; no
// account state changes here.
func VerifyResetOTP(c *fiber.Ctx) error {
	reqData := new(struct {
		Email string `json:"email"`
		OTP   string `json:"otp"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Failed to parse request body!", nil)
	}

	_, reason := models.VerifyOTP(database.Database.Db, reqData.Email, reqData.OTP, models.PurposePasswordReset, true)
	if reason != "" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, reason, fiber.Map{
			"verified": false,
		})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "OTP verified successfully", fiber.Map{
		"verified": true,
	})
}

// PasswordResetConfirm re-validates the code (without flipping the verified
// flag again) and overwrites the credential hash. The matched OTP record is
// removed on success so the same code cannot confirm a reset twice.
func PasswordResetConfirm(c *fiber.Ctx) error {
	reqData := new(struct {
		Email       string `json:"email"`
		OTP         string `json:"otp"`
		NewPassword string `json:"new_password"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Failed to parse request body!", nil)
	}

	db := database.Database.Db

	var user models.User
	if err := db.Where("email = ?", reqData.Email).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request", nil)
	}

	record, reason := models.VerifyOTP(db, reqData.Email, reqData.OTP, models.PurposePasswordReset, false)
	if reason != "" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, reason, nil)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reqData.NewPassword), config.AppConfig.SaltRound)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
	}

	user.Password = string(hashedPassword)
	if err := db.Save(&user).Error; err != nil {
		log.Printf("Error updating user password: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update password!", nil)
	}

	if err := models.DeleteOTP(db, record); err != nil {
		log.Printf("Error deleting OTP record: %v", err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Password reset successful", nil)
}

// CleanupOTPs purges OTP records past the retention window. Admin only.
func CleanupOTPs(c *fiber.Ctx) error {
	removed, err := models.CleanupOldOTPs(database.Database.Db)
	if err != nil {
		log.Printf("Error cleaning up old OTPs: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to clean up OTP records!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "OTP cleanup completed.", fiber.Map{
		"removed": removed,
	})
}
