package controller

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"folio_backend/internals/configs"
	"folio_backend/internals/features/users/auth/dto"
	"folio_backend/internals/features/users/auth/model"
	"folio_backend/internals/features/users/auth/service"
	helper "folio_backend/internals/helpers"
)

var validateAuth = validator.New()

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

// =======================
// Login
// =======================
func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	var body dto.LoginRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateAuth.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	token, user, err := service.Login(ctrl.DB, body.Email, body.Password)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	c.Cookie(&fiber.Cookie{
		Name:     helper.AdminTokenCookie,
		Value:    token,
		HTTPOnly: true,
		Secure:   configs.GetEnv("APP_ENV") == "production",
		SameSite: "Strict",
		Expires:  time.Now().Add(service.SessionTTL),
	})

	return helper.JsonOK(c, "Login successful", fiber.Map{
		"user": fiber.Map{
			"id":    user.AdminUserID,
			"name":  user.AdminUserName,
			"email": user.AdminUserEmail,
		},
	})
}

// =======================
// Logout
// =======================
func (ctrl *AuthController) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     helper.AdminTokenCookie,
		Value:    "",
		HTTPOnly: true,
		Expires:  time.Now().Add(-time.Hour),
	})
	return helper.JsonOK(c, "Logged out", nil)
}

// =======================
// Check (route guard for the admin UI)
// =======================
// Runs behind the auth middleware, so reaching it means the cookie is valid.
func (ctrl *AuthController) Check(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"authenticated": true,
	})
}

// =======================
// Change password (admin only)
// =======================
func (ctrl *AuthController) ChangePassword(c *fiber.Ctx) error {
	var body dto.ChangePasswordRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateAuth.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	userIDStr, _ := c.Locals("user_id").(string)
	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var user model.AdminUserModel
	if err := ctrl.DB.First(&user, "admin_user_id = ?", userID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	if err := service.CheckPasswordHash(user.AdminUserPassword, body.CurrentPassword); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Current password incorrect")
	}

	newHash, err := service.HashPassword(body.NewPassword)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to hash password")
	}

	if err := ctrl.DB.Model(&user).Update("admin_user_password", newHash).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update password")
	}

	return helper.JsonUpdated(c, "Password changed successfully", nil)
}
