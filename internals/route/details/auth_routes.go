package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authController "folio_backend/internals/features/users/auth/controller"
	"folio_backend/internals/middlewares"
	authMiddleware "folio_backend/internals/middlewares/auth"
)

func AuthRoutes(api fiber.Router, db *gorm.DB) {
	authCtrl := authController.NewAuthController(db)
	adminOnly := authMiddleware.AdminOnly()

	auth := api.Group("/auth")
	auth.Post("/login", middlewares.LoginRateLimiter(), authCtrl.Login)
	auth.Post("/logout", authCtrl.Logout)
	auth.Get("/check", adminOnly, authCtrl.Check)
	auth.Post("/change-password", adminOnly, authCtrl.ChangePassword)
}
