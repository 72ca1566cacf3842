package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	contactService "folio_backend/internals/features/contact/service"
	"folio_backend/internals/helpers/oss"
	routeDetails "folio_backend/internals/route/details"
)

// SetupRoutes mounts every group under /api and the base endpoints at
// the root. Shared infrastructure (mailer, storage) is built once here
// and handed to the groups that need it.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	BaseRoutes(app, db)

	storage := oss.NewStorageFromEnv()
	if local, ok := storage.(*oss.LocalStorage); ok {
		app.Static(local.PublicBase(), local.Dir())
	}

	mailer := contactService.NewMailerFromEnv()
	if !mailer.Enabled() {
		log.Println("[WARN] SMTP not configured, contact notifications disabled")
	}

	api := app.Group("/api")

	log.Println("[INFO] Mounting auth routes...")
	routeDetails.AuthRoutes(api, db)

	log.Println("[INFO] Mounting content routes...")
	routeDetails.ContentRoutes(api, db, mailer)

	log.Println("[INFO] Mounting resume routes...")
	routeDetails.ResumeRoutes(api, db)

	log.Println("[INFO] Mounting utility routes...")
	routeDetails.UtilsRoutes(api, storage)
}
