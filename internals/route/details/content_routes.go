package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	contactController "folio_backend/internals/features/contact/controller"
	contactService "folio_backend/internals/features/contact/service"
	profileController "folio_backend/internals/features/profile/controller"
	projectController "folio_backend/internals/features/projects/controller"
	serviceController "folio_backend/internals/features/services/controller"
	settingsController "folio_backend/internals/features/settings/controller"
	testimonialController "folio_backend/internals/features/testimonials/controller"
	authMiddleware "folio_backend/internals/middlewares/auth"
)

// ContentRoutes registers the per-resource groups. Reads are public
// (the marketing site consumes them); every mutation sits behind the
// admin gate, except the visitor contact form.
func ContentRoutes(api fiber.Router, db *gorm.DB, mailer *contactService.Mailer) {
	adminOnly := authMiddleware.AdminOnly()

	// === SERVICES ===
	serviceCtrl := serviceController.NewServiceController(db)
	services := api.Group("/services")
	services.Get("/", serviceCtrl.GetAllServices)
	services.Get("/:id", serviceCtrl.GetServiceByID)
	services.Post("/", adminOnly, serviceCtrl.CreateService)
	services.Put("/:id", adminOnly, serviceCtrl.UpdateService)
	services.Delete("/:id", adminOnly, serviceCtrl.DeleteService)

	// === PROJECTS ===
	projectCtrl := projectController.NewProjectController(db)
	projects := api.Group("/projects")
	projects.Get("/", projectCtrl.GetAllProjects)
	projects.Get("/:id", projectCtrl.GetProjectByID)
	projects.Post("/", adminOnly, projectCtrl.CreateProject)
	projects.Put("/:id", adminOnly, projectCtrl.UpdateProject)
	projects.Delete("/:id", adminOnly, projectCtrl.DeleteProject)

	// === TESTIMONIALS ===
	testimonialCtrl := testimonialController.NewTestimonialController(db)
	testimonials := api.Group("/testimonials")
	testimonials.Get("/", testimonialCtrl.GetAllTestimonials)
	testimonials.Get("/:id", testimonialCtrl.GetTestimonialByID)
	testimonials.Post("/", adminOnly, testimonialCtrl.CreateTestimonial)
	testimonials.Put("/:id", adminOnly, testimonialCtrl.UpdateTestimonial)
	testimonials.Delete("/:id", adminOnly, testimonialCtrl.DeleteTestimonial)

	// === PROFILE (singleton) ===
	profileCtrl := profileController.NewProfileController(db)
	profile := api.Group("/profile")
	profile.Get("/", profileCtrl.GetProfile)
	profile.Put("/", adminOnly, profileCtrl.UpsertProfile)

	// === CONTACT INFO (singleton) ===
	contactInfoCtrl := contactController.NewContactInfoController(db)
	contact := api.Group("/contact")
	contact.Get("/", contactInfoCtrl.GetContactInfo)
	contact.Put("/", adminOnly, contactInfoCtrl.UpsertContactInfo)

	// === CONTACT MESSAGES ===
	messageCtrl := contactController.NewContactMessageController(db, mailer)
	messages := api.Group("/messages")
	messages.Post("/", messageCtrl.CreateMessage) // public visitor form
	messages.Get("/", adminOnly, messageCtrl.GetAllMessages)
	messages.Get("/:id", adminOnly, messageCtrl.GetMessageByID)
	messages.Patch("/:id", adminOnly, messageCtrl.UpdateMessage)
	messages.Delete("/:id", adminOnly, messageCtrl.DeleteMessage)

	// === SETTINGS (singleton) ===
	settingsCtrl := settingsController.NewSettingsController(db)
	settings := api.Group("/settings")
	settings.Get("/", settingsCtrl.GetSettings)
	settings.Put("/", adminOnly, settingsCtrl.UpsertSettings)
}
