package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	resumeController "folio_backend/internals/features/resume/controller"
	authMiddleware "folio_backend/internals/middlewares/auth"
)

// ResumeRoutes mounts the four resume collections behind a single
// :type parameter (education, certifications, skills, experience).
func ResumeRoutes(api fiber.Router, db *gorm.DB) {
	resumeCtrl := resumeController.NewResumeController(db)
	adminOnly := authMiddleware.AdminOnly()

	resume := api.Group("/resume")
	resume.Get("/:type", resumeCtrl.GetAll)
	resume.Get("/:type/:id", resumeCtrl.GetByID)
	resume.Post("/:type", adminOnly, resumeCtrl.Create)
	resume.Put("/:type/:id", adminOnly, resumeCtrl.Update)
	resume.Delete("/:type/:id", adminOnly, resumeCtrl.Delete)
}
