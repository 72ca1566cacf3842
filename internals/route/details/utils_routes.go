package details

import (
	"github.com/gofiber/fiber/v2"

	uploadController "folio_backend/internals/features/uploads/controller"
	"folio_backend/internals/helpers/oss"
	authMiddleware "folio_backend/internals/middlewares/auth"
)

// UtilsRoutes wires the upload endpoint against whatever storage
// backend the environment selected (OSS bucket or local disk).
func UtilsRoutes(api fiber.Router, storage oss.Storage) {
	uploadCtrl := uploadController.NewUploadController(storage)

	api.Post("/upload", authMiddleware.AdminOnly(), uploadCtrl.Upload)
}
