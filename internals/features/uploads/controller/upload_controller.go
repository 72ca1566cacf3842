package controller

import (
	"io"
	"log"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"folio_backend/internals/constants"
	helper "folio_backend/internals/helpers"
	"folio_backend/internals/helpers/oss"
)

type UploadController struct {
	Storage oss.Storage
}

func NewUploadController(storage oss.Storage) *UploadController {
	return &UploadController{Storage: storage}
}

// =======================
// Upload (single image)
// =======================
// Multipart "file" field, 5MB cap, JPEG/PNG/WebP/GIF only. The MIME
// type is sniffed from the bytes, not trusted from the client header.
func (ctrl *UploadController) Upload(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "No file uploaded")
	}

	if fileHeader.Size > constants.MaxUploadSize {
		return helper.JsonError(c, fiber.StatusBadRequest, "File size exceeds 5MB limit")
	}

	f, err := fileHeader.Open()
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Failed to read file")
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, constants.MaxUploadSize+1))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Failed to read file")
	}
	if int64(len(data)) > constants.MaxUploadSize {
		return helper.JsonError(c, fiber.StatusBadRequest, "File size exceeds 5MB limit")
	}

	contentType := http.DetectContentType(data)
	if !constants.IsAllowedImageMIME(contentType) {
		return helper.JsonError(c, fiber.StatusBadRequest,
			"Invalid file type. Only JPEG, PNG, WebP, and GIF are allowed")
	}

	converted, outType, ext, err := oss.ConvertToWebP(data, contentType)
	if err != nil {
		log.Printf("[ERROR] upload conversion failed: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to process file")
	}

	filename := oss.UniqueFilename(fileHeader.Filename, ext)
	url, err := ctrl.Storage.Save(filename, outType, converted)
	if err != nil {
		log.Printf("[ERROR] upload storage failed: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to upload file")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"url": url})
}
