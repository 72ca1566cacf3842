package constants

// Upload limits for /api/upload. Images only.
const MaxUploadSize = int64(5 * 1024 * 1024) // 5MB

var AllowedImageMIMEs = map[string]struct{}{
	"image/jpeg": {},
	"image/png":  {},
	"image/webp": {},
	"image/gif":  {},
}

func IsAllowedImageMIME(mime string) bool {
	_, ok := AllowedImageMIMEs[mime]
	return ok
}
