package oss

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"strconv"

	"github.com/chai2010/webp"
	"golang.org/x/image/draw"

	"folio_backend/internals/configs"
)

// ConvertToWebP re-encodes JPEG/PNG uploads to WebP, downscaling when
// wider than the configured cap. WebP and GIF pass through untouched
// (animated GIFs would lose frames on re-encode).
func ConvertToWebP(data []byte, contentType string) (out []byte, outType, ext string, err error) {
	switch contentType {
	case "image/webp":
		return data, contentType, ".webp", nil
	case "image/gif":
		return data, contentType, ".gif", nil
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, "", "", fmt.Errorf("decode image: %w", err)
	}

	img = downscale(img, envInt("UPLOAD_MAX_WIDTH", 1920))

	var buf bytes.Buffer
	quality := float32(envInt("UPLOAD_WEBP_QUALITY", 85))
	if err := webp.Encode(&buf, img, &webp.Options{Quality: quality}); err != nil {
		return nil, "", "", fmt.Errorf("encode webp: %w", err)
	}
	return buf.Bytes(), "image/webp", ".webp", nil
}

func downscale(img image.Image, maxWidth int) image.Image {
	b := img.Bounds()
	if maxWidth <= 0 || b.Dx() <= maxWidth {
		return img
	}
	h := b.Dy() * maxWidth / b.Dx()
	dst := image.NewRGBA(image.Rect(0, 0, maxWidth, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Over, nil)
	return dst
}

func envInt(key string, def int) int {
	if v := configs.GetEnv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return def
}
