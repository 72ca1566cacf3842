package oss

import (
	"bytes"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/aliyun/aliyun-oss-go-sdk/oss"
	"github.com/google/uuid"

	"folio_backend/internals/configs"
)

// Storage is the narrow contract the upload endpoint needs from an
// image host: take bytes, hand back a durable URL.
type Storage interface {
	Save(filename, contentType string, data []byte) (string, error)
}

// NewStorageFromEnv picks the OSS backend when credentials are present,
// local disk otherwise.
func NewStorageFromEnv() Storage {
	if configs.GetEnv("OSS_ENDPOINT") != "" && configs.GetEnv("OSS_BUCKET") != "" {
		st, err := NewOSSStorageFromEnv()
		if err != nil {
			log.Printf("[WARN] OSS init failed, falling back to local storage: %v", err)
		} else {
			return st
		}
	}
	return NewLocalStorage(
		configs.GetEnv("UPLOAD_DIR", "./uploads"),
		configs.GetEnv("UPLOAD_PUBLIC_BASE", "/uploads"),
	)
}

/* =======================
   Aliyun OSS backend
======================= */

type OSSStorage struct {
	bucket     *oss.Bucket
	prefix     string
	publicBase string
}

func NewOSSStorageFromEnv() (*OSSStorage, error) {
	client, err := oss.New(
		configs.GetEnv("OSS_ENDPOINT"),
		configs.GetEnv("OSS_ACCESS_KEY_ID"),
		configs.GetEnv("OSS_ACCESS_KEY_SECRET"),
	)
	if err != nil {
		return nil, fmt.Errorf("oss client: %w", err)
	}

	bucketName := configs.GetEnv("OSS_BUCKET")
	bucket, err := client.Bucket(bucketName)
	if err != nil {
		return nil, fmt.Errorf("oss bucket %q: %w", bucketName, err)
	}

	publicBase := configs.GetEnv("OSS_PUBLIC_BASE_URL")
	if publicBase == "" {
		publicBase = fmt.Sprintf("https://%s.%s", bucketName, configs.GetEnv("OSS_ENDPOINT"))
	}

	return &OSSStorage{
		bucket:     bucket,
		prefix:     configs.GetEnv("OSS_PREFIX", "portfolio"),
		publicBase: strings.TrimRight(publicBase, "/"),
	}, nil
}

func (s *OSSStorage) Save(filename, contentType string, data []byte) (string, error) {
	key := s.prefix + "/" + filename
	if err := s.bucket.PutObject(key, bytes.NewReader(data), oss.ContentType(contentType)); err != nil {
		return "", fmt.Errorf("oss put %q: %w", key, err)
	}
	return s.publicBase + "/" + key, nil
}

/* =======================
   Local disk backend
======================= */

type LocalStorage struct {
	dir        string
	publicBase string
}

func NewLocalStorage(dir, publicBase string) *LocalStorage {
	return &LocalStorage{dir: dir, publicBase: strings.TrimRight(publicBase, "/")}
}

func (s *LocalStorage) Dir() string        { return s.dir }
func (s *LocalStorage) PublicBase() string { return s.publicBase }

func (s *LocalStorage) Save(filename, contentType string, data []byte) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("local storage dir: %w", err)
	}
	path := filepath.Join(s.dir, filename)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("local storage write: %w", err)
	}
	return s.publicBase + "/" + filename, nil
}

// UniqueFilename builds a collision-free object name keeping the extension.
func UniqueFilename(original, ext string) string {
	base := strings.TrimSuffix(filepath.Base(original), filepath.Ext(original))
	base = sanitize(base)
	if base == "" {
		base = "file"
	}
	return fmt.Sprintf("%d-%s-%s%s", time.Now().Unix(), base, uuid.NewString()[:8], ext)
}

func sanitize(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '.':
			b.WriteRune(r)
		}
	}
	return b.String()
}
