package service

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"folio_backend/internals/configs"
	"folio_backend/internals/features/users/auth/model"
)

// SessionTTL is the fixed lifetime of the admin session token.
const SessionTTL = 24 * time.Hour

func HashPassword(plain string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func CheckPasswordHash(hashed, plain string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain))
}

// Login verifies credentials and returns a signed session token.
// Unknown email and wrong password map to the same generic error so the
// response cannot be used for user enumeration.
func Login(db *gorm.DB, email, password string) (string, *model.AdminUserModel, error) {
	secret := strings.TrimSpace(configs.JWTSecret)
	if secret == "" {
		return "", nil, fiber.NewError(fiber.StatusInternalServerError, "JWT_SECRET is not set")
	}

	var user model.AdminUserModel
	if err := db.Where("admin_user_email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid credentials")
		}
		return "", nil, fiber.NewError(fiber.StatusInternalServerError, "Internal server error")
	}

	if err := CheckPasswordHash(user.AdminUserPassword, password); err != nil {
		return "", nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid credentials")
	}

	token, err := signSessionToken(secret, &user)
	if err != nil {
		return "", nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to sign token")
	}
	return token, &user, nil
}

func signSessionToken(secret string, user *model.AdminUserModel) (string, error) {
	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"id":    user.AdminUserID.String(),
		"email": user.AdminUserEmail,
		"iat":   now.Unix(),
		"exp":   now.Add(SessionTTL).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}
