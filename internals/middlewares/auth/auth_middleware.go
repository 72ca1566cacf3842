package auth

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"folio_backend/internals/configs"
	helper "folio_backend/internals/helpers"
)

// AdminOnly gates mutating admin requests behind the session cookie.
// Missing, malformed and expired tokens are all rejected the same way,
// before any store access happens.
func AdminOnly() fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := helper.GetRawAdminToken(c)
		if tokenString == "" {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
		}

		secret := configs.JWTSecret
		if secret == "" {
			log.Println("[ERROR] JWT_SECRET is empty")
			return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error")
		}

		claims := jwt.MapClaims{}
		token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
		}

		if id, ok := claims["id"].(string); ok {
			c.Locals("user_id", id)
		}
		if email, ok := claims["email"].(string); ok {
			c.Locals("user_email", email)
		}
		return c.Next()
	}
}
