package middleware

import (
	"errors"
	"strings"
	"time"

	"triethoc/config"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

const tokenLifetime = 24 * time.Hour

// AuthClaims is the token payload issued at login. Role travels in the token
// so read-only role checks do not need a user lookup; AdminOnly still
// verifies against the database before letting writes through.
type AuthClaims struct {
	UserID uint   `json:"userId"`
	Name   string `json:"name"`
	Role   string `json:"role"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// GenerateJWT signs a 24h HS256 token for the user.
func GenerateJWT(userID uint, name, role, email string) (string, error) {
	now := time.Now()
	claims := AuthClaims{
		UserID: userID,
		Name:   name,
		Role:   role,
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenLifetime)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(config.AppConfig.JWTKey))
}

// JWTMiddleware rejects requests without a valid bearer token and stores the
// caller's identity in the request locals for downstream handlers.
func JWTMiddleware(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return JsonResponse(c, fiber.StatusUnauthorized, false, "Missing or invalid Authorization header!", nil)
	}
	tokenString := strings.TrimPrefix(authHeader, "Bearer ")

	claims := new(AuthClaims)
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(config.AppConfig.JWTKey), nil
	})
	if err != nil || !token.Valid || claims.UserID == 0 {
		return JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid or expired token!", nil)
	}

	c.Locals("userId", claims.UserID)
	c.Locals("userRole", claims.Role)

	return c.Next()
}

// JsonResponse is the single response envelope every handler replies with.
func JsonResponse(c *fiber.Ctx, statusCode int, status bool, message string, data interface{}) error {
	return c.Status(statusCode).JSON(fiber.Map{
		"status":  status,
		"message": message,
		"data":    data,
	})
}

// ValidationErrorResponse wraps per-field validation errors in the envelope.
func ValidationErrorResponse(c *fiber.Ctx, errors map[string]string) error {
	return JsonResponse(c, fiber.StatusUnprocessableEntity, false, "Validation failed!", errors)
}
