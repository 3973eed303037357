package session

import (
	"time"

	"github.com/gofiber/fiber/v2"
	jwtware "github.com/gofiber/jwt/v2"
	"github.com/golang-jwt/jwt/v4"
)

const (
	claimSessionID = "session_id"
	tokenTTL       = 72 * time.Hour
)

// IssueToken signs an HS256 token that identifies the session.
func IssueToken(secret []byte, sessionID string, now time.Time) (string, error) {
	claims := jwt.MapClaims{
		claimSessionID: sessionID,
		"iat":          now.Unix(),
		"exp":          now.Add(tokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// Middleware rejects requests without a valid session token.
func Middleware(secret []byte) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey: secret,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "invalid or missing session token"})
		},
	})
}

// SessionIDFromCtx reads the session id placed in `c.Locals("user")` by the
// jwt middleware.
func SessionIDFromCtx(c *fiber.Ctx) (string, error) {
	u := c.Locals("user")
	if u == nil {
		return "", fiber.ErrUnauthorized
	}
	tok, ok := u.(*jwt.Token)
	if !ok {
		return "", fiber.ErrUnauthorized
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return "", fiber.ErrUnauthorized
	}
	id, ok := claims[claimSessionID].(string)
	if !ok || id == "" {
		return "", fiber.ErrUnauthorized
	}
	return id, nil
}
