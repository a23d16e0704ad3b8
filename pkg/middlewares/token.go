package middlewares

import (
	"strings"

	t_token "lifetube/pkg/token"

	"github.com/gofiber/fiber/v2"
)

const (
	//HeaderToken token in Authorization header, "Bearer <token>"
	HeaderToken = "Authorization"

	//CookieToken token in cookie name
	CookieToken = "auth_token"

	//TokenUserID caller's user id from token, set c.locals name
	TokenUserID = "UserID"
	//TokenRole caller's role from token, set c.locals name
	TokenRole = "role"
)

// JWTMiddleware validates JWT in the Authorization header or cookie
func JWTMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenStr := ""
		if auth := c.Get(HeaderToken); strings.HasPrefix(auth, "Bearer ") {
			tokenStr = strings.TrimPrefix(auth, "Bearer ")
		}

		if tokenStr == "" {
			tokenStr = c.Cookies(CookieToken)
		}

		if tokenStr == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Missing token",
			})
		}

		claims, err := t_token.ParseJWT(tokenStr)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid token",
			})
		}

		c.Locals(TokenUserID, claims.UserID)
		c.Locals(TokenRole, claims.Role)

		return c.Next()
	}
}

// CallerID read the authenticated user's id set by JWTMiddleware
func CallerID(c *fiber.Ctx) string {
	id, _ := c.Locals(TokenUserID).(string)
	return id
}
