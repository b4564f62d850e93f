package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/garage-booking/internal/auth"
)

const ContextUserEmail = "userEmail"

type TokenParser interface {
	Parse(token string) (string, error)
}

// OptionalAuth records the email of a valid bearer token in the context.
// Missing or invalid tokens are ignored; no route is rejected here.
func OptionalAuth(tokens TokenParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		if raw, ok := auth.BearerToken(c.GetHeader("Authorization")); ok {
			if email, err := tokens.Parse(raw); err == nil {
				c.Set(ContextUserEmail, email)
			}
		}
		c.Next()
	}
}

// UserEmail returns the authenticated email, if any.
func UserEmail(c *gin.Context) (string, bool) {
	email := c.GetString(ContextUserEmail)
	return email, email != ""
}
