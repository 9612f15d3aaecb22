package middleware

import (
	"net/http"
	"strings"

	"fittrack/internal/auth"

	"github.com/gin-gonic/gin"
)

// Context keys set by the middleware below.
const (
	ContextUserID  = "userID"
	ContextAccount = "account"
)

// AuthMiddleware requires a valid Bearer token and resolves it to a
// stored account. The account attached to the context has its password
// hash stripped.
func AuthMiddleware(repo auth.AccountRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")

		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "not authorized, no token"})
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "invalid authorization format, use 'Bearer <token>'"})
			return
		}

		accountID, _, err := auth.ValidateToken(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "not authorized, token failed"})
			return
		}

		account, err := repo.FindByID(accountID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "user not found"})
			return
		}

		c.Set(ContextUserID, account.ID)
		c.Set(ContextAccount, account.Sanitized())
		c.Next()
	}
}

// OptionalAuth resolves a Bearer token if one is supplied but never
// rejects the request. Handlers check the context for an account and
// treat its absence as an anonymous caller.
func OptionalAuth(repo auth.AccountRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Next()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.Next()
			return
		}

		accountID, _, err := auth.ValidateToken(parts[1])
		if err != nil {
			c.Next()
			return
		}

		account, err := repo.FindByID(accountID)
		if err != nil {
			c.Next()
			return
		}

		c.Set(ContextUserID, account.ID)
		c.Set(ContextAccount, account.Sanitized())
		c.Next()
	}
}

// AccountFromContext returns the sanitized account attached by the
// middleware, or nil when the request is anonymous.
func AccountFromContext(c *gin.Context) *auth.Account {
	v, exists := c.Get(ContextAccount)
	if !exists {
		return nil
	}
	account, ok := v.(*auth.Account)
	if !ok {
		return nil
	}
	return account
}
