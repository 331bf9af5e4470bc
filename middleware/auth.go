package middleware

import (
	"net/http"
	"strings"

	userRepo "citixo/database/repository/user"
	"citixo/models"
	"citixo/utils"

	"github.com/gin-gonic/gin"
)

const principalKey = "principal"

// AuthMiddleware validates the bearer token, checks it against the stored
// token hash, and resolves it once into a typed principal on the context.
// Handler code reads the principal; it never re-parses headers. The user
// lookup is served from the session cache when a fresh snapshot exists;
// issuing a new token invalidates the snapshot.
func AuthMiddleware(users userRepo.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		userID, role, err := utils.ExtractPrincipalFromToken(tokenString)
		if err != nil || userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}

		snap, ok := utils.GetCachedSession(userID)
		if !ok {
			user, err := users.GetByID(userID)
			if err != nil || user == nil {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
				return
			}
			snap = &utils.SessionSnapshot{
				Email:     user.Email,
				Role:      user.Role,
				TokenHash: user.TokenHash,
			}
			utils.CacheSession(userID, *snap)
		}

		// A revoked or superseded token no longer matches the stored hash.
		if snap.TokenHash == "" || snap.TokenHash != utils.HashToken(tokenString) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Session expired, please sign in again"})
			return
		}
		if role == "" {
			role = snap.Role
		}

		c.Set(principalKey, models.Principal{
			UserID: userID,
			Email:  snap.Email,
			Role:   role,
		})
		c.Next()
	}
}

// GetPrincipal retrieves the principal resolved by AuthMiddleware.
func GetPrincipal(c *gin.Context) (models.Principal, bool) {
	v, ok := c.Get(principalKey)
	if !ok {
		return models.Principal{}, false
	}
	p, ok := v.(models.Principal)
	return p, ok
}
