package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	userRepo "pawhub/database/repository/user"
	"pawhub/utils"

	"github.com/gin-gonic/gin"
)

// JWTAuthUserMiddleware authenticates pet owner requests. The token hash
// is checked against the Redis auth cache first, falling back to the user
// document when the cache misses or is down.
func JWTAuthUserMiddleware(repo userRepo.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := bearerToken(c)
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}

		userID, role, err := utils.ExtractClaimsFromToken(tokenString)
		if err != nil || userID == "" || role != utils.RolePetOwner {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		computedHash := utils.HashToken(tokenString)

		if hashMatchesCache(userID, computedHash) {
			c.Set("userID", userID)
			c.Next()
			return
		}

		// Cache miss: confirm against the stored hash and repopulate.
		userRec, err := repo.GetByTokenHash(computedHash)
		if err != nil || userRec == nil || userRec.ID != userID {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token revoked or user not found"})
			return
		}
		storeHashInCache(userID, computedHash)

		c.Set("userID", userID)
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(authHeader, "Bearer ")
}

// hashMatchesCache checks the auth cache; any cache failure counts as a
// miss so the DB lookup decides.
func hashMatchesCache(id, computedHash string) bool {
	authCache := utils.GetAuthCacheClient()
	if authCache == nil {
		return false
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	cachedHash, err := authCache.Get(ctx, utils.AuthCachePrefix+id).Result()
	if err != nil || cachedHash != computedHash {
		return false
	}
	_ = authCache.Expire(ctx, utils.AuthCachePrefix+id, time.Hour).Err()
	return true
}

func storeHashInCache(id, computedHash string) {
	authCache := utils.GetAuthCacheClient()
	if authCache == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_ = authCache.Set(ctx, utils.AuthCachePrefix+id, computedHash, time.Hour).Err()
}
