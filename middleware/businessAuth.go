package middleware

import (
	"net/http"

	businessRepo "pawhub/database/repository/business"
	"pawhub/utils"

	"github.com/gin-gonic/gin"
)

// JWTAuthBusinessMiddleware authenticates business account requests.
func JWTAuthBusinessMiddleware(repo businessRepo.BusinessRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := bearerToken(c)
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}

		businessID, role, err := utils.ExtractClaimsFromToken(tokenString)
		if err != nil || businessID == "" || role != utils.RoleBusiness {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		computedHash := utils.HashToken(tokenString)

		if hashMatchesCache(businessID, computedHash) {
			c.Set("businessID", businessID)
			c.Next()
			return
		}

		businessRec, err := repo.GetByTokenHash(computedHash)
		if err != nil || businessRec == nil || businessRec.ID != businessID {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token revoked or business account not found"})
			return
		}
		storeHashInCache(businessID, computedHash)

		c.Set("businessID", businessID)
		c.Set("businessType", businessRec.BusinessType)
		c.Next()
	}
}
