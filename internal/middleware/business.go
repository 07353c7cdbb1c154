package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"gstbill/internal/domain"
)

// ContextKeyBusinessID is the gin context key holding the business scope.
const ContextKeyBusinessID = "business_id"

// BusinessScope parses the :business_id path parameter and stores it in the
// context. Requests with a malformed id are rejected before reaching a handler.
func BusinessScope() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("business_id"))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error":   gin.H{"code": "INVALID_ID", "message": "invalid business ID"},
			})
			return
		}
		c.Set(ContextKeyBusinessID, id)
		c.Next()
	}
}

// GetBusinessID extracts the business ID from the Gin context.
func GetBusinessID(c *gin.Context) (uuid.UUID, error) {
	val, exists := c.Get(ContextKeyBusinessID)
	if !exists {
		return uuid.Nil, domain.ErrBusinessNotFound
	}
	return val.(uuid.UUID), nil
}
