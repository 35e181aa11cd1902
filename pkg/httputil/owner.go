package httputil

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const ownerKey = "ft-owner-id"

// SetOwnerID stores the ID of the authenticated user in the context.
func SetOwnerID(c *gin.Context, id uuid.UUID) {
	c.Set(ownerKey, id)
}

// OwnerID returns the ID of the authenticated user.
//
// It is the nil UUID when the request is not authenticated.
func OwnerID(c *gin.Context) uuid.UUID {
	v, ok := c.Get(ownerKey)
	if !ok {
		return uuid.Nil
	}

	id, _ := v.(uuid.UUID)
	return id
}
