package router

import (
	"errors"
	"net/http"

	"github.com/finance-tracker/backend/pkg/httputil"
	"github.com/finance-tracker/backend/pkg/models"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

const authRealm = `Basic realm="finance-tracker", charset="UTF-8"`

var errCredentialsMissing = errors.New("this endpoint requires HTTP basic authentication")

// BasicAuthMiddleware authenticates the request with the HTTP basic
// authentication credentials and stores the ID of the user in the context.
func BasicAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		username, password, ok := c.Request.BasicAuth()
		if !ok {
			unauthorized(c, errCredentialsMissing)
			return
		}

		user, err := models.Authenticate(models.DB, username, password)
		if errors.Is(err, models.ErrInvalidCredentials) {
			log.Info().Str("request-id", requestid.Get(c)).Str("username", username).Msg("Authentication failed")
			unauthorized(c, err)
			return
		} else if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, httpError{
				Error: err.Error(),
			})
			return
		}

		httputil.SetOwnerID(c, user.ID)
		c.Next()
	}
}

func unauthorized(c *gin.Context, err error) {
	c.Header("WWW-Authenticate", authRealm)
	c.AbortWithStatusJSON(http.StatusUnauthorized, httpError{
		Error: err.Error(),
	})
}
