// Package version reports the version of the running backend.
package version

import (
	"net/http"
	"runtime"

	"github.com/finance-tracker/backend/pkg/httputil"
	"github.com/gin-gonic/gin"
)

type Response struct {
	Data Object `json:"data"` // Version information
}

type Object struct {
	Version   string `json:"version" example:"1.1.0"`     // Release of the backend
	GoVersion string `json:"goVersion" example:"go1.22.1"` // Go toolchain the backend was built with
}

// RegisterRoutes registers the version endpoint reporting the given release.
func RegisterRoutes(r *gin.RouterGroup, release string) {
	r.OPTIONS("", Options)
	r.GET("", Get(release))
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/version [options]
func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}

// Get returns the handler reporting release.
//
// @Summary		API version
// @Description	Returns the release and Go version of the backend
// @Tags			General
// @Success		200	{object}	Response
// @Router			/version [get]
func Get(release string) gin.HandlerFunc {
	object := Object{
		Version:   release,
		GoVersion: runtime.Version(),
	}

	return func(c *gin.Context) {
		c.JSON(http.StatusOK, Response{Data: object})
	}
}
