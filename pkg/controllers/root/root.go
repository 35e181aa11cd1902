// Package root serves the entrypoint of the API.
package root

import (
	"net/http"

	"github.com/finance-tracker/backend/pkg/httputil"
	"github.com/finance-tracker/backend/pkg/models"
	"github.com/gin-gonic/gin"
)

type Response struct {
	Links Links `json:"links"` // Links to all top level endpoints
}

// Links lists the endpoints reachable from the API root.
type Links struct {
	Docs    string `json:"docs" example:"https://ft.example.com/api/docs/index.html"` // Interactive API documentation
	Healthz string `json:"healthz" example:"https://ft.example.com/api/healthz"`      // Health of the backend and its database
	Version string `json:"version" example:"https://ft.example.com/api/version"`      // Version of the running backend
	Metrics string `json:"metrics" example:"https://ft.example.com/api/metrics"`      // Prometheus metrics
	V1      string `json:"v1" example:"https://ft.example.com/api/v1"`                // Finance tracker API, requires authentication
}

// NewLinks builds the root links relative to the public base URL of the API.
func NewLinks(base string) Links {
	return Links{
		Docs:    base + "/docs/index.html",
		Healthz: base + "/healthz",
		Version: base + "/version",
		Metrics: base + "/metrics",
		V1:      base + "/v1",
	}
}

func RegisterRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", Options)
	r.GET("", Get)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/ [options]
func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		API root
// @Description	Lists the top level endpoints of the finance tracker
// @Tags			General
// @Success		200	{object}	Response
// @Router			/ [get]
func Get(c *gin.Context) {
	c.JSON(http.StatusOK, Response{
		Links: NewLinks(c.GetString(string(models.DBContextURL))),
	})
}
