package v1

import (
	"net/http"

	"github.com/finance-tracker/backend/pkg/httputil"
	"github.com/finance-tracker/backend/pkg/models"
	"github.com/gin-gonic/gin"
)

type User struct {
	models.DefaultModel
	Username string `json:"username" example:"demo"`          // Name used to log in
	Email    string `json:"email" example:"demo@example.com"` // Email address of the user
}

type UserResponse struct {
	Data  *User   `json:"data"`                                                                // Data for the user
	Error *string `json:"error" example:"an error occurred on the server during your request"` // The error, if any occurred
}

// RegisterUserRoutes registers the routes for the authenticated user
// with the RouterGroup that is passed.
func RegisterUserRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsMe)
	r.GET("", GetMe)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Users
// @Security		BasicAuth
// @Success		204
// @Router			/v1/me [options]
func OptionsMe(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Authenticated user
// @Description	Returns the user the request is authenticated as
// @Tags			Users
// @Security		BasicAuth
// @Produce		json
// @Success		200	{object}	UserResponse
// @Failure		404	{object}	UserResponse
// @Failure		500	{object}	UserResponse
// @Router			/v1/me [get]
func GetMe(c *gin.Context) {
	var user models.User
	err := models.DB.Where("id = ?", httputil.OwnerID(c)).First(&user).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), UserResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusOK, UserResponse{Data: &User{
		DefaultModel: user.DefaultModel,
		Username:     user.Username,
		Email:        user.Email,
	}})
}
