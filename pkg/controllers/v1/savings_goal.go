package v1

import (
	"net/http"

	"github.com/finance-tracker/backend/pkg/httputil"
	"github.com/finance-tracker/backend/pkg/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RegisterSavingsGoalRoutes registers the routes for savings goals with
// the RouterGroup that is passed.
func RegisterSavingsGoalRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsSavingsGoalList)
		r.GET("", GetSavingsGoals)
		r.POST("", CreateSavingsGoals)
	}

	// Progress report
	{
		r.OPTIONS("/progress", OptionsReport)
		r.GET("/progress", GetGoalProgress)
	}

	// Savings goal with ID
	{
		r.OPTIONS("/:id", OptionsSavingsGoalDetail)
		r.GET("/:id", GetSavingsGoal)
		r.PATCH("/:id", UpdateSavingsGoal)
		r.DELETE("/:id", DeleteSavingsGoal)
		r.OPTIONS("/:id/contributions", OptionsSavingsGoalContributions)
		r.POST("/:id/contributions", CreateSavingsGoalContribution)
	}
}

// findSavingsGoal returns the goal with the ID if it is owned by the
// authenticated user.
func findSavingsGoal(c *gin.Context, db *gorm.DB, id string) (models.SavingsGoal, error) {
	goalID, err := httputil.UUIDFromString(id)
	if err != nil {
		return models.SavingsGoal{}, err
	}

	var goal models.SavingsGoal
	err = db.
		Where("id = ? AND owner_id = ?", goalID, httputil.OwnerID(c)).
		First(&goal).Error

	return goal, err
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Savings Goals
// @Security		BasicAuth
// @Success		204
// @Router			/v1/savings-goals [options]
func OptionsSavingsGoalList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Savings Goals
// @Security		BasicAuth
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		string	true	"ID formatted as string"
// @Router			/v1/savings-goals/{id} [options]
func OptionsSavingsGoalDetail(c *gin.Context) {
	_, err := findSavingsGoal(c, models.DB, c.Param("id"))
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Savings Goals
// @Security		BasicAuth
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		string	true	"ID formatted as string"
// @Router			/v1/savings-goals/{id}/contributions [options]
func OptionsSavingsGoalContributions(c *gin.Context) {
	_, err := findSavingsGoal(c, models.DB, c.Param("id"))
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsPost(c)
}

// @Summary		Create savings goals
// @Description	Creates new savings goals
// @Tags			Savings Goals
// @Security		BasicAuth
// @Produce		json
// @Success		201		{object}	SavingsGoalCreateResponse
// @Failure		400		{object}	SavingsGoalCreateResponse
// @Failure		500		{object}	SavingsGoalCreateResponse
// @Param			goals	body		[]v1.SavingsGoalEditable	true	"Savings goals"
// @Router			/v1/savings-goals [post]
func CreateSavingsGoals(c *gin.Context) {
	var goals []SavingsGoalEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &goals)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SavingsGoalCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := SavingsGoalCreateResponse{}

	for _, editable := range goals {
		goal := editable.model()
		goal.OwnerID = httputil.OwnerID(c)

		err = goal.Validate()
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		err = models.DB.Create(&goal).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data, err := newSavingsGoal(c, goal)
		if err != nil {
			status = r.appendError(err, status)
			continue
		}
		r.Data = append(r.Data, SavingsGoalResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		Get savings goals
// @Description	Returns the savings goals of the authenticated user, newest first
// @Tags			Savings Goals
// @Security		BasicAuth
// @Produce		json
// @Success		200	{object}	SavingsGoalListResponse
// @Failure		500	{object}	SavingsGoalListResponse
// @Router			/v1/savings-goals [get]
func GetSavingsGoals(c *gin.Context) {
	goals, err := models.Store{DB: models.DB}.Goals(c.Request.Context(), httputil.OwnerID(c))
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SavingsGoalListResponse{
			Error: &s,
		})
		return
	}

	data := make([]SavingsGoal, 0, len(goals))
	for _, goal := range goals {
		g, err := newSavingsGoal(c, goal)
		if err != nil {
			s := err.Error()
			c.JSON(status(err), SavingsGoalListResponse{
				Error: &s,
			})
			return
		}
		data = append(data, g)
	}

	c.JSON(http.StatusOK, SavingsGoalListResponse{Data: data})
}

// @Summary		Get savings goal
// @Description	Returns a specific savings goal
// @Tags			Savings Goals
// @Security		BasicAuth
// @Produce		json
// @Success		200	{object}	SavingsGoalResponse
// @Failure		400	{object}	SavingsGoalResponse
// @Failure		404	{object}	SavingsGoalResponse
// @Failure		500	{object}	SavingsGoalResponse
// @Param			id	path		string	true	"ID formatted as string"
// @Router			/v1/savings-goals/{id} [get]
func GetSavingsGoal(c *gin.Context) {
	goal, err := findSavingsGoal(c, models.DB, c.Param("id"))
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SavingsGoalResponse{
			Error: &s,
		})
		return
	}

	data, err := newSavingsGoal(c, goal)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SavingsGoalResponse{
			Error: &s,
		})
		return
	}
	c.JSON(http.StatusOK, SavingsGoalResponse{Data: &data})
}

// @Summary		Update savings goal
// @Description	Updates an existing savings goal. Only values to be updated need to be specified.
// @Tags			Savings Goals
// @Security		BasicAuth
// @Accept			json
// @Produce		json
// @Success		200		{object}	SavingsGoalResponse
// @Failure		400		{object}	SavingsGoalResponse
// @Failure		404		{object}	SavingsGoalResponse
// @Failure		500		{object}	SavingsGoalResponse
// @Param			id		path		string					true	"ID formatted as string"
// @Param			goal	body		v1.SavingsGoalEditable	true	"Savings goal"
// @Router			/v1/savings-goals/{id} [patch]
func UpdateSavingsGoal(c *gin.Context) {
	goal, err := findSavingsGoal(c, models.DB, c.Param("id"))
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SavingsGoalResponse{
			Error: &s,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, SavingsGoalEditable{})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SavingsGoalResponse{
			Error: &s,
		})
		return
	}

	var data SavingsGoalEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SavingsGoalResponse{
			Error: &s,
		})
		return
	}

	err = models.DB.Transaction(func(tx *gorm.DB) error {
		err := tx.Model(&goal).Select("", updateFields...).Updates(data.model()).Error
		if err != nil {
			return err
		}

		goal, err = findSavingsGoal(c, tx, goal.ID.String())
		if err != nil {
			return err
		}

		return goal.Validate()
	})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SavingsGoalResponse{
			Error: &s,
		})
		return
	}

	apiResource, err := newSavingsGoal(c, goal)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SavingsGoalResponse{
			Error: &s,
		})
		return
	}
	c.JSON(http.StatusOK, SavingsGoalResponse{Data: &apiResource})
}

// @Summary		Contribute to savings goal
// @Description	Adds the amount to the current amount of the savings goal
// @Tags			Savings Goals
// @Security		BasicAuth
// @Accept			json
// @Produce		json
// @Success		200				{object}	SavingsGoalResponse
// @Failure		400				{object}	SavingsGoalResponse
// @Failure		404				{object}	SavingsGoalResponse
// @Failure		500				{object}	SavingsGoalResponse
// @Param			id				path		string			true	"ID formatted as string"
// @Param			contribution	body		v1.Contribution	true	"Contribution"
// @Router			/v1/savings-goals/{id}/contributions [post]
func CreateSavingsGoalContribution(c *gin.Context) {
	var contribution Contribution
	err := httputil.BindData(c, &contribution)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SavingsGoalResponse{
			Error: &s,
		})
		return
	}

	if !contribution.Amount.IsPositive() {
		s := errContributionNotPositive.Error()
		c.JSON(http.StatusBadRequest, SavingsGoalResponse{
			Error: &s,
		})
		return
	}

	var goal models.SavingsGoal
	err = models.DB.Transaction(func(tx *gorm.DB) error {
		var err error
		goal, err = findSavingsGoal(c, tx, c.Param("id"))
		if err != nil {
			return err
		}

		goal.CurrentAmount = goal.CurrentAmount.Add(contribution.Amount)
		return tx.Model(&goal).Select("CurrentAmount").Updates(models.SavingsGoal{CurrentAmount: goal.CurrentAmount}).Error
	})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SavingsGoalResponse{
			Error: &s,
		})
		return
	}

	data, err := newSavingsGoal(c, goal)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SavingsGoalResponse{
			Error: &s,
		})
		return
	}
	c.JSON(http.StatusOK, SavingsGoalResponse{Data: &data})
}

// @Summary		Delete savings goal
// @Description	Deletes a savings goal
// @Tags			Savings Goals
// @Security		BasicAuth
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		string	true	"ID formatted as string"
// @Router			/v1/savings-goals/{id} [delete]
func DeleteSavingsGoal(c *gin.Context) {
	goal, err := findSavingsGoal(c, models.DB, c.Param("id"))
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Delete(&goal).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
