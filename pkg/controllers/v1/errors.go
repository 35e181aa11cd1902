package v1

import (
	"errors"
	"net/http"

	"github.com/finance-tracker/backend/pkg/charts"
	"github.com/finance-tracker/backend/pkg/ledger"
	"github.com/finance-tracker/backend/pkg/models"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type httpError struct {
	Error string `json:"error" example:"An ID specified in the query string was not a valid UUID"`
}

// status returns the appropriate status for an error
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) || errors.Is(err, ledger.ErrReferentialIntegrity) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) || errors.Is(err, charts.ErrNoData) {
		return http.StatusNotFound
	}

	return http.StatusBadRequest
}

// logEngineError logs errors returned by the aggregation engine.
//
// Database errors are already logged by the database callbacks.
func logEngineError(c *gin.Context, err error) {
	if errors.Is(err, ledger.ErrReferentialIntegrity) {
		log.Error().Str("request-id", requestid.Get(c)).Err(err).Msg("report computation")
	}
}

var errContributionNotPositive = errors.New("the contribution amount must be larger than zero")
