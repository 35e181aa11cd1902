package httputil

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// BindData decodes the JSON request body into target.
//
// Values of the wrong JSON type are reported with the offending field,
// all other decoding failures are logged and reported as ErrInvalidBody.
func BindData(c *gin.Context, target any) error {
	err := c.ShouldBindJSON(target)
	if err == nil {
		return nil
	}

	if errors.Is(err, io.EOF) {
		return ErrRequestBodyEmpty
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return fmt.Errorf("%w: %s must be of type %s, got %s", ErrFieldType, typeErr.Field, typeErr.Type, typeErr.Value)
	}

	log.Error().
		Str("request-id", requestid.Get(c)).
		Str("path", c.Request.URL.Path).
		Err(err).
		Msg("could not decode request body")

	return ErrInvalidBody
}

// UUIDFromString parses a resource ID from a path or query parameter.
// The empty string yields uuid.Nil so that optional parameters can be
// passed through unchanged.
func UUIDFromString(s string) (uuid.UUID, error) {
	if s == "" {
		return uuid.Nil, nil
	}

	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %q", ErrInvalidUUID, s)
	}

	return id, nil
}
