package httputil

import (
	"bytes"
	"encoding/json"
	"io"
	"reflect"
	"strings"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// GetBodyFields returns the Go names of the fields of editable that are
// present in the JSON request body. PATCH handlers pass the result to
// gorm's Select so that only those columns are updated.
//
// The body is restored after reading so that BindData can decode it.
func GetBodyFields(c *gin.Context, editable any) ([]any, error) {
	body, err := io.ReadAll(c.Request.Body)
	c.Request.Body = io.NopCloser(bytes.NewReader(body))
	if err != nil || len(body) == 0 {
		return []any{}, ErrRequestBodyEmpty
	}

	var present map[string]json.RawMessage
	if err := json.Unmarshal(body, &present); err != nil {
		log.Error().Str("request-id", requestid.Get(c)).Err(err).Msg("could not decode PATCH body")
		return []any{}, ErrInvalidBody
	}

	var fields []any
	for _, field := range reflect.VisibleFields(reflect.Indirect(reflect.ValueOf(editable)).Type()) {
		key, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if _, ok := present[key]; ok && field.IsExported() {
			fields = append(fields, field.Name)
		}
	}

	return fields, nil
}
