package model

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/folio-panel/folio/util/common"
)

// Form is a submitted field set, one value per key. Keys an entity does not
// declare are ignored by its Apply.
type Form map[string]string

// FormFromValues keeps the first value of every key.
func FormFromValues(values url.Values) Form {
	f := make(Form, len(values))
	for k, v := range values {
		if len(v) > 0 {
			f[k] = v[0]
		}
	}
	return f
}

func (f Form) str(key string, dst *string) {
	if v, ok := f[key]; ok {
		*dst = v
	}
}

// flag maps the literal "true" to true and every other value to false.
func (f Form) flag(key string, dst *bool) {
	if v, ok := f[key]; ok {
		*dst = v == "true"
	}
}

// int accepts a decimal integer; the empty string stores 0.
func (f Form) int(key string, dst *int) error {
	v, ok := f[key]
	if !ok {
		return nil
	}
	v = strings.TrimSpace(v)
	if v == "" {
		*dst = 0
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return common.NewValidationError(key, "must be an integer")
	}
	*dst = n
	return nil
}
