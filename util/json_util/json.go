// Package json_util wraps the JSON codec used for content exports.
package json_util

import (
	"io"

	"github.com/goccy/go-json"
)

// WriteIndented encodes v as two-space indented JSON followed by a newline.
func WriteIndented(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

