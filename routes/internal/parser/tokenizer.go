package parser

import (
	"strings"

	"github.com/pkg/errors"
)

type fieldToken struct {
	field string
	value string
}

// tokenize splits an argument line into field/value pairs. Chunks are
// separated by single spaces, so a value containing a space ends up split and
// its tail rejected as a malformed field.
func tokenize(argumentLine string) ([]fieldToken, error) {
	tokens := []fieldToken{}
	for _, chunk := range strings.Split(argumentLine, " ") {
		chunk = strings.TrimSpace(chunk)
		if chunk == "" {
			continue
		}

		sep := strings.Index(chunk, "/")
		if sep < 0 {
			return nil, errors.Wrapf(ErrMalformedField, "%q", chunk)
		}

		tokens = append(tokens, fieldToken{
			field: strings.TrimSpace(chunk[:sep]),
			value: strings.TrimSpace(chunk[sep+1:]),
		})
	}
	return tokens, nil
}
