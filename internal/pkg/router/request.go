package router

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/shandysiswandi/contactrelay/internal/pkg/goerror"
)

// maxBodyBytes caps the JSON body a handler will read.
const maxBodyBytes = 1 << 20

// Request wraps http.Request with helpers for inbound handlers.
type Request struct {
	// Request is the underlying http.Request.
	*http.Request
}

// DecodeBody decodes the JSON body into dst.
//
// Unknown fields are accepted. An empty body, malformed JSON or trailing data
// yield goerror.NewInvalidFormat. A body over maxBodyBytes is an input
// violation on the root path, not a parse failure.
func (r *Request) DecodeBody(dst any) error {
	if r == nil || r.Body == nil {
		return goerror.NewInvalidFormat()
	}

	dec := json.NewDecoder(http.MaxBytesReader(nil, r.Body, maxBodyBytes))

	if err := dec.Decode(dst); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return goerror.NewInvalidInput([]goerror.Detail{{
				Message: "Request body must be " + strconv.FormatInt(tooLarge.Limit, 10) + " bytes or less",
			}})
		}
		return goerror.NewInvalidFormat()
	}

	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return goerror.NewInvalidFormat()
	}

	return nil
}
