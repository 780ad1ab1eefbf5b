package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"fintrack/internal/core"
)

const maxBodyBytes = 1 << 20

// decodeJSON reads one JSON object from the request body into dst. Unknown
// fields are ignored. Every failure is reported as core.ErrValidation.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	body := http.MaxBytesReader(w, r.Body, maxBodyBytes)
	dec := json.NewDecoder(body)

	if err := dec.Decode(dst); err != nil {
		var (
			syntaxErr *json.SyntaxError
			typeErr   *json.UnmarshalTypeError
			maxErr    *http.MaxBytesError
		)
		switch {
		case errors.Is(err, io.EOF):
			return fmt.Errorf("%w: request body is required", core.ErrValidation)
		case errors.As(err, &syntaxErr), errors.Is(err, io.ErrUnexpectedEOF):
			return fmt.Errorf("%w: malformed JSON body", core.ErrValidation)
		case errors.As(err, &typeErr) && typeErr.Field == "":
			return fmt.Errorf("%w: request body must be a JSON object", core.ErrValidation)
		case errors.As(err, &typeErr):
			return fmt.Errorf("%w: field '%s' must be of type %s", core.ErrValidation, typeErr.Field, typeErr.Type)
		case errors.As(err, &maxErr):
			return fmt.Errorf("%w: request body exceeds %d bytes", core.ErrValidation, maxErr.Limit)
		default:
			return fmt.Errorf("%w: %v", core.ErrValidation, err)
		}
	}
	return nil
}
