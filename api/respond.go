package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rohanj-gh/devfolio-backend/errs"
	"github.com/rohanj-gh/devfolio-backend/schemas"
	"github.com/rs/zerolog"
)

type Responder struct {
	logger zerolog.Logger
}

func NewResponder(logger zerolog.Logger) Responder {
	return Responder{logger}
}

func (r Responder) WriteJSON(w http.ResponseWriter, data any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")

	jsonData, err := json.Marshal(data)
	if err != nil {
		r.logger.Error().Err(err).Msg("error marshaling response data")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if _, err := w.Write(jsonData); err != nil {
		r.logger.Error().Err(err).Msg("error writing response")
	}
}

// WriteError renders failures as {"error": <message>} with the status code
// carried by the ApiErr. The collaborator's message is passed through
// verbatim; unexpected errors become plain 500s.
func (r Responder) WriteError(w http.ResponseWriter, err error) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")

	var apiErr *errs.ApiErr
	if !errors.As(err, &apiErr) {
		r.logger.Error().Msg(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		r.WriteJSON(w, ErrorResponse{Error: err.Error()})
		return
	}

	if apiErr.StatusCode >= http.StatusInternalServerError {
		r.logger.Error().Msg(apiErr.Error())
	}

	w.WriteHeader(apiErr.StatusCode)
	r.WriteJSON(w, ErrorResponse{Error: apiErr.Error(), Field: apiErr.Field})
}

// WriteValidationErrors reports field-scoped constraint violations as a 400
// before any store call happens.
func (r Responder) WriteValidationErrors(w http.ResponseWriter, fieldErrs schemas.FieldErrors) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusBadRequest)
	r.WriteJSON(w, map[string]any{
		"error":  fieldErrs.Error(),
		"errors": fieldErrs,
	})
}
