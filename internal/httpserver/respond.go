package httpserver

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"

	"github.com/andrebq/todoapp/auth"
	"github.com/andrebq/todoapp/books"
	"github.com/andrebq/todoapp/internal/logutil"
	"github.com/andrebq/todoapp/internal/validation"
	"github.com/andrebq/todoapp/store"
)

const (
	// MaxBody is the largest request body any endpoint accepts.
	MaxBody = 1 << 20
)

type (
	errorBody struct {
		Detail string                   `json:"detail"`
		Errors []validation.FieldError `json:"errors,omitempty"`
	}
)

func WriteJSON(w http.ResponseWriter, status int, body interface{}) {
	buf, err := json.Marshal(body)
	if err != nil {
		http.Error(w, "unable to encode response", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	w.Write(buf)
}

// DecodeJSON reads a JSON body into out and validates it, any failure
// is a validation.Error.
func DecodeJSON(r *http.Request, out interface{}) error {
	if ct := r.Header.Get("Content-Type"); ct != "" {
		mt, _, err := mime.ParseMediaType(ct)
		if err != nil || mt != "application/json" {
			return validation.Field("body", "content_type", "application/json", "request body must be application/json")
		}
	}
	dec := json.NewDecoder(io.LimitReader(r.Body, MaxBody))
	err := dec.Decode(out)
	if err != nil {
		return validation.Field("body", "json", "", fmt.Sprintf("invalid JSON body: %v", err))
	}
	return validation.Struct(out)
}

// WriteError translates err into a status code and a JSON body, errors
// without a mapping are logged and reported as 500.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	var verr validation.Error
	var notFound store.NotFound
	var bookNotFound books.NotFound
	var dup store.DuplicateUser
	var authFailed auth.AuthenticationFailed
	switch {
	case errors.As(err, &verr):
		WriteJSON(w, http.StatusUnprocessableEntity, errorBody{Detail: "Validation failed", Errors: verr.Fields})
	case errors.As(err, &authFailed):
		w.Header().Set("WWW-Authenticate", "Bearer")
		WriteJSON(w, http.StatusUnauthorized, errorBody{Detail: "Could not validate credentials"})
	case errors.Is(err, auth.InvalidToken{}):
		w.Header().Set("WWW-Authenticate", "Bearer")
		WriteJSON(w, http.StatusUnauthorized, errorBody{Detail: "Invalid token"})
	case errors.As(err, &notFound):
		WriteJSON(w, http.StatusNotFound, errorBody{Detail: fmt.Sprintf("%v not found", notFound.Kind)})
	case errors.As(err, &bookNotFound):
		WriteJSON(w, http.StatusNotFound, errorBody{Detail: "book not found"})
	case errors.As(err, &dup):
		WriteJSON(w, http.StatusConflict, errorBody{Detail: "Username already taken"})
	default:
		log := logutil.GetOrDefault(r.Context())
		log.Error().Err(err).Str("path", r.URL.Path).Msg("Unexpected error")
		WriteJSON(w, http.StatusInternalServerError, errorBody{Detail: "Internal server error, check logs for more information"})
	}
}
