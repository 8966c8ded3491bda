package api

import (
	"io"
	"mime"
	"net/http"

	"github.com/andrebq/todoapp/auth"
	"github.com/andrebq/todoapp/internal/httpserver"
	"github.com/andrebq/todoapp/internal/validation"
	"github.com/julienschmidt/httprouter"
)

type (
	registerRequest struct {
		Username  string `json:"username" validate:"required,max=64"`
		Email     string `json:"email" validate:"omitempty,email"`
		FirstName string `json:"first_name"`
		LastName  string `json:"last_name"`
		Password  string `json:"password" validate:"required,max=72"`
		Role      string `json:"role"`
	}

	credentials struct {
		Username string `json:"username" validate:"required"`
		Password string `json:"password" validate:"required"`
	}
)

// Mount adds the registration and token endpoints to router.
func Mount(router *httprouter.Router, svc *auth.Service) {
	router.POST("/auth/", register(svc))
	router.POST("/auth/token", issueToken(svc))
}

func register(svc *auth.Service) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		var req registerRequest
		if err := httpserver.DecodeJSON(r, &req); err != nil {
			httpserver.WriteError(w, r, err)
			return
		}
		_, err := svc.Register(r.Context(), auth.Profile{
			Username:  req.Username,
			Email:     req.Email,
			FirstName: req.FirstName,
			LastName:  req.LastName,
			Role:      req.Role,
		}, req.Password)
		if err != nil {
			httpserver.WriteError(w, r, err)
			return
		}
		w.WriteHeader(http.StatusCreated)
	}
}

func issueToken(svc *auth.Service) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		creds, err := readCredentials(r)
		if err != nil {
			httpserver.WriteError(w, r, err)
			return
		}
		tk, err := svc.Login(r.Context(), creds.Username, creds.Password)
		if err != nil {
			httpserver.WriteError(w, r, err)
			return
		}
		httpserver.WriteJSON(w, http.StatusOK, tk)
	}
}

// readCredentials accepts an OAuth2 password form or a JSON object.
func readCredentials(r *http.Request) (credentials, error) {
	var creds credentials
	mt, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mt != "application/x-www-form-urlencoded" {
		err := httpserver.DecodeJSON(r, &creds)
		return creds, err
	}
	r.Body = io.NopCloser(io.LimitReader(r.Body, httpserver.MaxBody))
	if err := r.ParseForm(); err != nil {
		return creds, validation.Field("body", "form", "", "invalid form body")
	}
	creds.Username = r.PostForm.Get("username")
	creds.Password = r.PostForm.Get("password")
	return creds, validation.Struct(&creds)
}
