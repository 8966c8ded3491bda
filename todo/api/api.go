// Package api exposes the todo service: account endpoints, owner scoped
// todo endpoints and a health probe.
package api

import (
	"context"
	"net/http"

	"github.com/andrebq/todoapp/auth"
	authapi "github.com/andrebq/todoapp/auth/api"
	"github.com/andrebq/todoapp/internal/httpserver"
	"github.com/andrebq/todoapp/internal/logutil"
	"github.com/andrebq/todoapp/store"
	"github.com/julienschmidt/httprouter"
)

type (
	todoRequest struct {
		Title       string `json:"title" validate:"required,min=3"`
		Description string `json:"description" validate:"required,min=3,max=100"`
		Priority    int    `json:"priority" validate:"gt=0,lt=6"`
		Complete    *bool  `json:"complete" validate:"required"`
	}
)

func (t todoRequest) fields() store.TodoFields {
	return store.TodoFields{
		Title:       t.Title,
		Description: t.Description,
		Priority:    t.Priority,
		Complete:    *t.Complete,
	}
}

func AsHandler(ctx context.Context, db *store.DB, svc *auth.Service) http.Handler {
	router := httprouter.New()
	realm := authapi.NewRealm(svc)

	authapi.Mount(router, svc)

	router.GET("/todo/", realm.ProtectHandle(listTodos(db)))
	router.POST("/todo/", realm.ProtectHandle(createTodo(db)))
	router.GET("/todo/:id", realm.ProtectHandle(getTodo(db)))
	router.PUT("/todo/:id", realm.ProtectHandle(updateTodo(db)))
	router.DELETE("/todo/:id", realm.ProtectHandle(deleteTodo(db)))

	router.GET("/healthz", health(db))
	return router
}

// owned returns the todos of the caller, the realm guarantees an identity.
func owned(db *store.DB, r *http.Request) *store.OwnedTodos {
	id, _ := auth.IdentityFrom(r.Context())
	return db.Todos().For(id.ID)
}

func listTodos(db *store.DB) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		todos, err := owned(db, r).List(r.Context())
		if err != nil {
			httpserver.WriteError(w, r, err)
			return
		}
		httpserver.WriteJSON(w, http.StatusOK, todos)
	}
}

func getTodo(db *store.DB) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		id, err := httpserver.PathID(ps, "id")
		if err != nil {
			httpserver.WriteError(w, r, err)
			return
		}
		todo, err := owned(db, r).Get(r.Context(), id)
		if err != nil {
			httpserver.WriteError(w, r, err)
			return
		}
		httpserver.WriteJSON(w, http.StatusOK, todo)
	}
}

func createTodo(db *store.DB) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		var req todoRequest
		if err := httpserver.DecodeJSON(r, &req); err != nil {
			httpserver.WriteError(w, r, err)
			return
		}
		todo, err := owned(db, r).Create(r.Context(), req.fields())
		if err != nil {
			httpserver.WriteError(w, r, err)
			return
		}
		log := logutil.GetOrDefault(r.Context())
		log.Info().Int64("todo.id", todo.ID).Msg("Todo created")
		httpserver.WriteJSON(w, http.StatusCreated, todo)
	}
}

func updateTodo(db *store.DB) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		id, err := httpserver.PathID(ps, "id")
		if err != nil {
			httpserver.WriteError(w, r, err)
			return
		}
		var req todoRequest
		if err := httpserver.DecodeJSON(r, &req); err != nil {
			httpserver.WriteError(w, r, err)
			return
		}
		if err := owned(db, r).Replace(r.Context(), id, req.fields()); err != nil {
			httpserver.WriteError(w, r, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func deleteTodo(db *store.DB) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		id, err := httpserver.PathID(ps, "id")
		if err != nil {
			httpserver.WriteError(w, r, err)
			return
		}
		if err := owned(db, r).Delete(r.Context(), id); err != nil {
			httpserver.WriteError(w, r, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func health(db *store.DB) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		if err := db.Ping(r.Context()); err != nil {
			log := logutil.GetOrDefault(r.Context())
			log.Error().Err(err).Msg("Database ping failed")
			httpserver.WriteJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
			return
		}
		httpserver.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}
