package httpserver

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
	"testing"

	"github.com/andrebq/todoapp/auth"
	"github.com/andrebq/todoapp/books"
	"github.com/andrebq/todoapp/internal/logutil"
	"github.com/andrebq/todoapp/internal/validation"
	"github.com/andrebq/todoapp/store"
	"github.com/google/uuid"
	"github.com/julienschmidt/httprouter"
	"github.com/rs/zerolog"
	"github.com/steinfletcher/apitest"
	jsonpath "github.com/steinfletcher/apitest-jsonpath"
	"github.com/stretchr/testify/require"
)

func TestWriteError(t *testing.T) {
	for _, tc := range []struct {
		name   string
		err    error
		status int
		detail string
	}{
		{"validation", validation.Field("title", "min", "3", "title is too short"), http.StatusUnprocessableEntity, "Validation failed"},
		{"login", auth.AuthenticationFailed{}, http.StatusUnauthorized, "Could not validate credentials"},
		{"token", fmt.Errorf("unable to identify, cause %w", auth.InvalidToken{}), http.StatusUnauthorized, "Invalid token"},
		{"todo", store.NotFound{Kind: "todo", Key: int64(1)}, http.StatusNotFound, "todo not found"},
		{"book", books.NotFound{ID: 1}, http.StatusNotFound, "book not found"},
		{"duplicate", store.DuplicateUser{Username: "alice"}, http.StatusConflict, "Username already taken"},
		{"other", errors.New("disk on fire"), http.StatusInternalServerError, "Internal server error, check logs for more information"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				WriteError(w, r, tc.err)
			})
			apitest.Handler(handler).Get("/").Expect(t).
				Status(tc.status).
				Assert(jsonpath.Equal("$.detail", tc.detail)).
				End()
		})
	}
}

func TestDecodeJSON(t *testing.T) {
	type payload struct {
		Title string `json:"title" validate:"required,min=3"`
	}
	decode := func(contentType, body string) error {
		req, err := http.NewRequest(http.MethodPost, "/", strings.NewReader(body))
		require.NoError(t, err)
		req.Header.Set("Content-Type", contentType)
		var p payload
		return DecodeJSON(req, &p)
	}

	require.NoError(t, decode("application/json; charset=utf-8", `{"title":"Buy milk"}`))

	var verr validation.Error
	require.True(t, errors.As(decode("text/plain", `{"title":"Buy milk"}`), &verr))
	require.Equal(t, "content_type", verr.Fields[0].Rule)
	require.True(t, errors.As(decode("application/json", `{"title":`), &verr))
	require.Equal(t, "json", verr.Fields[0].Rule)
	require.True(t, errors.As(decode("application/json", `{"title":"ab"}`), &verr))
	require.Equal(t, "title", verr.Fields[0].Field)
}

func TestPathID(t *testing.T) {
	id, err := PathID(httprouter.Params{{Key: "id", Value: "12"}}, "id")
	require.NoError(t, err)
	require.Equal(t, int64(12), id)

	for _, raw := range []string{"0", "-3", "abc", ""} {
		_, err := PathID(httprouter.Params{{Key: "id", Value: raw}}, "id")
		var verr validation.Error
		require.True(t, errors.As(err, &verr), "value %q", raw)
	}
}

func TestIntBetween(t *testing.T) {
	v, err := IntBetween("rating", "5", 0, 6)
	require.NoError(t, err)
	require.Equal(t, 5, v)

	for raw, rule := range map[string]string{"0": "gt", "6": "lt", "five": "int"} {
		_, err := IntBetween("rating", raw, 0, 6)
		var verr validation.Error
		require.True(t, errors.As(err, &verr))
		require.Equal(t, rule, verr.Fields[0].Rule)
	}
}

func TestRequestLog(t *testing.T) {
	var buf bytes.Buffer
	ctx := logutil.WithLogger(context.Background(), zerolog.New(&buf))
	var seen string
	handler := WithRequestLog(ctx, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = w.Header().Get(RequestIDHeader)
		w.WriteHeader(http.StatusTeapot)
	}))

	apitest.Handler(handler).Get("/brew").Expect(t).Status(http.StatusTeapot).End()
	_, err := uuid.Parse(seen)
	require.NoError(t, err)
	require.Contains(t, buf.String(), `"status":418`)
	require.Contains(t, buf.String(), seen)

	given := uuid.NewString()
	apitest.Handler(handler).Get("/brew").Header(RequestIDHeader, given).Expect(t).
		Header(RequestIDHeader, given).
		End()
}

func TestServeListener(t *testing.T) {
	lst, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- ServeListener(ctx, lst, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
		}))
	}()

	res, err := http.Get(fmt.Sprintf("http://%v/", lst.Addr()))
	require.NoError(t, err)
	res.Body.Close()
	require.Equal(t, http.StatusOK, res.StatusCode)

	cancel()
	require.NoError(t, <-done)
}
