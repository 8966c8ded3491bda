package api

import (
	"net/http"
	"regexp"

	"github.com/andrebq/todoapp/auth"
	"github.com/andrebq/todoapp/internal/httpserver"
	"github.com/andrebq/todoapp/internal/logutil"
	"github.com/julienschmidt/httprouter"
)

type (
	// SecurityRealm rejects requests without a valid bearer token and
	// hands the verified auth.Identity to the protected handler.
	SecurityRealm struct {
		svc *auth.Service
	}
)

var (
	bearerTokenRE = regexp.MustCompile(`(?i)^Bearer\s+(\S+)$`)
)

func NewRealm(svc *auth.Service) *SecurityRealm {
	return &SecurityRealm{svc: svc}
}

func (s *SecurityRealm) Protect(sensitive http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		r, err := s.checkToken(r)
		if err != nil {
			httpserver.WriteError(w, r, err)
			return
		}
		sensitive.ServeHTTP(w, r)
	})
}

// ProtectHandle is Protect for httprouter handles.
func (s *SecurityRealm) ProtectHandle(sensitive httprouter.Handle) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		r, err := s.checkToken(r)
		if err != nil {
			httpserver.WriteError(w, r, err)
			return
		}
		sensitive(w, r, ps)
	}
}

func (s *SecurityRealm) checkToken(r *http.Request) (*http.Request, error) {
	ctx := r.Context()
	log := logutil.GetOrDefault(ctx)
	groups := bearerTokenRE.FindStringSubmatch(r.Header.Get("Authorization"))
	if len(groups) == 0 {
		log.Debug().Msg("Request without bearer token")
		return r, auth.InvalidToken{}
	}
	id, err := s.svc.Identify(groups[1])
	if err != nil {
		log.Debug().Err(err).Msg("Rejected bearer token")
		return r, err
	}
	log = log.With().Str("username", id.Username).Int64("user.id", id.ID).Logger()
	ctx = logutil.WithLogger(auth.WithIdentity(ctx, id), log)
	return r.WithContext(ctx), nil
}
