package chi

import (
	"crypto/subtle"
	"errors"
	"net/http"
	"strings"
)

// exemptPaths skip authentication and rate limiting so probes and scrapers
// keep working when the search API is locked down.
var exemptPaths = map[string]struct{}{
	"/health":  {},
	"/metrics": {},
}

const bearerScheme = "Bearer "

var (
	errNoAuthHeader = errors.New("missing authorization header")
	errNotBearer    = errors.New("authorization header must use Bearer scheme")
	errBadKey       = errors.New("invalid api key")
)

// keyring holds the accepted API keys.
type keyring [][]byte

func newKeyring(keys []string) keyring {
	kr := make(keyring, 0, len(keys))
	for _, k := range keys {
		if k != "" {
			kr = append(kr, []byte(k))
		}
	}
	return kr
}

// contains compares against every key so timing does not depend on which
// key matched.
func (kr keyring) contains(token string) bool {
	match := 0
	for _, k := range kr {
		match |= subtle.ConstantTimeCompare(k, []byte(token))
	}
	return match == 1
}

func (kr keyring) authorize(r *http.Request) error {
	header := r.Header.Get("Authorization")
	if header == "" {
		return errNoAuthHeader
	}
	token, ok := strings.CutPrefix(header, bearerScheme)
	if !ok {
		return errNotBearer
	}
	if !kr.contains(token) {
		return errBadKey
	}
	return nil
}

// BearerAuthMiddleware guards the catalog API with static API keys.
// Without any non-empty key the middleware is a pass-through.
func BearerAuthMiddleware(apiKeys []string) func(http.Handler) http.Handler {
	kr := newKeyring(apiKeys)

	return func(next http.Handler) http.Handler {
		if len(kr) == 0 {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := exemptPaths[r.URL.Path]; !ok {
				if err := kr.authorize(r); err != nil {
					w.Header().Set("WWW-Authenticate", `Bearer realm="shelf"`)
					writeError(w, http.StatusUnauthorized, err.Error())
					return
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}
