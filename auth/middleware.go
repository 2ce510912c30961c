package auth

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/dgrijalva/jwt-go"

	"community-fund/models"
)

// CookieName holds the signed session token in the browser.
const CookieName = "fund_session"

type Claims struct {
	Username string      `json:"username"`
	Role     models.Role `json:"role"`
	jwt.StandardClaims
}

type ctxKey int

const sessionCtxKey ctxKey = 0

// IssueToken signs a session token for the cookie. The cookie expires after
// a day; the persisted session itself never does.
func IssueToken(sess models.Session, key []byte) (string, error) {
	claims := &Claims{
		Username: sess.Username,
		Role:     sess.Role,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(24 * time.Hour).Unix(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(key)
}

// WithSession attaches the current session to the request context when the
// request carries a valid token matching it. It never rejects; gating is
// RequireAuth's job.
func (s *Store) WithSession(key []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(CookieName)
			if err != nil || strings.TrimSpace(cookie.Value) == "" {
				next.ServeHTTP(w, r)
				return
			}
			claims := &Claims{}
			token, err := jwt.ParseWithClaims(cookie.Value, claims, func(*jwt.Token) (interface{}, error) {
				return key, nil
			})
			if err != nil || !token.Valid {
				next.ServeHTTP(w, r)
				return
			}
			sess := s.Current()
			if sess == nil || !strings.EqualFold(sess.Username, claims.Username) {
				next.ServeHTTP(w, r)
				return
			}
			ctx := context.WithValue(r.Context(), sessionCtxKey, *sess)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAuth gates a subtree on an attached session. Browsers are sent to
// the login page; API callers get a plain 401.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := SessionFromContext(r.Context()); !ok {
			if strings.HasPrefix(r.URL.Path, "/api") {
				http.Error(w, "authentication required", http.StatusUnauthorized)
				return
			}
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// SessionFromContext returns the session attached by WithSession.
func SessionFromContext(ctx context.Context) (models.Session, bool) {
	sess, ok := ctx.Value(sessionCtxKey).(models.Session)
	return sess, ok
}
