package httpadapter

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"leadflow/internal/core/port"
)

type ctxKey int

const userIDKey ctxKey = iota

// authenticate verifies the Authorization bearer token: an HS256 JWT whose
// sub claim carries the user id. The verified id is stored on the request
// context for handlers to read via requestUserID.
func (h *Handler) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
		if raw == "" || raw == r.Header.Get("Authorization") {
			h.respondError(w, port.Unauthorized("Missing bearer token"))
			return
		}

		token, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return h.jwtSecret, nil
		})
		if err != nil || !token.Valid {
			h.respondError(w, port.Unauthorized("Invalid or expired session"))
			return
		}

		sub, err := token.Claims.GetSubject()
		if err != nil {
			h.respondError(w, port.Unauthorized("Invalid or expired session"))
			return
		}
		userID, err := uuid.Parse(sub)
		if err != nil {
			h.respondError(w, port.Unauthorized("Invalid or expired session"))
			return
		}

		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), userIDKey, userID)))
	})
}

// requestUserID returns the authenticated user id placed on the context by
// the authenticate middleware.
func requestUserID(r *http.Request) uuid.UUID {
	id, _ := r.Context().Value(userIDKey).(uuid.UUID)
	return id
}

// MintToken issues a session token for the given user. The auth provider
// normally does this; tests and local tooling use it directly.
func MintToken(secret string, userID uuid.UUID, ttl time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": userID.String(),
		"exp": time.Now().Add(ttl).Unix(),
	})
	return token.SignedString([]byte(secret))
}
