// internal/httpserver/session.go
//
// Browser sessions. A session is a random ID carried in an HttpOnly cookie
// as an HS256 JWT, so clients cannot forge or pick another player's ID.
// Each session owns at most one current game in the store.

package httpserver

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	sessionCookieName = "wordle_session"
	sessionTTL        = 180 * 24 * time.Hour
)

// sessions signs and verifies session tokens.
type sessions struct {
	secret []byte
	secure bool
	now    func() time.Time
}

// sign creates a token for sid expiring sessionTTL from now.
func (s *sessions) sign(sid string) (string, time.Time, error) {
	now := s.now()
	exp := now.Add(sessionTTL)
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   sid,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(exp),
	})
	ss, err := t.SignedString(s.secret)
	return ss, exp, err
}

// verify returns the session ID carried by a valid token.
func (s *sessions) verify(token string) (string, error) {
	claims := jwt.RegisteredClaims{}
	t, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(s.now))
	if err != nil {
		return "", err
	}
	if !t.Valid || claims.Subject == "" {
		return "", errors.New("invalid session token")
	}
	return claims.Subject, nil
}

// current returns the session ID from the request cookie, if valid.
func (s *sessions) current(r *http.Request) (string, bool) {
	c, err := r.Cookie(sessionCookieName)
	if err != nil || c.Value == "" {
		return "", false
	}
	sid, err := s.verify(c.Value)
	if err != nil {
		return "", false
	}
	return sid, true
}

// ensure returns the request's session ID, issuing a new session cookie when
// the request has none (or an invalid one).
func (s *sessions) ensure(w http.ResponseWriter, r *http.Request) (string, error) {
	if sid, ok := s.current(r); ok {
		return sid, nil
	}
	sid := genID()
	tok, exp, err := s.sign(sid)
	if err != nil {
		return "", err
	}
	sameSite := http.SameSiteLaxMode
	if s.secure {
		sameSite = http.SameSiteNoneMode // required for cross-site cookies when Secure
	}
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    tok,
		Path:     "/",
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: sameSite,
		Expires:  exp,
	})
	return sid, nil
}

// genID creates a 22-char URL-safe, crypto-random identifier (no padding).
func genID() string {
	var b [16]byte
	_, _ = rand.Read(b[:])
	return base64.RawURLEncoding.EncodeToString(b[:])
}
