package middleware

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	VisitorCookie = "animehub_visitor"
	VisitorHeader = "X-Visitor-ID"

	visitorCookieMaxAge = 365 * 24 * 60 * 60
)

// VisitorSigner issues and verifies anonymous visitor ids of the form
// "<uuid>.<base64url hmac-sha256(uuid)>".
type VisitorSigner struct {
	secret []byte
}

func NewVisitorSigner(secret string) *VisitorSigner {
	return &VisitorSigner{secret: []byte(secret)}
}

// Issue returns a fresh signed visitor id.
func (s *VisitorSigner) Issue() string {
	id := uuid.NewString()
	return id + "." + s.mac(id)
}

// Verify returns the uuid carried by a signed id, or false when the id was tampered with.
func (s *VisitorSigner) Verify(signed string) (string, bool) {
	id, sig, ok := strings.Cut(signed, ".")
	if !ok {
		return "", false
	}
	if _, err := uuid.Parse(id); err != nil {
		return "", false
	}
	if !hmac.Equal([]byte(sig), []byte(s.mac(id))) {
		return "", false
	}
	return id, true
}

func (s *VisitorSigner) mac(id string) string {
	h := hmac.New(sha256.New, s.secret)
	h.Write([]byte(id))
	return base64.RawURLEncoding.EncodeToString(h.Sum(nil))
}

// VisitorIdentity gives every public request a durable anonymous identity.
// The id comes from the cookie or the X-Visitor-ID header and is re-issued
// when missing or invalid; it is always echoed back in both.
func VisitorIdentity(signer *VisitorSigner) gin.HandlerFunc {
	return func(c *gin.Context) {
		signed := c.GetHeader(VisitorHeader)
		if signed == "" {
			signed, _ = c.Cookie(VisitorCookie)
		}

		id, ok := signer.Verify(signed)
		if !ok {
			signed = signer.Issue()
			id, _ = signer.Verify(signed)
		}

		c.Set(ContextVisitorID, id)
		c.Header(VisitorHeader, signed)
		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(VisitorCookie, signed, visitorCookieMaxAge, "/", "", false, true)

		c.Next()
	}
}

// VisitorID returns the verified visitor uuid of the request.
func VisitorID(c *gin.Context) string {
	return c.GetString(ContextVisitorID)
}
