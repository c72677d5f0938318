package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func newIssuer() *Issuer { return NewIssuer("test-secret", time.Hour) }

func TestIssueParse_RoundTripKeepsIdentity(t *testing.T) {
	iss := newIssuer()
	tok, err := iss.Issue(Principal{UserID: 7, Email: "maria@gmail.com", Roles: []Role{RoleClient}})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	p, err := iss.Parse(tok)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if p.UserID != 7 || p.Email != "maria@gmail.com" || !p.HasRole(RoleClient) || p.IsAdmin() {
		t.Fatalf("unexpected principal: %+v", p)
	}
}

func TestParse_RejectsTamperedAndExpired(t *testing.T) {
	iss := newIssuer()
	tok, _ := iss.Issue(Principal{UserID: 1, Email: "alex@gmail.com", Roles: []Role{RoleAdmin}})

	if _, err := iss.Parse(tok + "xpto"); err == nil {
		t.Fatalf("tampered token must be rejected")
	}
	if _, err := NewIssuer("other-secret", time.Hour).Parse(tok); err == nil {
		t.Fatalf("token signed with another key must be rejected")
	}

	expired := newIssuer()
	expired.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	old, _ := expired.Issue(Principal{UserID: 1, Email: "alex@gmail.com"})
	if _, err := iss.Parse(old); err == nil {
		t.Fatalf("expired token must be rejected")
	}
}

func TestPrincipalFrom_Empty(t *testing.T) {
	if _, ok := PrincipalFrom(context.Background()); ok {
		t.Fatalf("no principal expected")
	}
	var p *Principal
	if p.HasRole(RoleClient) {
		t.Fatalf("nil principal has no roles")
	}
}

func newRouter(iss *Issuer) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/admin", Authenticate(iss), RequireRole(RoleAdmin), func(c *gin.Context) {
		p, _ := PrincipalFrom(c.Request.Context())
		c.String(http.StatusOK, p.Email)
	})
	return r
}

func TestMiddleware_StatusCodes(t *testing.T) {
	iss := newIssuer()
	r := newRouter(iss)
	admin, _ := iss.Issue(Principal{UserID: 2, Email: "ana@gmail.com", Roles: []Role{RoleAdmin}})
	client, _ := iss.Issue(Principal{UserID: 1, Email: "maria@gmail.com", Roles: []Role{RoleClient}})

	cases := []struct {
		name   string
		header string
		want   int
	}{
		{"missing", "", http.StatusUnauthorized},
		{"not bearer", "Basic abc", http.StatusUnauthorized},
		{"invalid", "Bearer " + admin + "xpto", http.StatusUnauthorized},
		{"client", "Bearer " + client, http.StatusForbidden},
		{"admin", "Bearer " + admin, http.StatusOK},
	}
	for _, tc := range cases {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/admin", nil)
		if tc.header != "" {
			req.Header.Set("Authorization", tc.header)
		}
		r.ServeHTTP(w, req)
		if w.Code != tc.want {
			t.Fatalf("%s: status=%d, expected %d body=%s", tc.name, w.Code, tc.want, w.Body.String())
		}
	}
}
