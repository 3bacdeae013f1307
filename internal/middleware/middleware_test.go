package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/clowiiza1/pukkeconnect-backend/internal/authz"
	"github.com/clowiiza1/pukkeconnect-backend/internal/logging"
	"github.com/clowiiza1/pukkeconnect-backend/internal/models"
	"github.com/clowiiza1/pukkeconnect-backend/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

const testSecret = "middleware-test-secret"

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestRouter(t *testing.T) (*gin.Engine, *services.AuthService) {
	t.Helper()
	resolver, err := authz.NewResolver()
	if err != nil {
		t.Fatal(err)
	}
	auth := services.NewAuthService(testSecret)

	r := gin.New()
	r.Use(RequestLogger(zerolog.Nop()))
	api := r.Group("/api", JWTAuth(auth, resolver))
	api.GET("/whoami", func(c *gin.Context) {
		id := CurrentIdentity(c)
		c.String(http.StatusOK, id.StudentID+"/"+id.Role)
	})
	api.POST("/quizzes", RequireCapability(authz.QuizCreate), func(c *gin.Context) {
		c.Status(http.StatusCreated)
	})
	r.GET("/ws", QueryTokenAuth(auth, resolver), func(c *gin.Context) {
		c.String(http.StatusOK, CurrentIdentity(c).StudentID)
	})
	r.GET("/rid", func(c *gin.Context) {
		c.String(http.StatusOK, logging.RequestIDFromContext(c.Request.Context()))
	})
	return r, auth
}

func token(t *testing.T, auth *services.AuthService, role string) string {
	t.Helper()
	tok, err := auth.GenerateToken(models.User{ID: "u-1", Role: role})
	if err != nil {
		t.Fatal(err)
	}
	return tok
}

func TestJWTAuth(t *testing.T) {
	r, auth := newTestRouter(t)
	valid := token(t, auth, models.RoleStudent)

	tests := []struct {
		name   string
		header string
		want   int
		body   string
	}{
		{"missing header", "", http.StatusUnauthorized, ""},
		{"wrong scheme", "Basic abc", http.StatusUnauthorized, ""},
		{"bad token", "Bearer nope", http.StatusUnauthorized, ""},
		{"valid", "Bearer " + valid, http.StatusOK, "u-1/student"},
	}
	for _, tt := range tests {
		req := httptest.NewRequest(http.MethodGet, "/api/whoami", nil)
		if tt.header != "" {
			req.Header.Set("Authorization", tt.header)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != tt.want {
			t.Errorf("%s: status = %d, want %d", tt.name, w.Code, tt.want)
		}
		if tt.body != "" && w.Body.String() != tt.body {
			t.Errorf("%s: body = %q, want %q", tt.name, w.Body.String(), tt.body)
		}
	}
}

func TestRequireCapability(t *testing.T) {
	r, auth := newTestRouter(t)

	tests := []struct {
		role string
		want int
	}{
		{models.RoleStudent, http.StatusForbidden},
		{models.RoleSocietyAdmin, http.StatusCreated},
		{models.RoleUniversityAdmin, http.StatusCreated},
		{"alumni", http.StatusForbidden},
	}
	for _, tt := range tests {
		req := httptest.NewRequest(http.MethodPost, "/api/quizzes", nil)
		req.Header.Set("Authorization", "Bearer "+token(t, auth, tt.role))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != tt.want {
			t.Errorf("role %s: status = %d, want %d", tt.role, w.Code, tt.want)
		}
	}
}

func TestQueryTokenAuth(t *testing.T) {
	r, auth := newTestRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ws", nil))
	if w.Code != http.StatusUnauthorized {
		t.Errorf("no token: status = %d, want 401", w.Code)
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ws?token="+token(t, auth, models.RoleStudent), nil))
	if w.Code != http.StatusOK || w.Body.String() != "u-1" {
		t.Errorf("token: status = %d body = %q", w.Code, w.Body.String())
	}
}

func TestRequestLoggerRequestID(t *testing.T) {
	r, _ := newTestRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/rid", nil))
	generated := w.Header().Get(RequestIDHeader)
	if generated == "" || w.Body.String() != generated {
		t.Errorf("generated id header %q, context %q", generated, w.Body.String())
	}

	req := httptest.NewRequest(http.MethodGet, "/rid", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Header().Get(RequestIDHeader) != "abc-123" || w.Body.String() != "abc-123" {
		t.Errorf("propagated id header %q, context %q", w.Header().Get(RequestIDHeader), w.Body.String())
	}
}
