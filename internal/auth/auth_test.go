package auth

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/julienschmidt/httprouter"
)

func TestAuthentication(t *testing.T) {
	a, err := NewAuthenticator("test-secret", time.Hour)
	if err != nil {
		t.Fatalf("Не удалось создать Authenticator: %v", err)
	}

	t.Run("ValidateToken", func(t *testing.T) {
		token, err := a.GenerateToken("cli")
		if err != nil {
			t.Fatalf("Не удалось создать токен: %v", err)
		}

		claims, err := a.ValidateToken(token)
		if err != nil {
			t.Fatalf("Не удалось валидировать токен: %v", err)
		}
		if claims.Subject != "cli" {
			t.Errorf("Неверный subject в токене: %s", claims.Subject)
		}

		if _, err := a.ValidateToken("invalid.token.string"); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("Ожидалась ErrInvalidToken, получено: %v", err)
		}
	})

	t.Run("WrongSecret", func(t *testing.T) {
		other, _ := NewAuthenticator("other-secret", time.Hour)
		token, _ := other.GenerateToken("cli")
		if _, err := a.ValidateToken(token); err == nil {
			t.Error("Токен с чужой подписью не должен проходить проверку")
		}
	})

	t.Run("Expired", func(t *testing.T) {
		expired, _ := NewAuthenticator("test-secret", -time.Minute)
		token, _ := expired.GenerateToken("cli")
		if _, err := a.ValidateToken(token); err == nil {
			t.Error("Истекший токен не должен проходить проверку")
		}
	})

	t.Run("EmptySecret", func(t *testing.T) {
		if _, err := NewAuthenticator("", time.Hour); !errors.Is(err, ErrEmptySecret) {
			t.Errorf("Ожидалась ErrEmptySecret, получено: %v", err)
		}
	})
}

func TestMiddleware(t *testing.T) {
	a, _ := NewAuthenticator("test-secret", time.Hour)
	token, _ := a.GenerateToken("tester")

	var gotSubject string
	handler := a.Middleware(func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		gotSubject, _ = GetSubjectFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	tests := []struct {
		name   string
		header string
		status int
	}{
		{"NoHeader", "", http.StatusUnauthorized},
		{"BadToken", "Bearer nope", http.StatusUnauthorized},
		{"NotBearer", "Basic " + token, http.StatusUnauthorized},
		{"Valid", "Bearer " + token, http.StatusOK},
		{"LowercaseScheme", "bearer " + token, http.StatusOK},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/v1/calculate", nil)
			if test.header != "" {
				req.Header.Set("Authorization", test.header)
			}
			rr := httptest.NewRecorder()
			handler(rr, req, nil)

			if rr.Code != test.status {
				t.Errorf("Expected status %v, got %v", test.status, rr.Code)
			}
		})
	}

	if gotSubject != "tester" {
		t.Errorf("subject not propagated to context: %q", gotSubject)
	}
}

func TestMiddlewareDisabled(t *testing.T) {
	var a *Authenticator
	called := false
	handler := a.Middleware(func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		called = true
	})

	handler(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil), nil)
	if !called {
		t.Error("nil Authenticator must pass requests through")
	}
}
