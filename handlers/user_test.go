package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/andrewpaige1/mealbook-api/models"
)

func jsonRequest(target, body string) *http.Request {
	r := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	r.Header.Set("Content-Type", "application/json")
	return r
}

func TestSignupAndLogin(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "test-secret")
	db := newTestHandler(t)

	t.Run("Signup", func(t *testing.T) {
		w := httptest.NewRecorder()
		db.Signup(w, jsonRequest("/api/auth/signup", `{"nickname":"alice","password":"hunter2"}`))
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		if cookies := w.Result().Cookies(); len(cookies) == 0 || cookies[0].Name != "auth_token" {
			t.Error("expected an auth_token cookie to be set")
		}
		var user models.User
		if err := db.Where("nickname = ?", "alice").First(&user).Error; err != nil {
			t.Fatalf("user was not persisted: %v", err)
		}
		if user.PasswordHash == "hunter2" {
			t.Error("password must not be stored in plain text")
		}
	})

	t.Run("DuplicateNickname", func(t *testing.T) {
		w := httptest.NewRecorder()
		db.Signup(w, jsonRequest("/api/auth/signup", `{"nickname":"alice","password":"other"}`))
		if w.Code != http.StatusConflict {
			t.Errorf("expected 409, got %d", w.Code)
		}
	})

	t.Run("LoginGoodPassword", func(t *testing.T) {
		w := httptest.NewRecorder()
		db.Login(w, jsonRequest("/api/auth/login", `{"nickname":"alice","password":"hunter2"}`))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if cookies := w.Result().Cookies(); len(cookies) == 0 || cookies[0].Name != "auth_token" {
			t.Error("expected an auth_token cookie to be set")
		}
	})

	t.Run("LoginBadPassword", func(t *testing.T) {
		w := httptest.NewRecorder()
		db.Login(w, jsonRequest("/api/auth/login", `{"nickname":"alice","password":"wrong"}`))
		if w.Code != http.StatusUnauthorized {
			t.Errorf("expected 401, got %d", w.Code)
		}
	})

	t.Run("LoginUnknownUser", func(t *testing.T) {
		w := httptest.NewRecorder()
		db.Login(w, jsonRequest("/api/auth/login", `{"nickname":"nobody","password":"x"}`))
		if w.Code != http.StatusUnauthorized {
			t.Errorf("expected 401, got %d", w.Code)
		}
	})
}
