package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/rbacdash/rbac-api/internal/core/domain"
)

type stubAuthService struct {
	signupErr error
	loginErr  error

	gotName  string
	gotEmail string
	gotRoles []string
}

func (s *stubAuthService) Signup(_ context.Context, name, email, _ string, roles []string) (*domain.User, string, error) {
	if s.signupErr != nil {
		return nil, "", s.signupErr
	}
	s.gotName, s.gotEmail, s.gotRoles = name, email, roles
	return &domain.User{ID: "u1", Name: name, Email: email, Roles: []string{domain.RoleViewer}}, "tok", nil
}

func (s *stubAuthService) Login(_ context.Context, email, _ string) (*domain.User, string, error) {
	if s.loginErr != nil {
		return nil, "", s.loginErr
	}
	return &domain.User{ID: "u1", Email: email, Roles: []string{domain.RoleViewer}}, "tok", nil
}

func authTestServer(svc *stubAuthService) *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	h := NewAuthHandler(svc)
	e.POST("/api/auth/signup", h.Signup)
	e.POST("/api/auth/login", h.Login)
	return e
}

func postJSON(e *echo.Echo, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestAuthHandler_Signup(t *testing.T) {
	svc := &stubAuthService{}
	e := authTestServer(svc)

	rec := postJSON(e, "/api/auth/signup", `{"name":"Alice","email":"alice@test.com","password":"pass123"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var body struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
		Data    struct {
			User  domain.User `json:"user"`
			Token string      `json:"token"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal body: %v", err)
	}
	if !body.Success || body.Message != "User registered successfully" {
		t.Fatalf("unexpected envelope: %+v", body)
	}
	if body.Data.Token != "tok" || body.Data.User.Email != "alice@test.com" {
		t.Fatalf("unexpected data: %+v", body.Data)
	}
	if svc.gotName != "Alice" {
		t.Fatalf("service not called with request fields: %q", svc.gotName)
	}
}

func TestAuthHandler_Signup_Validation(t *testing.T) {
	e := authTestServer(&stubAuthService{})

	cases := map[string]string{
		"missing name":  `{"email":"a@test.com","password":"p"}`,
		"missing email": `{"name":"A","password":"p"}`,
		"bad email":     `{"name":"A","email":"not-an-email","password":"p"}`,
		"no password":   `{"name":"A","email":"a@test.com"}`,
	}
	for name, body := range cases {
		rec := postJSON(e, "/api/auth/signup", body)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("%s: expected 400, got %d: %s", name, rec.Code, rec.Body.String())
		}
	}
}

func TestAuthHandler_Signup_MalformedJSON(t *testing.T) {
	e := authTestServer(&stubAuthService{})

	rec := postJSON(e, "/api/auth/signup", `{"name":`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "invalid payload") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestAuthHandler_Login(t *testing.T) {
	e := authTestServer(&stubAuthService{})

	rec := postJSON(e, "/api/auth/login", `{"email":"alice@test.com","password":"pass123"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "Login successful") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestAuthHandler_Login_Validation(t *testing.T) {
	e := authTestServer(&stubAuthService{})

	rec := postJSON(e, "/api/auth/login", `{"email":"alice@test.com"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "password is required") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}
