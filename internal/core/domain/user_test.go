package domain

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestUser_HasRole(t *testing.T) {
	u := &User{Roles: []string{RoleEditor, RoleViewer}}

	if !u.HasRole(RoleEditor) {
		t.Fatalf("expected editor role")
	}
	if u.HasRole(RoleAdmin) {
		t.Fatalf("did not expect admin role")
	}
	if !u.HasAnyRole(RoleAdmin, RoleViewer) {
		t.Fatalf("expected a match on viewer")
	}
	if u.HasAnyRole(RoleAdmin) {
		t.Fatalf("did not expect a match")
	}
}

func TestUser_PasswordNeverSerialized(t *testing.T) {
	u := User{ID: "u1", Email: "a@test.com", Password: "$2a$10$hash"}

	data, err := json.Marshal(u)
	if err != nil {
		t.Fatalf("marshal user: %v", err)
	}
	if strings.Contains(string(data), "hash") || strings.Contains(string(data), "password") {
		t.Fatalf("password leaked: %s", data)
	}
}
