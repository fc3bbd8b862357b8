package domain

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestUser_JSONNeverExposesPasswordHash(t *testing.T) {
	u := User{
		ID:           "u1",
		Email:        "admin@example.com",
		PasswordHash: "$2a$10$abcdefghijklmnopqrstuv",
		FirstName:    "Ana",
		LastName:     "Cruz",
		Role:         RoleAdmin,
	}

	raw, err := json.Marshal(u)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	body := string(raw)
	if strings.Contains(body, "$2a$") || strings.Contains(body, "password") {
		t.Fatalf("password material leaked: %s", body)
	}
}

func TestRole_Valid(t *testing.T) {
	for _, role := range []Role{RoleAdmin, RoleBarangayOfficial} {
		if !role.Valid() {
			t.Errorf("%q should be valid", role)
		}
	}
	for _, role := range []Role{"", "superadmin", "Admin", "ADMIN"} {
		if role.Valid() {
			t.Errorf("%q should be invalid", role)
		}
	}
}
