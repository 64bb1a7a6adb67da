package models

import (
	"encoding/json"
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestUser_SetAndCheckPassword(t *testing.T) {
	PasswordCost = bcrypt.MinCost
	defer func() { PasswordCost = bcrypt.DefaultCost }()

	u := &User{}
	if err := u.SetPassword("doctor123"); err != nil {
		t.Fatalf("SetPassword failed: %v", err)
	}
	if u.Password == "doctor123" || u.HasLegacyPassword() {
		t.Fatalf("Expected a bcrypt hash, got %q", u.Password)
	}
	if !u.CheckPassword("doctor123") {
		t.Error("Expected the right password to match")
	}
	if u.CheckPassword("wrong") {
		t.Error("Expected a wrong password to be rejected")
	}
}

func TestUser_CheckLegacyPlaintextPassword(t *testing.T) {
	u := &User{Password: "doctor123"}
	if !u.HasLegacyPassword() {
		t.Fatal("Expected a plaintext password to be reported as legacy")
	}
	if !u.CheckPassword("doctor123") {
		t.Error("Expected the legacy password to match")
	}
	if u.CheckPassword("doctor1234") {
		t.Error("Expected a different password to be rejected")
	}
}

func TestUser_PlaintextPasswordStartingLikeAHash(t *testing.T) {
	for _, pw := range []string{"$2secret", "$2a$notahash", "$2b$10$short"} {
		u := &User{Password: pw}
		if !u.HasLegacyPassword() {
			t.Errorf("Expected %q to be reported as legacy", pw)
		}
		if !u.CheckPassword(pw) {
			t.Errorf("Expected legacy password %q to match itself", pw)
		}
	}
}

func TestUser_SanitizeDropsPassword(t *testing.T) {
	u := &User{
		BaseModel:        BaseModel{ID: "secretary-1"},
		Email:            "s@medicab.tn",
		Password:         "$2a$04$hash",
		Role:             RoleSecretary,
		AssignedDoctorID: "doctor-1",
		Status:           UserStatusActive,
	}
	raw, err := json.Marshal(u.Sanitize())
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if strings.Contains(string(raw), "password") {
		t.Errorf("Sanitized user leaks the password: %s", raw)
	}
	if !strings.Contains(string(raw), `"assignedDoctorId":"doctor-1"`) {
		t.Errorf("Expected assignedDoctorId in %s", raw)
	}
}

func TestUser_JSONFieldNames(t *testing.T) {
	raw := `{"id":"doctor-1","email":"dr.ben.ali@medicab.tn","password":"doctor123","name":"Dr","role":"doctor","phone":"1","specialty":"Cardiologie","status":"suspended"}`
	var u User
	if err := json.Unmarshal([]byte(raw), &u); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if u.ID != "doctor-1" || u.Role != RoleDoctor || !u.IsSuspended() || u.Specialty != "Cardiologie" {
		t.Errorf("Unexpected user decoded: %+v", u)
	}
}

func TestBaseModel_EnsureID(t *testing.T) {
	var a, b BaseModel
	a.EnsureID()
	b.EnsureID()
	if a.ID == "" || a.ID == b.ID {
		t.Errorf("Expected distinct generated ids, got %q and %q", a.ID, b.ID)
	}

	c := BaseModel{ID: "patient-1"}
	c.EnsureID()
	if c.ID != "patient-1" {
		t.Errorf("Expected existing id to be kept, got %q", c.ID)
	}
}
