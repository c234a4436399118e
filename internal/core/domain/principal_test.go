package domain

import "testing"

func TestCheckOwnership(t *testing.T) {
	owner := Principal{ID: "1", Email: "a@x.com", Role: RoleUser}
	other := Principal{ID: "2", Email: "b@x.com", Role: RoleUser}
	admin := Principal{ID: "3", Email: "admin@x.com", Role: RoleAdmin}

	if err := CheckOwnership(owner, "a@x.com"); err != nil {
		t.Fatalf("owner must pass: %v", err)
	}
	if err := CheckOwnership(other, "a@x.com"); err != ErrForbidden {
		t.Fatalf("non-owner must get ErrForbidden, got %v", err)
	}
	if err := CheckOwnership(admin, "a@x.com"); err != nil {
		t.Fatalf("admin must pass unconditionally: %v", err)
	}
}

func TestRoleValid(t *testing.T) {
	if !RoleUser.Valid() || !RoleAdmin.Valid() {
		t.Fatalf("known roles must be valid")
	}
	if Role("superuser").Valid() {
		t.Fatalf("unknown role must be invalid")
	}
}
