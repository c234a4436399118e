package domain

import "errors"

var ErrForbidden = errors.New("access forbidden")

// Principal is the authenticated identity derived from verified token
// claims. It is attached to the request context by the auth middleware and
// is the only channel through which downstream checks learn who is calling.
// Immutable after construction; never persisted.
type Principal struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

// IsAdmin reports whether the principal holds the admin role.
func (p Principal) IsAdmin() bool {
	return p.Role == RoleAdmin
}

// CheckOwnership enforces the per-resource rule: admins may act on any
// resource, everyone else only on resources they own. Role alone is not
// enough once the concrete record is loaded, which is why resource services
// call this after the fetch, not before.
func CheckOwnership(p Principal, ownerEmail string) error {
	if p.IsAdmin() {
		return nil
	}
	if p.Email == ownerEmail {
		return nil
	}
	return ErrForbidden
}
