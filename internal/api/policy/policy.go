// Package policy holds the route policy table consulted by the auth and
// RBAC middleware. Policies are registered alongside the routes at startup
// and are read-only afterwards.
//
// Two metadata keys exist — the public flag and the required role — and each
// is resolved independently with a two-level lookup: the operation entry
// ("METHOD /path") first, then the controller entry (first path segment),
// first match wins. An operation-level entry therefore overrides a
// controller-wide default without erasing the other key.
package policy

import (
	"strings"

	"github.com/whiskerworks/cat-registry/internal/core/domain"
)

// RoutePolicy is the resolved {isPublic, requiredRole} pair for one
// operation. An empty RequiredRole means authenticated-but-unroled.
type RoutePolicy struct {
	Public       bool
	RequiredRole domain.Role
}

// Registry is the policy table. Not safe for concurrent mutation; register
// everything before serving.
type Registry struct {
	public map[string]bool
	roles  map[string]domain.Role
}

func NewRegistry() *Registry {
	return &Registry{
		public: make(map[string]bool),
		roles:  make(map[string]domain.Role),
	}
}

// MarkPublic flags an operation or controller as requiring no principal.
func (r *Registry) MarkPublic(id string) {
	r.public[id] = true
}

// RequireRole attaches a required role to an operation or controller.
func (r *Registry) RequireRole(id string, role domain.Role) {
	r.roles[id] = role
}

// Resolve returns the effective policy for an operation within a controller.
func (r *Registry) Resolve(operationID, controllerID string) RoutePolicy {
	var p RoutePolicy
	for _, id := range []string{operationID, controllerID} {
		if v, ok := r.public[id]; ok {
			p.Public = v
			break
		}
	}
	for _, id := range []string{operationID, controllerID} {
		if role, ok := r.roles[id]; ok {
			p.RequiredRole = role
			break
		}
	}
	return p
}

// OperationID builds the operation identifier for a routed request.
func OperationID(method, path string) string {
	return method + " " + path
}

// ControllerID extracts the controller identifier (first path segment) from
// a route path such as "/cats/:id".
func ControllerID(path string) string {
	trimmed := strings.TrimPrefix(path, "/")
	if i := strings.IndexByte(trimmed, '/'); i >= 0 {
		return trimmed[:i]
	}
	return trimmed
}
