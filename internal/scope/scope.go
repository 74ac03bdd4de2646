// Package scope centralizes the authorization contract: it resolves a caller's
// identity and role into the exact set of owner ids the request may see.
// Every handler that reads tenant data goes through a Resolver — there are no
// ad-hoc role string comparisons anywhere else.
package scope

import (
	"errors"

	"github.com/google/uuid"
)

// Role is the closed set of profile roles.
type Role string

const (
	RoleAdmin     Role = "admin"
	RoleVendedor  Role = "vendedor"
	RoleEncargado Role = "encargado"
)

// ParseRole validates a stored role string. Anything outside the closed set is
// rejected rather than treated as an implicit vendedor.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleAdmin, RoleVendedor, RoleEncargado:
		return Role(s), nil
	default:
		return "", errors.New("rol desconocido: " + s)
	}
}

// Sentinel errors, mapped to HTTP statuses by the handlers:
// validation 400, unauthorized 401, forbidden 403, empty scope 404.
var (
	ErrValidation   = errors.New("identificador invalido")
	ErrUnauthorized = errors.New("no autenticado")
	ErrForbidden    = errors.New("permisos insuficientes")
	// ErrEmptyScope: the caller is a legitimate manager with zero assigned
	// vendedores — distinct from ErrForbidden so the API can answer 404.
	ErrEmptyScope = errors.New("sin vendedores asignados")
)

// Scope is the resolved visibility of one request: the role it was resolved
// under and the ordered set of owner ids it may read. Admin scopes are
// unrestricted and carry no id list.
type Scope struct {
	Role         Role
	OwnerIDs     []uuid.UUID
	Unrestricted bool
}

// Single builds the one-owner scope of a vendedor acting on their own data.
func Single(role Role, id uuid.UUID) Scope {
	return Scope{Role: role, OwnerIDs: []uuid.UUID{id}}
}

// Contains reports whether the scope may read rows owned by id.
func (s Scope) Contains(id uuid.UUID) bool {
	if s.Unrestricted {
		return true
	}
	for _, o := range s.OwnerIDs {
		if o == id {
			return true
		}
	}
	return false
}
