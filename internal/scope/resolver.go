package scope

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// profileInfo is the cached slice of a profile the resolver needs.
type profileInfo struct {
	ID   uuid.UUID `json:"id"`
	Role string    `json:"role"`
}

// ProfileSource is the narrow read surface the resolver needs from the
// profile repository.
type ProfileSource interface {
	FindRoleByID(ctx context.Context, id uuid.UUID) (string, error)
}

// AssignmentSource lists the vendedor ids assigned to a manager.
type AssignmentSource interface {
	ListVendedorIDs(ctx context.Context, managerID uuid.UUID) ([]uuid.UUID, error)
}

const profileCacheTTL = 120 * time.Second

// Resolver turns caller identities into Scopes. Role lookups go through a
// short-lived redis read-through cache keyed per identity, so one navigation
// does not re-resolve the same profile on every request. A stale entry only
// means the role is re-resolved on the next miss; it carries no correctness
// obligation.
type Resolver struct {
	profiles    ProfileSource
	assignments AssignmentSource
	rdb         *redis.Client
}

func NewResolver(profiles ProfileSource, assignments AssignmentSource, rdb *redis.Client) *Resolver {
	return &Resolver{profiles: profiles, assignments: assignments, rdb: rdb}
}

// roleOf resolves the role of id, consulting the cache first.
func (r *Resolver) roleOf(ctx context.Context, id uuid.UUID) (Role, error) {
	cacheKey := "perfil:" + id.String()

	if r.rdb != nil {
		if cached, err := r.rdb.Get(ctx, cacheKey).Bytes(); err == nil {
			var info profileInfo
			if jsonErr := json.Unmarshal(cached, &info); jsonErr == nil {
				return ParseRole(info.Role)
			}
		}
	}

	roleStr, err := r.profiles.FindRoleByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrValidation
		}
		return "", err
	}
	role, err := ParseRole(roleStr)
	if err != nil {
		return "", err
	}

	// Populate cache — best effort, ignore errors
	if r.rdb != nil {
		if b, jsonErr := json.Marshal(profileInfo{ID: id, Role: roleStr}); jsonErr == nil {
			_ = r.rdb.Set(ctx, cacheKey, b, profileCacheTTL).Err()
		}
	}
	return role, nil
}

// Invalidate drops the cached role of id. Called after admin role changes so a
// demotion takes effect without waiting out the TTL.
func (r *Resolver) Invalidate(ctx context.Context, id uuid.UUID) {
	if r.rdb != nil {
		_ = r.rdb.Del(ctx, "perfil:"+id.String()).Err()
	}
}

// ResolveUser returns the single-owner scope of userID after verifying the
// profile exists. Read-only: never mutates state.
func (r *Resolver) ResolveUser(ctx context.Context, userID uuid.UUID) (Scope, error) {
	role, err := r.roleOf(ctx, userID)
	if err != nil {
		return Scope{}, err
	}
	return Single(role, userID), nil
}

// ResolveManager returns the vendedor-id set visible to managerID.
//
// The caller must hold the encargado or admin role. When vendedorID is
// non-nil the result narrows to that single vendedor, which must belong to
// the assigned set — otherwise the request fails closed with ErrForbidden,
// never silently widening scope. A manager with zero assignments yields
// ErrEmptyScope regardless of any requested vendedor.
func (r *Resolver) ResolveManager(ctx context.Context, managerID uuid.UUID, vendedorID *uuid.UUID) (Scope, error) {
	role, err := r.roleOf(ctx, managerID)
	if err != nil {
		return Scope{}, err
	}
	if role != RoleEncargado && role != RoleAdmin {
		return Scope{}, ErrForbidden
	}

	ids, err := r.assignments.ListVendedorIDs(ctx, managerID)
	if err != nil {
		return Scope{}, err
	}
	if len(ids) == 0 {
		return Scope{}, ErrEmptyScope
	}

	if vendedorID != nil {
		for _, id := range ids {
			if id == *vendedorID {
				return Scope{Role: role, OwnerIDs: []uuid.UUID{id}}, nil
			}
		}
		return Scope{}, ErrForbidden
	}

	return Scope{Role: role, OwnerIDs: ids}, nil
}

// ResolveAdmin verifies the caller is an admin and returns the unrestricted
// scope.
func (r *Resolver) ResolveAdmin(ctx context.Context, adminID uuid.UUID) (Scope, error) {
	role, err := r.roleOf(ctx, adminID)
	if err != nil {
		return Scope{}, err
	}
	if role != RoleAdmin {
		return Scope{}, ErrForbidden
	}
	return Scope{Role: role, Unrestricted: true}, nil
}
