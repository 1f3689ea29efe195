// Package policy decides whether an authenticated caller may perform an
// operation on a resource. Every resource handler consults the same engine
// instead of re-implementing role and ownership conditionals.
package policy

import (
	"net/http"

	"restaurant-order-api/auth"
	"restaurant-order-api/models"
)

// Decision is the outcome of a policy evaluation. A denied decision
// carries the HTTP status and reason to send back unchanged.
type Decision struct {
	Allowed bool
	Status  int
	Reason  string
}

// Allow returns an allowing decision.
func Allow() Decision {
	return Decision{Allowed: true}
}

// Deny returns a denying decision with the given status and reason.
func Deny(status int, reason string) Decision {
	return Decision{Status: status, Reason: reason}
}

// OwnershipResolver reports which restaurants a user owns. It is queried
// fresh on every evaluation; ownership can change between requests.
type OwnershipResolver interface {
	OwnedRestaurantIDs(ownerID uint) ([]uint, error)
}

// Engine evaluates role and ownership policies.
type Engine struct {
	owners OwnershipResolver
}

func NewEngine(owners OwnershipResolver) *Engine {
	return &Engine{owners: owners}
}

// RequireAdmin allows only admins.
func (e *Engine) RequireAdmin(claims *auth.Claims) Decision {
	if claims.Role != models.RoleAdmin {
		return Deny(http.StatusForbidden, "Admin privileges required")
	}
	return Allow()
}

// RequireOwner allows only restaurant owners.
func (e *Engine) RequireOwner(claims *auth.Claims) Decision {
	if claims.Role != models.RoleOwner {
		return Deny(http.StatusForbidden, "Owner privileges required")
	}
	return Allow()
}

// RequireOwnerOrAdmin allows owners and admins.
func (e *Engine) RequireOwnerOrAdmin(claims *auth.Claims) Decision {
	if claims.Role != models.RoleOwner && claims.Role != models.RoleAdmin {
		return Deny(http.StatusForbidden, "Owner or Admin privileges required")
	}
	return Allow()
}

// Scope is the set of restaurants a caller may act on. Admins get an
// unbounded scope; owners get exactly the restaurants they own.
type Scope struct {
	admin         bool
	restaurantIDs map[uint]struct{}
}

// Contains decides whether the scope covers the given restaurant.
func (s Scope) Contains(restaurantID uint) Decision {
	if s.admin {
		return Allow()
	}
	if _, ok := s.restaurantIDs[restaurantID]; !ok {
		return Deny(http.StatusForbidden, "You are not the owner of this restaurant")
	}
	return Allow()
}

// ScopeFor resolves the caller's restaurant scope. It must be called
// before the target resource is fetched: an owner with no restaurants is
// denied with NotFound so that probing cannot reveal whether the target
// exists at all.
func (e *Engine) ScopeFor(claims *auth.Claims) (Scope, Decision) {
	if claims.Role == models.RoleAdmin {
		return Scope{admin: true}, Allow()
	}
	if claims.Role != models.RoleOwner {
		return Scope{}, Deny(http.StatusForbidden, "Owner or Admin privileges required")
	}

	ids, err := e.owners.OwnedRestaurantIDs(claims.ID)
	if err != nil {
		return Scope{}, Deny(http.StatusInternalServerError, "Failed to resolve ownership")
	}
	if len(ids) == 0 {
		return Scope{}, Deny(http.StatusNotFound, "No restaurants found for this owner")
	}

	set := make(map[uint]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return Scope{restaurantIDs: set}, Allow()
}

// AuthorizeCustomer allows access when the caller is the order's customer.
// Role "user" is authorized by identity equality, never by ownership.
func AuthorizeCustomer(claims *auth.Claims, customerID uint) Decision {
	if claims.ID != customerID {
		return Deny(http.StatusForbidden, "You are not authorized to view this order")
	}
	return Allow()
}
