// Package policy holds the authorization predicates shared by the HTTP
// middleware and the services. Each predicate is pure: it looks only at the
// caller identity and, where relevant, the target resource.
package policy

import "github.com/propertyhub/marketplace/internal/core/domain"

// Owned is implemented by resources that belong to a single user.
type Owned interface {
	OwnerID() string
}

// Predicate is a single authorization check over an identity.
type Predicate func(id *domain.Identity) error

// IsAuthenticated fails with Unauthenticated when no identity is attached.
func IsAuthenticated(id *domain.Identity) error {
	if id == nil || id.ID == "" {
		return domain.ErrUnauthenticated
	}
	return nil
}

// IsAdminOrSuperadmin fails with "Admin access only" for any other role.
func IsAdminOrSuperadmin(id *domain.Identity) error {
	if err := IsAuthenticated(id); err != nil {
		return err
	}
	if !id.Role.IsPrivileged() {
		return domain.ErrAdminOnly
	}
	return nil
}

// IsSuperadmin fails with "SuperAdmin access only" for any other role.
func IsSuperadmin(id *domain.Identity) error {
	if err := IsAuthenticated(id); err != nil {
		return err
	}
	if id.Role != domain.RoleSuperadmin {
		return domain.ErrSuperadminOnly
	}
	return nil
}

// IsResourceOwner fails with Forbidden unless the caller owns res.
func IsResourceOwner(id *domain.Identity, res Owned) error {
	if err := IsAuthenticated(id); err != nil {
		return err
	}
	if res == nil || res.OwnerID() == "" || res.OwnerID() != id.ID {
		return domain.ErrNotOwner
	}
	return nil
}

// IsSelf fails with Forbidden unless userID is the caller's own id.
func IsSelf(id *domain.Identity, userID string) error {
	return IsResourceOwner(id, ownerRef(userID))
}

type ownerRef string

func (o ownerRef) OwnerID() string { return string(o) }
