package auth

import "github.com/google/uuid"

// RequirePrincipal fails for anonymous requests.
func RequirePrincipal(p *Principal) error {
	if p == nil {
		return &Error{Reason: ReasonMissingToken}
	}
	return nil
}

// AssertOwner permits a mutation only when p owns the resource. Callers must
// confirm the resource exists before asking.
func AssertOwner(p *Principal, ownerID uuid.UUID) error {
	if err := RequirePrincipal(p); err != nil {
		return err
	}
	if p.ID != ownerID {
		return ErrForbidden
	}
	return nil
}
