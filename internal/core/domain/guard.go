package domain

import "errors"

var ErrUnauthorized = errors.New("user not authorized")
var ErrValidation = errors.New("validation failed")
var ErrVersionConflict = errors.New("aggregate was modified concurrently")

// AssertOwner is the single ownership rule shared by every owner-scoped
// mutation: the recorded owner must equal the acting principal. Existence
// must be checked before calling this, so a missing resource surfaces as
// not-found rather than unauthorized.
func AssertOwner(ownerID, principalID string) error {
	if ownerID != principalID {
		return ErrUnauthorized
	}
	return nil
}
