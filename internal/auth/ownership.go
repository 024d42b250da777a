package auth

// Authorize decides whether the caller behind claims may mutate a resource
// owned by ownerID. It is a pure comparison with no store access and is shared
// by every owned resource type. Nil claims mean no validated credential was
// presented; callers must check resource existence before calling this so a
// missing resource surfaces as not-found rather than as an auth failure.
func Authorize(claims *Claims, ownerID int64) error {
	if claims == nil {
		return ErrNoCredential
	}
	if claims.UserID != ownerID {
		return ErrForbidden
	}
	return nil
}
