package domain

// Claims carries the identity facts extracted from a validated session token.
// Validity is purely a function of the token's signature and expiry; nothing
// here is looked up against storage.
type Claims struct {
	UserID int64
	Email  string
	Role   Role
}

// IsOwnerOrAdmin is the single ownership gate shared by every mutating
// operation: admins may touch any listing, everyone else only their own.
func (c Claims) IsOwnerOrAdmin(ownerID int64) bool {
	return c.Role == RoleAdmin || c.UserID == ownerID
}
