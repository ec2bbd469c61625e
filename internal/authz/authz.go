package authz

import (
	domain "github.com/Seraphinsupinfo/4CITE/internal/domain/user"
)

// Identity is the authenticated caller as extracted from the bearer
// token: exactly the claims the token carries, nothing fetched back
// from the database.
type Identity struct {
	ID     uint
	Pseudo string
	Role   string
}

func IsOwner(id Identity, ownerID uint) bool {
	return id.ID == ownerID
}

func IsAdmin(id Identity) bool {
	return domain.Role(id.Role).IsAdmin()
}
