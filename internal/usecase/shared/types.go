package shared

import (
	"coworking-booking/internal/domain/user"

	"github.com/google/uuid"
)

// Actor is the resolved principal attached to every write operation by
// the auth layer.
type Actor struct {
	ID   uuid.UUID
	Role user.Role
}

func (a Actor) IsAdmin() bool {
	return a.Role.IsAdmin()
}

// CanManage reports whether the actor may mutate a record owned by ownerID.
func (a Actor) CanManage(ownerID uuid.UUID) bool {
	return a.ID == ownerID || a.IsAdmin()
}
