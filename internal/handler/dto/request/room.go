package request

import (
	"coworking-booking/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateRoomRequest struct {
	Name     string    `json:"name" binding:"required"`
	SpaceID  uuid.UUID `json:"space_id" binding:"required"`
	Capacity int       `json:"capacity" binding:"required,min=1"`
}

func (r CreateRoomRequest) ToInput() commands.CreateRoomInput {
	return commands.CreateRoomInput{
		Name:     r.Name,
		SpaceID:  r.SpaceID,
		Capacity: r.Capacity,
	}
}

type UpdateRoomRequest struct {
	Name     *string `json:"name,omitempty"`
	Capacity *int    `json:"capacity,omitempty" binding:"omitempty,min=1"`
}

func (r UpdateRoomRequest) ToInput() commands.UpdateRoomInput {
	return commands.UpdateRoomInput{
		Name:     r.Name,
		Capacity: r.Capacity,
	}
}
