package request

import (
	"coworking-booking/internal/usecase/commands"
)

type CreateSpaceRequest struct {
	Name      string `json:"name" binding:"required,max=100"`
	Address   string `json:"address" binding:"required"`
	Tel       string `json:"tel" binding:"required"`
	OpenTime  string `json:"open_time" binding:"required"`
	CloseTime string `json:"close_time" binding:"required"`
}

func (r CreateSpaceRequest) ToInput() commands.CreateSpaceInput {
	return commands.CreateSpaceInput{
		Name:      r.Name,
		Address:   r.Address,
		Tel:       r.Tel,
		OpenTime:  r.OpenTime,
		CloseTime: r.CloseTime,
	}
}

type UpdateSpaceRequest struct {
	Name      *string `json:"name,omitempty" binding:"omitempty,max=100"`
	Address   *string `json:"address,omitempty"`
	Tel       *string `json:"tel,omitempty"`
	OpenTime  *string `json:"open_time,omitempty"`
	CloseTime *string `json:"close_time,omitempty"`
}

func (r UpdateSpaceRequest) ToInput() commands.UpdateSpaceInput {
	return commands.UpdateSpaceInput{
		Name:      r.Name,
		Address:   r.Address,
		Tel:       r.Tel,
		OpenTime:  r.OpenTime,
		CloseTime: r.CloseTime,
	}
}
