package response

import (
	"time"

	"coworking-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type SpaceResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	Tel       string    `json:"tel"`
	OpenTime  string    `json:"open_time"`
	CloseTime string    `json:"close_time"`
	RoomCount int       `json:"room_count"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromSpaceView(v *queries.SpaceView) *SpaceResponse {
	return &SpaceResponse{
		ID:        v.ID,
		Name:      v.Name,
		Address:   v.Address,
		Tel:       v.Tel,
		OpenTime:  v.OpenTime,
		CloseTime: v.CloseTime,
		RoomCount: v.RoomCount,
		CreatedAt: v.CreatedAt,
		UpdatedAt: v.UpdatedAt,
	}
}
