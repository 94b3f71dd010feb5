package response

import (
	"time"

	"coworking-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationResponse struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	RoomID    uuid.UUID `json:"room_id"`
	RoomName  string    `json:"room_name"`
	SpaceID   uuid.UUID `json:"space_id"`
	SpaceName string    `json:"space_name"`
	Date      string    `json:"date"`
	StartTime string    `json:"start_time"`
	EndTime   string    `json:"end_time"`
	PartySize int       `json:"party_size"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ReservationListResponse struct {
	ID        uuid.UUID `json:"id"`
	RoomID    uuid.UUID `json:"room_id"`
	RoomName  string    `json:"room_name"`
	SpaceName string    `json:"space_name"`
	Date      string    `json:"date"`
	StartTime string    `json:"start_time"`
	EndTime   string    `json:"end_time"`
	PartySize int       `json:"party_size"`
	CreatedAt time.Time `json:"created_at"`
}

const dateLayout = "2006-01-02"

func FromReservationView(v *queries.ReservationView) *ReservationResponse {
	return &ReservationResponse{
		ID:        v.ID,
		UserID:    v.UserID,
		RoomID:    v.RoomID,
		RoomName:  v.RoomName,
		SpaceID:   v.SpaceID,
		SpaceName: v.SpaceName,
		Date:      v.Date.Format(dateLayout),
		StartTime: v.StartTime,
		EndTime:   v.EndTime,
		PartySize: v.PartySize,
		CreatedAt: v.CreatedAt,
		UpdatedAt: v.UpdatedAt,
	}
}

func FromReservationListItem(v *queries.ReservationListItem) *ReservationListResponse {
	return &ReservationListResponse{
		ID:        v.ID,
		RoomID:    v.RoomID,
		RoomName:  v.RoomName,
		SpaceName: v.SpaceName,
		Date:      v.Date.Format(dateLayout),
		StartTime: v.StartTime,
		EndTime:   v.EndTime,
		PartySize: v.PartySize,
		CreatedAt: v.CreatedAt,
	}
}
