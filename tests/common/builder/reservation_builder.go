//go:build unit || e2e

package builder

import (
	"time"

	reqdto "coworking-booking/internal/handler/dto/request"
	"coworking-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationBuilder struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	RoomID    uuid.UUID
	RoomName  string
	SpaceID   uuid.UUID
	SpaceName string
	Date      time.Time
	StartTime string
	EndTime   string
	PartySize int
	CreatedAt time.Time
	UpdatedAt time.Time
}

func NewReservationBuilder() *ReservationBuilder {
	now := time.Now().UTC()
	return &ReservationBuilder{
		ID:        uuid.New(),
		UserID:    uuid.New(),
		RoomID:    uuid.New(),
		RoomName:  "Focus Room",
		SpaceID:   uuid.New(),
		SpaceName: "Shibuya Hub",
		Date:      time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		StartTime: "10:00",
		EndTime:   "12:00",
		PartySize: 2,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (b *ReservationBuilder) WithUserID(id uuid.UUID) *ReservationBuilder {
	b.UserID = id
	return b
}

func (b *ReservationBuilder) WithSlot(start, end string) *ReservationBuilder {
	b.StartTime = start
	b.EndTime = end
	return b
}

func (b *ReservationBuilder) BuildCreateRequestDTO() reqdto.CreateReservationRequest {
	return reqdto.CreateReservationRequest{
		RoomID:    b.RoomID,
		Date:      b.Date.Format("2006-01-02"),
		StartTime: b.StartTime,
		EndTime:   b.EndTime,
		PartySize: b.PartySize,
	}
}

func (b *ReservationBuilder) BuildUpdateRequestDTO() reqdto.UpdateReservationRequest {
	start := b.StartTime
	end := b.EndTime
	return reqdto.UpdateReservationRequest{
		StartTime: &start,
		EndTime:   &end,
	}
}

func (b *ReservationBuilder) BuildView() *queries.ReservationView {
	return &queries.ReservationView{
		ID:        b.ID,
		UserID:    b.UserID,
		RoomID:    b.RoomID,
		RoomName:  b.RoomName,
		SpaceID:   b.SpaceID,
		SpaceName: b.SpaceName,
		Date:      b.Date,
		StartTime: b.StartTime,
		EndTime:   b.EndTime,
		PartySize: b.PartySize,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

func (b *ReservationBuilder) BuildListItem() *queries.ReservationListItem {
	return &queries.ReservationListItem{
		ID:        b.ID,
		RoomID:    b.RoomID,
		RoomName:  b.RoomName,
		SpaceName: b.SpaceName,
		Date:      b.Date,
		StartTime: b.StartTime,
		EndTime:   b.EndTime,
		PartySize: b.PartySize,
		CreatedAt: b.CreatedAt,
	}
}
