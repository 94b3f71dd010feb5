//go:build unit || e2e

package builder

import (
	"time"

	reqdto "coworking-booking/internal/handler/dto/request"
	"coworking-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type SpaceBuilder struct {
	ID        uuid.UUID
	Name      string
	Address   string
	Tel       string
	OpenTime  string
	CloseTime string
	RoomCount int
	CreatedAt time.Time
	UpdatedAt time.Time
}

func NewSpaceBuilder() *SpaceBuilder {
	now := time.Now().UTC()
	return &SpaceBuilder{
		ID:        uuid.New(),
		Name:      "Shibuya Hub",
		Address:   "1-2-3 Dogenzaka, Shibuya, Tokyo",
		Tel:       "03-1234-5678",
		OpenTime:  "09:00",
		CloseTime: "18:00",
		RoomCount: 2,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (b *SpaceBuilder) WithName(name string) *SpaceBuilder {
	b.Name = name
	return b
}

func (b *SpaceBuilder) BuildCreateRequestDTO() reqdto.CreateSpaceRequest {
	return reqdto.CreateSpaceRequest{
		Name:      b.Name,
		Address:   b.Address,
		Tel:       b.Tel,
		OpenTime:  b.OpenTime,
		CloseTime: b.CloseTime,
	}
}

func (b *SpaceBuilder) BuildView() *queries.SpaceView {
	return &queries.SpaceView{
		ID:        b.ID,
		Name:      b.Name,
		Address:   b.Address,
		Tel:       b.Tel,
		OpenTime:  b.OpenTime,
		CloseTime: b.CloseTime,
		RoomCount: b.RoomCount,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}
