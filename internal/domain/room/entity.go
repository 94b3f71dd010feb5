package room

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyName       = errors.New("room name cannot be empty")
	ErrInvalidCapacity = errors.New("room capacity must be positive")
)

type Room struct {
	id        uuid.UUID
	name      string
	spaceID   uuid.UUID
	capacity  int
	createdAt time.Time
	updatedAt time.Time
}

func NewRoom(name string, spaceID uuid.UUID, capacity int) (*Room, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if capacity <= 0 {
		return nil, ErrInvalidCapacity
	}

	return &Room{
		id:       uuid.New(),
		name:     name,
		spaceID:  spaceID,
		capacity: capacity,
	}, nil
}

func ReconstructRoom(id uuid.UUID, name string, spaceID uuid.UUID, capacity int, createdAt, updatedAt time.Time) *Room {
	return &Room{
		id:        id,
		name:      name,
		spaceID:   spaceID,
		capacity:  capacity,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (r *Room) ID() uuid.UUID        { return r.id }
func (r *Room) Name() string         { return r.name }
func (r *Room) SpaceID() uuid.UUID   { return r.spaceID }
func (r *Room) Capacity() int        { return r.capacity }
func (r *Room) CreatedAt() time.Time { return r.createdAt }
func (r *Room) UpdatedAt() time.Time { return r.updatedAt }
