package shared

import (
	"context"
	"time"

	"coworking-booking/internal/domain/reservation"
	"coworking-booking/internal/domain/room"
	"coworking-booking/internal/domain/schedule"
	"coworking-booking/internal/domain/space"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: full transaction for write operations, retried on
	// serialization failures.
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// CommandReads: direct access to command reads for validation outside
	// transactions.
	CommandReads() CommandReads
}

type Tx interface {
	Spaces() SpaceRepository
	Rooms() RoomRepository
	Reservations() ReservationRepository
	Reads() CommandReads
}

// CommandReads are the minimal lookups the write side needs: directory
// snapshots plus the overlap and quota feeds.
type CommandReads interface {
	SpaceByID(ctx context.Context, id uuid.UUID) (*SpaceSnapshot, error)
	RoomByID(ctx context.Context, id uuid.UUID) (*RoomSnapshot, error)
	ReservationByID(ctx context.Context, id uuid.UUID) (*ReservationSnapshot, error)
	// ReservationsForRoomOnDate returns every committed reservation for the
	// room on the given date, excluding exceptID when non-nil (the record
	// being updated).
	ReservationsForRoomOnDate(ctx context.Context, roomID uuid.UUID, date time.Time, exceptID *uuid.UUID) ([]*ReservationSnapshot, error)
	CountReservationsByUser(ctx context.Context, userID uuid.UUID) (int, error)
}

type SpaceSnapshot struct {
	ID    uuid.UUID
	Name  string
	Hours space.Hours
}

type RoomSnapshot struct {
	ID       uuid.UUID
	Name     string
	SpaceID  uuid.UUID
	Capacity int
}

type ReservationSnapshot struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	RoomID    uuid.UUID
	SpaceID   uuid.UUID
	Date      time.Time
	Slot      schedule.TimeRange
	PartySize int
}

type SpaceRepository interface {
	Create(ctx context.Context, s *space.Space) (uuid.UUID, error)
	Update(ctx context.Context, s *space.Space) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type RoomRepository interface {
	Create(ctx context.Context, r *room.Room) (uuid.UUID, error)
	Update(ctx context.Context, r *room.Room) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteAllForSpace(ctx context.Context, spaceID uuid.UUID) (int64, error)
}

type ReservationRepository interface {
	Create(ctx context.Context, res *reservation.Reservation) (uuid.UUID, error)
	Update(ctx context.Context, res *reservation.Reservation) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteAllForRoom(ctx context.Context, roomID uuid.UUID) (int64, error)
	DeleteAllForSpace(ctx context.Context, spaceID uuid.UUID) (int64, error)
}
