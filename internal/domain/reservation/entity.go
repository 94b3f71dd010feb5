package reservation

import (
	"errors"
	"time"

	"coworking-booking/internal/domain/schedule"

	"github.com/google/uuid"
)

var (
	ErrInvalidPartySize = errors.New("party size must be positive")
	ErrZeroDate         = errors.New("reservation date is required")
)

type Reservation struct {
	id        uuid.UUID
	userID    uuid.UUID
	roomID    uuid.UUID
	spaceID   uuid.UUID
	date      time.Time
	slot      schedule.TimeRange
	partySize int
	createdAt time.Time
	updatedAt time.Time
}

// NewReservation builds a draft reservation. Cross-entity rules (capacity,
// operating hours, quota, slot conflicts) are enforced by the booking
// commands, not here.
func NewReservation(userID, roomID, spaceID uuid.UUID, date time.Time, slot schedule.TimeRange, partySize int) (*Reservation, error) {
	if date.IsZero() {
		return nil, ErrZeroDate
	}
	if partySize <= 0 {
		return nil, ErrInvalidPartySize
	}

	return &Reservation{
		id:        uuid.New(),
		userID:    userID,
		roomID:    roomID,
		spaceID:   spaceID,
		date:      normalizeDate(date),
		slot:      slot,
		partySize: partySize,
	}, nil
}

func ReconstructReservation(
	id, userID, roomID, spaceID uuid.UUID,
	date time.Time,
	slot schedule.TimeRange,
	partySize int,
	createdAt, updatedAt time.Time,
) *Reservation {
	return &Reservation{
		id:        id,
		userID:    userID,
		roomID:    roomID,
		spaceID:   spaceID,
		date:      normalizeDate(date),
		slot:      slot,
		partySize: partySize,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (r *Reservation) ID() uuid.UUID           { return r.id }
func (r *Reservation) UserID() uuid.UUID       { return r.userID }
func (r *Reservation) RoomID() uuid.UUID       { return r.roomID }
func (r *Reservation) SpaceID() uuid.UUID      { return r.spaceID }
func (r *Reservation) Date() time.Time         { return r.date }
func (r *Reservation) Slot() schedule.TimeRange { return r.slot }
func (r *Reservation) PartySize() int          { return r.partySize }
func (r *Reservation) CreatedAt() time.Time    { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time    { return r.updatedAt }

// IsOwnedBy reports whether userID holds this reservation.
func (r *Reservation) IsOwnedBy(userID uuid.UUID) bool {
	return r.userID == userID
}

// ConflictsWith reports whether two reservations compete for the same
// room slot. A reservation never conflicts with itself.
func (r *Reservation) ConflictsWith(other *Reservation) bool {
	if r.id == other.id {
		return false
	}
	return r.roomID == other.roomID &&
		r.date.Equal(other.date) &&
		r.slot.Overlaps(other.slot)
}

func normalizeDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
