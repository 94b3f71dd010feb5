package space

import (
	"errors"
	"strings"
	"time"

	"coworking-booking/internal/domain/schedule"

	"github.com/google/uuid"
)

var (
	ErrEmptyName      = errors.New("space name cannot be empty")
	ErrNameTooLong    = errors.New("space name is too long (max 100 characters)")
	ErrEmptyAddress   = errors.New("space address cannot be empty")
	ErrEmptyTelephone = errors.New("space telephone cannot be empty")
)

const MaxNameLength = 100

type Space struct {
	id        uuid.UUID
	name      string
	address   string
	tel       string
	hours     Hours
	createdAt time.Time
	updatedAt time.Time
}

func NewSpace(name, address, tel string, hours Hours) (*Space, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if len(name) > MaxNameLength {
		return nil, ErrNameTooLong
	}
	if strings.TrimSpace(address) == "" {
		return nil, ErrEmptyAddress
	}
	if strings.TrimSpace(tel) == "" {
		return nil, ErrEmptyTelephone
	}

	return &Space{
		id:      uuid.New(),
		name:    name,
		address: strings.TrimSpace(address),
		tel:     strings.TrimSpace(tel),
		hours:   hours,
	}, nil
}

func ReconstructSpace(id uuid.UUID, name, address, tel string, hours Hours, createdAt, updatedAt time.Time) *Space {
	return &Space{
		id:        id,
		name:      name,
		address:   address,
		tel:       tel,
		hours:     hours,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (s *Space) ID() uuid.UUID        { return s.id }
func (s *Space) Name() string         { return s.name }
func (s *Space) Address() string      { return s.address }
func (s *Space) Tel() string          { return s.tel }
func (s *Space) Hours() Hours         { return s.hours }
func (s *Space) CreatedAt() time.Time { return s.createdAt }
func (s *Space) UpdatedAt() time.Time { return s.updatedAt }

// Hours are a space's daily operating hours. Open must precede close, so
// overnight-spanning spaces are not representable; 24:00 is a valid close.
type Hours struct {
	window schedule.TimeRange
}

func NewHours(open, close schedule.TimeOfDay) (Hours, error) {
	window, err := schedule.NewTimeRange(open, close)
	if err != nil {
		return Hours{}, err
	}
	return Hours{window: window}, nil
}

func ParseHours(open, close string) (Hours, error) {
	window, err := schedule.ParseTimeRange(open, close)
	if err != nil {
		return Hours{}, err
	}
	return Hours{window: window}, nil
}

func (h Hours) Open() schedule.TimeOfDay  { return h.window.Start() }
func (h Hours) Close() schedule.TimeOfDay { return h.window.End() }

// Accommodates reports whether the requested slot lies entirely within
// operating hours.
func (h Hours) Accommodates(slot schedule.TimeRange) bool {
	return h.window.Contains(slot)
}
