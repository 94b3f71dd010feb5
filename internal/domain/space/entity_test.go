//go:build unit

package space_test

import (
	"strings"
	"testing"

	"coworking-booking/internal/domain/schedule"
	"coworking-booking/internal/domain/space"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustHours(t *testing.T, open, close string) space.Hours {
	t.Helper()
	h, err := space.ParseHours(open, close)
	require.NoError(t, err)
	return h
}

func TestNewSpace(t *testing.T) {
	hours := mustHours(t, "09:00", "18:00")

	t.Run("valid space", func(t *testing.T) {
		s, err := space.NewSpace("  Shibuya Hub  ", " 1-2-3 Dogenzaka ", "03-1234-5678", hours)
		require.NoError(t, err)
		assert.Equal(t, "Shibuya Hub", s.Name())
		assert.Equal(t, "1-2-3 Dogenzaka", s.Address())
		assert.Equal(t, "03-1234-5678", s.Tel())
	})

	t.Run("validation", func(t *testing.T) {
		cases := []struct {
			name    string
			spName  string
			address string
			tel     string
			errIs   error
		}{
			{"empty name", "", "addr", "tel", space.ErrEmptyName},
			{"whitespace name", "   ", "addr", "tel", space.ErrEmptyName},
			{"name at limit ok", strings.Repeat("a", space.MaxNameLength), "addr", "tel", nil},
			{"name too long", strings.Repeat("a", space.MaxNameLength+1), "addr", "tel", space.ErrNameTooLong},
			{"empty address", "name", "", "tel", space.ErrEmptyAddress},
			{"empty tel", "name", "addr", "  ", space.ErrEmptyTelephone},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := space.NewSpace(tc.spName, tc.address, tc.tel, hours)
				if tc.errIs == nil {
					assert.NoError(t, err)
				} else {
					assert.ErrorIs(t, err, tc.errIs)
				}
			})
		}
	})
}

func TestHoursAccommodates(t *testing.T) {
	hours := mustHours(t, "09:00", "18:00")

	mustSlot := func(start, end string) schedule.TimeRange {
		r, err := schedule.ParseTimeRange(start, end)
		require.NoError(t, err)
		return r
	}

	cases := []struct {
		name string
		slot schedule.TimeRange
		want bool
	}{
		{"inside hours", mustSlot("10:00", "12:00"), true},
		{"exactly the full day window", mustSlot("09:00", "18:00"), true},
		{"starts at open", mustSlot("09:00", "09:30"), true},
		{"ends at close", mustSlot("17:30", "18:00"), true},
		{"starts before open", mustSlot("08:30", "10:00"), false},
		{"ends after close", mustSlot("17:30", "18:30"), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, hours.Accommodates(tc.slot))
		})
	}

	t.Run("space closing at 24:00 accepts late slots", func(t *testing.T) {
		allNight := mustHours(t, "06:00", "24:00")
		assert.True(t, allNight.Accommodates(mustSlot("23:00", "24:00")))
	})
}
