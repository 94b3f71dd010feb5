//go:build unit

package commands_test

import (
	"context"
	"testing"

	"coworking-booking/internal/pkg/config"
	"coworking-booking/internal/usecase/commands"
	"coworking-booking/tests/common/fake"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateRoom(t *testing.T) {
	ctx := context.Background()

	seed := func(t *testing.T) (*fake.BookingStore, commands.RoomCommands, uuid.UUID) {
		t.Helper()
		store := fake.NewBookingStore()
		cmds := commands.NewRoomCommands(store, store.RoomViews())
		spaceID := store.SeedSpace("Shibuya Hub", "09:00", "18:00")
		return store, cmds, spaceID
	}

	t.Run("adds a room to a space", func(t *testing.T) {
		_, cmds, spaceID := seed(t)

		view, err := cmds.Create(ctx, commands.CreateRoomInput{
			Name: "Focus Room", SpaceID: spaceID, Capacity: 6,
		})
		require.NoError(t, err)
		assert.Equal(t, "Focus Room", view.Name)
		assert.Equal(t, "Shibuya Hub", view.SpaceName)
		assert.Equal(t, 6, view.Capacity)
	})

	t.Run("parent space must exist", func(t *testing.T) {
		_, cmds, _ := seed(t)
		_, err := cmds.Create(ctx, commands.CreateRoomInput{
			Name: "Orphan", SpaceID: uuid.New(), Capacity: 4,
		})
		assert.ErrorIs(t, err, commands.ErrSpaceNotFound)
	})

	t.Run("invalid attributes", func(t *testing.T) {
		_, cmds, spaceID := seed(t)

		_, err := cmds.Create(ctx, commands.CreateRoomInput{Name: " ", SpaceID: spaceID, Capacity: 4})
		assert.ErrorIs(t, err, commands.ErrDomainValidation)

		_, err = cmds.Create(ctx, commands.CreateRoomInput{Name: "Room", SpaceID: spaceID, Capacity: 0})
		assert.ErrorIs(t, err, commands.ErrDomainValidation)
	})

	t.Run("name collision", func(t *testing.T) {
		_, cmds, spaceID := seed(t)
		in := commands.CreateRoomInput{Name: "Focus Room", SpaceID: spaceID, Capacity: 6}

		_, err := cmds.Create(ctx, in)
		require.NoError(t, err)

		_, err = cmds.Create(ctx, in)
		assert.ErrorIs(t, err, commands.ErrRoomNameTaken)
	})
}

func TestUpdateRoom(t *testing.T) {
	ctx := context.Background()

	seed := func(t *testing.T) (commands.RoomCommands, uuid.UUID) {
		t.Helper()
		store := fake.NewBookingStore()
		cmds := commands.NewRoomCommands(store, store.RoomViews())
		spaceID := store.SeedSpace("Shibuya Hub", "09:00", "18:00")
		roomID := store.SeedRoom(spaceID, "Focus Room", 6)
		return cmds, roomID
	}

	t.Run("changes only the given fields", func(t *testing.T) {
		cmds, roomID := seed(t)

		view, err := cmds.Update(ctx, roomID, commands.UpdateRoomInput{Capacity: ptr(10)})
		require.NoError(t, err)
		assert.Equal(t, "Focus Room", view.Name)
		assert.Equal(t, 10, view.Capacity)
	})

	t.Run("merged record is validated", func(t *testing.T) {
		cmds, roomID := seed(t)
		_, err := cmds.Update(ctx, roomID, commands.UpdateRoomInput{Capacity: ptr(0)})
		assert.ErrorIs(t, err, commands.ErrDomainValidation)
	})

	t.Run("unknown room", func(t *testing.T) {
		cmds, _ := seed(t)
		_, err := cmds.Update(ctx, uuid.New(), commands.UpdateRoomInput{Capacity: ptr(10)})
		assert.ErrorIs(t, err, commands.ErrRoomNotFound)
	})
}

func TestDeleteRoom(t *testing.T) {
	ctx := context.Background()

	t.Run("removes the room's reservations first", func(t *testing.T) {
		store := fake.NewBookingStore()
		roomCmds := commands.NewRoomCommands(store, store.RoomViews())
		resCmds := commands.NewReservationCommands(store, store.ReservationViews(), config.NewTestConfig())

		spaceID := store.SeedSpace("Shibuya Hub", "09:00", "18:00")
		roomID := store.SeedRoom(spaceID, "Focus Room", 6)
		otherRoom := store.SeedRoom(spaceID, "Quiet Room", 2)

		_, err := resCmds.Create(ctx, member(), createInput(roomID, "10:00", "12:00", 2))
		require.NoError(t, err)
		_, err = resCmds.Create(ctx, member(), createInput(otherRoom, "10:00", "12:00", 2))
		require.NoError(t, err)

		require.NoError(t, roomCmds.Delete(ctx, roomID))
		assert.Equal(t, 1, store.RoomCount())
		assert.Equal(t, 1, store.ReservationCount())
	})

	t.Run("unknown room", func(t *testing.T) {
		store := fake.NewBookingStore()
		cmds := commands.NewRoomCommands(store, store.RoomViews())
		assert.ErrorIs(t, cmds.Delete(ctx, uuid.New()), commands.ErrRoomNotFound)
	})
}
