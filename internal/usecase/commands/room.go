package commands

import (
	"context"
	"log/slog"
	"time"

	"coworking-booking/internal/domain/room"
	"coworking-booking/internal/infra"
	"coworking-booking/internal/pkg/errs"
	"coworking-booking/internal/usecase/queries"
	"coworking-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateRoomInput struct {
	Name     string
	SpaceID  uuid.UUID
	Capacity int
}

type UpdateRoomInput struct {
	Name     *string
	Capacity *int
}

type RoomCommands interface {
	Create(ctx context.Context, in CreateRoomInput) (*queries.RoomView, error)
	Update(ctx context.Context, id uuid.UUID, in UpdateRoomInput) (*queries.RoomView, error)
	// Delete removes the room's reservations first, then the room.
	Delete(ctx context.Context, id uuid.UUID) error
}

type roomCommandsImpl struct {
	uow   shared.UnitOfWork
	views queries.RoomReadStore
}

func NewRoomCommands(uow shared.UnitOfWork, views queries.RoomReadStore) RoomCommands {
	return &roomCommandsImpl{uow: uow, views: views}
}

func (c *roomCommandsImpl) Create(ctx context.Context, in CreateRoomInput) (*queries.RoomView, error) {
	// Rooms are always created under an existing space.
	if _, err := c.uow.CommandReads().SpaceByID(ctx, in.SpaceID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrSpaceNotFound
		}
		return nil, errs.Mark(err, ErrStorageUnavailable)
	}

	entity, err := room.NewRoom(in.Name, in.SpaceID, in.Capacity)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		_, err := tx.Rooms().Create(ctx, entity)
		return err
	})
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrRoomNameTaken
		}
		if infra.IsKind(err, infra.KindForeignKeyViolated) {
			return nil, ErrSpaceNotFound
		}
		return nil, errs.Mark(err, ErrStorageUnavailable)
	}

	view, err := c.views.FindByID(ctx, entity.ID())
	if err != nil {
		return nil, errs.Mark(err, ErrStorageUnavailable)
	}
	return view, nil
}

func (c *roomCommandsImpl) Update(ctx context.Context, id uuid.UUID, in UpdateRoomInput) (*queries.RoomView, error) {
	current, err := c.uow.CommandReads().RoomByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, errs.Mark(err, ErrStorageUnavailable)
	}

	name := current.Name
	if in.Name != nil {
		name = *in.Name
	}
	capacity := current.Capacity
	if in.Capacity != nil {
		capacity = *in.Capacity
	}

	entity, err := room.NewRoom(name, current.SpaceID, capacity)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}
	merged := room.ReconstructRoom(id, entity.Name(), current.SpaceID, entity.Capacity(), time.Time{}, time.Time{})

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Rooms().Update(ctx, merged)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrRoomNameTaken
		}
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, errs.Mark(err, ErrStorageUnavailable)
	}

	view, err := c.views.FindByID(ctx, id)
	if err != nil {
		return nil, errs.Mark(err, ErrStorageUnavailable)
	}
	return view, nil
}

func (c *roomCommandsImpl) Delete(ctx context.Context, id uuid.UUID) error {
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Reads().RoomByID(ctx, id); err != nil {
			return err
		}

		// Reservations go first so a mid-cascade failure never leaves one
		// pointing at a missing room; retries converge on the same state.
		removed, err := tx.Reservations().DeleteAllForRoom(ctx, id)
		if err != nil {
			return err
		}
		if removed > 0 {
			slog.Info("reservations removed with room", "room_id", id, "count", removed)
		}

		return tx.Rooms().Delete(ctx, id)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrRoomNotFound
		}
		return errs.Mark(err, ErrStorageUnavailable)
	}
	return nil
}
