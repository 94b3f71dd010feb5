package commands

import (
	"context"
	"errors"
	"log/slog"

	"coworking-booking/internal/domain/schedule"
	"coworking-booking/internal/domain/space"
	"coworking-booking/internal/infra"
	"coworking-booking/internal/pkg/errs"
	"coworking-booking/internal/usecase/queries"
	"coworking-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateSpaceInput struct {
	Name      string
	Address   string
	Tel       string
	OpenTime  string
	CloseTime string
}

type UpdateSpaceInput struct {
	Name      *string
	Address   *string
	Tel       *string
	OpenTime  *string
	CloseTime *string
}

type SpaceCommands interface {
	Create(ctx context.Context, in CreateSpaceInput) (*queries.SpaceView, error)
	Update(ctx context.Context, id uuid.UUID, in UpdateSpaceInput) (*queries.SpaceView, error)
	// Delete cascades child-before-parent: reservations, then rooms, then
	// the space itself.
	Delete(ctx context.Context, id uuid.UUID) error
}

type spaceCommandsImpl struct {
	uow   shared.UnitOfWork
	views queries.SpaceReadStore
}

func NewSpaceCommands(uow shared.UnitOfWork, views queries.SpaceReadStore) SpaceCommands {
	return &spaceCommandsImpl{uow: uow, views: views}
}

func (c *spaceCommandsImpl) Create(ctx context.Context, in CreateSpaceInput) (*queries.SpaceView, error) {
	hours, err := space.ParseHours(in.OpenTime, in.CloseTime)
	if err != nil {
		return nil, markHoursErr(err)
	}

	entity, err := space.NewSpace(in.Name, in.Address, in.Tel, hours)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		_, err := tx.Spaces().Create(ctx, entity)
		return err
	})
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrSpaceNameTaken
		}
		return nil, errs.Mark(err, ErrStorageUnavailable)
	}

	view, err := c.views.FindByID(ctx, entity.ID())
	if err != nil {
		return nil, errs.Mark(err, ErrStorageUnavailable)
	}
	return view, nil
}

func (c *spaceCommandsImpl) Update(ctx context.Context, id uuid.UUID, in UpdateSpaceInput) (*queries.SpaceView, error) {
	// Merge against the stored record, then re-validate the whole thing.
	view, err := c.views.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrSpaceNotFound
		}
		return nil, errs.Mark(err, ErrStorageUnavailable)
	}

	name := view.Name
	if in.Name != nil {
		name = *in.Name
	}
	address := view.Address
	if in.Address != nil {
		address = *in.Address
	}
	tel := view.Tel
	if in.Tel != nil {
		tel = *in.Tel
	}
	openTime := view.OpenTime
	if in.OpenTime != nil {
		openTime = *in.OpenTime
	}
	closeTime := view.CloseTime
	if in.CloseTime != nil {
		closeTime = *in.CloseTime
	}

	hours, err := space.ParseHours(openTime, closeTime)
	if err != nil {
		return nil, markHoursErr(err)
	}

	entity, err := space.NewSpace(name, address, tel, hours)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}
	merged := space.ReconstructSpace(id, entity.Name(), entity.Address(), entity.Tel(), entity.Hours(), view.CreatedAt, view.UpdatedAt)

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Spaces().Update(ctx, merged)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrSpaceNameTaken
		}
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrSpaceNotFound
		}
		return nil, errs.Mark(err, ErrStorageUnavailable)
	}

	updated, err := c.views.FindByID(ctx, id)
	if err != nil {
		return nil, errs.Mark(err, ErrStorageUnavailable)
	}
	return updated, nil
}

func (c *spaceCommandsImpl) Delete(ctx context.Context, id uuid.UUID) error {
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Reads().SpaceByID(ctx, id); err != nil {
			return err
		}

		// Child-before-parent so no room or reservation ever references a
		// missing space, even if the cascade is interrupted. Deleting
		// already-removed dependents is a no-op, so retries converge.
		removed, err := tx.Reservations().DeleteAllForSpace(ctx, id)
		if err != nil {
			return err
		}
		if removed > 0 {
			slog.Info("reservations removed with space", "space_id", id, "count", removed)
		}

		removed, err = tx.Rooms().DeleteAllForSpace(ctx, id)
		if err != nil {
			return err
		}
		if removed > 0 {
			slog.Info("rooms removed with space", "space_id", id, "count", removed)
		}

		return tx.Spaces().Delete(ctx, id)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrSpaceNotFound
		}
		return errs.Mark(err, ErrStorageUnavailable)
	}
	return nil
}

// Operating hours share the reservation time grammar, so the same format
// and ordering sentinels apply.
func markHoursErr(err error) error {
	if errors.Is(err, schedule.ErrInvalidTimeRange) {
		return errs.Mark(err, ErrInvalidTimeRange)
	}
	return errs.Mark(err, ErrInvalidTimeFormat)
}
