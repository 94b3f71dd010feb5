package commands

import (
	"context"
	"errors"
	"time"

	"coworking-booking/internal/domain/reservation"
	"coworking-booking/internal/domain/schedule"
	"coworking-booking/internal/infra"
	"coworking-booking/internal/pkg/config"
	"coworking-booking/internal/pkg/errs"
	"coworking-booking/internal/usecase/queries"
	"coworking-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

type CreateReservationInput struct {
	RoomID    uuid.UUID
	Date      string
	StartTime string
	EndTime   string
	PartySize int
}

// UpdateReservationInput carries the changed fields; nil means keep the
// stored value. The merged record is re-validated in full either way.
type UpdateReservationInput struct {
	RoomID    *uuid.UUID
	Date      *string
	StartTime *string
	EndTime   *string
	PartySize *int
}

type ReservationCommands interface {
	Create(ctx context.Context, actor shared.Actor, in CreateReservationInput) (*queries.ReservationView, error)
	Update(ctx context.Context, actor shared.Actor, id uuid.UUID, in UpdateReservationInput) (*queries.ReservationView, error)
	Delete(ctx context.Context, actor shared.Actor, id uuid.UUID) error
}

type reservationCommandsImpl struct {
	uow       shared.UnitOfWork
	views     queries.ReservationReadStore
	maxActive int
}

func NewReservationCommands(uow shared.UnitOfWork, views queries.ReservationReadStore, cfg config.Config) ReservationCommands {
	return &reservationCommandsImpl{
		uow:       uow,
		views:     views,
		maxActive: cfg.Booking.MaxActiveReservations,
	}
}

func (c *reservationCommandsImpl) Create(ctx context.Context, actor shared.Actor, in CreateReservationInput) (*queries.ReservationView, error) {
	draft, err := c.validate(ctx, actor, actor.ID, in.RoomID, in.Date, in.StartTime, in.EndTime, in.PartySize, nil)
	if err != nil {
		return nil, err
	}

	if err := c.commit(ctx, draft, nil, false); err != nil {
		return nil, err
	}

	// Read-after-write: return the full view from the read store.
	view, err := c.views.FindByID(ctx, draft.ID())
	if err != nil {
		return nil, errs.Mark(err, ErrStorageUnavailable)
	}
	return view, nil
}

func (c *reservationCommandsImpl) Update(ctx context.Context, actor shared.Actor, id uuid.UUID, in UpdateReservationInput) (*queries.ReservationView, error) {
	current, err := c.uow.CommandReads().ReservationByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, errs.Mark(err, ErrStorageUnavailable)
	}

	if !actor.CanManage(current.UserID) {
		return nil, ErrUnauthorized
	}

	roomID := current.RoomID
	if in.RoomID != nil {
		roomID = *in.RoomID
	}
	date := current.Date.Format(dateLayout)
	if in.Date != nil {
		date = *in.Date
	}
	startTime := current.Slot.Start().String()
	if in.StartTime != nil {
		startTime = *in.StartTime
	}
	endTime := current.Slot.End().String()
	if in.EndTime != nil {
		endTime = *in.EndTime
	}
	partySize := current.PartySize
	if in.PartySize != nil {
		partySize = *in.PartySize
	}

	// The merged record goes through the full pipeline; no
	// partial-validation shortcut, so the rules stay an invariant of the
	// stored data.
	draft, err := c.validate(ctx, actor, current.UserID, roomID, date, startTime, endTime, partySize, &id)
	if err != nil {
		return nil, err
	}

	updated := reservation.ReconstructReservation(
		id, current.UserID, draft.RoomID(), draft.SpaceID(),
		draft.Date(), draft.Slot(), draft.PartySize(),
		time.Time{}, time.Time{},
	)

	if err := c.commit(ctx, updated, &id, true); err != nil {
		return nil, err
	}

	view, err := c.views.FindByID(ctx, id)
	if err != nil {
		return nil, errs.Mark(err, ErrStorageUnavailable)
	}
	return view, nil
}

func (c *reservationCommandsImpl) Delete(ctx context.Context, actor shared.Actor, id uuid.UUID) error {
	current, err := c.uow.CommandReads().ReservationByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrReservationNotFound
		}
		return errs.Mark(err, ErrStorageUnavailable)
	}

	if !actor.CanManage(current.UserID) {
		return ErrUnauthorized
	}

	// Removal cannot violate the booking invariants, so no further
	// validation is needed.
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Reservations().Delete(ctx, id); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrReservationNotFound
			}
			return errs.Mark(err, ErrStorageUnavailable)
		}
		return nil
	})
}

// validate runs the rule pipeline in its fixed order, short-circuiting on
// the first failure: format, ordering, existence, capacity, hours, quota.
// The overlap check runs later, inside the commit transaction.
func (c *reservationCommandsImpl) validate(
	ctx context.Context,
	actor shared.Actor,
	ownerID uuid.UUID,
	roomID uuid.UUID,
	dateStr, startStr, endStr string,
	partySize int,
	exceptID *uuid.UUID,
) (*reservation.Reservation, error) {
	start, err := schedule.ParseTimeOfDay(startStr)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidTimeFormat)
	}
	end, err := schedule.ParseTimeOfDay(endStr)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidTimeFormat)
	}

	slot, err := schedule.NewTimeRange(start, end)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidTimeRange)
	}

	date, err := time.Parse(dateLayout, dateStr)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidDate)
	}

	reads := c.uow.CommandReads()

	roomSnap, err := reads.RoomByID(ctx, roomID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, errs.Mark(err, ErrStorageUnavailable)
	}

	spaceSnap, err := reads.SpaceByID(ctx, roomSnap.SpaceID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrSpaceNotFound
		}
		return nil, errs.Mark(err, ErrStorageUnavailable)
	}

	if partySize > roomSnap.Capacity {
		return nil, ErrCapacityExceeded
	}

	if !spaceSnap.Hours.Accommodates(slot) {
		return nil, ErrOutsideOperatingHours
	}

	if !actor.IsAdmin() {
		held, err := reads.CountReservationsByUser(ctx, ownerID)
		if err != nil {
			return nil, errs.Mark(err, ErrStorageUnavailable)
		}
		if exceptID != nil {
			// An update replaces a held reservation rather than adding one.
			held--
		}
		if held >= c.maxActive {
			return nil, ErrQuotaExceeded
		}
	}

	draft, err := reservation.NewReservation(ownerID, roomID, spaceSnap.ID, date, slot, partySize)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}
	return draft, nil
}

// commit runs the overlap check and the write in one transaction. The
// room-slot exclusion constraint backstops concurrent writers; a
// constraint violation is retried once so the re-run overlap check can
// report the conflict, then surfaced as ErrSlotConflict.
func (c *reservationCommandsImpl) commit(ctx context.Context, res *reservation.Reservation, exceptID *uuid.UUID, isUpdate bool) error {
	for attempt := 0; attempt < 2; attempt++ {
		err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			existing, err := tx.Reads().ReservationsForRoomOnDate(ctx, res.RoomID(), res.Date(), exceptID)
			if err != nil {
				return errs.Mark(err, ErrStorageUnavailable)
			}
			for _, other := range existing {
				if res.Slot().Overlaps(other.Slot) {
					return ErrSlotConflict
				}
			}

			if isUpdate {
				return tx.Reservations().Update(ctx, res)
			}
			_, err = tx.Reservations().Create(ctx, res)
			return err
		})
		if err == nil {
			return nil
		}
		if infra.IsKind(err, infra.KindConflict) {
			if attempt == 0 {
				continue
			}
			return ErrSlotConflict
		}
		if errors.Is(err, ErrSlotConflict) || errors.Is(err, ErrStorageUnavailable) {
			return err
		}
		if isUpdate && infra.IsKind(err, infra.KindNotFound) {
			return ErrReservationNotFound
		}
		return errs.Mark(err, ErrStorageUnavailable)
	}
	return ErrSlotConflict
}
