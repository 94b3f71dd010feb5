package uow

import (
	"context"
	"time"

	"coworking-booking/internal/domain/schedule"
	"coworking-booking/internal/domain/space"
	"coworking-booking/internal/infra"
	"coworking-booking/internal/infra/db"
	"coworking-booking/internal/pkg/pgconv"
	"coworking-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// commandReads serves the write side's validation lookups. It is bound to
// either the pool or an open transaction, so overlap checks inside Within
// observe the transaction's snapshot.
type commandReads struct {
	dbtx db.DBTX
}

func newCommandReads(dbtx db.DBTX) shared.CommandReads {
	return &commandReads{dbtx: dbtx}
}

func (r *commandReads) SpaceByID(ctx context.Context, id uuid.UUID) (*shared.SpaceSnapshot, error) {
	const query = `
		SELECT id, name, open_sec, close_sec
		FROM spaces
		WHERE id = $1`

	var (
		rowID              pgtype.UUID
		name               string
		openSec, closeSec int32
	)
	err := r.dbtx.QueryRow(ctx, query, pgconv.UUIDToPgtype(id)).
		Scan(&rowID, &name, &openSec, &closeSec)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("space not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to load space", err)
	}

	hours, err := hoursFromSeconds(openSec, closeSec)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt operating hours", err)
	}

	return &shared.SpaceSnapshot{
		ID:    uuid.UUID(rowID.Bytes),
		Name:  name,
		Hours: hours,
	}, nil
}

func (r *commandReads) RoomByID(ctx context.Context, id uuid.UUID) (*shared.RoomSnapshot, error) {
	const query = `
		SELECT id, name, space_id, capacity
		FROM rooms
		WHERE id = $1`

	var (
		rowID, spaceID pgtype.UUID
		name           string
		capacity       int32
	)
	err := r.dbtx.QueryRow(ctx, query, pgconv.UUIDToPgtype(id)).
		Scan(&rowID, &name, &spaceID, &capacity)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("room not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to load room", err)
	}

	return &shared.RoomSnapshot{
		ID:       uuid.UUID(rowID.Bytes),
		Name:     name,
		SpaceID:  uuid.UUID(spaceID.Bytes),
		Capacity: int(capacity),
	}, nil
}

func (r *commandReads) ReservationByID(ctx context.Context, id uuid.UUID) (*shared.ReservationSnapshot, error) {
	const query = `
		SELECT id, user_id, room_id, space_id, res_date, start_sec, end_sec, party_size
		FROM reservations
		WHERE id = $1`

	snap, err := scanReservationSnapshot(r.dbtx.QueryRow(ctx, query, pgconv.UUIDToPgtype(id)))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to load reservation", err)
	}
	return snap, nil
}

func (r *commandReads) ReservationsForRoomOnDate(ctx context.Context, roomID uuid.UUID, date time.Time, exceptID *uuid.UUID) ([]*shared.ReservationSnapshot, error) {
	const query = `
		SELECT id, user_id, room_id, space_id, res_date, start_sec, end_sec, party_size
		FROM reservations
		WHERE room_id = $1
		  AND res_date = $2
		  AND ($3::uuid IS NULL OR id != $3)
		ORDER BY start_sec`

	rows, err := r.dbtx.Query(ctx, query,
		pgconv.UUIDToPgtype(roomID),
		pgconv.DateToPgtype(date),
		pgconv.UUIDPtrToPgtype(exceptID),
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations for room", err)
	}
	defer rows.Close()

	var snaps []*shared.ReservationSnapshot
	for rows.Next() {
		snap, err := scanReservationSnapshot(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan reservation", err)
		}
		snaps = append(snaps, snap)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read reservations for room", err)
	}
	return snaps, nil
}

func (r *commandReads) CountReservationsByUser(ctx context.Context, userID uuid.UUID) (int, error) {
	const query = `
		SELECT count(*)
		FROM reservations
		WHERE user_id = $1`

	var count int64
	err := r.dbtx.QueryRow(ctx, query, pgconv.UUIDToPgtype(userID)).Scan(&count)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count reservations", err)
	}
	return int(count), nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanReservationSnapshot(row rowScanner) (*shared.ReservationSnapshot, error) {
	var (
		id, userID, roomID, spaceID pgtype.UUID
		resDate                     pgtype.Date
		startSec, endSec            int32
		partySize                   int32
	)
	err := row.Scan(&id, &userID, &roomID, &spaceID, &resDate, &startSec, &endSec, &partySize)
	if err != nil {
		return nil, err
	}

	slot, err := timeRangeFromSeconds(startSec, endSec)
	if err != nil {
		return nil, err
	}

	return &shared.ReservationSnapshot{
		ID:        uuid.UUID(id.Bytes),
		UserID:    uuid.UUID(userID.Bytes),
		RoomID:    uuid.UUID(roomID.Bytes),
		SpaceID:   uuid.UUID(spaceID.Bytes),
		Date:      pgconv.DateFromPgtype(resDate),
		Slot:      slot,
		PartySize: int(partySize),
	}, nil
}

func hoursFromSeconds(openSec, closeSec int32) (space.Hours, error) {
	open, err := schedule.FromSeconds(int(openSec))
	if err != nil {
		return space.Hours{}, err
	}
	close, err := schedule.FromSeconds(int(closeSec))
	if err != nil {
		return space.Hours{}, err
	}
	return space.NewHours(open, close)
}

func timeRangeFromSeconds(startSec, endSec int32) (schedule.TimeRange, error) {
	start, err := schedule.FromSeconds(int(startSec))
	if err != nil {
		return schedule.TimeRange{}, err
	}
	end, err := schedule.FromSeconds(int(endSec))
	if err != nil {
		return schedule.TimeRange{}, err
	}
	return schedule.NewTimeRange(start, end)
}
