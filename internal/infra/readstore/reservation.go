package readstore

import (
	"context"
	"time"

	"coworking-booking/internal/domain/schedule"
	"coworking-booking/internal/infra"
	"coworking-booking/internal/infra/db"
	"coworking-booking/internal/pkg/pgconv"
	"coworking-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type ReservationReadStore struct {
	dbtx db.DBTX
}

func NewReservationReadStore(dbtx db.DBTX) *ReservationReadStore {
	return &ReservationReadStore{dbtx: dbtx}
}

func (r *ReservationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	const query = `
		SELECT rv.id, rv.user_id, rv.room_id, rm.name, rv.space_id, sp.name,
		       rv.res_date, rv.start_sec, rv.end_sec, rv.party_size,
		       rv.created_at, rv.updated_at
		FROM reservations rv
		JOIN rooms rm ON rm.id = rv.room_id
		JOIN spaces sp ON sp.id = rv.space_id
		WHERE rv.id = $1
	`
	var (
		view               queries.ReservationView
		resDate            pgtype.Date
		startSec, endSec   int32
		created, updated   pgtype.Timestamptz
	)
	err := r.dbtx.QueryRow(ctx, query, pgconv.UUIDToPgtype(id)).Scan(
		&view.ID, &view.UserID, &view.RoomID, &view.RoomName, &view.SpaceID, &view.SpaceName,
		&resDate, &startSec, &endSec, &view.PartySize,
		&created, &updated,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation by ID", err)
	}

	view.Date = pgconv.DateFromPgtype(resDate)
	view.CreatedAt = pgconv.TimeFromPgtype(created)
	view.UpdatedAt = pgconv.TimeFromPgtype(updated)
	if view.StartTime, err = formatSeconds(startSec); err != nil {
		return nil, err
	}
	if view.EndTime, err = formatSeconds(endSec); err != nil {
		return nil, err
	}
	return &view, nil
}

func (r *ReservationReadStore) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*queries.ReservationListItem, error) {
	const query = `
		SELECT rv.id, rv.room_id, rm.name, sp.name,
		       rv.res_date, rv.start_sec, rv.end_sec, rv.party_size, rv.created_at
		FROM reservations rv
		JOIN rooms rm ON rm.id = rv.room_id
		JOIN spaces sp ON sp.id = rv.space_id
		WHERE rv.user_id = $1
		ORDER BY rv.res_date, rv.start_sec
	`
	rows, err := r.dbtx.Query(ctx, query, pgconv.UUIDToPgtype(userID))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find reservations by user", err)
	}
	defer rows.Close()

	return scanListItems(rows)
}

func (r *ReservationReadStore) FindByRoomOnDate(ctx context.Context, roomID uuid.UUID, date time.Time) ([]*queries.ReservationListItem, error) {
	const query = `
		SELECT rv.id, rv.room_id, rm.name, sp.name,
		       rv.res_date, rv.start_sec, rv.end_sec, rv.party_size, rv.created_at
		FROM reservations rv
		JOIN rooms rm ON rm.id = rv.room_id
		JOIN spaces sp ON sp.id = rv.space_id
		WHERE rv.room_id = $1 AND rv.res_date = $2
		ORDER BY rv.start_sec
	`
	rows, err := r.dbtx.Query(ctx, query, pgconv.UUIDToPgtype(roomID), pgconv.DateToPgtype(date))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find reservations for room on date", err)
	}
	defer rows.Close()

	return scanListItems(rows)
}

type rowScanner interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}

func scanListItems(rows rowScanner) ([]*queries.ReservationListItem, error) {
	var result []*queries.ReservationListItem
	for rows.Next() {
		var (
			item             queries.ReservationListItem
			resDate          pgtype.Date
			startSec, endSec int32
			created          pgtype.Timestamptz
		)
		if err := rows.Scan(
			&item.ID, &item.RoomID, &item.RoomName, &item.SpaceName,
			&resDate, &startSec, &endSec, &item.PartySize, &created,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan reservation row", err)
		}
		item.Date = pgconv.DateFromPgtype(resDate)
		item.CreatedAt = pgconv.TimeFromPgtype(created)
		var err error
		if item.StartTime, err = formatSeconds(startSec); err != nil {
			return nil, err
		}
		if item.EndTime, err = formatSeconds(endSec); err != nil {
			return nil, err
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate reservation rows", err)
	}
	return result, nil
}

func formatSeconds(sec int32) (string, error) {
	t, err := schedule.FromSeconds(int(sec))
	if err != nil {
		return "", infra.WrapRepoErr("corrupt time-of-day value in storage", err)
	}
	return t.String(), nil
}
