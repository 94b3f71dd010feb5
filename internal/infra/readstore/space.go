package readstore

import (
	"context"

	"coworking-booking/internal/infra"
	"coworking-booking/internal/infra/db"
	"coworking-booking/internal/pkg/pgconv"
	"coworking-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type SpaceReadStore struct {
	dbtx db.DBTX
}

func NewSpaceReadStore(dbtx db.DBTX) *SpaceReadStore {
	return &SpaceReadStore{dbtx: dbtx}
}

// Room counts are computed on read rather than persisted and recomputed
// on every room write.
const spaceViewQuery = `
	SELECT sp.id, sp.name, sp.address, sp.tel, sp.open_sec, sp.close_sec,
	       (SELECT count(*) FROM rooms rm WHERE rm.space_id = sp.id) AS room_count,
	       sp.created_at, sp.updated_at
	FROM spaces sp
`

func (r *SpaceReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.SpaceView, error) {
	row := r.dbtx.QueryRow(ctx, spaceViewQuery+` WHERE sp.id = $1`, pgconv.UUIDToPgtype(id))

	view, err := scanSpaceView(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("space not found", err, infra.KindNotFound)
		}
		if infra.IsKind(err, infra.KindDBFailure) {
			return nil, err
		}
		return nil, infra.WrapRepoErr("failed to find space by ID", err)
	}
	return view, nil
}

func (r *SpaceReadStore) FindAll(ctx context.Context, limit, offset int32) ([]*queries.SpaceView, error) {
	rows, err := r.dbtx.Query(ctx, spaceViewQuery+` ORDER BY sp.name LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list spaces", err)
	}
	defer rows.Close()

	var result []*queries.SpaceView
	for rows.Next() {
		view, err := scanSpaceView(rows)
		if err != nil {
			if infra.IsKind(err, infra.KindDBFailure) {
				return nil, err
			}
			return nil, infra.WrapRepoErr("failed to scan space row", err)
		}
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate space rows", err)
	}
	return result, nil
}

type singleRowScanner interface {
	Scan(dest ...any) error
}

func scanSpaceView(row singleRowScanner) (*queries.SpaceView, error) {
	var (
		view               queries.SpaceView
		openSec, closeSec  int32
		created, updated   pgtype.Timestamptz
	)
	if err := row.Scan(
		&view.ID, &view.Name, &view.Address, &view.Tel, &openSec, &closeSec,
		&view.RoomCount, &created, &updated,
	); err != nil {
		return nil, err
	}

	view.CreatedAt = pgconv.TimeFromPgtype(created)
	view.UpdatedAt = pgconv.TimeFromPgtype(updated)

	var err error
	if view.OpenTime, err = formatSeconds(openSec); err != nil {
		return nil, err
	}
	if view.CloseTime, err = formatSeconds(closeSec); err != nil {
		return nil, err
	}
	return &view, nil
}
