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

type RoomReadStore struct {
	dbtx db.DBTX
}

func NewRoomReadStore(dbtx db.DBTX) *RoomReadStore {
	return &RoomReadStore{dbtx: dbtx}
}

const roomViewQuery = `
	SELECT rm.id, rm.name, rm.space_id, sp.name, rm.capacity, rm.created_at, rm.updated_at
	FROM rooms rm
	JOIN spaces sp ON sp.id = rm.space_id
`

func (r *RoomReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.RoomView, error) {
	var (
		view             queries.RoomView
		created, updated pgtype.Timestamptz
	)
	err := r.dbtx.QueryRow(ctx, roomViewQuery+` WHERE rm.id = $1`, pgconv.UUIDToPgtype(id)).Scan(
		&view.ID, &view.Name, &view.SpaceID, &view.SpaceName, &view.Capacity,
		&created, &updated,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("room not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find room by ID", err)
	}

	view.CreatedAt = pgconv.TimeFromPgtype(created)
	view.UpdatedAt = pgconv.TimeFromPgtype(updated)
	return &view, nil
}

func (r *RoomReadStore) FindBySpaceID(ctx context.Context, spaceID uuid.UUID) ([]*queries.RoomView, error) {
	rows, err := r.dbtx.Query(ctx, roomViewQuery+` WHERE rm.space_id = $1 ORDER BY rm.name`, pgconv.UUIDToPgtype(spaceID))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list rooms for space", err)
	}
	defer rows.Close()

	var result []*queries.RoomView
	for rows.Next() {
		var (
			view             queries.RoomView
			created, updated pgtype.Timestamptz
		)
		if err := rows.Scan(
			&view.ID, &view.Name, &view.SpaceID, &view.SpaceName, &view.Capacity,
			&created, &updated,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan room row", err)
		}
		view.CreatedAt = pgconv.TimeFromPgtype(created)
		view.UpdatedAt = pgconv.TimeFromPgtype(updated)
		result = append(result, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate room rows", err)
	}
	return result, nil
}
