package repository

import (
	"context"

	"coworking-booking/internal/domain/room"
	"coworking-booking/internal/infra"
	"coworking-booking/internal/infra/db"
	"coworking-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type RoomRepository struct {
	dbtx db.DBTX
}

func NewRoomRepository(dbtx db.DBTX) *RoomRepository {
	return &RoomRepository{dbtx: dbtx}
}

func (r *RoomRepository) Create(ctx context.Context, rm *room.Room) (uuid.UUID, error) {
	const query = `
		INSERT INTO rooms (id, name, space_id, capacity)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	var id uuid.UUID
	err := r.dbtx.QueryRow(ctx, query, pgconv.UUIDToPgtype(rm.ID()), rm.Name(), pgconv.UUIDToPgtype(rm.SpaceID()), rm.Capacity()).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create room", err, classify(err))
	}
	return id, nil
}

func (r *RoomRepository) Update(ctx context.Context, rm *room.Room) error {
	const query = `
		UPDATE rooms
		SET name = $2, capacity = $3, updated_at = now()
		WHERE id = $1
	`
	tag, err := r.dbtx.Exec(ctx, query, pgconv.UUIDToPgtype(rm.ID()), rm.Name(), rm.Capacity())
	if err != nil {
		return infra.WrapRepoErr("failed to update room", err, classify(err))
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("room not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *RoomRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.dbtx.Exec(ctx, `DELETE FROM rooms WHERE id = $1`, pgconv.UUIDToPgtype(id))
	if err != nil {
		return infra.WrapRepoErr("failed to delete room", err, classify(err))
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("room not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *RoomRepository) DeleteAllForSpace(ctx context.Context, spaceID uuid.UUID) (int64, error) {
	tag, err := r.dbtx.Exec(ctx, `DELETE FROM rooms WHERE space_id = $1`, pgconv.UUIDToPgtype(spaceID))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete rooms for space", err, classify(err))
	}
	// Zero rows is not an error: the cascade must stay idempotent.
	return tag.RowsAffected(), nil
}
