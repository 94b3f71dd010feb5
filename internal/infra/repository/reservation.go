package repository

import (
	"context"

	"coworking-booking/internal/domain/reservation"
	"coworking-booking/internal/infra"
	"coworking-booking/internal/infra/db"
	"coworking-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type ReservationRepository struct {
	dbtx db.DBTX
}

func NewReservationRepository(dbtx db.DBTX) *ReservationRepository {
	return &ReservationRepository{dbtx: dbtx}
}

func (r *ReservationRepository) Create(ctx context.Context, res *reservation.Reservation) (uuid.UUID, error) {
	const query = `
		INSERT INTO reservations (id, user_id, room_id, space_id, res_date, start_sec, end_sec, party_size)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`
	var id uuid.UUID
	err := r.dbtx.QueryRow(ctx, query,
		pgconv.UUIDToPgtype(res.ID()), pgconv.UUIDToPgtype(res.UserID()),
		pgconv.UUIDToPgtype(res.RoomID()), pgconv.UUIDToPgtype(res.SpaceID()),
		pgconv.DateToPgtype(res.Date()),
		res.Slot().Start().Seconds(), res.Slot().End().Seconds(),
		res.PartySize(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create reservation", err, classify(err))
	}
	return id, nil
}

func (r *ReservationRepository) Update(ctx context.Context, res *reservation.Reservation) error {
	const query = `
		UPDATE reservations
		SET room_id = $2, space_id = $3, res_date = $4, start_sec = $5, end_sec = $6, party_size = $7, updated_at = now()
		WHERE id = $1
	`
	tag, err := r.dbtx.Exec(ctx, query,
		pgconv.UUIDToPgtype(res.ID()), pgconv.UUIDToPgtype(res.RoomID()), pgconv.UUIDToPgtype(res.SpaceID()),
		pgconv.DateToPgtype(res.Date()),
		res.Slot().Start().Seconds(), res.Slot().End().Seconds(),
		res.PartySize(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update reservation", err, classify(err))
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ReservationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.dbtx.Exec(ctx, `DELETE FROM reservations WHERE id = $1`, pgconv.UUIDToPgtype(id))
	if err != nil {
		return infra.WrapRepoErr("failed to delete reservation", err, classify(err))
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ReservationRepository) DeleteAllForRoom(ctx context.Context, roomID uuid.UUID) (int64, error) {
	tag, err := r.dbtx.Exec(ctx, `DELETE FROM reservations WHERE room_id = $1`, pgconv.UUIDToPgtype(roomID))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete reservations for room", err, classify(err))
	}
	return tag.RowsAffected(), nil
}

func (r *ReservationRepository) DeleteAllForSpace(ctx context.Context, spaceID uuid.UUID) (int64, error) {
	tag, err := r.dbtx.Exec(ctx, `DELETE FROM reservations WHERE space_id = $1`, pgconv.UUIDToPgtype(spaceID))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete reservations for space", err, classify(err))
	}
	return tag.RowsAffected(), nil
}
