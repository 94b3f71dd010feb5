package repository

import (
	"context"

	"coworking-booking/internal/domain/space"
	"coworking-booking/internal/infra"
	"coworking-booking/internal/infra/db"
	"coworking-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type SpaceRepository struct {
	dbtx db.DBTX
}

func NewSpaceRepository(dbtx db.DBTX) *SpaceRepository {
	return &SpaceRepository{dbtx: dbtx}
}

func (r *SpaceRepository) Create(ctx context.Context, s *space.Space) (uuid.UUID, error) {
	const query = `
		INSERT INTO spaces (id, name, address, tel, open_sec, close_sec)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	var id uuid.UUID
	err := r.dbtx.QueryRow(ctx, query,
		pgconv.UUIDToPgtype(s.ID()), s.Name(), s.Address(), s.Tel(),
		s.Hours().Open().Seconds(), s.Hours().Close().Seconds(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create space", err, classify(err))
	}
	return id, nil
}

func (r *SpaceRepository) Update(ctx context.Context, s *space.Space) error {
	const query = `
		UPDATE spaces
		SET name = $2, address = $3, tel = $4, open_sec = $5, close_sec = $6, updated_at = now()
		WHERE id = $1
	`
	tag, err := r.dbtx.Exec(ctx, query,
		pgconv.UUIDToPgtype(s.ID()), s.Name(), s.Address(), s.Tel(),
		s.Hours().Open().Seconds(), s.Hours().Close().Seconds(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update space", err, classify(err))
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("space not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *SpaceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.dbtx.Exec(ctx, `DELETE FROM spaces WHERE id = $1`, pgconv.UUIDToPgtype(id))
	if err != nil {
		return infra.WrapRepoErr("failed to delete space", err, classify(err))
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("space not found", nil, infra.KindNotFound)
	}
	return nil
}
