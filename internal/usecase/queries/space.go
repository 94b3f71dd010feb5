package queries

import (
	"context"

	"coworking-booking/internal/infra"
	"coworking-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrSpaceNotFound = errs.New("space not found")

type SpaceQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*SpaceView, error)
	List(ctx context.Context, limit, offset int) ([]*SpaceView, error)
}

type SpaceReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*SpaceView, error)
	FindAll(ctx context.Context, limit, offset int32) ([]*SpaceView, error)
}

type spaceQueriesImpl struct {
	store SpaceReadStore
}

func NewSpaceQueries(store SpaceReadStore) SpaceQueries {
	return &spaceQueriesImpl{store: store}
}

func (q *spaceQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*SpaceView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrSpaceNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *spaceQueriesImpl) List(ctx context.Context, limit, offset int) ([]*SpaceView, error) {
	if limit <= 0 || limit > 100 {
		limit = 25
	}
	if offset < 0 {
		offset = 0
	}
	return q.store.FindAll(ctx, int32(limit), int32(offset))
}
