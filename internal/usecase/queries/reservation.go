package queries

import (
	"context"
	"time"

	"coworking-booking/internal/infra"
	"coworking-booking/internal/pkg/errs"
	"coworking-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrReservationNotFound = errs.New("reservation not found")
	ErrUnauthorized        = errs.New("not authorized to view this reservation")
)

type ReservationQueries interface {
	GetByID(ctx context.Context, actor shared.Actor, id uuid.UUID) (*ReservationView, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*ReservationListItem, error)
	// ListForRoomOnDate feeds the availability endpoint; results are
	// ordered by start time.
	ListForRoomOnDate(ctx context.Context, roomID uuid.UUID, date time.Time) ([]*ReservationListItem, error)
}

type ReservationReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*ReservationListItem, error)
	FindByRoomOnDate(ctx context.Context, roomID uuid.UUID, date time.Time) ([]*ReservationListItem, error)
}

type reservationQueriesImpl struct {
	store ReservationReadStore
}

func NewReservationQueries(store ReservationReadStore) ReservationQueries {
	return &reservationQueriesImpl{store: store}
}

func (q *reservationQueriesImpl) GetByID(ctx context.Context, actor shared.Actor, id uuid.UUID) (*ReservationView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, err
	}

	// Members see only their own reservations.
	if !actor.CanManage(view.UserID) {
		return nil, ErrUnauthorized
	}

	return view, nil
}

func (q *reservationQueriesImpl) ListByUser(ctx context.Context, userID uuid.UUID) ([]*ReservationListItem, error) {
	return q.store.FindByUserID(ctx, userID)
}

func (q *reservationQueriesImpl) ListForRoomOnDate(ctx context.Context, roomID uuid.UUID, date time.Time) ([]*ReservationListItem, error) {
	return q.store.FindByRoomOnDate(ctx, roomID, date)
}
