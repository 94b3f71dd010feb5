// Package fake provides an in-memory persistence stand-in for command and
// query unit tests. It honors the same error kinds as the Postgres layer so
// the usecases' error translation can be exercised without a database.
package fake

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"coworking-booking/internal/domain/reservation"
	"coworking-booking/internal/domain/room"
	"coworking-booking/internal/domain/schedule"
	"coworking-booking/internal/domain/space"
	"coworking-booking/internal/infra"
	"coworking-booking/internal/usecase/queries"
	"coworking-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type spaceRec struct {
	id        uuid.UUID
	name      string
	address   string
	tel       string
	hours     space.Hours
	createdAt time.Time
	updatedAt time.Time
}

type roomRec struct {
	id        uuid.UUID
	name      string
	spaceID   uuid.UUID
	capacity  int
	createdAt time.Time
	updatedAt time.Time
}

type resRec struct {
	id        uuid.UUID
	userID    uuid.UUID
	roomID    uuid.UUID
	spaceID   uuid.UUID
	date      time.Time
	slot      schedule.TimeRange
	partySize int
	createdAt time.Time
	updatedAt time.Time
}

// BookingStore backs the write and read interfaces of the booking usecases
// with in-memory maps protected by one mutex.
type BookingStore struct {
	mu           sync.Mutex
	spaces       map[uuid.UUID]*spaceRec
	rooms        map[uuid.UUID]*roomRec
	reservations map[uuid.UUID]*resRec

	// ConflictsOnWrite fails that many upcoming reservation writes with
	// KindConflict, simulating the exclusion constraint firing under a
	// concurrent commit.
	ConflictsOnWrite int
}

func NewBookingStore() *BookingStore {
	return &BookingStore{
		spaces:       make(map[uuid.UUID]*spaceRec),
		rooms:        make(map[uuid.UUID]*roomRec),
		reservations: make(map[uuid.UUID]*resRec),
	}
}

func notFound(msg string) error {
	return infra.WrapRepoErr(msg, errors.New("no rows in result set"), infra.KindNotFound)
}

func duplicateKey(msg string) error {
	return infra.WrapRepoErr(msg, errors.New("unique violation"), infra.KindDuplicateKey)
}

// ---- seeding and inspection ----

func (s *BookingStore) SeedSpace(name, open, close string) uuid.UUID {
	hours, err := space.ParseHours(open, close)
	if err != nil {
		panic(err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	id := uuid.New()
	s.spaces[id] = &spaceRec{
		id: id, name: name, address: "1-1-1 Test", tel: "00-" + name,
		hours: hours, createdAt: time.Now(), updatedAt: time.Now(),
	}
	return id
}

func (s *BookingStore) SeedRoom(spaceID uuid.UUID, name string, capacity int) uuid.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := uuid.New()
	s.rooms[id] = &roomRec{
		id: id, name: name, spaceID: spaceID, capacity: capacity,
		createdAt: time.Now(), updatedAt: time.Now(),
	}
	return id
}

func (s *BookingStore) ReservationCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.reservations)
}

func (s *BookingStore) RoomCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.rooms)
}

func (s *BookingStore) SpaceCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.spaces)
}

// ---- shared.UnitOfWork / shared.Tx ----

func (s *BookingStore) Within(_ context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return fn(context.Background(), s)
}

func (s *BookingStore) CommandReads() shared.CommandReads { return s }

func (s *BookingStore) Spaces() shared.SpaceRepository             { return &spaceRepo{s} }
func (s *BookingStore) Rooms() shared.RoomRepository               { return &roomRepo{s} }
func (s *BookingStore) Reservations() shared.ReservationRepository { return &reservationRepo{s} }
func (s *BookingStore) Reads() shared.CommandReads                 { return s }

// ---- shared.CommandReads ----

func (s *BookingStore) SpaceByID(_ context.Context, id uuid.UUID) (*shared.SpaceSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.spaces[id]
	if !ok {
		return nil, notFound("space not found")
	}
	return &shared.SpaceSnapshot{ID: rec.id, Name: rec.name, Hours: rec.hours}, nil
}

func (s *BookingStore) RoomByID(_ context.Context, id uuid.UUID) (*shared.RoomSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.rooms[id]
	if !ok {
		return nil, notFound("room not found")
	}
	return &shared.RoomSnapshot{ID: rec.id, Name: rec.name, SpaceID: rec.spaceID, Capacity: rec.capacity}, nil
}

func (s *BookingStore) ReservationByID(_ context.Context, id uuid.UUID) (*shared.ReservationSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.reservations[id]
	if !ok {
		return nil, notFound("reservation not found")
	}
	return snapshotOf(rec), nil
}

func (s *BookingStore) ReservationsForRoomOnDate(_ context.Context, roomID uuid.UUID, date time.Time, exceptID *uuid.UUID) ([]*shared.ReservationSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*shared.ReservationSnapshot
	for _, rec := range s.reservations {
		if rec.roomID != roomID || !rec.date.Equal(date) {
			continue
		}
		if exceptID != nil && rec.id == *exceptID {
			continue
		}
		out = append(out, snapshotOf(rec))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Slot.Start() < out[j].Slot.Start() })
	return out, nil
}

func (s *BookingStore) CountReservationsByUser(_ context.Context, userID uuid.UUID) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	count := 0
	for _, rec := range s.reservations {
		if rec.userID == userID {
			count++
		}
	}
	return count, nil
}

func snapshotOf(rec *resRec) *shared.ReservationSnapshot {
	return &shared.ReservationSnapshot{
		ID:        rec.id,
		UserID:    rec.userID,
		RoomID:    rec.roomID,
		SpaceID:   rec.spaceID,
		Date:      rec.date,
		Slot:      rec.slot,
		PartySize: rec.partySize,
	}
}

// ---- write repositories ----

type spaceRepo struct{ s *BookingStore }

func (r *spaceRepo) Create(_ context.Context, sp *space.Space) (uuid.UUID, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, rec := range r.s.spaces {
		if rec.name == sp.Name() {
			return uuid.Nil, duplicateKey("space name taken")
		}
	}
	r.s.spaces[sp.ID()] = &spaceRec{
		id: sp.ID(), name: sp.Name(), address: sp.Address(), tel: sp.Tel(),
		hours: sp.Hours(), createdAt: time.Now(), updatedAt: time.Now(),
	}
	return sp.ID(), nil
}

func (r *spaceRepo) Update(_ context.Context, sp *space.Space) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	rec, ok := r.s.spaces[sp.ID()]
	if !ok {
		return notFound("space not found")
	}
	for _, other := range r.s.spaces {
		if other.id != sp.ID() && other.name == sp.Name() {
			return duplicateKey("space name taken")
		}
	}
	rec.name = sp.Name()
	rec.address = sp.Address()
	rec.tel = sp.Tel()
	rec.hours = sp.Hours()
	rec.updatedAt = time.Now()
	return nil
}

func (r *spaceRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.spaces[id]; !ok {
		return notFound("space not found")
	}
	delete(r.s.spaces, id)
	return nil
}

type roomRepo struct{ s *BookingStore }

func (r *roomRepo) Create(_ context.Context, rm *room.Room) (uuid.UUID, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, rec := range r.s.rooms {
		if rec.name == rm.Name() {
			return uuid.Nil, duplicateKey("room name taken")
		}
	}
	if _, ok := r.s.spaces[rm.SpaceID()]; !ok {
		return uuid.Nil, infra.WrapRepoErr("space missing", errors.New("fk violation"), infra.KindForeignKeyViolated)
	}
	r.s.rooms[rm.ID()] = &roomRec{
		id: rm.ID(), name: rm.Name(), spaceID: rm.SpaceID(), capacity: rm.Capacity(),
		createdAt: time.Now(), updatedAt: time.Now(),
	}
	return rm.ID(), nil
}

func (r *roomRepo) Update(_ context.Context, rm *room.Room) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	rec, ok := r.s.rooms[rm.ID()]
	if !ok {
		return notFound("room not found")
	}
	for _, other := range r.s.rooms {
		if other.id != rm.ID() && other.name == rm.Name() {
			return duplicateKey("room name taken")
		}
	}
	rec.name = rm.Name()
	rec.capacity = rm.Capacity()
	rec.updatedAt = time.Now()
	return nil
}

func (r *roomRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.rooms[id]; !ok {
		return notFound("room not found")
	}
	delete(r.s.rooms, id)
	return nil
}

func (r *roomRepo) DeleteAllForSpace(_ context.Context, spaceID uuid.UUID) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var n int64
	for id, rec := range r.s.rooms {
		if rec.spaceID == spaceID {
			delete(r.s.rooms, id)
			n++
		}
	}
	return n, nil
}

type reservationRepo struct{ s *BookingStore }

func (r *reservationRepo) Create(_ context.Context, res *reservation.Reservation) (uuid.UUID, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.constraintCheck(res); err != nil {
		return uuid.Nil, err
	}
	r.s.reservations[res.ID()] = &resRec{
		id: res.ID(), userID: res.UserID(), roomID: res.RoomID(), spaceID: res.SpaceID(),
		date: res.Date(), slot: res.Slot(), partySize: res.PartySize(),
		createdAt: time.Now(), updatedAt: time.Now(),
	}
	return res.ID(), nil
}

func (r *reservationRepo) Update(_ context.Context, res *reservation.Reservation) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	rec, ok := r.s.reservations[res.ID()]
	if !ok {
		return notFound("reservation not found")
	}
	if err := r.s.constraintCheck(res); err != nil {
		return err
	}
	rec.roomID = res.RoomID()
	rec.spaceID = res.SpaceID()
	rec.date = res.Date()
	rec.slot = res.Slot()
	rec.partySize = res.PartySize()
	rec.updatedAt = time.Now()
	return nil
}

func (r *reservationRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.reservations[id]; !ok {
		return notFound("reservation not found")
	}
	delete(r.s.reservations, id)
	return nil
}

func (r *reservationRepo) DeleteAllForRoom(_ context.Context, roomID uuid.UUID) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var n int64
	for id, rec := range r.s.reservations {
		if rec.roomID == roomID {
			delete(r.s.reservations, id)
			n++
		}
	}
	return n, nil
}

func (r *reservationRepo) DeleteAllForSpace(_ context.Context, spaceID uuid.UUID) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var n int64
	for id, rec := range r.s.reservations {
		if rec.spaceID == spaceID {
			delete(r.s.reservations, id)
			n++
		}
	}
	return n, nil
}

// constraintCheck mirrors the database exclusion constraint: overlapping
// committed slots for the same room and date fail with KindConflict.
// Callers must hold the mutex.
func (s *BookingStore) constraintCheck(res *reservation.Reservation) error {
	if s.ConflictsOnWrite > 0 {
		s.ConflictsOnWrite--
		return infra.WrapRepoErr("slot overlap", errors.New("exclusion violation"), infra.KindConflict)
	}
	for _, rec := range s.reservations {
		if rec.id == res.ID() {
			continue
		}
		if rec.roomID == res.RoomID() && rec.date.Equal(res.Date()) && rec.slot.Overlaps(res.Slot()) {
			return infra.WrapRepoErr("slot overlap", errors.New("exclusion violation"), infra.KindConflict)
		}
	}
	return nil
}

// ---- read stores ----

func (s *BookingStore) SpaceViews() queries.SpaceReadStore             { return &spaceViews{s} }
func (s *BookingStore) RoomViews() queries.RoomReadStore               { return &roomViews{s} }
func (s *BookingStore) ReservationViews() queries.ReservationReadStore { return &reservationViews{s} }

type spaceViews struct{ s *BookingStore }

func (v *spaceViews) FindByID(_ context.Context, id uuid.UUID) (*queries.SpaceView, error) {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	rec, ok := v.s.spaces[id]
	if !ok {
		return nil, notFound("space not found")
	}
	return v.s.spaceViewOf(rec), nil
}

func (v *spaceViews) FindAll(_ context.Context, limit, offset int32) ([]*queries.SpaceView, error) {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	var out []*queries.SpaceView
	for _, rec := range v.s.spaces {
		out = append(out, v.s.spaceViewOf(rec))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	if int(offset) >= len(out) {
		return nil, nil
	}
	out = out[offset:]
	if int(limit) < len(out) {
		out = out[:limit]
	}
	return out, nil
}

func (s *BookingStore) spaceViewOf(rec *spaceRec) *queries.SpaceView {
	roomCount := 0
	for _, rm := range s.rooms {
		if rm.spaceID == rec.id {
			roomCount++
		}
	}
	return &queries.SpaceView{
		ID:        rec.id,
		Name:      rec.name,
		Address:   rec.address,
		Tel:       rec.tel,
		OpenTime:  rec.hours.Open().String(),
		CloseTime: rec.hours.Close().String(),
		RoomCount: roomCount,
		CreatedAt: rec.createdAt,
		UpdatedAt: rec.updatedAt,
	}
}

type roomViews struct{ s *BookingStore }

func (v *roomViews) FindByID(_ context.Context, id uuid.UUID) (*queries.RoomView, error) {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	rec, ok := v.s.rooms[id]
	if !ok {
		return nil, notFound("room not found")
	}
	return v.s.roomViewOf(rec), nil
}

func (v *roomViews) FindBySpaceID(_ context.Context, spaceID uuid.UUID) ([]*queries.RoomView, error) {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	var out []*queries.RoomView
	for _, rec := range v.s.rooms {
		if rec.spaceID == spaceID {
			out = append(out, v.s.roomViewOf(rec))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (s *BookingStore) roomViewOf(rec *roomRec) *queries.RoomView {
	spaceName := ""
	if sp, ok := s.spaces[rec.spaceID]; ok {
		spaceName = sp.name
	}
	return &queries.RoomView{
		ID:        rec.id,
		Name:      rec.name,
		SpaceID:   rec.spaceID,
		SpaceName: spaceName,
		Capacity:  rec.capacity,
		CreatedAt: rec.createdAt,
		UpdatedAt: rec.updatedAt,
	}
}

type reservationViews struct{ s *BookingStore }

func (v *reservationViews) FindByID(_ context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	rec, ok := v.s.reservations[id]
	if !ok {
		return nil, notFound("reservation not found")
	}
	roomName, spaceName := v.s.namesFor(rec)
	return &queries.ReservationView{
		ID:        rec.id,
		UserID:    rec.userID,
		RoomID:    rec.roomID,
		RoomName:  roomName,
		SpaceID:   rec.spaceID,
		SpaceName: spaceName,
		Date:      rec.date,
		StartTime: rec.slot.Start().String(),
		EndTime:   rec.slot.End().String(),
		PartySize: rec.partySize,
		CreatedAt: rec.createdAt,
		UpdatedAt: rec.updatedAt,
	}, nil
}

func (v *reservationViews) FindByUserID(_ context.Context, userID uuid.UUID) ([]*queries.ReservationListItem, error) {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	var out []*queries.ReservationListItem
	for _, rec := range v.s.reservations {
		if rec.userID == userID {
			out = append(out, v.s.listItemOf(rec))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.Before(out[j].Date)
		}
		return out[i].StartTime < out[j].StartTime
	})
	return out, nil
}

func (v *reservationViews) FindByRoomOnDate(_ context.Context, roomID uuid.UUID, date time.Time) ([]*queries.ReservationListItem, error) {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	var out []*queries.ReservationListItem
	for _, rec := range v.s.reservations {
		if rec.roomID == roomID && rec.date.Equal(date) {
			out = append(out, v.s.listItemOf(rec))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartTime < out[j].StartTime })
	return out, nil
}

func (s *BookingStore) listItemOf(rec *resRec) *queries.ReservationListItem {
	roomName, spaceName := s.namesFor(rec)
	return &queries.ReservationListItem{
		ID:        rec.id,
		RoomID:    rec.roomID,
		RoomName:  roomName,
		SpaceName: spaceName,
		Date:      rec.date,
		StartTime: rec.slot.Start().String(),
		EndTime:   rec.slot.End().String(),
		PartySize: rec.partySize,
		CreatedAt: rec.createdAt,
	}
}

func (s *BookingStore) namesFor(rec *resRec) (roomName, spaceName string) {
	if rm, ok := s.rooms[rec.roomID]; ok {
		roomName = rm.name
	}
	if sp, ok := s.spaces[rec.spaceID]; ok {
		spaceName = sp.name
	}
	return
}
