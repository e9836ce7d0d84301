package service

import (
	"sort"

	"travelmate/internal/model"
	"travelmate/internal/repository"

	"gorm.io/gorm"
)

// In-memory store fakes. They mirror the gorm repositories' behavior,
// including the pair unique index and the not-found sentinel.

type fakeUserStore struct {
	nextID uint
	users  map[uint]*model.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{nextID: 1, users: make(map[uint]*model.User)}
}

func (s *fakeUserStore) Create(user *model.User) error {
	for _, u := range s.users {
		if u.Username == user.Username || u.Email == user.Email {
			return gorm.ErrDuplicatedKey
		}
	}
	user.ID = s.nextID
	s.nextID++
	s.users[user.ID] = user
	return nil
}

func (s *fakeUserStore) GetByID(id uint) (*model.User, error) {
	if u, ok := s.users[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *fakeUserStore) GetByIDs(ids []uint) (map[uint]*model.User, error) {
	out := make(map[uint]*model.User)
	for _, id := range ids {
		if u, ok := s.users[id]; ok {
			out[id] = u
		}
	}
	return out, nil
}

func (s *fakeUserStore) GetByUsername(username string) (*model.User, error) {
	for _, u := range s.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *fakeUserStore) GetByEmail(email string) (*model.User, error) {
	for _, u := range s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *fakeUserStore) GetByUsernameOrEmail(identifier string) (*model.User, error) {
	for _, u := range s.users {
		if u.Username == identifier || u.Email == identifier {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *fakeUserStore) Search(query string, limit int) ([]*model.User, error) {
	var out []*model.User
	for _, u := range s.users {
		if len(u.Username) >= len(query) && u.Username[:len(query)] == query && u.IsActive {
			out = append(out, u)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Username < out[j].Username })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

type fakeFriendshipStore struct {
	nextID uint
	rows   map[uint]*model.Friendship
}

func newFakeFriendshipStore() *fakeFriendshipStore {
	return &fakeFriendshipStore{nextID: 1, rows: make(map[uint]*model.Friendship)}
}

func (s *fakeFriendshipStore) InTx(fn func(repository.FriendshipStore) error) error {
	return fn(s)
}

func (s *fakeFriendshipStore) Create(f *model.Friendship) error {
	lo, hi := model.NormalizePair(f.RequesterID, f.AddresseeID)
	for _, row := range s.rows {
		rlo, rhi := model.NormalizePair(row.RequesterID, row.AddresseeID)
		if rlo == lo && rhi == hi {
			return gorm.ErrDuplicatedKey
		}
	}
	f.ID = s.nextID
	f.PairLo, f.PairHi = lo, hi
	s.nextID++
	copy := *f
	s.rows[f.ID] = &copy
	return nil
}

func (s *fakeFriendshipStore) GetByID(id uint) (*model.Friendship, error) {
	if f, ok := s.rows[id]; ok {
		copy := *f
		return &copy, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *fakeFriendshipStore) FindBetween(user1ID, user2ID uint) (*model.Friendship, error) {
	lo, hi := model.NormalizePair(user1ID, user2ID)
	for _, row := range s.rows {
		rlo, rhi := model.NormalizePair(row.RequesterID, row.AddresseeID)
		if rlo == lo && rhi == hi {
			copy := *row
			return &copy, nil
		}
	}
	return nil, nil
}

func (s *fakeFriendshipStore) UpdateStatus(id uint, fromStatus, toStatus string) (int64, error) {
	if f, ok := s.rows[id]; ok && f.Status == fromStatus {
		f.Status = toStatus
		return 1, nil
	}
	return 0, nil
}

func (s *fakeFriendshipStore) SetStatus(id uint, status string) error {
	if f, ok := s.rows[id]; ok {
		f.Status = status
	}
	return nil
}

func (s *fakeFriendshipStore) Delete(id uint) error {
	delete(s.rows, id)
	return nil
}

func (s *fakeFriendshipStore) ListAcceptedOf(userID uint) ([]*model.Friendship, error) {
	return s.list(func(f *model.Friendship) bool {
		return f.Involves(userID) && f.Status == model.FriendshipStatusAccepted
	}), nil
}

func (s *fakeFriendshipStore) ListPendingReceivedBy(userID uint) ([]*model.Friendship, error) {
	return s.list(func(f *model.Friendship) bool {
		return f.AddresseeID == userID && f.Status == model.FriendshipStatusPending
	}), nil
}

func (s *fakeFriendshipStore) ListPendingSentBy(userID uint) ([]*model.Friendship, error) {
	return s.list(func(f *model.Friendship) bool {
		return f.RequesterID == userID && f.Status == model.FriendshipStatusPending
	}), nil
}

func (s *fakeFriendshipStore) CountPendingReceivedBy(userID uint) (int64, error) {
	rows, _ := s.ListPendingReceivedBy(userID)
	return int64(len(rows)), nil
}

func (s *fakeFriendshipStore) list(match func(*model.Friendship) bool) []*model.Friendship {
	var out []*model.Friendship
	for _, row := range s.rows {
		if match(row) {
			copy := *row
			out = append(out, &copy)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

type fakeSharingStore struct {
	nextID uint
	rows   map[uint]*model.TripSharing
}

func newFakeSharingStore() *fakeSharingStore {
	return &fakeSharingStore{nextID: 1, rows: make(map[uint]*model.TripSharing)}
}

func (s *fakeSharingStore) InTx(fn func(repository.SharingStore) error) error {
	return fn(s)
}

func (s *fakeSharingStore) Create(row *model.TripSharing) error {
	row.ID = s.nextID
	s.nextID++
	copy := *row
	s.rows[row.ID] = &copy
	return nil
}

func (s *fakeSharingStore) GetByID(id uint) (*model.TripSharing, error) {
	if row, ok := s.rows[id]; ok {
		copy := *row
		return &copy, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *fakeSharingStore) FindByTripAndUser(tripID, userID uint) (*model.TripSharing, error) {
	for _, row := range s.rows {
		if row.TripID == tripID && row.SharedWithID == userID {
			copy := *row
			return &copy, nil
		}
	}
	return nil, nil
}

func (s *fakeSharingStore) FindAccepted(tripID, userID uint) (*model.TripSharing, error) {
	for _, row := range s.rows {
		if row.TripID == tripID && row.SharedWithID == userID && row.Status == model.SharingStatusAccepted {
			copy := *row
			return &copy, nil
		}
	}
	return nil, nil
}

func (s *fakeSharingStore) UpdateStatus(id uint, fromStatus, toStatus string) (int64, error) {
	if row, ok := s.rows[id]; ok && row.Status == fromStatus {
		row.Status = toStatus
		return 1, nil
	}
	return 0, nil
}

func (s *fakeSharingStore) DeleteByTripAndUser(tripID, userID uint) (int64, error) {
	var n int64
	for id, row := range s.rows {
		if row.TripID == tripID && row.SharedWithID == userID {
			delete(s.rows, id)
			n++
		}
	}
	return n, nil
}

func (s *fakeSharingStore) ListAcceptedFor(userID uint) ([]*model.TripSharing, error) {
	return s.list(func(row *model.TripSharing) bool {
		return row.SharedWithID == userID && row.Status == model.SharingStatusAccepted
	}), nil
}

func (s *fakeSharingStore) ListPendingFor(userID uint) ([]*model.TripSharing, error) {
	return s.list(func(row *model.TripSharing) bool {
		return row.SharedWithID == userID && row.Status == model.SharingStatusPending
	}), nil
}

func (s *fakeSharingStore) CountPendingFor(userID uint) (int64, error) {
	rows, _ := s.ListPendingFor(userID)
	return int64(len(rows)), nil
}

func (s *fakeSharingStore) list(match func(*model.TripSharing) bool) []*model.TripSharing {
	var out []*model.TripSharing
	for _, row := range s.rows {
		if match(row) {
			copy := *row
			out = append(out, &copy)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

type fakeTripStore struct {
	nextID         uint
	trips          map[uint]*model.Trip
	accommodations map[uint]*model.Accommodation
	travels        map[uint]*model.Travel
	shares         *fakeSharingStore // for cascade deletion
}

func newFakeTripStore(shares *fakeSharingStore) *fakeTripStore {
	return &fakeTripStore{
		nextID:         1,
		trips:          make(map[uint]*model.Trip),
		accommodations: make(map[uint]*model.Accommodation),
		travels:        make(map[uint]*model.Travel),
		shares:         shares,
	}
}

func (s *fakeTripStore) Create(trip *model.Trip) error {
	trip.ID = s.nextID
	s.nextID++
	copy := *trip
	s.trips[trip.ID] = &copy
	return nil
}

func (s *fakeTripStore) GetByID(id uint) (*model.Trip, error) {
	if t, ok := s.trips[id]; ok {
		copy := *t
		return &copy, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *fakeTripStore) GetAggregate(id uint) (*model.Trip, error) {
	t, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	accs, _ := s.ListAccommodations(id)
	for _, a := range accs {
		t.Accommodations = append(t.Accommodations, *a)
	}
	travels, _ := s.ListTravels(id)
	for _, tr := range travels {
		t.Travels = append(t.Travels, *tr)
	}
	return t, nil
}

func (s *fakeTripStore) ListByOwner(userID uint) ([]*model.Trip, error) {
	var out []*model.Trip
	for _, t := range s.trips {
		if t.UserID == userID {
			copy := *t
			out = append(out, &copy)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartDate.After(out[j].StartDate) })
	return out, nil
}

func (s *fakeTripStore) ListByIDs(ids []uint) ([]*model.Trip, error) {
	var out []*model.Trip
	for _, id := range ids {
		if t, ok := s.trips[id]; ok {
			copy := *t
			out = append(out, &copy)
		}
	}
	return out, nil
}

func (s *fakeTripStore) Update(trip *model.Trip) error {
	if t, ok := s.trips[trip.ID]; ok {
		t.Destination = trip.Destination
		t.StartDate = trip.StartDate
		t.EndDate = trip.EndDate
		t.Description = trip.Description
	}
	return nil
}

func (s *fakeTripStore) DeleteCascade(tripID uint) error {
	delete(s.trips, tripID)
	for id, a := range s.accommodations {
		if a.TripID == tripID {
			delete(s.accommodations, id)
		}
	}
	for id, t := range s.travels {
		if t.TripID == tripID {
			delete(s.travels, id)
		}
	}
	if s.shares != nil {
		for id, row := range s.shares.rows {
			if row.TripID == tripID {
				delete(s.shares.rows, id)
			}
		}
	}
	return nil
}

func (s *fakeTripStore) AddAccommodation(a *model.Accommodation) error {
	a.ID = s.nextID
	s.nextID++
	copy := *a
	s.accommodations[a.ID] = &copy
	return nil
}

func (s *fakeTripStore) GetAccommodation(tripID, id uint) (*model.Accommodation, error) {
	if a, ok := s.accommodations[id]; ok && a.TripID == tripID {
		copy := *a
		return &copy, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *fakeTripStore) UpdateAccommodation(a *model.Accommodation) error {
	if cur, ok := s.accommodations[a.ID]; ok && cur.TripID == a.TripID {
		copy := *a
		s.accommodations[a.ID] = &copy
	}
	return nil
}

func (s *fakeTripStore) DeleteAccommodation(tripID, id uint) error {
	if a, ok := s.accommodations[id]; ok && a.TripID == tripID {
		delete(s.accommodations, id)
	}
	return nil
}

func (s *fakeTripStore) ListAccommodations(tripID uint) ([]*model.Accommodation, error) {
	var out []*model.Accommodation
	for _, a := range s.accommodations {
		if a.TripID == tripID {
			copy := *a
			out = append(out, &copy)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].OrderIndex != out[j].OrderIndex {
			return out[i].OrderIndex < out[j].OrderIndex
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (s *fakeTripStore) ReorderAccommodations(tripID uint, orderedIDs []uint) error {
	for i, id := range orderedIDs {
		if a, ok := s.accommodations[id]; ok && a.TripID == tripID {
			a.OrderIndex = i
		}
	}
	return nil
}

func (s *fakeTripStore) AddTravel(t *model.Travel) error {
	t.ID = s.nextID
	s.nextID++
	copy := *t
	s.travels[t.ID] = &copy
	return nil
}

func (s *fakeTripStore) GetTravel(tripID, id uint) (*model.Travel, error) {
	if t, ok := s.travels[id]; ok && t.TripID == tripID {
		copy := *t
		return &copy, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *fakeTripStore) UpdateTravel(t *model.Travel) error {
	if cur, ok := s.travels[t.ID]; ok && cur.TripID == t.TripID {
		copy := *t
		s.travels[t.ID] = &copy
	}
	return nil
}

func (s *fakeTripStore) DeleteTravel(tripID, id uint) error {
	if t, ok := s.travels[id]; ok && t.TripID == tripID {
		delete(s.travels, id)
	}
	return nil
}

func (s *fakeTripStore) ListTravels(tripID uint) ([]*model.Travel, error) {
	var out []*model.Travel
	for _, t := range s.travels {
		if t.TripID == tripID {
			copy := *t
			out = append(out, &copy)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].OrderIndex != out[j].OrderIndex {
			return out[i].OrderIndex < out[j].OrderIndex
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (s *fakeTripStore) ReorderTravels(tripID uint, orderedIDs []uint) error {
	for i, id := range orderedIDs {
		if t, ok := s.travels[id]; ok && t.TripID == tripID {
			t.OrderIndex = i
		}
	}
	return nil
}

// interface conformance
var (
	_ repository.UserStore       = (*fakeUserStore)(nil)
	_ repository.FriendshipStore = (*fakeFriendshipStore)(nil)
	_ repository.SharingStore    = (*fakeSharingStore)(nil)
	_ repository.TripStore       = (*fakeTripStore)(nil)
)
