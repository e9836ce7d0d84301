package service

import (
	"testing"

	"travelmate/internal/model"
)

// Without a cache connection the counts come straight from the ledgers.
func TestCountsRecomputedFromLedgers(t *testing.T) {
	friendships := newFakeFriendshipStore()
	shares := newFakeSharingStore()
	svc := NewNotificationService(friendships, shares)

	seed := []*model.Friendship{
		{RequesterID: 2, AddresseeID: 1, Status: model.FriendshipStatusPending},
		{RequesterID: 3, AddresseeID: 1, Status: model.FriendshipStatusPending},
		{RequesterID: 1, AddresseeID: 4, Status: model.FriendshipStatusPending}, // sent, not received
		{RequesterID: 5, AddresseeID: 1, Status: model.FriendshipStatusAccepted},
	}
	for _, f := range seed {
		if err := friendships.Create(f); err != nil {
			t.Fatalf("seed friendship: %v", err)
		}
	}
	if err := shares.Create(&model.TripSharing{TripID: 1, OwnerID: 2, SharedWithID: 1, Permission: model.PermissionView, Status: model.SharingStatusPending}); err != nil {
		t.Fatalf("seed share: %v", err)
	}
	if err := shares.Create(&model.TripSharing{TripID: 2, OwnerID: 3, SharedWithID: 1, Permission: model.PermissionView, Status: model.SharingStatusDeclined}); err != nil {
		t.Fatalf("seed share: %v", err)
	}

	counts, err := svc.Counts(1)
	if err != nil {
		t.Fatalf("Counts: %v", err)
	}
	if counts.FriendRequests != 2 {
		t.Errorf("friend requests = %d, want 2", counts.FriendRequests)
	}
	if counts.TripInvites != 1 {
		t.Errorf("trip invites = %d, want 1", counts.TripInvites)
	}
}

func TestCountsEmpty(t *testing.T) {
	svc := NewNotificationService(newFakeFriendshipStore(), newFakeSharingStore())

	counts, err := svc.Counts(7)
	if err != nil {
		t.Fatalf("Counts: %v", err)
	}
	if counts.FriendRequests != 0 || counts.TripInvites != 0 {
		t.Errorf("counts = %+v, want zeros", counts)
	}
}
