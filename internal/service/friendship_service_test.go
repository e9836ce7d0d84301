package service

import (
	"testing"

	"travelmate/internal/model"
	"travelmate/pkg/apperr"
)

func newFriendshipFixture(t *testing.T) (*FriendshipService, *fakeUserStore) {
	t.Helper()
	users := newFakeUserStore()
	for _, name := range []string{"alice", "bob", "carol"} {
		if err := users.Create(&model.User{
			Username: name,
			Email:    name + "@example.com",
			IsActive: true,
		}); err != nil {
			t.Fatalf("seed user %s: %v", name, err)
		}
	}
	return NewFriendshipService(newFakeFriendshipStore(), users), users
}

func TestSendRequest(t *testing.T) {
	svc, _ := newFriendshipFixture(t)

	f, err := svc.SendRequest(1, 2)
	if err != nil {
		t.Fatalf("SendRequest: %v", err)
	}
	if f.Status != model.FriendshipStatusPending {
		t.Errorf("status = %q, want %q", f.Status, model.FriendshipStatusPending)
	}
	if f.RequesterID != 1 || f.AddresseeID != 2 {
		t.Errorf("direction = (%d, %d), want (1, 2)", f.RequesterID, f.AddresseeID)
	}
}

func TestSendRequestToSelf(t *testing.T) {
	svc, _ := newFriendshipFixture(t)

	_, err := svc.SendRequest(1, 1)
	if !apperr.IsKind(err, apperr.KindSelfReferential) {
		t.Fatalf("err = %v, want KindSelfReferential", err)
	}
}

func TestSendRequestToUnknownUser(t *testing.T) {
	svc, _ := newFriendshipFixture(t)

	_, err := svc.SendRequest(1, 99)
	if !apperr.IsKind(err, apperr.KindNotFound) {
		t.Fatalf("err = %v, want KindNotFound", err)
	}
}

func TestSendRequestBlockedByExistingRow(t *testing.T) {
	// a row in any state, in either direction, blocks a new request
	tests := []struct {
		name   string
		status string
		action string // applied to the first request before the retry
	}{
		{"pending same direction", model.FriendshipStatusPending, ""},
		{"accepted", model.FriendshipStatusAccepted, ActionAccept},
		{"declined", model.FriendshipStatusDeclined, ActionDecline},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newFriendshipFixture(t)
			f, err := svc.SendRequest(1, 2)
			if err != nil {
				t.Fatalf("SendRequest: %v", err)
			}
			if tt.action != "" {
				if _, err := svc.Respond(f.ID, 2, tt.action); err != nil {
					t.Fatalf("Respond: %v", err)
				}
			}

			// retry from either side must fail the same way
			for _, pair := range [][2]uint{{1, 2}, {2, 1}} {
				_, err := svc.SendRequest(pair[0], pair[1])
				if !apperr.IsKind(err, apperr.KindInvalidState) {
					t.Errorf("SendRequest(%d, %d) after %s: err = %v, want KindInvalidState",
						pair[0], pair[1], tt.status, err)
				}
			}
		})
	}
}

func TestRespondAccept(t *testing.T) {
	svc, _ := newFriendshipFixture(t)
	f, _ := svc.SendRequest(1, 2)

	updated, err := svc.Respond(f.ID, 2, ActionAccept)
	if err != nil {
		t.Fatalf("Respond: %v", err)
	}
	if updated.Status != model.FriendshipStatusAccepted {
		t.Errorf("status = %q, want accepted", updated.Status)
	}

	friends, err := svc.AreFriends(2, 1)
	if err != nil {
		t.Fatalf("AreFriends: %v", err)
	}
	if !friends {
		t.Error("AreFriends(2, 1) = false after accept")
	}
}

func TestRespondOnlyAddressee(t *testing.T) {
	svc, _ := newFriendshipFixture(t)
	f, _ := svc.SendRequest(1, 2)

	// neither the requester nor a third party may respond
	for _, responder := range []uint{1, 3} {
		_, err := svc.Respond(f.ID, responder, ActionAccept)
		if !apperr.IsKind(err, apperr.KindUnauthorized) {
			t.Errorf("Respond by %d: err = %v, want KindUnauthorized", responder, err)
		}
	}
}

func TestRespondNotPending(t *testing.T) {
	svc, _ := newFriendshipFixture(t)
	f, _ := svc.SendRequest(1, 2)
	if _, err := svc.Respond(f.ID, 2, ActionDecline); err != nil {
		t.Fatalf("Respond: %v", err)
	}

	_, err := svc.Respond(f.ID, 2, ActionAccept)
	if !apperr.IsKind(err, apperr.KindInvalidState) {
		t.Fatalf("second Respond: err = %v, want KindInvalidState", err)
	}
}

func TestRespondBadAction(t *testing.T) {
	svc, _ := newFriendshipFixture(t)
	f, _ := svc.SendRequest(1, 2)

	_, err := svc.Respond(f.ID, 2, "maybe")
	if !apperr.IsKind(err, apperr.KindValidation) {
		t.Fatalf("err = %v, want KindValidation", err)
	}
}

func TestBlock(t *testing.T) {
	svc, _ := newFriendshipFixture(t)
	f, _ := svc.SendRequest(1, 2)

	// either party may block, here the requester blocks their own request
	blocked, err := svc.Block(f.ID, 1)
	if err != nil {
		t.Fatalf("Block: %v", err)
	}
	if blocked.Status != model.FriendshipStatusBlocked {
		t.Errorf("status = %q, want blocked", blocked.Status)
	}

	// blocked is terminal: no accept, no new request
	if _, err := svc.Respond(f.ID, 2, ActionAccept); !apperr.IsKind(err, apperr.KindInvalidState) {
		t.Errorf("Respond after block: err = %v, want KindInvalidState", err)
	}
	if _, err := svc.SendRequest(2, 1); !apperr.IsKind(err, apperr.KindInvalidState) {
		t.Errorf("SendRequest after block: err = %v, want KindInvalidState", err)
	}
}

func TestBlockOutsider(t *testing.T) {
	svc, _ := newFriendshipFixture(t)
	f, _ := svc.SendRequest(1, 2)

	_, err := svc.Block(f.ID, 3)
	if !apperr.IsKind(err, apperr.KindUnauthorized) {
		t.Fatalf("err = %v, want KindUnauthorized", err)
	}
}

func TestRemove(t *testing.T) {
	svc, _ := newFriendshipFixture(t)
	f, _ := svc.SendRequest(1, 2)
	if _, err := svc.Respond(f.ID, 2, ActionAccept); err != nil {
		t.Fatalf("Respond: %v", err)
	}

	if err := svc.Remove(2, 1); err != nil {
		t.Fatalf("Remove: %v", err)
	}

	// pair returns to absent, a fresh request in the other direction works
	if _, err := svc.SendRequest(2, 1); err != nil {
		t.Fatalf("SendRequest after remove: %v", err)
	}
}

func TestRemoveNotFriends(t *testing.T) {
	svc, _ := newFriendshipFixture(t)

	// no row at all
	if err := svc.Remove(1, 2); !apperr.IsKind(err, apperr.KindInvalidState) {
		t.Errorf("Remove with no row: err = %v, want KindInvalidState", err)
	}

	// pending row is not a friendship yet
	if _, err := svc.SendRequest(1, 2); err != nil {
		t.Fatalf("SendRequest: %v", err)
	}
	if err := svc.Remove(1, 2); !apperr.IsKind(err, apperr.KindInvalidState) {
		t.Errorf("Remove of pending: err = %v, want KindInvalidState", err)
	}
}

func TestFindBetweenSymmetric(t *testing.T) {
	svc, _ := newFriendshipFixture(t)
	f, _ := svc.SendRequest(1, 2)

	for _, pair := range [][2]uint{{1, 2}, {2, 1}} {
		got, err := svc.FindBetween(pair[0], pair[1])
		if err != nil {
			t.Fatalf("FindBetween(%d, %d): %v", pair[0], pair[1], err)
		}
		if got == nil || got.ID != f.ID {
			t.Errorf("FindBetween(%d, %d) = %v, want row %d", pair[0], pair[1], got, f.ID)
		}
	}
}

func TestListingsResolveCounterparts(t *testing.T) {
	svc, _ := newFriendshipFixture(t)
	f1, _ := svc.SendRequest(1, 2) // alice -> bob, accepted below
	if _, err := svc.Respond(f1.ID, 2, ActionAccept); err != nil {
		t.Fatalf("Respond: %v", err)
	}
	if _, err := svc.SendRequest(3, 1); err != nil { // carol -> alice, pending
		t.Fatalf("SendRequest: %v", err)
	}

	friends, err := svc.FriendsOf(1)
	if err != nil {
		t.Fatalf("FriendsOf: %v", err)
	}
	if len(friends) != 1 || friends[0].Counterpart == nil || friends[0].Counterpart.Username != "bob" {
		t.Errorf("FriendsOf(1) = %+v, want single counterpart bob", friends)
	}

	received, err := svc.PendingReceivedBy(1)
	if err != nil {
		t.Fatalf("PendingReceivedBy: %v", err)
	}
	if len(received) != 1 || received[0].Counterpart.Username != "carol" {
		t.Errorf("PendingReceivedBy(1) = %+v, want single counterpart carol", received)
	}

	sent, err := svc.PendingSentBy(3)
	if err != nil {
		t.Fatalf("PendingSentBy: %v", err)
	}
	if len(sent) != 1 || sent[0].Counterpart.Username != "alice" {
		t.Errorf("PendingSentBy(3) = %+v, want single counterpart alice", sent)
	}
}
