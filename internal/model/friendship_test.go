package model

import "testing"

func TestNormalizePair(t *testing.T) {
	tests := []struct {
		a, b, lo, hi uint
	}{
		{1, 2, 1, 2},
		{2, 1, 1, 2},
		{7, 7, 7, 7},
	}
	for _, tt := range tests {
		lo, hi := NormalizePair(tt.a, tt.b)
		if lo != tt.lo || hi != tt.hi {
			t.Errorf("NormalizePair(%d, %d) = (%d, %d), want (%d, %d)", tt.a, tt.b, lo, hi, tt.lo, tt.hi)
		}
	}
}

func TestBeforeSave(t *testing.T) {
	f := &Friendship{RequesterID: 9, AddresseeID: 4}
	if err := f.BeforeSave(nil); err != nil {
		t.Fatalf("BeforeSave: %v", err)
	}
	if f.PairLo != 4 || f.PairHi != 9 {
		t.Errorf("pair = (%d, %d), want (4, 9)", f.PairLo, f.PairHi)
	}
}

func TestBeforeSaveRejectsBadPairs(t *testing.T) {
	tests := []struct {
		name string
		f    Friendship
	}{
		{"missing requester", Friendship{AddresseeID: 2}},
		{"missing addressee", Friendship{RequesterID: 1}},
		{"same user", Friendship{RequesterID: 3, AddresseeID: 3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.f.BeforeSave(nil); err == nil {
				t.Fatal("BeforeSave accepted an invalid pair")
			}
		})
	}
}

func TestCounterpartOf(t *testing.T) {
	f := &Friendship{RequesterID: 1, AddresseeID: 2}

	if got := f.CounterpartOf(1); got != 2 {
		t.Errorf("CounterpartOf(1) = %d, want 2", got)
	}
	if got := f.CounterpartOf(2); got != 1 {
		t.Errorf("CounterpartOf(2) = %d, want 1", got)
	}
	if got := f.CounterpartOf(3); got != 0 {
		t.Errorf("CounterpartOf(3) = %d, want 0", got)
	}

	if !f.Involves(1) || !f.Involves(2) || f.Involves(3) {
		t.Error("Involves mismatch")
	}
}
