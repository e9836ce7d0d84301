package password

import (
	"strings"
	"testing"
)

func TestHashAndVerify(t *testing.T) {
	hash, err := Hash("secret123")
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}
	if hash == "secret123" {
		t.Fatal("hash equals plaintext")
	}
	if !strings.HasPrefix(hash, "$2") {
		t.Errorf("hash %q is not bcrypt", hash)
	}

	if !Verify("secret123", hash) {
		t.Error("Verify with correct password = false")
	}
	if Verify("wrong", hash) {
		t.Error("Verify with wrong password = true")
	}
	if Verify("secret123", "not-a-hash") {
		t.Error("Verify against garbage = true")
	}
}

func TestHashIsSalted(t *testing.T) {
	h1, err := Hash("secret123")
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}
	h2, err := Hash("secret123")
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}
	if h1 == h2 {
		t.Error("two hashes of the same password are identical")
	}
}
