package password

import (
	"strings"
	"testing"
)

func TestHashAndVerify(t *testing.T) {
	hash, err := Hash("secret123")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	if hash == "secret123" {
		t.Fatalf("hash must not equal plaintext")
	}
	if !strings.HasPrefix(hash, "$2") {
		t.Fatalf("expected bcrypt hash, got %q", hash)
	}
	if !Verify("secret123", hash) {
		t.Fatalf("expected password to verify against its own hash")
	}
}

func TestVerify_WrongPassword(t *testing.T) {
	hash, err := Hash("secret123")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	if Verify("secret124", hash) {
		t.Fatalf("wrong password must not verify")
	}
}

func TestVerify_MalformedHash(t *testing.T) {
	if Verify("secret123", "not-a-bcrypt-hash") {
		t.Fatalf("malformed hash must not verify")
	}
	if Verify("secret123", "") {
		t.Fatalf("empty hash must not verify")
	}
}

func TestHash_Salted(t *testing.T) {
	h1, err := Hash("same-password")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	h2, err := Hash("same-password")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	if h1 == h2 {
		t.Fatalf("per-record salt should make hashes differ")
	}
}
