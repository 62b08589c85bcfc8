package keyring

import (
	"strings"
	"testing"
)

func TestHashPIN_SaltedFormat(t *testing.T) {
	hash, err := HashPIN("1234")
	if err != nil {
		t.Fatalf("HashPIN failed: %v", err)
	}

	parts := strings.SplitN(hash, ":", 2)
	if len(parts) != 2 {
		t.Fatalf("hash %q is not salt:digest", hash)
	}
	if len(parts[0]) != 32 {
		t.Errorf("salt hex length = %d, want 32", len(parts[0]))
	}
	if len(parts[1]) != 64 {
		t.Errorf("digest hex length = %d, want 64", len(parts[1]))
	}
	if strings.Contains(hash, "1234") {
		t.Error("plaintext PIN leaked into the hash")
	}
}

func TestHashPIN_UniqueSalts(t *testing.T) {
	first, err := HashPIN("1234")
	if err != nil {
		t.Fatalf("HashPIN failed: %v", err)
	}
	second, err := HashPIN("1234")
	if err != nil {
		t.Fatalf("HashPIN failed: %v", err)
	}
	if first == second {
		t.Error("two hashes of the same PIN share a salt")
	}
}

func TestVerifyPIN(t *testing.T) {
	hash, err := HashPIN("1234")
	if err != nil {
		t.Fatalf("HashPIN failed: %v", err)
	}

	if !VerifyPIN("1234", hash) {
		t.Error("correct PIN rejected")
	}
	if VerifyPIN("4321", hash) {
		t.Error("wrong PIN accepted")
	}
	if VerifyPIN("1234", "garbage") {
		t.Error("malformed stored hash accepted")
	}
	if VerifyPIN("1234", "nothex:deadbeef") {
		t.Error("non-hex salt accepted")
	}
}
