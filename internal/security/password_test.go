package security

import "testing"

func TestHashPassword_VerifyRoundTrip(t *testing.T) {
	digest, err := HashPassword("secret")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if digest == "secret" {
		t.Fatalf("digest equals plaintext")
	}
	if !VerifyPassword("secret", digest) {
		t.Fatalf("expected verification to succeed")
	}
	if VerifyPassword("wrong", digest) {
		t.Fatalf("expected verification to fail for wrong password")
	}
}

func TestHashPassword_SaltFreshness(t *testing.T) {
	first, err := HashPassword("secret")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	second, err := HashPassword("secret")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if first == second {
		t.Fatalf("two hashes of the same input must differ")
	}
	if !VerifyPassword("secret", first) || !VerifyPassword("secret", second) {
		t.Fatalf("both digests must verify")
	}
}

func TestVerifyPassword_MalformedDigest(t *testing.T) {
	if VerifyPassword("secret", "not-a-bcrypt-digest") {
		t.Fatalf("malformed digest must verify as false")
	}
	if VerifyPassword("secret", "") {
		t.Fatalf("empty digest must verify as false")
	}
}
