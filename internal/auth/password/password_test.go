package password

import "testing"

func TestHashAndVerify(t *testing.T) {
	hash, err := Hash("correct horse battery staple")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if hash == "correct horse battery staple" {
		t.Fatalf("hash must not equal the plaintext")
	}

	if !Verify(hash, "correct horse battery staple") {
		t.Fatalf("expected matching password to verify")
	}
	if Verify(hash, "wrong password") {
		t.Fatalf("expected wrong password to fail")
	}
	if Verify("not a bcrypt hash", "anything") {
		t.Fatalf("expected malformed hash to fail")
	}
}
