package password

import "testing"

func TestHashAndVerify(t *testing.T) {
	digest, err := Hash("s3cret")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	if digest == "s3cret" {
		t.Fatalf("digest must not equal the plaintext")
	}
	if !Verify("s3cret", digest) {
		t.Fatalf("expected digest to verify against original password")
	}
}

func TestVerify_WrongPassword(t *testing.T) {
	digest, err := Hash("s3cret")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	if Verify("wrong", digest) {
		t.Fatalf("expected verification failure for wrong password")
	}
}

func TestVerify_MalformedDigest(t *testing.T) {
	if Verify("anything", "not-a-bcrypt-digest") {
		t.Fatalf("malformed digest must fail verification, not panic")
	}
}

func TestHash_SaltedPerCall(t *testing.T) {
	a, _ := Hash("same")
	b, _ := Hash("same")
	if a == b {
		t.Fatalf("two hashes of the same password should differ (salt)")
	}
}
