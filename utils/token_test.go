package utils

import "testing"

func TestGenerateAndParseToken(t *testing.T) {
	tok, err := GenerateToken("admin", "admin")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	role, err := ParseToken(tok)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if role != "admin" {
		t.Fatalf("role = %q, want admin", role)
	}
}

func TestParseToken_Garbage(t *testing.T) {
	if _, err := ParseToken("not-a-token"); err == nil {
		t.Fatalf("expected error for garbage token")
	}
}

func TestParseToken_WrongSignature(t *testing.T) {
	// Token signed with a different secret must be rejected.
	const forged = "eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9." +
		"eyJyb2xlIjoiYWRtaW4ifQ." +
		"4Adcj3UFYzPUVaVF43FmMab6RlaQD8A9V8wFzzht-KQ"
	if _, err := ParseToken(forged); err == nil {
		t.Fatalf("expected error for forged token")
	}
}
