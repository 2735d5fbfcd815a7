package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	t.Parallel()

	tok, err := NewAccessToken("access-secret", 42, 15)
	if err != nil {
		t.Fatalf("NewAccessToken error: %v", err)
	}

	got, err := ParseUserID(tok, "access-secret")
	if err != nil {
		t.Fatalf("ParseUserID error: %v", err)
	}
	if got != 42 {
		t.Fatalf("userId mismatch: got %d want 42", got)
	}
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	t.Parallel()

	tok, err := NewRefreshToken("refresh-secret", 7, 7)
	if err != nil {
		t.Fatalf("NewRefreshToken error: %v", err)
	}
	got, err := ParseUserID(tok, "refresh-secret")
	if err != nil {
		t.Fatalf("ParseUserID error: %v", err)
	}
	if got != 7 {
		t.Fatalf("userId mismatch: got %d want 7", got)
	}
}

func TestParseUserID_WrongSecret(t *testing.T) {
	t.Parallel()

	// A refresh token must never verify against the access secret: the
	// two lifetimes only mean something if the secrets stay disjoint.
	tok, err := NewRefreshToken("refresh-secret", 1, 7)
	if err != nil {
		t.Fatalf("NewRefreshToken error: %v", err)
	}
	if _, err := ParseUserID(tok, "access-secret"); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestParseUserID_Expired(t *testing.T) {
	t.Parallel()

	tok, err := NewAccessToken("s", 1, -1) // already expired
	if err != nil {
		t.Fatalf("NewAccessToken error: %v", err)
	}
	if _, err := ParseUserID(tok, "s"); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestParseUserID_Tampered(t *testing.T) {
	t.Parallel()

	tok, err := NewAccessToken("s", 1, 15)
	if err != nil {
		t.Fatalf("NewAccessToken error: %v", err)
	}
	mangled := tok[:len(tok)-2] + "xx"
	if _, err := ParseUserID(mangled, "s"); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for tampered token, got %v", err)
	}
}

func TestParseUserID_Garbage(t *testing.T) {
	t.Parallel()

	if _, err := ParseUserID("not.a.jwt", "s"); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for garbage input, got %v", err)
	}
}

func TestParseUserID_MissingClaim(t *testing.T) {
	t.Parallel()

	// Signed with the right secret but without a userId claim.
	claims := jwt.MapClaims{"exp": time.Now().Add(time.Hour).Unix()}
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("s"))
	if err != nil {
		t.Fatalf("sign error: %v", err)
	}
	if _, err := ParseUserID(raw, "s"); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken when userId claim is absent, got %v", err)
	}
}
