package utils

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestGenerateJWTToken_Success(t *testing.T) {
	issuer := "test-issuer"
	userID := int64(123)
	duration := time.Hour
	key := "secret-key"

	token, err := GenerateJWTToken(issuer, userID, duration, key)

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if token.SignedString == "" {
		t.Error("expected non-empty SignedString")
	}
	if token.Token == nil {
		t.Error("expected non-nil jwt.Token object")
	}

	// Verify claims
	claims, ok := token.Token.Claims.(*jwt.RegisteredClaims)
	if !ok {
		t.Fatal("could not cast claims to RegisteredClaims")
	}
	if claims.Issuer != issuer {
		t.Errorf("expected issuer %s, got %s", issuer, claims.Issuer)
	}
	if claims.Subject != "123" {
		t.Errorf("expected subject '123', got %s", claims.Subject)
	}
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		issuer   string
		duration time.Duration
		key      string
	}{
		{"empty issuer", "", time.Hour, "key"},
		{"zero duration", "iss", 0, "key"},
		{"empty key", "iss", time.Hour, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateJWTToken(tt.issuer, 1, tt.duration, tt.key)
			if err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestValidateAndParseJWTToken_RoundTrip(t *testing.T) {
	issuer := "school-admin"
	key := "sign-key"
	userID := int64(42)

	generated, err := GenerateJWTToken(issuer, userID, time.Hour, key)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	parsed, err := ValidateAndParseJWTToken(generated.SignedString, key, issuer)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if parsed.UserID != userID {
		t.Errorf("expected UserID %d, got %d", userID, parsed.UserID)
	}
}

func TestValidateAndParseJWTToken_WrongKey(t *testing.T) {
	generated, err := GenerateJWTToken("iss", 1, time.Hour, "right-key")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if _, err = ValidateAndParseJWTToken(generated.SignedString, "wrong-key", "iss"); err == nil {
		t.Error("expected signature error, got nil")
	}
}

func TestValidateAndParseJWTToken_WrongIssuer(t *testing.T) {
	generated, err := GenerateJWTToken("issuer-a", 1, time.Hour, "key")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if _, err = ValidateAndParseJWTToken(generated.SignedString, "key", "issuer-b"); err == nil {
		t.Error("expected issuer error, got nil")
	}
}

func TestValidateAndParseJWTToken_Expired(t *testing.T) {
	generated, err := GenerateJWTToken("iss", 1, time.Nanosecond, "key")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	time.Sleep(10 * time.Millisecond)

	_, err = ValidateAndParseJWTToken(generated.SignedString, "key", "iss")
	if err == nil {
		t.Fatal("expected expiry error, got nil")
	}
	if !errors.Is(err, jwt.ErrTokenExpired) {
		t.Errorf("expected token expired error, got %v", err)
	}
}

func TestParseBearerToken(t *testing.T) {
	token, err := ParseBearerToken("Bearer abc.def.ghi")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if token != "abc.def.ghi" {
		t.Errorf("expected token abc.def.ghi, got %s", token)
	}

	if _, err = ParseBearerToken("Bearer"); err == nil {
		t.Error("expected error for header without token")
	}
	if _, err = ParseBearerToken("Bearer "); err == nil {
		t.Error("expected error for empty token")
	}
}

func TestParseUserIDFromJWT(t *testing.T) {
	generated, err := GenerateJWTToken("iss", 77, time.Hour, "key")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	id, err := ParseUserIDFromJWT(generated.SignedString)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != 77 {
		t.Errorf("expected 77, got %d", id)
	}
}

func TestParseExpiryFromJWT(t *testing.T) {
	duration := 2 * time.Hour
	generated, err := GenerateJWTToken("iss", 1, duration, "key")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	exp, err := ParseExpiryFromJWT(generated.SignedString)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := time.Now().Add(duration)
	if exp.Before(want.Add(-time.Minute)) || exp.After(want.Add(time.Minute)) {
		t.Errorf("expiry %v not within a minute of %v", exp, want)
	}
}
