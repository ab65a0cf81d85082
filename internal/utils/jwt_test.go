package utils

import (
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-tax-jurisdictions/models"
	"github.com/golang-jwt/jwt/v5"
)

func testClaims() models.Claims {
	return models.Claims{UserID: 7, Username: "alice", Role: models.RoleUser}
}

func TestGenerateJWTToken_Success(t *testing.T) {
	signed, err := GenerateJWTToken("test-issuer", testClaims(), time.Hour, "secret-key")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if signed == "" {
		t.Fatal("expected non-empty token")
	}

	claims, err := ValidateAndParseJWTToken(signed, "secret-key", "test-issuer")
	if err != nil {
		t.Fatalf("expected valid token, got: %v", err)
	}
	if claims.UserID != 7 || claims.Username != "alice" || claims.Role != models.RoleUser {
		t.Errorf("unexpected identity claims: %+v", claims)
	}
	if claims.ID == "" {
		t.Error("expected jti claim to be set")
	}
	if claims.IsRefresh() {
		t.Error("access claims must not be refresh claims")
	}
}

func TestGenerateJWTToken_KeepsRefreshType(t *testing.T) {
	c := testClaims()
	c.Type = models.RefreshTokenType

	signed, err := GenerateJWTToken("iss", c, time.Hour, "k")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	claims, err := ValidateAndParseJWTToken(signed, "k", "iss")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !claims.IsRefresh() {
		t.Error("expected refresh type claim")
	}
}

func TestGenerateJWTToken_UniqueIDs(t *testing.T) {
	a, _ := GenerateJWTToken("iss", testClaims(), time.Hour, "k")
	b, _ := GenerateJWTToken("iss", testClaims(), time.Hour, "k")
	if a == b {
		t.Error("expected two tokens issued back to back to differ")
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
			_, err := GenerateJWTToken(tt.issuer, testClaims(), tt.duration, tt.key)
			if err == nil {
				t.Error("expected error for invalid parameters, got nil")
			}
		})
	}
}

func TestValidateAndParseJWTToken_InvalidKey(t *testing.T) {
	signed, _ := GenerateJWTToken("iss", testClaims(), time.Hour, "right")
	if _, err := ValidateAndParseJWTToken(signed, "wrong", "iss"); err == nil {
		t.Error("expected signature error")
	}
}

func TestValidateAndParseJWTToken_Expired(t *testing.T) {
	c := testClaims()
	c.RegisteredClaims = jwt.RegisteredClaims{
		Issuer:    "iss",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &c).SignedString([]byte("k"))
	if err != nil {
		t.Fatal(err)
	}

	_, err = ValidateAndParseJWTToken(signed, "k", "iss")
	if !errors.Is(err, jwt.ErrTokenExpired) {
		t.Errorf("expected ErrTokenExpired, got %v", err)
	}
}

func TestValidateAndParseJWTToken_MissingExpiry(t *testing.T) {
	c := testClaims()
	c.RegisteredClaims = jwt.RegisteredClaims{Issuer: "iss"}
	signed, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, &c).SignedString([]byte("k"))

	if _, err := ValidateAndParseJWTToken(signed, "k", "iss"); err == nil {
		t.Error("expected error for token without exp")
	}
}

func TestValidateAndParseJWTToken_WrongIssuer(t *testing.T) {
	signed, _ := GenerateJWTToken("other", testClaims(), time.Hour, "k")
	if _, err := ValidateAndParseJWTToken(signed, "k", "iss"); err == nil {
		t.Error("expected issuer error")
	}
}

func TestValidateAndParseJWTToken_NoneAlgorithm(t *testing.T) {
	c := testClaims()
	c.RegisteredClaims = jwt.RegisteredClaims{
		Issuer:    "iss",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodNone, &c).SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := ValidateAndParseJWTToken(signed, "k", "iss"); err == nil {
		t.Error("expected unsigned token to be rejected")
	}
}

func TestValidateAndParseJWTToken_Malformed(t *testing.T) {
	if _, err := ValidateAndParseJWTToken("not.a.jwt", "k", "iss"); err == nil {
		t.Error("expected error for malformed token")
	}
}

func TestExtractBearerToken(t *testing.T) {
	tests := []struct {
		header string
		want   string
	}{
		{"Bearer abc.def", "abc.def"},
		{"abc.def", "abc.def"},
		{"Bearer ", ""},
		{"", ""},
		{"  Bearer  spaced  ", "Bearer  spaced"},
	}

	for _, tt := range tests {
		if got := ExtractBearerToken(tt.header); got != tt.want {
			t.Errorf("ExtractBearerToken(%q) = %q, want %q", tt.header, got, tt.want)
		}
	}
}
