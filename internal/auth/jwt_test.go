package auth

import (
	"testing"

	"github.com/Abhishek-dev18/Water-Distribution-Management/internal/config"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.ExpirationHours = 24
	cfg.JWT.Issuer = "aquaflow-backend"
	return cfg
}

func TestTokenRoundTrip(t *testing.T) {
	mgr := NewJWTManager(testConfig())

	token, err := mgr.GenerateToken("admin")
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	claims, err := mgr.ValidateToken(token)
	if err != nil {
		t.Fatalf("validate failed: %v", err)
	}
	if claims.Username != "admin" {
		t.Errorf("username = %q, want admin", claims.Username)
	}
	if claims.Issuer != "aquaflow-backend" {
		t.Errorf("issuer = %q", claims.Issuer)
	}
}

func TestTokenWrongSecretRejected(t *testing.T) {
	token, err := NewJWTManager(testConfig()).GenerateToken("admin")
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	other := testConfig()
	other.JWT.Secret = "different-secret"
	if _, err := NewJWTManager(other).ValidateToken(token); err == nil {
		t.Fatal("expected validation failure with wrong secret")
	}
}

func TestTokenGarbageRejected(t *testing.T) {
	mgr := NewJWTManager(testConfig())
	if _, err := mgr.ValidateToken("not.a.token"); err == nil {
		t.Fatal("expected validation failure for garbage token")
	}
}

func TestVerifyPassword(t *testing.T) {
	hash, err := HashPassword("1234")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}

	if !VerifyPassword(hash, "1234") {
		t.Error("bcrypt hash did not verify")
	}
	if VerifyPassword(hash, "wrong") {
		t.Error("wrong password verified against bcrypt hash")
	}
	if !VerifyPassword("plain", "plain") {
		t.Error("plain comparison did not verify")
	}
	if VerifyPassword("plain", "other") {
		t.Error("mismatched plain passwords verified")
	}
}
