package auth

import (
	"testing"

	"github.com/rogerio-castellano/product-catalog/internal/models"
)

func TestTokenRoundTrip(t *testing.T) {
	SetSecret("test-secret")
	user := models.User{ID: 7, Email: "ada@freshfoods.test"}

	token, err := GenerateToken(user)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	_, claims, err := TokenClaims("Bearer " + token)
	if err != nil {
		t.Fatalf("TokenClaims: %v", err)
	}

	if sub, ok := claims["sub"].(float64); !ok || int(sub) != user.ID {
		t.Errorf("expected sub %d, got %v", user.ID, claims["sub"])
	}
	if claims["email"] != user.Email {
		t.Errorf("expected email %q, got %v", user.Email, claims["email"])
	}
}

func TestTokenClaims_RejectsTampering(t *testing.T) {
	SetSecret("test-secret")
	token, err := GenerateToken(models.User{ID: 7, Email: "ada@freshfoods.test"})
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	if _, _, err := TokenClaims("Bearer " + token + "x"); err == nil {
		t.Error("expected a tampered token to be rejected")
	}
}

func TestSetSecret_GovernsVerification(t *testing.T) {
	SetSecret("first-secret")
	token, err := GenerateToken(models.User{ID: 7, Email: "ada@freshfoods.test"})
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	SetSecret("second-secret")
	if _, _, err := TokenClaims("Bearer " + token); err == nil {
		t.Error("expected a token signed under the old secret to be rejected")
	}
}
