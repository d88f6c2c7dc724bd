package jwt

import "testing"

func TestTokenRoundTrip(t *testing.T) {
	m := NewManager("test-secret")

	token, err := m.GenerateToken("chef@example.com", 42)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	claims, err := m.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if claims["email"] != "chef@example.com" {
		t.Errorf("email claim = %v, want chef@example.com", claims["email"])
	}
	if uid, ok := claims["user_id"].(float64); !ok || uint(uid) != 42 {
		t.Errorf("user_id claim = %v, want 42", claims["user_id"])
	}
}

func TestValidateTokenWrongSecret(t *testing.T) {
	token, err := NewManager("secret-a").GenerateToken("chef@example.com", 1)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	if _, err := NewManager("secret-b").ValidateToken(token); err == nil {
		t.Error("expected validation to fail with wrong secret")
	}
}
