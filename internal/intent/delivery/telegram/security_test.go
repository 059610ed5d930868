package telegram

import (
	"errors"
	"testing"
)

func TestValidateSecretToken(t *testing.T) {
	open := NewSecurityValidator("", nil, 0)
	if err := open.ValidateSecretToken("anything"); err != nil {
		t.Errorf("no token configured should allow, got %v", err)
	}

	v := NewSecurityValidator("s3cret", nil, 0)
	if err := v.ValidateSecretToken("s3cret"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := v.ValidateSecretToken("s3cre"); !errors.Is(err, ErrInvalidSecretToken) {
		t.Errorf("expected ErrInvalidSecretToken, got %v", err)
	}
}

func TestValidateIPAddress(t *testing.T) {
	v := NewSecurityValidator("", []string{"149.154.160.0/20", "10.0.0.1"}, 0)

	tests := []struct {
		name    string
		ip      string
		allowed bool
	}{
		{name: "telegram range", ip: "149.154.167.99", allowed: true},
		{name: "exact ip", ip: "10.0.0.1", allowed: true},
		{name: "outside", ip: "8.8.8.8", allowed: false},
		{name: "unparseable", ip: "not-an-ip", allowed: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateIPAddress(tt.ip)
			if tt.allowed && err != nil {
				t.Errorf("expected allowed, got %v", err)
			}
			if !tt.allowed && !errors.Is(err, ErrIPNotAllowed) {
				t.Errorf("expected ErrIPNotAllowed, got %v", err)
			}
		})
	}

	if err := NewSecurityValidator("", nil, 0).ValidateIPAddress("8.8.8.8"); err != nil {
		t.Errorf("empty allowlist should allow, got %v", err)
	}
}

func TestRateLimiter(t *testing.T) {
	v := NewSecurityValidator("", nil, 8)

	for i := 0; i < 2; i++ {
		if err := v.CheckRateLimit("1"); err != nil {
			t.Fatalf("request %d should pass: %v", i, err)
		}
	}
	if err := v.CheckRateLimit("1"); !errors.Is(err, ErrRateLimited) {
		t.Errorf("expected ErrRateLimited, got %v", err)
	}
	if err := v.CheckRateLimit("2"); err != nil {
		t.Errorf("other chats have their own bucket: %v", err)
	}

	unlimited := NewSecurityValidator("", nil, 0)
	for i := 0; i < 100; i++ {
		if err := unlimited.CheckRateLimit("1"); err != nil {
			t.Fatalf("limit disabled, got %v", err)
		}
	}
}
