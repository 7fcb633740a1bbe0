package auth

import (
	"testing"
	"time"
)

const testSecret = "test-secret"

func TestSignVerifyRoundTrip(t *testing.T) {
	token, err := Sign(42, "owner", testSecret, time.Hour)
	if err != nil {
		t.Fatal(err)
	}

	claims, err := Verify(token, testSecret)
	if err != nil {
		t.Fatal(err)
	}
	if claims.RestaurantID != 42 {
		t.Fatalf("expected restaurantId 42, got %d", claims.RestaurantID)
	}
	if claims.Username != "owner" {
		t.Fatalf("expected username owner, got %s", claims.Username)
	}
}

func TestVerifyRejectsBadToken(t *testing.T) {
	cases := []struct {
		name  string
		token func() string
	}{
		{"empty", func() string { return "" }},
		{"garbage", func() string { return "not.a.token" }},
		{"wrong secret", func() string {
			token, _ := Sign(1, "owner", "other-secret", time.Hour)
			return token
		}},
		{"expired", func() string {
			token, _ := Sign(1, "owner", testSecret, -time.Minute)
			return token
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Verify(tc.token(), testSecret); err == nil {
				t.Fatal("expected verification to fail")
			}
		})
	}
}

func TestParseBearerToken(t *testing.T) {
	if got := ParseBearerToken("Bearer abc"); got != "abc" {
		t.Fatalf("expected abc, got %q", got)
	}
	if got := ParseBearerToken("bearer abc"); got != "abc" {
		t.Fatalf("expected abc, got %q", got)
	}
	if got := ParseBearerToken("abc"); got != "" {
		t.Fatalf("expected empty, got %q", got)
	}
	if got := ParseBearerToken(""); got != "" {
		t.Fatalf("expected empty, got %q", got)
	}
}
