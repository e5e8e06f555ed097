package app

import (
	"testing"

	"profolio/internal/config"

	"github.com/gofiber/fiber/v3"
)

func TestRegisterGlobalMiddleware_NoCORSOrigin(t *testing.T) {
	defer func() {
		if r := recover(); r != nil {
			t.Fatalf("middleware registration panicked: %v", r)
		}
	}()

	registerGlobalMiddleware(fiber.New(), config.Config{})
}

func TestRegisterGlobalMiddleware_WithCORSOrigin(t *testing.T) {
	defer func() {
		if r := recover(); r != nil {
			t.Fatalf("middleware registration panicked: %v", r)
		}
	}()

	cfg := config.Config{}
	cfg.App.CORSOrigin = "https://profolio.example"
	registerGlobalMiddleware(fiber.New(), cfg)
}

func TestListenAddr(t *testing.T) {
	cases := []struct {
		in   string
		want string
		ok   bool
	}{
		{"8080", ":8080", true},
		{":8080", ":8080", true},
		{" 9000 ", ":9000", true},
		{"", "", false},
	}
	for _, tc := range cases {
		got, err := ListenAddr(tc.in)
		if tc.ok && (err != nil || got != tc.want) {
			t.Fatalf("ListenAddr(%q) = %q, %v; want %q", tc.in, got, err, tc.want)
		}
		if !tc.ok && err == nil {
			t.Fatalf("ListenAddr(%q) expected error", tc.in)
		}
	}
}
